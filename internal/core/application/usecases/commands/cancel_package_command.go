package commands

import (
	"errors"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrCancelPackageCommandIsNotConstructed = errors.New(
		"CancelPackageCommand must be created via NewCancelPackageCommand constructor",
	)
)

// CancelPackageCommand represents a request to cancel a shipment before it is
// collected. The reason is recorded on the package for audit.
type CancelPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelPackageCommand creates a command to cancel a package shipment.
func NewCancelPackageCommand(packageID kernel.UUID, reason string) (CancelPackageCommand, error) {
	cmd := CancelPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setReason(reason),
	); err != nil {
		return CancelPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPackageCommand) Validate() error {
	return c.guard.Validate(ErrCancelPackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to cancel.
func (c CancelPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Reason returns the free-text cancellation reason.
func (c CancelPackageCommand) Reason() string {
	return c.reason
}

func (c *CancelPackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *CancelPackageCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
