package commands

import (
	"errors"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrCollectPackageCommandIsNotConstructed = errors.New(
		"CollectPackageCommand must be created via NewCollectPackageCommand constructor",
	)
)

// CollectPackageCommand represents a request to hand a package over at the
// counter. The presented ID number is checked against the receiver ID
// registered at booking time; the collector's name is recorded for audit.
type CollectPackageCommand struct { //nolint:recvcheck //using for validation
	packageID        kernel.UUID
	receiverIDNumber string
	collectedByName  string

	guard guard.ConstructorGuard
}

// NewCollectPackageCommand creates a command to collect a package.
func NewCollectPackageCommand(packageID kernel.UUID, receiverIDNumber, collectedByName string) (CollectPackageCommand, error) {
	cmd := CollectPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setCollection(receiverIDNumber, collectedByName),
	); err != nil {
		return CollectPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CollectPackageCommand) Validate() error {
	return c.guard.Validate(ErrCollectPackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to collect.
func (c CollectPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// ReceiverIDNumber returns the ID number presented at the counter.
func (c CollectPackageCommand) ReceiverIDNumber() string {
	return c.receiverIDNumber
}

// CollectedByName returns the name of the person collecting the package.
func (c CollectPackageCommand) CollectedByName() string {
	return c.collectedByName
}

func (c *CollectPackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *CollectPackageCommand) setCollection(receiverIDNumber, collectedByName string) error {
	if receiverIDNumber == "" {
		return errs.NewValueIsRequiredError("receiverIdNumber")
	}
	if collectedByName == "" {
		return errs.NewValueIsRequiredError("collectedByName")
	}
	c.receiverIDNumber = receiverIDNumber
	c.collectedByName = collectedByName
	return nil
}
