package commands

import (
	"errors"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/guard"
)

var (
	ErrMarkPackageArrivedCommandIsNotConstructed = errors.New(
		"MarkPackageArrivedCommand must be created via NewMarkPackageArrivedCommand constructor",
	)
)

// MarkPackageArrivedCommand represents a request to record that a package
// reached its destination station and is ready for collection.
type MarkPackageArrivedCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPackageArrivedCommand creates a command to mark a package as arrived.
func NewMarkPackageArrivedCommand(packageID kernel.UUID) (MarkPackageArrivedCommand, error) {
	if err := packageID.Validate(); err != nil {
		return MarkPackageArrivedCommand{}, err
	}

	return MarkPackageArrivedCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPackageArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackageArrivedCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to mark.
func (c MarkPackageArrivedCommand) PackageID() kernel.UUID {
	return c.packageID
}
