package commands

import (
	"errors"
	"time"

	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrSweepNoShowsCommandIsNotConstructed = errors.New(
		"SweepNoShowsCommand must be created via NewSweepNoShowsCommand constructor",
	)
)

// SweepNoShowsCommand represents a request to mark every CONFIRMED booking on
// trips that departed before the cutoff as NO_SHOW. Issued periodically by
// the background sweep job.
type SweepNoShowsCommand struct { //nolint:recvcheck //using for validation
	departedBefore time.Time

	guard guard.ConstructorGuard
}

// NewSweepNoShowsCommand creates a command to sweep no-shows on trips that
// departed before the given instant.
func NewSweepNoShowsCommand(departedBefore time.Time) (SweepNoShowsCommand, error) {
	if departedBefore.IsZero() {
		return SweepNoShowsCommand{}, errs.NewValueIsRequiredError("departedBefore")
	}

	return SweepNoShowsCommand{
		departedBefore: departedBefore,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepNoShowsCommand) Validate() error {
	return c.guard.Validate(ErrSweepNoShowsCommandIsNotConstructed)
}

// DepartedBefore returns the departure cutoff.
func (c SweepNoShowsCommand) DepartedBefore() time.Time {
	return c.departedBefore
}
