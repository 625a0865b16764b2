package commands

import (
	"errors"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/guard"
)

var (
	ErrMarkNoShowCommandIsNotConstructed = errors.New(
		"MarkNoShowCommand must be created via NewMarkNoShowCommand constructor",
	)
)

// MarkNoShowCommand represents a request to mark a single confirmed booking
// as a no-show. Unlike cancellation, the seat is not returned to the pool:
// the trip has already departed.
type MarkNoShowCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNoShowCommand creates a command to mark a booking as a no-show.
func NewMarkNoShowCommand(bookingID kernel.UUID) (MarkNoShowCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return MarkNoShowCommand{}, err
	}

	return MarkNoShowCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNoShowCommand) Validate() error {
	return c.guard.Validate(ErrMarkNoShowCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to mark.
func (c MarkNoShowCommand) BookingID() kernel.UUID {
	return c.bookingID
}
