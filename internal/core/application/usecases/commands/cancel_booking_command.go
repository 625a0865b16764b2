package commands

import (
	"errors"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrCancelBookingCommandIsNotConstructed = errors.New(
		"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
	)
)

// CancelBookingCommand represents a request to cancel a confirmed booking and
// return its seat to the trip's pool. Cancellation is an audited operation:
// the reason and the acting staff member are recorded on the booking.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	reason    string
	actor     string

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand creates a command to cancel a booking.
// The reason and actor are mandatory; a cancellation without either is
// rejected before any state is touched.
func NewCancelBookingCommand(bookingID kernel.UUID, reason, actor string) (CancelBookingCommand, error) {
	cmd := CancelBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setAudit(reason, actor),
	); err != nil {
		return CancelBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to cancel.
func (c CancelBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Reason returns the free-text cancellation reason.
func (c CancelBookingCommand) Reason() string {
	return c.reason
}

// Actor returns the identifier of the staff member performing the
// cancellation.
func (c CancelBookingCommand) Actor() string {
	return c.actor
}

func (c *CancelBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CancelBookingCommand) setAudit(reason, actor string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.reason = reason
	c.actor = actor
	return nil
}
