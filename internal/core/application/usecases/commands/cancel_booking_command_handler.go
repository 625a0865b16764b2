package commands

import (
	"context"
	"fmt"
	"time"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/ports"
)

// CancelBookingCommandHandler handles booking cancellation.
//
// The status update is preconditioned on the booking still being CONFIRMED,
// so two staff members cancelling the same booking concurrently cannot both
// succeed, and the seat is returned to the trip's pool exactly once.
type CancelBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	notifier   ports.Notifier
}

// NewCancelBookingCommandHandler creates a handler for booking cancellation.
func NewCancelBookingCommandHandler(uowFactory BookingUoWFactory, notifier ports.Notifier) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command: it records the reason and actor
// on the booking, releases the seat back to the trip, and notifies the
// customer. Fails with StatusConflictError when the booking is no longer
// CONFIRMED.
func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	bookingAggregate, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return nil, err
	}

	if err = bookingAggregate.Cancel(cmd.Reason(), cmd.Actor(), now); err != nil {
		return nil, err
	}

	if err = bookingRepo.UpdateStatus(ctx, bookingAggregate, booking.Confirmed); err != nil {
		return nil, err
	}

	tripRepo := uow.TripRepository()
	tripAggregate, err := tripRepo.Get(ctx, bookingAggregate.TripID())
	if err != nil {
		return nil, err
	}

	if err = tripAggregate.ReleaseSeat(); err != nil {
		return nil, err
	}

	if err = tripRepo.UpdateSeats(ctx, tripAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	customer := bookingAggregate.Customer()
	h.notifier.Notify(ctx, ports.Notification{
		Event:   ports.BookingCancelled,
		RefCode: bookingAggregate.TicketNumber().String(),
		Message: fmt.Sprintf("Booking %s has been cancelled: %s",
			bookingAggregate.TicketNumber(), cmd.Reason()),
		Recipients: []ports.Recipient{
			{Name: customer.Names(), PhoneNumber: customer.PhoneNumber()},
		},
	})

	return bookingAggregate, nil
}
