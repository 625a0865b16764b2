package commands

import (
	"context"

	"reservation/internal/core/domain/model/booking"
)

// MarkNoShowCommandHandler marks one booking as a no-show.
//
// No seat is released and no notification is sent: the transition is a
// bookkeeping step for revenue reporting on departed trips.
type MarkNoShowCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewMarkNoShowCommandHandler creates a handler for single no-show marking.
func NewMarkNoShowCommandHandler(uowFactory BookingUoWFactory) MarkNoShowCommandHandler {
	return MarkNoShowCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the no-show command. Fails with StatusConflictError when
// the booking is no longer CONFIRMED, for example when a cancellation landed
// first.
func (h *MarkNoShowCommandHandler) Handle(ctx context.Context, cmd MarkNoShowCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	bookingAggregate, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = bookingAggregate.MarkNoShow(); err != nil {
		return err
	}

	if err = bookingRepo.UpdateStatus(ctx, bookingAggregate, booking.Confirmed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
