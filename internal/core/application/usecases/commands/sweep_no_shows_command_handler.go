package commands

import (
	"context"
	"errors"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/pkg/errs"
)

// SweepNoShowsCommandHandler marks leftover CONFIRMED bookings on departed
// trips as NO_SHOW.
//
// Each transition is preconditioned on the booking still being CONFIRMED. A
// booking cancelled between the sweep's read and its write is skipped rather
// than failing the whole batch, so the sweep and manual operations can run
// concurrently.
type SweepNoShowsCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewSweepNoShowsCommandHandler creates a handler for the no-show sweep.
func NewSweepNoShowsCommandHandler(uowFactory BookingUoWFactory) SweepNoShowsCommandHandler {
	return SweepNoShowsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and returns the number of bookings it
// marked. An empty candidate set is not an error.
func (h *SweepNoShowsCommandHandler) Handle(ctx context.Context, cmd SweepNoShowsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	candidates, err := bookingRepo.GetConfirmedOnDepartedTrips(ctx, cmd.DepartedBefore())
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, candidate := range candidates {
		if err = candidate.MarkNoShow(); err != nil {
			if errors.Is(err, errs.ErrStatusConflict) {
				continue
			}
			return 0, err
		}

		if err = bookingRepo.UpdateStatus(ctx, candidate, booking.Confirmed); err != nil {
			if errors.Is(err, errs.ErrStatusConflict) {
				continue
			}
			return 0, err
		}

		marked++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return marked, nil
}
