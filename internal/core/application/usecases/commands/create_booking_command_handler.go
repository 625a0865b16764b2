package commands

import (
	"context"
	"fmt"
	"time"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/ports"
)

// CreateBookingCommandHandler handles the business logic for seat reservation.
//
// Inside one transaction it loads the trip, allocates the lowest unused seat,
// decrements the seat counter with a version check, issues a ticket number and
// inserts the CONFIRMED booking. Two concurrent requests for the last seat
// cannot both commit: the loser's version-checked seat update affects no row
// and the whole transaction rolls back, leaving no partial record.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	notifier   ports.Notifier
}

// NewCreateBookingCommandHandler creates a handler for booking creation.
func NewCreateBookingCommandHandler(uowFactory BookingUoWFactory, notifier ports.Notifier) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the booking creation command and returns the persisted
// booking. Fails with CapacityExceededError when the trip has no seats left;
// no record is created and the counter is unchanged.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
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

	tripRepo := uow.TripRepository()
	tripAggregate, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return nil, err
	}

	bookingRepo := uow.BookingRepository()
	takenSeats, err := bookingRepo.GetActiveSeatNumbers(ctx, tripAggregate.ID())
	if err != nil {
		return nil, err
	}

	seat, err := tripAggregate.AllocateSeat(takenSeats)
	if err != nil {
		return nil, err
	}

	ticketNumber, err := uow.RefCodeGenerator().Next(ctx, kernel.TicketKind, now)
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomer(cmd.CustomerName(), cmd.CustomerPhone())
	if err != nil {
		return nil, err
	}

	// the fare is fixed here and never recomputed
	newBooking, err := booking.NewBooking(
		kernel.NewUUID(),
		ticketNumber,
		tripAggregate.ID(),
		seat,
		customer,
		tripAggregate.TicketPrice(),
		cmd.PaymentMethod(),
		booking.Paid,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = bookingRepo.Add(ctx, newBooking); err != nil {
		return nil, err
	}

	if err = tripRepo.UpdateSeats(ctx, tripAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Event:   ports.BookingCreated,
		RefCode: newBooking.TicketNumber().String(),
		Message: fmt.Sprintf("Booking %s confirmed: seat %d, %s to %s",
			newBooking.TicketNumber(), seat, tripAggregate.Origin(), tripAggregate.Destination()),
		Recipients: []ports.Recipient{
			{Name: customer.Names(), PhoneNumber: customer.PhoneNumber()},
		},
	})

	return newBooking, nil
}
