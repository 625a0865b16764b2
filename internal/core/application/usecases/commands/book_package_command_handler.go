package commands

import (
	"context"
	"fmt"
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/shipment"
	"reservation/internal/core/domain/services"
	"reservation/internal/core/ports"
)

// BookPackageCommandHandler handles package shipment booking.
//
// The shipping fee is computed from the package weight and the trip's ticket
// price, the tracking number is issued from the same sequence table the
// booking side uses, and the expected arrival time is taken from the trip's
// schedule. All three are fixed at booking time.
type BookPackageCommandHandler struct {
	uowFactory ShipmentUoWFactory
	notifier   ports.Notifier
}

// NewBookPackageCommandHandler creates a handler for package booking.
func NewBookPackageCommandHandler(uowFactory ShipmentUoWFactory, notifier ports.Notifier) BookPackageCommandHandler {
	return BookPackageCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the booking command and returns the persisted package in
// IN_TRANSIT status. Both the sender and the receiver are notified with the
// tracking number.
func (h *BookPackageCommandHandler) Handle(ctx context.Context, cmd BookPackageCommand) (*shipment.Package, error) {
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

	tripAggregate, err := uow.TripRepository().Get(ctx, cmd.TripID())
	if err != nil {
		return nil, err
	}

	price, err := services.PackagePrice(cmd.WeightKg(), tripAggregate.TicketPrice())
	if err != nil {
		return nil, err
	}

	trackingNumber, err := uow.RefCodeGenerator().Next(ctx, kernel.TrackingKind, now)
	if err != nil {
		return nil, err
	}

	pkg, err := shipment.NewPackage(
		kernel.NewUUID(),
		trackingNumber,
		tripAggregate.ID(),
		cmd.Sender(),
		cmd.Receiver(),
		cmd.WeightKg(),
		cmd.DeclaredValue(),
		cmd.IsFragile(),
		price,
		cmd.PaymentMethod(),
		now,
		tripAggregate.ArrivalEstimate(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, pkg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	sender, receiver := pkg.Sender(), pkg.Receiver()
	h.notifier.Notify(ctx, ports.Notification{
		Event:   ports.PackageBooked,
		RefCode: pkg.TrackingNumber().String(),
		Message: fmt.Sprintf("Package %s is in transit, %s to %s, expected %s",
			pkg.TrackingNumber(), tripAggregate.Origin(), tripAggregate.Destination(),
			pkg.ExpectedArrivalTime().Format(time.RFC3339)),
		Recipients: []ports.Recipient{
			{Name: sender.Names(), PhoneNumber: sender.PhoneNumber(), Email: sender.Email()},
			{Name: receiver.Names(), PhoneNumber: receiver.PhoneNumber(), Email: receiver.Email()},
		},
	})

	return pkg, nil
}
