package commands

import (
	"context"
	"fmt"
	"time"

	"reservation/internal/core/domain/model/shipment"
	"reservation/internal/core/ports"
)

// MarkPackageArrivedCommandHandler records a package's arrival at the
// destination station and tells the receiver to come collect it.
type MarkPackageArrivedCommandHandler struct {
	uowFactory ShipmentUoWFactory
	notifier   ports.Notifier
}

// NewMarkPackageArrivedCommandHandler creates a handler for arrival marking.
func NewMarkPackageArrivedCommandHandler(uowFactory ShipmentUoWFactory, notifier ports.Notifier) MarkPackageArrivedCommandHandler {
	return MarkPackageArrivedCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the arrival command. Fails with StatusConflictError when
// the package is not IN_TRANSIT; marking an already-arrived package twice is
// rejected rather than silently re-stamped.
func (h *MarkPackageArrivedCommandHandler) Handle(ctx context.Context, cmd MarkPackageArrivedCommand) (*shipment.Package, error) {
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

	shipmentRepo := uow.ShipmentRepository()
	pkg, err := shipmentRepo.Get(ctx, cmd.PackageID())
	if err != nil {
		return nil, err
	}

	if err = pkg.MarkArrived(now); err != nil {
		return nil, err
	}

	if err = shipmentRepo.UpdateStatus(ctx, pkg, shipment.InTransit); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	receiver := pkg.Receiver()
	h.notifier.Notify(ctx, ports.Notification{
		Event:   ports.PackageArrived,
		RefCode: pkg.TrackingNumber().String(),
		Message: fmt.Sprintf("Package %s has arrived and is ready for collection. Bring the ID document ending in the number registered at booking.",
			pkg.TrackingNumber()),
		Recipients: []ports.Recipient{
			{Name: receiver.Names(), PhoneNumber: receiver.PhoneNumber(), Email: receiver.Email()},
		},
	})

	return pkg, nil
}
