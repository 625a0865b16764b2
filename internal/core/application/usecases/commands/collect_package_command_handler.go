package commands

import (
	"context"
	"fmt"
	"time"

	"reservation/internal/core/domain/model/shipment"
	"reservation/internal/core/ports"
)

// CollectPackageCommandHandler hands a package over after verifying the
// collector's identity.
//
// A failed identity check leaves the package in ARRIVED status so the
// receiver can retry with the correct document. The status update is
// preconditioned on ARRIVED, so a package cannot be collected twice.
type CollectPackageCommandHandler struct {
	uowFactory ShipmentUoWFactory
	notifier   ports.Notifier
}

// NewCollectPackageCommandHandler creates a handler for package collection.
func NewCollectPackageCommandHandler(uowFactory ShipmentUoWFactory, notifier ports.Notifier) CollectPackageCommandHandler {
	return CollectPackageCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the collection command. Fails with StatusConflictError
// when the package is not ARRIVED and with IdentityMismatchError when the
// presented ID number does not match the one registered at booking.
func (h *CollectPackageCommandHandler) Handle(ctx context.Context, cmd CollectPackageCommand) (*shipment.Package, error) {
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

	if err = pkg.Collect(cmd.ReceiverIDNumber(), cmd.CollectedByName(), now); err != nil {
		return nil, err
	}

	if err = shipmentRepo.UpdateStatus(ctx, pkg, shipment.Arrived); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	sender := pkg.Sender()
	h.notifier.Notify(ctx, ports.Notification{
		Event:   ports.PackageCollected,
		RefCode: pkg.TrackingNumber().String(),
		Message: fmt.Sprintf("Package %s was collected by %s",
			pkg.TrackingNumber(), cmd.CollectedByName()),
		Recipients: []ports.Recipient{
			{Name: sender.Names(), PhoneNumber: sender.PhoneNumber(), Email: sender.Email()},
		},
	})

	return pkg, nil
}
