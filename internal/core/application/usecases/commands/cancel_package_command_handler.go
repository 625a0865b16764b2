package commands

import (
	"context"
	"time"

	"reservation/internal/core/domain/model/shipment"
)

// CancelPackageCommandHandler cancels a shipment before collection.
//
// Cancellation is valid from either IN_TRANSIT or ARRIVED, so the status
// update is preconditioned on whatever status the package was loaded in. A
// concurrent collection makes the precondition fail and surfaces as a
// StatusConflictError instead of silently cancelling a collected package.
type CancelPackageCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCancelPackageCommandHandler creates a handler for package cancellation.
func NewCancelPackageCommandHandler(uowFactory ShipmentUoWFactory) CancelPackageCommandHandler {
	return CancelPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelPackageCommandHandler) Handle(ctx context.Context, cmd CancelPackageCommand) (*shipment.Package, error) {
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

	loadedStatus := pkg.Status()
	if err = pkg.Cancel(cmd.Reason(), now); err != nil {
		return nil, err
	}

	if err = shipmentRepo.UpdateStatus(ctx, pkg, loadedStatus); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
