package ports

import (
	"context"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for package aggregates.
type ShipmentRepository interface {
	// Add persists a new package aggregate to storage.
	// The package must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Package) error

	// UpdateStatus persists a status transition that was applied to the
	// aggregate in memory, preconditioned on the expected source status.
	// A stale precondition yields StatusConflictError and leaves the stored
	// row untouched; this is what serializes collection racing cancellation.
	UpdateStatus(ctx context.Context, aggregate *shipment.Package, expected shipment.Status) error

	// Get retrieves a package aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Package, error)

	// GetByTrackingNumber retrieves a package by its tracking number.
	// Backs the public tracking lookup, which requires no identity check.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.RefCode) (*shipment.Package, error)
}
