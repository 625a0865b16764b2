package ports

import (
	"context"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
// Trip master data is owned by the external scheduler; this core reads trips
// and writes exactly one thing back: the seat counter, guarded by the
// aggregate's optimistic version.
type TripRepository interface {
	// Add persists a trip. Exists for seeding and tests; the scheduler is
	// the production writer of trip master data.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// UpdateSeats persists the aggregate's seat counter and bumped version
	// with the previous version as a precondition
	// (UPDATE ... WHERE version = loaded). If another transaction won the
	// race the write affects no row and a StatusConflictError is returned;
	// two concurrent requests for the last seat can therefore never both
	// commit.
	UpdateSeats(ctx context.Context, aggregate *trip.Trip) error
}
