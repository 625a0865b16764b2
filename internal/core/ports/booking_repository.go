package ports

import (
	"context"
	"time"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
// Bookings are append-and-transition records: rows are inserted once and only
// ever updated through status-preconditioned writes.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	// The booking must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// UpdateStatus persists a status transition that was applied to the
	// aggregate in memory. The write carries the expected source status as a
	// precondition (UPDATE ... WHERE status = expected); if the stored row
	// has moved on since the aggregate was loaded, no row is affected and a
	// StatusConflictError is returned. This serializes racing transitions
	// (cancel vs. no-show) without explicit locks.
	UpdateStatus(ctx context.Context, aggregate *booking.Booking, expected booking.Status) error

	// Get retrieves a booking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetByTicketNumber retrieves a booking by its ticket number.
	GetByTicketNumber(ctx context.Context, ticketNumber kernel.RefCode) (*booking.Booking, error)

	// GetActiveSeatNumbers returns the seat numbers held by non-cancelled
	// bookings on the given trip. Loaded inside the booking transaction so
	// seat allocation sees a consistent set.
	GetActiveSeatNumbers(ctx context.Context, tripID kernel.UUID) ([]int, error)

	// GetConfirmedOnDepartedTrips returns confirmed bookings whose trip
	// departed before the given instant. Used by the no-show sweep.
	GetConfirmedOnDepartedTrips(ctx context.Context, departedBefore time.Time) ([]*booking.Booking, error)
}
