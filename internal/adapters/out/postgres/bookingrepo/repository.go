package bookingrepo

import (
	"context"
	"errors"
	"time"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code raised when the partial unique
// index on (trip_id, seat_number) rejects a duplicate active seat.
const uniqueViolation = "23505"

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking to the database. A unique-violation on the active
// seat index means another transaction took the seat first; it is surfaced as
// a CapacityExceededError so the caller can retry allocation.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewCapacityExceededErrorWithCause("seatNumber", aggregate.SeatNumber(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus persists a status transition already applied to the aggregate.
// The UPDATE is preconditioned on the row still holding the expected status;
// zero rows affected means a concurrent transition won and the caller gets a
// StatusConflictError.
func (r *GormBookingRepository) UpdateStatus(ctx context.Context, aggregate *booking.Booking, expected booking.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookingDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("Status", "CancellationReason", "CancelledAt", "CancelledBy").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStatusConflictError("booking", expected.String(), aggregate.Status().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTicketNumber retrieves a booking by its ticket number.
func (r *GormBookingRepository) GetByTicketNumber(ctx context.Context, ticketNumber kernel.RefCode) (*booking.Booking, error) {
	if err := ticketNumber.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "ticket_number = ?", ticketNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", ticketNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveSeatNumbers returns the seat numbers held by non-cancelled
// bookings on the trip. Used by seat allocation inside the booking
// transaction.
func (r *GormBookingRepository) GetActiveSeatNumbers(ctx context.Context, tripID kernel.UUID) ([]int, error) {
	if err := tripID.Validate(); err != nil {
		return nil, err
	}

	seats := make([]int, 0)
	err := r.db.WithContext(ctx).Model(&BookingDTO{}).
		Where("trip_id = ? AND status != ?", tripID.Bytes(), booking.Cancelled.String()).
		Order("seat_number").
		Pluck("seat_number", &seats).Error
	if err != nil {
		return nil, err
	}

	return seats, nil
}

// GetConfirmedOnDepartedTrips returns confirmed bookings whose trip departed
// before the cutoff. Feeds the no-show sweep.
func (r *GormBookingRepository) GetConfirmedOnDepartedTrips(ctx context.Context, departedBefore time.Time) ([]*booking.Booking, error) {
	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = bookings.trip_id").
		Where("bookings.status = ? AND trips.departure_time < ?", booking.Confirmed.String(), departedBefore).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}
