// Package queries contains read-side operations of the CQRS split. Query
// handlers go straight to the database with raw SQL and return flat response
// structs; they never touch the aggregates or the unit of work.
package queries

import (
	"errors"
	"time"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrListBookingsQueryIsNotConstructed = errors.New(
		"ListBookingsQuery must be created via NewListBookingsQuery constructor",
	)
)

// ListBookingsQuery retrieves bookings for the operations console. All
// filters are optional and combine with AND: a status, a trip, and a
// booking-date range.
//
// Example:
//
//	query := NewListBookingsQuery(ListBookingsFilter{Status: "CONFIRMED"})
//	handler := NewListBookingsQueryHandler(db)
//
//	bookings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list bookings: %w", err)
//	}
type ListBookingsQuery struct {
	status   *booking.Status
	tripID   *kernel.UUID
	dateFrom *time.Time
	dateTo   *time.Time

	guard guard.ConstructorGuard
}

// ListBookingsFilter carries the optional filters of a booking listing.
// Zero values mean "no filter on this field".
type ListBookingsFilter struct {
	Status   string
	TripID   string
	DateFrom time.Time
	DateTo   time.Time
}

// NewListBookingsQuery creates a booking listing query from the given
// filters, validating each one that is present.
func NewListBookingsQuery(filter ListBookingsFilter) (ListBookingsQuery, error) {
	q := ListBookingsQuery{guard: guard.NewConstructorGuard()}

	if filter.Status != "" {
		status, err := booking.StatusFromString(filter.Status)
		if err != nil {
			return ListBookingsQuery{}, err
		}
		q.status = &status
	}

	if filter.TripID != "" {
		tripID, err := kernel.UUIDFromString(filter.TripID)
		if err != nil {
			return ListBookingsQuery{}, err
		}
		q.tripID = &tripID
	}

	if !filter.DateFrom.IsZero() {
		from := filter.DateFrom
		q.dateFrom = &from
	}
	if !filter.DateTo.IsZero() {
		to := filter.DateTo
		q.dateTo = &to
	}
	if q.dateFrom != nil && q.dateTo != nil && q.dateTo.Before(*q.dateFrom) {
		return ListBookingsQuery{}, errs.NewValueIsInvalidError("dateTo")
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

// Status returns the status filter, or nil when absent.
func (q ListBookingsQuery) Status() *booking.Status {
	return q.status
}

// TripID returns the trip filter, or nil when absent.
func (q ListBookingsQuery) TripID() *kernel.UUID {
	return q.tripID
}

// DateFrom returns the inclusive lower bound on booking date, or nil.
func (q ListBookingsQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive upper bound on booking date, or nil.
func (q ListBookingsQuery) DateTo() *time.Time {
	return q.dateTo
}

// ListBookingsQueryResponse is one booking row of the listing.
type ListBookingsQueryResponse struct {
	ID                 kernel.UUID
	TicketNumber       string
	TripID             kernel.UUID
	SeatNumber         int
	CustomerName       string
	CustomerPhone      string
	Price              int64
	PaymentMethod      string
	PaymentStatus      string
	Status             string
	BookingDate        time.Time
	CancellationReason string
	CancelledAt        *time.Time
	CancelledBy        string
}
