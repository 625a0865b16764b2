package queries

import (
	"errors"
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/shipment"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrListPackagesQueryIsNotConstructed = errors.New(
		"ListPackagesQuery must be created via NewListPackagesQuery constructor",
	)
)

// ListPackagesQuery retrieves package shipments for the operations console.
// All filters are optional and combine with AND.
type ListPackagesQuery struct {
	status   *shipment.Status
	tripID   *kernel.UUID
	dateFrom *time.Time
	dateTo   *time.Time

	guard guard.ConstructorGuard
}

// ListPackagesFilter carries the optional filters of a package listing.
// Zero values mean "no filter on this field".
type ListPackagesFilter struct {
	Status   string
	TripID   string
	DateFrom time.Time
	DateTo   time.Time
}

// NewListPackagesQuery creates a package listing query from the given
// filters, validating each one that is present.
func NewListPackagesQuery(filter ListPackagesFilter) (ListPackagesQuery, error) {
	q := ListPackagesQuery{guard: guard.NewConstructorGuard()}

	if filter.Status != "" {
		status, err := shipment.StatusFromString(filter.Status)
		if err != nil {
			return ListPackagesQuery{}, err
		}
		q.status = &status
	}

	if filter.TripID != "" {
		tripID, err := kernel.UUIDFromString(filter.TripID)
		if err != nil {
			return ListPackagesQuery{}, err
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
		return ListPackagesQuery{}, errs.NewValueIsInvalidError("dateTo")
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

// Status returns the status filter, or nil when absent.
func (q ListPackagesQuery) Status() *shipment.Status {
	return q.status
}

// TripID returns the trip filter, or nil when absent.
func (q ListPackagesQuery) TripID() *kernel.UUID {
	return q.tripID
}

// DateFrom returns the inclusive lower bound on booking date, or nil.
func (q ListPackagesQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive upper bound on booking date, or nil.
func (q ListPackagesQuery) DateTo() *time.Time {
	return q.dateTo
}

// ListPackagesQueryResponse is one package row of the listing.
type ListPackagesQueryResponse struct {
	ID                  kernel.UUID
	TrackingNumber      string
	TripID              kernel.UUID
	SenderNames         string
	SenderPhone         string
	ReceiverNames       string
	ReceiverPhone       string
	ReceiverIDNumber    string
	WeightKg            float64
	DeclaredValue       *int64
	IsFragile           bool
	Price               int64
	PaymentMethod       string
	Status              string
	BookingDate         time.Time
	ExpectedArrivalTime time.Time
	ActualArrivalTime   *time.Time
	CollectedAt         *time.Time
	CollectedByName     string
	CancellationReason  string
}
