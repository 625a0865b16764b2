package queries

import (
	"errors"
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrTrackPackageQueryIsNotConstructed = errors.New(
		"TrackPackageQuery must be created via NewTrackPackageQuery constructor",
	)
)

// TrackPackageQuery retrieves the public tracking view of one package by its
// tracking number. The response deliberately omits the parties' ID numbers
// and contact details: anyone holding the tracking number can call this.
type TrackPackageQuery struct {
	trackingNumber kernel.RefCode

	guard guard.ConstructorGuard
}

// NewTrackPackageQuery creates a tracking query from the wire form of a
// tracking number ("PKG-20260309-00012").
func NewTrackPackageQuery(trackingNumber string) (TrackPackageQuery, error) {
	code, err := kernel.RefCodeFromString(trackingNumber)
	if err != nil {
		return TrackPackageQuery{}, err
	}
	if code.Kind() != kernel.TrackingKind {
		return TrackPackageQuery{}, errs.NewValueIsInvalidError("trackingNumber")
	}

	return TrackPackageQuery{
		trackingNumber: code,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackPackageQuery) Validate() error {
	return q.guard.Validate(ErrTrackPackageQueryIsNotConstructed)
}

// TrackingNumber returns the parsed tracking number.
func (q TrackPackageQuery) TrackingNumber() kernel.RefCode {
	return q.trackingNumber
}

// TrackPackageQueryResponse is the public tracking view of a package.
type TrackPackageQueryResponse struct {
	TrackingNumber      string
	Status              string
	Origin              string
	Destination         string
	ExpectedArrivalTime time.Time
	ActualArrivalTime   *time.Time
	CollectedAt         *time.Time
}
