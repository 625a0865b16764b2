package queries

import (
	"errors"
	"fmt"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrEstimatePackagePriceQueryIsNotConstructed = errors.New(
		"EstimatePackagePriceQuery must be created via NewEstimatePackagePriceQuery constructor",
	)
)

// EstimatePackagePriceQuery computes the shipping price a package would be
// charged on a trip, without creating anything. The result uses the same
// pricing function as booking, so an estimate shown to a customer always
// matches the price charged a moment later.
type EstimatePackagePriceQuery struct {
	tripID   kernel.UUID
	weightKg float64

	guard guard.ConstructorGuard
}

// NewEstimatePackagePriceQuery creates an estimate query for the given trip
// and package weight.
func NewEstimatePackagePriceQuery(tripID kernel.UUID, weightKg float64) (EstimatePackagePriceQuery, error) {
	if err := tripID.Validate(); err != nil {
		return EstimatePackagePriceQuery{}, errs.NewValueIsInvalidErrorWithCause("dailyTripId", err)
	}
	if weightKg <= 0 {
		return EstimatePackagePriceQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"packageWeight", fmt.Errorf("%v is not greater than 0", weightKg))
	}

	return EstimatePackagePriceQuery{
		tripID:   tripID,
		weightKg: weightKg,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q EstimatePackagePriceQuery) Validate() error {
	return q.guard.Validate(ErrEstimatePackagePriceQueryIsNotConstructed)
}

// TripID returns the trip the package would travel on.
func (q EstimatePackagePriceQuery) TripID() kernel.UUID {
	return q.tripID
}

// WeightKg returns the package weight in kilograms.
func (q EstimatePackagePriceQuery) WeightKg() float64 {
	return q.weightKg
}

// EstimatePackagePriceQueryResponse carries the computed price in RWF.
type EstimatePackagePriceQueryResponse struct {
	Price int64
}
