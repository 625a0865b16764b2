package queries

import (
	"context"
	"database/sql"
	"errors"

	"reservation/internal/core/domain/services"
	"reservation/internal/pkg/errs"

	"gorm.io/gorm"
)

// EstimatePackagePriceQueryHandler serves the public price-estimate endpoint.
// It reads the trip's ticket price and delegates to the pricing policy — the
// same function the booking path uses, so the two agree bit-for-bit.
type EstimatePackagePriceQueryHandler struct {
	db *gorm.DB
}

// NewEstimatePackagePriceQueryHandler creates a handler for price estimates.
func NewEstimatePackagePriceQueryHandler(db *gorm.DB) EstimatePackagePriceQueryHandler {
	return EstimatePackagePriceQueryHandler{db: db}
}

// Handle computes the price a package of the given weight would cost on the
// trip. Returns ObjectNotFoundError when the trip does not exist.
func (h EstimatePackagePriceQueryHandler) Handle(
	ctx context.Context,
	query EstimatePackagePriceQuery,
) (EstimatePackagePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimatePackagePriceQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT ticket_price
		FROM trips
		WHERE id = ?
	`, query.TripID().String()).Row()

	var ticketPrice int64
	if err := row.Scan(&ticketPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EstimatePackagePriceQueryResponse{}, errs.NewObjectNotFoundError(
				"dailyTripId", query.TripID().String())
		}
		return EstimatePackagePriceQueryResponse{}, err
	}

	price, err := services.PackagePrice(query.WeightKg(), ticketPrice)
	if err != nil {
		return EstimatePackagePriceQueryResponse{}, err
	}

	return EstimatePackagePriceQueryResponse{Price: price}, nil
}
