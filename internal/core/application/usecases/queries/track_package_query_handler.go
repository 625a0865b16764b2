package queries

import (
	"context"
	"database/sql"
	"errors"

	"reservation/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackPackageQueryHandler serves the public tracking endpoint. It joins the
// package with its trip so the response can show the route without exposing
// any customer data.
type TrackPackageQueryHandler struct {
	db *gorm.DB
}

// NewTrackPackageQueryHandler creates a handler for package tracking.
func NewTrackPackageQueryHandler(db *gorm.DB) TrackPackageQueryHandler {
	return TrackPackageQueryHandler{db: db}
}

// Handle looks the package up by tracking number. Returns
// ObjectNotFoundError when no package carries the number.
func (h TrackPackageQueryHandler) Handle(
	ctx context.Context,
	query TrackPackageQuery,
) (TrackPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackPackageQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.tracking_number,
			p.status,
			t.origin,
			t.destination,
			p.expected_arrival_time,
			p.actual_arrival_time,
			p.collected_at
		FROM packages p
		JOIN trips t ON t.id = p.trip_id
		WHERE p.tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	var resp TrackPackageQueryResponse
	var actualArrival, collectedAt sql.NullTime

	err := row.Scan(
		&resp.TrackingNumber,
		&resp.Status,
		&resp.Origin,
		&resp.Destination,
		&resp.ExpectedArrivalTime,
		&actualArrival,
		&collectedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackPackageQueryResponse{}, errs.NewObjectNotFoundError(
				"trackingNumber", query.TrackingNumber().String())
		}
		return TrackPackageQueryResponse{}, err
	}

	if actualArrival.Valid {
		at := actualArrival.Time
		resp.ActualArrivalTime = &at
	}
	if collectedAt.Valid {
		at := collectedAt.Time
		resp.CollectedAt = &at
	}

	return resp, nil
}
