package queries

import (
	"context"
	"database/sql"

	"reservation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPackagesQueryHandler retrieves package rows from the database.
// Results are sorted by booking date, newest first, for console display.
type ListPackagesQueryHandler struct {
	db *gorm.DB
}

// NewListPackagesQueryHandler creates a handler for package listings.
func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db}
}

// Handle executes the listing query with whatever filters are present.
func (h ListPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListPackagesQuery,
) ([]ListPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			tracking_number,
			trip_id,
			sender_names,
			sender_phone,
			receiver_names,
			receiver_phone,
			receiver_id_number,
			weight_kg,
			declared_value,
			is_fragile,
			price,
			payment_method,
			status,
			booking_date,
			expected_arrival_time,
			actual_arrival_time,
			collected_at,
			collected_by_name,
			cancellation_reason
		FROM packages
		WHERE 1=1`
	args := make([]any, 0, 4)

	if query.Status() != nil {
		sqlQuery += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.TripID() != nil {
		sqlQuery += " AND trip_id = ?"
		args = append(args, query.TripID().String())
	}
	if query.DateFrom() != nil {
		sqlQuery += " AND booking_date >= ?"
		args = append(args, *query.DateFrom())
	}
	if query.DateTo() != nil {
		sqlQuery += " AND booking_date <= ?"
		args = append(args, *query.DateTo())
	}
	sqlQuery += " ORDER BY booking_date DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]ListPackagesQueryResponse, 0)
	for rows.Next() {
		var resp ListPackagesQueryResponse
		var id, tripID uuid.UUID
		var declaredValue sql.NullInt64
		var actualArrival, collectedAt sql.NullTime
		var collectedByName, cancellationReason sql.NullString

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&tripID,
			&resp.SenderNames,
			&resp.SenderPhone,
			&resp.ReceiverNames,
			&resp.ReceiverPhone,
			&resp.ReceiverIDNumber,
			&resp.WeightKg,
			&declaredValue,
			&resp.IsFragile,
			&resp.Price,
			&resp.PaymentMethod,
			&resp.Status,
			&resp.BookingDate,
			&resp.ExpectedArrivalTime,
			&actualArrival,
			&collectedAt,
			&collectedByName,
			&cancellationReason,
		)
		if err != nil {
			return nil, err
		}

		packageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = packageID

		packageTripID, idErr := kernel.UUIDFromBytes(tripID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.TripID = packageTripID

		if declaredValue.Valid {
			v := declaredValue.Int64
			resp.DeclaredValue = &v
		}
		if actualArrival.Valid {
			at := actualArrival.Time
			resp.ActualArrivalTime = &at
		}
		if collectedAt.Valid {
			at := collectedAt.Time
			resp.CollectedAt = &at
		}
		resp.CollectedByName = collectedByName.String
		resp.CancellationReason = cancellationReason.String

		packages = append(packages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
