package queries

import (
	"context"
	"database/sql"

	"reservation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBookingsQueryHandler retrieves booking rows from the database.
// Results are sorted by booking date, newest first, for console display.
type ListBookingsQueryHandler struct {
	db *gorm.DB
}

// NewListBookingsQueryHandler creates a handler for booking listings.
func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

// Handle executes the listing query with whatever filters are present.
func (h ListBookingsQueryHandler) Handle(
	ctx context.Context,
	query ListBookingsQuery,
) ([]ListBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			ticket_number,
			trip_id,
			seat_number,
			customer_name,
			customer_phone,
			price,
			payment_method,
			payment_status,
			status,
			booking_date,
			cancellation_reason,
			cancelled_at,
			cancelled_by
		FROM bookings
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

	bookings := make([]ListBookingsQueryResponse, 0)
	for rows.Next() {
		var resp ListBookingsQueryResponse
		var id, tripID uuid.UUID
		var cancellationReason, cancelledBy sql.NullString
		var cancelledAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.TicketNumber,
			&tripID,
			&resp.SeatNumber,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.Price,
			&resp.PaymentMethod,
			&resp.PaymentStatus,
			&resp.Status,
			&resp.BookingDate,
			&cancellationReason,
			&cancelledAt,
			&cancelledBy,
		)
		if err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = bookingID

		bookingTripID, idErr := kernel.UUIDFromBytes(tripID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.TripID = bookingTripID

		resp.CancellationReason = cancellationReason.String
		resp.CancelledBy = cancelledBy.String
		if cancelledAt.Valid {
			at := cancelledAt.Time
			resp.CancelledAt = &at
		}

		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
