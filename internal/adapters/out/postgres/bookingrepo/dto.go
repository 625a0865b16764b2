// Package bookingrepo provides data transfer objects and mapping functions for
// booking persistence. It implements the repository pattern for the booking
// aggregate, converting between domain entities and database rows.
package bookingrepo

import (
	"time"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking
// aggregates. Statuses are stored in their wire form so raw queries and the
// console read the same strings the API serves.
type BookingDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketNumber       string    `gorm:"uniqueIndex"`
	TripID             uuid.UUID `gorm:"type:uuid;index"`
	SeatNumber         int
	CustomerName       string
	CustomerPhone      string
	Price              int64
	PaymentMethod      string
	PaymentStatus      string
	Status             string `gorm:"index"`
	BookingDate        time.Time
	CancellationReason *string
	CancelledAt        *time.Time
	CancelledBy        *string
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// fromDomain converts a booking domain aggregate to its database
// representation.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	dto := BookingDTO{
		ID:            aggregate.ID().Bytes(),
		TicketNumber:  aggregate.TicketNumber().String(),
		TripID:        aggregate.TripID().Bytes(),
		SeatNumber:    aggregate.SeatNumber(),
		CustomerName:  aggregate.Customer().Names(),
		CustomerPhone: aggregate.Customer().PhoneNumber(),
		Price:         aggregate.Price(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Status:        aggregate.Status().String(),
		BookingDate:   aggregate.BookingDate(),
	}

	if reason := aggregate.CancellationReason(); reason != "" {
		dto.CancellationReason = &reason
	}
	dto.CancelledAt = aggregate.CancelledAt()
	if by := aggregate.CancelledBy(); by != "" {
		dto.CancelledBy = &by
	}

	return dto
}

// toDomain converts a database DTO to a booking domain aggregate using
// RestoreBooking, which re-validates the audit trail.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return nil, err
	}

	ticketNumber, err := kernel.RefCodeFromString(dto.TicketNumber)
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomer(dto.CustomerName, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := kernel.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := booking.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var reason, cancelledBy string
	if dto.CancellationReason != nil {
		reason = *dto.CancellationReason
	}
	if dto.CancelledBy != nil {
		cancelledBy = *dto.CancelledBy
	}

	return booking.RestoreBooking(id, ticketNumber, tripID, dto.SeatNumber,
		customer, dto.Price, paymentMethod, paymentStatus, status,
		dto.BookingDate, reason, dto.CancelledAt, cancelledBy)
}
