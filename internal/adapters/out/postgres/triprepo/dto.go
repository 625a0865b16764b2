// Package triprepo provides data transfer objects and mapping functions for
// trip persistence. Trips are master data owned by the external scheduler;
// this repository mostly reads them and maintains the seat counter.
package triprepo

import (
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trips. Version
// guards the seat counter against concurrent bookings.
type TripDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Origin          string
	Destination     string
	DepartureTime   time.Time `gorm:"index"`
	ArrivalEstimate time.Time
	Capacity        int
	AvailableSeats  int
	TicketPrice     int64
	Version         int64
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(aggregate *trip.Trip) TripDTO {
	return TripDTO{
		ID:              aggregate.ID().Bytes(),
		Origin:          aggregate.Origin(),
		Destination:     aggregate.Destination(),
		DepartureTime:   aggregate.DepartureTime(),
		ArrivalEstimate: aggregate.ArrivalEstimate(),
		Capacity:        aggregate.Capacity(),
		AvailableSeats:  aggregate.AvailableSeats(),
		TicketPrice:     aggregate.TicketPrice(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO to a trip domain aggregate.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(id, dto.Origin, dto.Destination,
		dto.DepartureTime, dto.ArrivalEstimate,
		dto.Capacity, dto.AvailableSeats, dto.TicketPrice, dto.Version)
}
