// Package shipmentrepo provides data transfer objects and mapping functions
// for package-shipment persistence.
package shipmentrepo

import (
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// PackageDTO represents the database structure for persisting package
// aggregates. The receiver's ID number is stored in the clear; the public
// tracking query never selects it.
type PackageDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber      string    `gorm:"uniqueIndex"`
	TripID              uuid.UUID `gorm:"type:uuid;index"`
	SenderNames         string
	SenderPhone         string
	SenderEmail         *string
	ReceiverNames       string
	ReceiverPhone       string
	ReceiverEmail       *string
	ReceiverIDNumber    string
	WeightKg            float64
	DeclaredValue       *int64
	IsFragile           bool
	Price               int64
	PaymentMethod       string
	Status              string `gorm:"index"`
	BookingDate         time.Time
	ExpectedArrivalTime time.Time
	ActualArrivalTime   *time.Time
	CollectedAt         *time.Time
	CollectedByName     *string
	CollectedByID       *string
	CancellationReason  *string
	CancelledAt         *time.Time
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fromDomain converts a package domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Package) PackageDTO {
	sender, receiver := aggregate.Sender(), aggregate.Receiver()

	return PackageDTO{
		ID:                  aggregate.ID().Bytes(),
		TrackingNumber:      aggregate.TrackingNumber().String(),
		TripID:              aggregate.TripID().Bytes(),
		SenderNames:         sender.Names(),
		SenderPhone:         sender.PhoneNumber(),
		SenderEmail:         optional(sender.Email()),
		ReceiverNames:       receiver.Names(),
		ReceiverPhone:       receiver.PhoneNumber(),
		ReceiverEmail:       optional(receiver.Email()),
		ReceiverIDNumber:    receiver.IDNumber(),
		WeightKg:            aggregate.WeightKg(),
		DeclaredValue:       aggregate.DeclaredValue(),
		IsFragile:           aggregate.IsFragile(),
		Price:               aggregate.Price(),
		PaymentMethod:       aggregate.PaymentMethod().String(),
		Status:              aggregate.Status().String(),
		BookingDate:         aggregate.BookingDate(),
		ExpectedArrivalTime: aggregate.ExpectedArrivalTime(),
		ActualArrivalTime:   aggregate.ActualArrivalTime(),
		CollectedAt:         aggregate.CollectedAt(),
		CollectedByName:     optional(aggregate.CollectedByName()),
		CollectedByID:       optional(aggregate.CollectedByID()),
		CancellationReason:  optional(aggregate.CancellationReason()),
		CancelledAt:         aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO to a package domain aggregate using
// RestorePackage, which re-validates the audit trails.
func toDomain(dto PackageDTO) (*shipment.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.RefCodeFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	sender, err := shipment.NewParty(dto.SenderNames, dto.SenderPhone, orEmpty(dto.SenderEmail), "")
	if err != nil {
		return nil, err
	}

	receiver, err := shipment.NewParty(dto.ReceiverNames, dto.ReceiverPhone, orEmpty(dto.ReceiverEmail), dto.ReceiverIDNumber)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := kernel.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestorePackage(id, trackingNumber, tripID, sender, receiver,
		dto.WeightKg, dto.DeclaredValue, dto.IsFragile, dto.Price, paymentMethod,
		status, dto.BookingDate, dto.ExpectedArrivalTime, dto.ActualArrivalTime,
		dto.CollectedAt, orEmpty(dto.CollectedByName), orEmpty(dto.CollectedByID),
		orEmpty(dto.CancellationReason), dto.CancelledAt)
}
