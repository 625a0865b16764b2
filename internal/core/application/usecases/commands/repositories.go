// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit notification.
package commands

import (
	"context"

	"reservation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// RefCodeFactory provides access to the reference-code generator within a
	// transaction, so code issuance commits atomically with the record insert.
	RefCodeFactory interface {
		RefCodeGenerator() ports.RefCodeGenerator
	}

	// BookingUoW manages transactions for booking operations. Booking commands
	// touch the booking itself, the trip seat counter, and for creation the
	// ticket-number sequence.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
		TripRepoFactory
		RefCodeFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// ShipmentUoW manages transactions for package operations. Shipment
	// commands touch the package, read the trip, and for booking the
	// tracking-number sequence.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		TripRepoFactory
		RefCodeFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
