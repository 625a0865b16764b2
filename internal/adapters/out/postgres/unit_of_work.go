// Package postgres provides the GORM-based Unit of Work that coordinates
// booking, shipment, trip and reference-code persistence inside one database
// transaction.
//
// Each business operation gets its own unit of work instance:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.BookingRepository().Add(ctx, b); err != nil {
//	    return err
//	}
//	if err := uow.TripRepository().UpdateSeats(ctx, t); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained from the unit of work share its transaction, so the
// seat-counter update, the booking insert and the ticket-number increment
// either all commit or all roll back. Rollback after a successful commit is a
// no-op, which makes the deferred call above safe.
package postgres

import (
	"context"

	"reservation/internal/adapters/out/postgres/bookingrepo"
	"reservation/internal/adapters/out/postgres/refcoderepo"
	"reservation/internal/adapters/out/postgres/shipmentrepo"
	"reservation/internal/adapters/out/postgres/triprepo"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each Create call returns a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the reservation
// repositories and tracks the aggregates written during it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin when a transaction is
// already open is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Safe to call after Commit: with
// no transaction open it returns gorm.ErrInvalidTransaction, which deferred
// callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// BookingRepository returns a booking repository bound to the current
// transaction, or to the main connection when none is open.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

// ShipmentRepository returns a package repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// TripRepository returns a trip repository bound to the current transaction.
func (uow *GormUnitOfWork) TripRepository() ports.TripRepository {
	return triprepo.NewGormTripRepository(uow.conn(), uow)
}

// RefCodeGenerator returns a ticket/tracking number generator bound to the
// current transaction, so issued numbers commit or roll back with the record
// they were issued for.
func (uow *GormUnitOfWork) RefCodeGenerator() ports.RefCodeGenerator {
	return refcoderepo.NewGormRefCodeGenerator(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Called by the repositories after successful writes.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
