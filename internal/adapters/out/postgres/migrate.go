package postgres

import (
	"reservation/internal/adapters/out/postgres/bookingrepo"
	"reservation/internal/adapters/out/postgres/refcoderepo"
	"reservation/internal/adapters/out/postgres/shipmentrepo"
	"reservation/internal/adapters/out/postgres/triprepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the reservation schema. On top of the GORM
// auto-migration it installs a partial unique index on active seats: the
// database-level backstop that keeps two bookings from ever holding the same
// seat on a trip, whatever the application-level allocation does.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&triprepo.TripDTO{},
		&bookingrepo.BookingDTO{},
		&shipmentrepo.PackageDTO{},
		&refcoderepo.SequenceDTO{},
	); err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_trip_seat_active
		ON bookings (trip_id, seat_number)
		WHERE status != 'CANCELLED'
	`).Error
}
