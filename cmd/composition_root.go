package cmd

import (
	"log/slog"

	"reservation/internal/adapters/out/notify"
	"reservation/internal/adapters/out/postgres"
	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/application/usecases/queries"
	"reservation/internal/core/ports"
	"reservation/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *notify.Dispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewDispatcher(notify.NewLogSender(logger), logger),
		logger:     logger,
	}
}

// Close flushes the notification queue. Call it on shutdown after the HTTP
// server and jobs have stopped.
func (c *CompositionRoot) Close() {
	c.notifier.Close()
}

func (c *CompositionRoot) Notifier() ports.Notifier {
	return c.notifier
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	return commands.NewCancelBookingCommandHandler(c.bookingUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkNoShowCommandHandler() commands.MarkNoShowCommandHandler {
	return commands.NewMarkNoShowCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateSweepNoShowsCommandHandler() commands.SweepNoShowsCommandHandler {
	return commands.NewSweepNoShowsCommandHandler(c.bookingUoWFactory())
}

func (c *CompositionRoot) CreateBookPackageCommandHandler() commands.BookPackageCommandHandler {
	return commands.NewBookPackageCommandHandler(c.shipmentUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkPackageArrivedCommandHandler() commands.MarkPackageArrivedCommandHandler {
	return commands.NewMarkPackageArrivedCommandHandler(c.shipmentUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCollectPackageCommandHandler() commands.CollectPackageCommandHandler {
	return commands.NewCollectPackageCommandHandler(c.shipmentUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelPackageCommandHandler() commands.CancelPackageCommandHandler {
	return commands.NewCancelPackageCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackPackageQueryHandler() queries.TrackPackageQueryHandler {
	return queries.NewTrackPackageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEstimatePackagePriceQueryHandler() queries.EstimatePackagePriceQueryHandler {
	return queries.NewEstimatePackagePriceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepNoShowsCommandHandler(), config.NoShowSweepCron, c.logger)
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
