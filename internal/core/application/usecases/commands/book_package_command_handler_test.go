package commands_test

import (
	"testing"

	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/shipment"
	"reservation/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookPackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tripAggregate := newTestTrip(t, 30)
	sender, receiver := newTestParties(t)

	cmd, err := commands.NewBookPackageCommand(tripAggregate.ID(), sender, receiver, 2.5, nil, false, kernel.Cash)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	tripRepo := new(MockTripRepository)
	gen := new(MockRefCodeGenerator)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		tripRepo.On("Get", mock.Anything, tripAggregate.ID()).Return(tripAggregate, nil).Once(),
		uow.On("RefCodeGenerator").Return(gen).Once(),
		gen.On("Next", mock.Anything, kernel.TrackingKind, mock.AnythingOfType("time.Time")).
			Return(newTrackingNumber(t, 12), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Event == ports.PackageBooked && len(n.Recipients) == 2
	})).Once()

	h := commands.NewBookPackageCommandHandler(factory, notifier)
	pkg, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// 2.5kg * 1000 + 30% of the 3000 ticket price
	assert.Equal(t, int64(3400), pkg.Price())
	assert.Equal(t, shipment.InTransit, pkg.Status())
	assert.Equal(t, "PKG-20260309-00012", pkg.TrackingNumber().String())
	assert.Equal(t, tripAggregate.ArrivalEstimate(), pkg.ExpectedArrivalTime())

	shipmentRepo.AssertExpectations(t)
	gen.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestBookPackageCommandHandler_Handle_MinimumPriceFloor(t *testing.T) {
	ctx := t.Context()
	tripAggregate := newTestTrip(t, 30)
	sender, receiver := newTestParties(t)

	cmd, err := commands.NewBookPackageCommand(tripAggregate.ID(), sender, receiver, 0.1, nil, false, kernel.Cash)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	tripRepo := new(MockTripRepository)
	gen := new(MockRefCodeGenerator)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		tripRepo.On("Get", mock.Anything, tripAggregate.ID()).Return(tripAggregate, nil).Once(),
		uow.On("RefCodeGenerator").Return(gen).Once(),
		gen.On("Next", mock.Anything, kernel.TrackingKind, mock.AnythingOfType("time.Time")).
			Return(newTrackingNumber(t, 13), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("ports.Notification")).Once()

	h := commands.NewBookPackageCommandHandler(factory, notifier)
	pkg, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// 0.1kg * 1000 + 900 = 1000, below the floor
	assert.Equal(t, int64(2000), pkg.Price())
}

func TestBookPackageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockShipmentUoWFactory)
	notifier := new(MockNotifier)
	h := commands.NewBookPackageCommandHandler(factory, notifier)
	_, err := h.Handle(ctx, commands.BookPackageCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
