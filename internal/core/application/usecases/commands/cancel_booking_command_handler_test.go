package commands_test

import (
	"testing"

	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/domain/model/booking"
	"reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tripAggregate := newTestTrip(t, 30)
	_, err := tripAggregate.AllocateSeat(nil)
	require.NoError(t, err)
	bookingAggregate := newTestBooking(t, tripAggregate.ID())

	cmd, err := commands.NewCancelBookingCommand(bookingAggregate.ID(), "customer request", "agent-42")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	tripRepo := new(MockTripRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, bookingAggregate.ID()).Return(bookingAggregate, nil).Once(),
		bookingRepo.On("UpdateStatus", mock.Anything, bookingAggregate, booking.Confirmed).Return(nil).Once(),
		uow.On("TripRepository").Return(tripRepo).Once(),
		tripRepo.On("Get", mock.Anything, tripAggregate.ID()).Return(tripAggregate, nil).Once(),
		tripRepo.On("UpdateSeats", mock.Anything, tripAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("ports.Notification")).Once()

	h := commands.NewCancelBookingCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, booking.Cancelled, bookingAggregate.Status())
	assert.Equal(t, "customer request", bookingAggregate.CancellationReason())
	assert.Equal(t, "agent-42", bookingAggregate.CancelledBy())
	require.NotNil(t, bookingAggregate.CancelledAt())
	assert.Equal(t, 30, tripAggregate.AvailableSeats()) // seat returned to the pool

	bookingRepo.AssertExpectations(t)
	tripRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelBookingCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	tripAggregate := newTestTrip(t, 30)
	bookingAggregate := newTestBooking(t, tripAggregate.ID())
	require.NoError(t, bookingAggregate.Cancel("first cancellation", "agent-1", bookingAggregate.BookingDate()))

	cmd, err := commands.NewCancelBookingCommand(bookingAggregate.ID(), "second cancellation", "agent-2")
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, bookingAggregate.ID()).Return(bookingAggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewCancelBookingCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStatusConflict)
	assert.Equal(t, "agent-1", bookingAggregate.CancelledBy()) // audit trail untouched
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestCancelBookingCommandHandler_Handle_StaleStatusPrecondition(t *testing.T) {
	ctx := t.Context()
	tripAggregate := newTestTrip(t, 30)
	bookingAggregate := newTestBooking(t, tripAggregate.ID())

	cmd, err := commands.NewCancelBookingCommand(bookingAggregate.ID(), "customer request", "agent-42")
	require.NoError(t, err)

	conflict := errs.NewStatusConflictError("booking", "NO_SHOW", "CANCELLED")

	bookingRepo := new(MockBookingRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, bookingAggregate.ID()).Return(bookingAggregate, nil).Once(),
		bookingRepo.On("UpdateStatus", mock.Anything, bookingAggregate, booking.Confirmed).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewCancelBookingCommandHandler(factory, notifier)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStatusConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
