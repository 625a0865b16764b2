package commands_test

import (
	"testing"

	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateBookingCommand_ValidInput(t *testing.T) {
	tripID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(tripID, "Alice Uwase", "+250788000001", kernel.Cash)
	require.NoError(t, err)
	assert.Equal(t, tripID, cmd.TripID())
	assert.Equal(t, "Alice Uwase", cmd.CustomerName())
	assert.Equal(t, "+250788000001", cmd.CustomerPhone())
	assert.Equal(t, kernel.Cash, cmd.PaymentMethod())
}

func TestNewCreateBookingCommand_InvalidTripID(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(kernel.UUID{}, "Alice Uwase", "+250788000001", kernel.Cash)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateBookingCommand_EmptyCustomerName(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(kernel.NewUUID(), "", "+250788000001", kernel.Cash)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateBookingCommand_EmptyCustomerPhone(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(kernel.NewUUID(), "Alice Uwase", "", kernel.Cash)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateBookingCommand_UnknownPaymentMethod(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(kernel.NewUUID(), "Alice Uwase", "+250788000001", kernel.UnknownPaymentMethod)
	require.Error(t, err)
}

func TestCreateBookingCommand_ValidateRejectsZeroValue(t *testing.T) {
	var cmd commands.CreateBookingCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateBookingCommandIsNotConstructed)
}
