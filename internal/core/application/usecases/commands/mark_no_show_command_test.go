package commands_test

import (
	"testing"

	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkNoShowCommand_ValidInput(t *testing.T) {
	bookingID := kernel.NewUUID()
	cmd, err := commands.NewMarkNoShowCommand(bookingID)
	require.NoError(t, err)
	assert.Equal(t, bookingID, cmd.BookingID())
}

func TestNewMarkNoShowCommand_InvalidBookingID(t *testing.T) {
	_, err := commands.NewMarkNoShowCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestMarkNoShowCommand_ValidateRejectsZeroValue(t *testing.T) {
	var cmd commands.MarkNoShowCommand
	require.Error(t, cmd.Validate())
}
