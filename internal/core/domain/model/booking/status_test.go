package booking_test

import (
	"testing"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "CONFIRMED", booking.Confirmed.String())
	assert.Equal(t, "CANCELLED", booking.Cancelled.String())
	assert.Equal(t, "NO_SHOW", booking.NoShow.String())
	assert.Equal(t, "UNKNOWN", booking.Unknown.String())
	assert.Equal(t, "UNKNOWN", booking.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_wire_values", func(t *testing.T) {
		for wire, want := range map[string]booking.Status{
			"CONFIRMED": booking.Confirmed,
			"CANCELLED": booking.Cancelled,
			"NO_SHOW":   booking.NoShow,
		} {
			got, err := booking.StatusFromString(wire)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		_, err := booking.StatusFromString("confirmed")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, booking.Confirmed.Validate())
	require.NoError(t, booking.Cancelled.Validate())
	require.NoError(t, booking.NoShow.Validate())
	require.Error(t, booking.Unknown.Validate())
	require.Error(t, booking.Status(7).Validate())
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("confirmed_can_be_cancelled", func(t *testing.T) {
		next, err := booking.Confirmed.Cancel()
		require.NoError(t, err)
		assert.Equal(t, booking.Cancelled, next)
	})

	t.Run("terminal_statuses_reject_cancel", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Cancelled, booking.NoShow} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrStatusConflict, "from %s", s)
		}
	})
}

func TestStatus_MarkNoShow(t *testing.T) {
	t.Run("confirmed_can_become_no_show", func(t *testing.T) {
		next, err := booking.Confirmed.MarkNoShow()
		require.NoError(t, err)
		assert.Equal(t, booking.NoShow, next)
	})

	t.Run("terminal_statuses_reject_no_show", func(t *testing.T) {
		for _, s := range []booking.Status{booking.Cancelled, booking.NoShow} {
			_, err := s.MarkNoShow()
			require.ErrorIs(t, err, errs.ErrStatusConflict, "from %s", s)
		}
	})
}

func TestStatus_NoTransitionIsReversible(t *testing.T) {
	// From either terminal state, neither transition produces a status.
	for _, s := range []booking.Status{booking.Cancelled, booking.NoShow} {
		assert.True(t, s.IsTerminal())

		_, err := s.Cancel()
		require.Error(t, err)
		_, err = s.MarkNoShow()
		require.Error(t, err)
	}
	assert.False(t, booking.Confirmed.IsTerminal())
}
