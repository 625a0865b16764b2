package kernel_test

import (
	"testing"
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefCode(t *testing.T) {
	day := time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)

	t.Run("formats_ticket_codes", func(t *testing.T) {
		code, err := kernel.NewRefCode(kernel.TicketKind, day, 17)

		require.NoError(t, err)
		assert.Equal(t, "TKT-20250901-00017", code.String())
		assert.Equal(t, kernel.TicketKind, code.Kind())
		assert.Equal(t, "20250901", code.Day())
		assert.Equal(t, 17, code.Seq())
	})

	t.Run("formats_tracking_codes", func(t *testing.T) {
		code, err := kernel.NewRefCode(kernel.TrackingKind, day, 99999)

		require.NoError(t, err)
		assert.Equal(t, "PKG-20250901-99999", code.String())
	})

	t.Run("rejects_unknown_kind", func(t *testing.T) {
		_, err := kernel.NewRefCode(kernel.UnknownKind, day, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_time", func(t *testing.T) {
		_, err := kernel.NewRefCode(kernel.TicketKind, time.Time{}, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_positive_sequence", func(t *testing.T) {
		_, err := kernel.NewRefCode(kernel.TicketKind, day, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sequence_past_daily_space_is_exhaustion_not_wraparound", func(t *testing.T) {
		_, err := kernel.NewRefCode(kernel.TicketKind, day, kernel.MaxDailySequence+1)

		require.ErrorIs(t, err, errs.ErrSequenceExhausted)
	})
}

func TestRefCodeFromString(t *testing.T) {
	t.Run("round_trips", func(t *testing.T) {
		code, err := kernel.RefCodeFromString("PKG-20250901-00042")

		require.NoError(t, err)
		assert.Equal(t, kernel.TrackingKind, code.Kind())
		assert.Equal(t, 42, code.Seq())
		assert.Equal(t, "PKG-20250901-00042", code.String())
	})

	t.Run("trims_surrounding_whitespace", func(t *testing.T) {
		code, err := kernel.RefCodeFromString("  TKT-20250901-00001 ")

		require.NoError(t, err)
		assert.Equal(t, "TKT-20250901-00001", code.String())
	})

	t.Run("rejects_malformed_codes", func(t *testing.T) {
		for _, s := range []string{
			"",
			"TKT-2025-00001",
			"XYZ-20250901-00001",
			"TKT-20250901-1",
			"TKT-20259999-00001",
			"tkt-20250901-00001",
		} {
			_, err := kernel.RefCodeFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", s)
		}
	})
}

func TestRefCode_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var code kernel.RefCode
		require.Error(t, code.Validate())
	})

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		code, err := kernel.NewRefCode(kernel.TicketKind, time.Now(), 1)
		require.NoError(t, err)
		require.NoError(t, code.Validate())
	})
}

func TestRefCode_IsEqual(t *testing.T) {
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	a, _ := kernel.NewRefCode(kernel.TicketKind, day, 5)
	b, _ := kernel.NewRefCode(kernel.TicketKind, day, 5)
	c, _ := kernel.NewRefCode(kernel.TrackingKind, day, 5)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
