package booking_test

import (
	"testing"
	"time"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingDate = time.Date(2025, 9, 1, 9, 15, 0, 0, time.UTC)

func ticketNumber(t *testing.T, seq int) kernel.RefCode {
	t.Helper()
	code, err := kernel.NewRefCode(kernel.TicketKind, bookingDate, seq)
	require.NoError(t, err)
	return code
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	customer, err := booking.NewCustomer("Alice Uwase", "+250780000001")
	require.NoError(t, err)

	b, err := booking.NewBooking(
		kernel.NewUUID(),
		ticketNumber(t, 1),
		kernel.NewUUID(),
		7,
		customer,
		3000,
		kernel.Cash,
		booking.Paid,
		bookingDate,
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("creates_confirmed_booking", func(t *testing.T) {
		b := newTestBooking(t)

		assert.Equal(t, booking.Confirmed, b.Status())
		assert.Equal(t, 7, b.SeatNumber())
		assert.Equal(t, int64(3000), b.Price())
		assert.Equal(t, "TKT-20250901-00001", b.TicketNumber().String())
		assert.Empty(t, b.CancellationReason())
		assert.Nil(t, b.CancelledAt())
	})

	t.Run("rejects_tracking_code_as_ticket_number", func(t *testing.T) {
		customer, _ := booking.NewCustomer("Alice", "+250780000001")
		tracking, err := kernel.NewRefCode(kernel.TrackingKind, bookingDate, 1)
		require.NoError(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), tracking, kernel.NewUUID(),
			1, customer, 3000, kernel.Cash, booking.Paid, bookingDate)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		customer, _ := booking.NewCustomer("Alice", "+250780000001")

		_, err := booking.NewBooking(kernel.NewUUID(), ticketNumber(t, 1), kernel.NewUUID(),
			0, customer, 3000, kernel.Cash, booking.Paid, bookingDate)
		require.Error(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), ticketNumber(t, 1), kernel.NewUUID(),
			1, customer, 0, kernel.Cash, booking.Paid, bookingDate)
		require.Error(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), ticketNumber(t, 1), kernel.NewUUID(),
			1, booking.Customer{}, 3000, kernel.Cash, booking.Paid, bookingDate)
		require.Error(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), ticketNumber(t, 1), kernel.NewUUID(),
			1, customer, 3000, kernel.UnknownPaymentMethod, booking.Paid, bookingDate)
		require.Error(t, err)
	})
}

func TestBooking_Cancel(t *testing.T) {
	now := bookingDate.Add(30 * time.Minute)

	t.Run("stamps_audit_trail", func(t *testing.T) {
		b := newTestBooking(t)

		err := b.Cancel("passenger asked for a refund", "reception-1", now)

		require.NoError(t, err)
		assert.Equal(t, booking.Cancelled, b.Status())
		assert.Equal(t, "passenger asked for a refund", b.CancellationReason())
		assert.Equal(t, "reception-1", b.CancelledBy())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, now, *b.CancelledAt())
	})

	t.Run("blank_reason_is_rejected_and_booking_unchanged", func(t *testing.T) {
		b := newTestBooking(t)

		for _, reason := range []string{"", "   ", "\t\n"} {
			err := b.Cancel(reason, "reception-1", now)
			require.ErrorIs(t, err, errs.ErrValueIsRequired, "reason %q", reason)
			assert.Equal(t, booking.Confirmed, b.Status())
			assert.Nil(t, b.CancelledAt())
		}
	})

	t.Run("blank_actor_is_rejected", func(t *testing.T) {
		b := newTestBooking(t)

		err := b.Cancel("valid reason", " ", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, booking.Confirmed, b.Status())
	})

	t.Run("double_cancel_conflicts", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.Cancel("first", "reception-1", now))

		err := b.Cancel("second", "reception-2", now.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrStatusConflict)
		assert.Equal(t, "first", b.CancellationReason())
		assert.Equal(t, "reception-1", b.CancelledBy())
	})

	t.Run("no_show_cannot_be_cancelled", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.MarkNoShow())

		err := b.Cancel("too late", "reception-1", now)

		require.ErrorIs(t, err, errs.ErrStatusConflict)
		assert.Equal(t, booking.NoShow, b.Status())
	})
}

func TestBooking_MarkNoShow(t *testing.T) {
	t.Run("confirmed_becomes_no_show", func(t *testing.T) {
		b := newTestBooking(t)

		require.NoError(t, b.MarkNoShow())
		assert.Equal(t, booking.NoShow, b.Status())
	})

	t.Run("cancelled_booking_is_not_swept", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.Cancel("reason", "actor", bookingDate))

		err := b.MarkNoShow()

		require.ErrorIs(t, err, errs.ErrStatusConflict)
		assert.Equal(t, booking.Cancelled, b.Status())
	})
}

func TestRestoreBooking(t *testing.T) {
	customer, _ := booking.NewCustomer("Alice", "+250780000001")
	cancelledAt := bookingDate.Add(time.Hour)

	t.Run("restores_cancelled_booking_with_audit_trail", func(t *testing.T) {
		b, err := booking.RestoreBooking(kernel.NewUUID(), ticketNumber(t, 2), kernel.NewUUID(),
			3, customer, 3000, kernel.MobileMoney, booking.Paid,
			booking.Cancelled, bookingDate, "schedule change", &cancelledAt, "ops-2")

		require.NoError(t, err)
		assert.Equal(t, booking.Cancelled, b.Status())
		assert.Equal(t, "schedule change", b.CancellationReason())
	})

	t.Run("cancelled_without_audit_trail_is_invalid", func(t *testing.T) {
		_, err := booking.RestoreBooking(kernel.NewUUID(), ticketNumber(t, 2), kernel.NewUUID(),
			3, customer, 3000, kernel.MobileMoney, booking.Paid,
			booking.Cancelled, bookingDate, "", nil, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := booking.RestoreBooking(kernel.NewUUID(), ticketNumber(t, 2), kernel.NewUUID(),
			3, customer, 3000, kernel.MobileMoney, booking.Paid,
			booking.Unknown, bookingDate, "", nil, "")

		require.Error(t, err)
	})
}

func TestBooking_Validate(t *testing.T) {
	var b *booking.Booking
	require.ErrorIs(t, b.Validate(), booking.ErrBookingIsNotConstructed)
	require.ErrorIs(t, (&booking.Booking{}).Validate(), booking.ErrBookingIsNotConstructed)
	require.NoError(t, newTestBooking(t).Validate())
}
