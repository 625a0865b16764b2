package commands_test

import (
	"testing"
	"time"

	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/shipment"
	"reservation/internal/core/domain/model/trip"

	"github.com/stretchr/testify/require"
)

func newTestTrip(t *testing.T, capacity int) *trip.Trip {
	t.Helper()
	departure := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	tr, err := trip.NewTrip(
		kernel.NewUUID(),
		"Kigali", "Musanze",
		departure, departure.Add(2*time.Hour),
		capacity, 3000,
	)
	require.NoError(t, err)
	return tr
}

func newTicketNumber(t *testing.T, seq int) kernel.RefCode {
	t.Helper()
	code, err := kernel.NewRefCode(kernel.TicketKind, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), seq)
	require.NoError(t, err)
	return code
}

func newTrackingNumber(t *testing.T, seq int) kernel.RefCode {
	t.Helper()
	code, err := kernel.NewRefCode(kernel.TrackingKind, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), seq)
	require.NoError(t, err)
	return code
}

func newTestBooking(t *testing.T, tripID kernel.UUID) *booking.Booking {
	t.Helper()
	customer, err := booking.NewCustomer("Alice Uwase", "+250788000001")
	require.NoError(t, err)
	b, err := booking.NewBooking(
		kernel.NewUUID(),
		newTicketNumber(t, 1),
		tripID,
		3,
		customer,
		3000,
		kernel.Cash,
		booking.Paid,
		time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return b
}

func newTestParties(t *testing.T) (shipment.Party, shipment.Party) {
	t.Helper()
	sender, err := shipment.NewParty("Jean Bosco", "+250788000002", "jb@example.com", "")
	require.NoError(t, err)
	receiver, err := shipment.NewParty("Claudine Mukamana", "+250788000003", "", "1199012345678901")
	require.NoError(t, err)
	return sender, receiver
}

func newTestPackage(t *testing.T, tripID kernel.UUID) *shipment.Package {
	t.Helper()
	sender, receiver := newTestParties(t)
	booked := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	p, err := shipment.NewPackage(
		kernel.NewUUID(),
		newTrackingNumber(t, 1),
		tripID,
		sender, receiver,
		2.5, nil, false,
		3400, kernel.Cash,
		booked, booked.Add(20*time.Hour),
	)
	require.NoError(t, err)
	return p
}
