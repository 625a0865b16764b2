package trip

import (
	"errors"
	"fmt"
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
)

// ErrTripIsNotConstructed is returned when a Trip instance was not created through
// NewTrip or RestoreTrip. This ensures all trips are properly validated.
var ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip or RestoreTrip constructor")

// Trip represents a dated, scheduled instance of a route with a fixed capacity
// and ticket price. The reservation core treats most trip data as read-only
// master data; the one contended piece of state the core owns is the
// available-seat counter, which is guarded by an optimistic version.
//
// Trip follows these invariants:
//   - Must have a valid unique identifier and non-empty origin/destination
//   - Capacity must be positive; available seats stay within [0, capacity]
//   - Ticket price must be positive (integral currency units)
//   - Departure must precede the estimated arrival
//   - Every seat mutation bumps the aggregate version; the repository applies
//     changes only while the stored version still matches the loaded one
type Trip struct {
	id kernel.UUID

	origin      string
	destination string

	departureTime   time.Time
	arrivalEstimate time.Time

	capacity       int
	availableSeats int
	ticketPrice    int64

	// version is the optimistic-concurrency token for seat mutations
	version int64

	isConstructed bool
}

// NewTrip creates a trip with a full seat pool. Used when master data is
// imported or seeded; callers served by the external scheduler normally
// reconstruct trips via RestoreTrip instead.
func NewTrip(
	id kernel.UUID,
	origin string,
	destination string,
	departureTime time.Time,
	arrivalEstimate time.Time,
	capacity int,
	ticketPrice int64,
) (*Trip, error) {
	t := &Trip{isConstructed: true, version: 1}

	if err := errors.Join(
		t.setID(id),
		t.setRoute(origin, destination),
		t.setSchedule(departureTime, arrivalEstimate),
		t.setCapacity(capacity),
		t.setTicketPrice(ticketPrice),
	); err != nil {
		return nil, err
	}

	t.availableSeats = capacity
	return t, nil
}

// RestoreTrip reconstructs a trip from persistent storage, including its
// current available-seat counter and optimistic version.
func RestoreTrip(
	id kernel.UUID,
	origin string,
	destination string,
	departureTime time.Time,
	arrivalEstimate time.Time,
	capacity int,
	availableSeats int,
	ticketPrice int64,
	version int64,
) (*Trip, error) {
	t, err := NewTrip(id, origin, destination, departureTime, arrivalEstimate, capacity, ticketPrice)
	if err != nil {
		return nil, err
	}

	if availableSeats < 0 || availableSeats > capacity {
		return nil, errs.NewValueIsOutOfRangeError("availableSeats", availableSeats, 0, capacity)
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("trip version",
			fmt.Errorf("%d is not a valid version", version))
	}

	t.availableSeats = availableSeats
	t.version = version
	return t, nil
}

// Validate ensures the Trip instance was properly constructed.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// Origin returns the route origin.
func (t *Trip) Origin() string {
	return t.origin
}

// Destination returns the route destination.
func (t *Trip) Destination() string {
	return t.destination
}

// DepartureTime returns the scheduled departure time.
func (t *Trip) DepartureTime() time.Time {
	return t.departureTime
}

// ArrivalEstimate returns the estimated arrival time; packages booked on this
// trip take it as their expected arrival.
func (t *Trip) ArrivalEstimate() time.Time {
	return t.arrivalEstimate
}

// Capacity returns the total number of seats on the trip.
func (t *Trip) Capacity() int {
	return t.capacity
}

// AvailableSeats returns the number of seats still open for booking.
func (t *Trip) AvailableSeats() int {
	return t.availableSeats
}

// TicketPrice returns the passenger fare in integral currency units.
func (t *Trip) TicketPrice() int64 {
	return t.ticketPrice
}

// Version returns the optimistic-concurrency token currently loaded.
func (t *Trip) Version() int64 {
	return t.version
}

// AllocateSeat reserves the lowest seat number not present in takenSeats and
// decrements the available-seat counter.
//
// takenSeats is the set of seat numbers held by non-cancelled bookings on this
// trip, as loaded inside the same transaction. Two concurrent requests for the
// last seat cannot both commit: the repository persists the decrement with a
// version check, and the loser of the race gets a StatusConflictError instead
// of a seat.
//
// Returns CapacityExceededError when no seat is available.
func (t *Trip) AllocateSeat(takenSeats []int) (int, error) {
	if t.availableSeats <= 0 {
		return 0, errs.NewCapacityExceededError("trip", t.id.String())
	}

	taken := make(map[int]struct{}, len(takenSeats))
	for _, s := range takenSeats {
		taken[s] = struct{}{}
	}

	seat := 0
	for n := 1; n <= t.capacity; n++ {
		if _, ok := taken[n]; !ok {
			seat = n
			break
		}
	}
	if seat == 0 {
		// counter said a seat was free but every number is held; the
		// stored counter has drifted from the booking set
		return 0, errs.NewCapacityExceededErrorWithCause("trip", t.id.String(),
			fmt.Errorf("seat counter reports %d free but all %d seats are taken",
				t.availableSeats, t.capacity))
	}

	t.availableSeats--
	t.version++
	return seat, nil
}

// ReleaseSeat returns one seat to the pool after a booking on this trip is
// cancelled. The counter never exceeds capacity.
func (t *Trip) ReleaseSeat() error {
	if t.availableSeats >= t.capacity {
		return errs.NewValueIsOutOfRangeError("availableSeats", t.availableSeats+1, 0, t.capacity)
	}

	t.availableSeats++
	t.version++
	return nil
}

// HasDeparted reports whether the trip's departure time has passed at the
// given instant. The no-show sweep acts only on departed trips.
func (t *Trip) HasDeparted(now time.Time) bool {
	return now.After(t.departureTime)
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setRoute(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	t.origin = origin
	t.destination = destination
	return nil
}

func (t *Trip) setSchedule(departure, arrival time.Time) error {
	if departure.IsZero() {
		return errs.NewValueIsRequiredError("departureTime")
	}
	if arrival.IsZero() {
		return errs.NewValueIsRequiredError("arrivalEstimate")
	}
	if !arrival.After(departure) {
		return errs.NewValueIsInvalidErrorWithCause("arrivalEstimate",
			fmt.Errorf("estimated arrival %s is not after departure %s", arrival, departure))
	}
	t.departureTime = departure
	t.arrivalEstimate = arrival
	return nil
}

func (t *Trip) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	t.capacity = capacity
	return nil
}

func (t *Trip) setTicketPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ticketPrice",
			fmt.Errorf("%d is not greater than 0", price))
	}
	t.ticketPrice = price
	return nil
}
