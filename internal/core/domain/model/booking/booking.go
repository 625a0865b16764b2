package booking

import (
	"errors"
	"fmt"
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
)

// ErrBookingIsNotConstructed is returned when a Booking instance was not
// created through NewBooking or RestoreBooking.
var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking constructor")

// PaymentStatus tracks whether the fare for a booking has been settled.
type PaymentStatus int

const (
	// UnknownPaymentStatus represents an invalid or undefined payment status.
	UnknownPaymentStatus PaymentStatus = iota

	// Paid means the fare was settled at booking time.
	Paid

	// Pending means the fare is still owed (e.g. pay-on-boarding).
	Pending
)

// String returns the wire representation of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case Paid:
		return "PAID"
	case Pending:
		return "PENDING"
	default:
		return "UNKNOWN"
	}
}

// Validate checks that the payment status is one of the defined values.
func (p PaymentStatus) Validate() error {
	if p != Paid && p != Pending {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch s {
	case "PAID":
		return Paid, nil
	case "PENDING":
		return Pending, nil
	default:
		return UnknownPaymentStatus, errs.NewValueIsInvalidError("paymentStatus")
	}
}

// Booking is the aggregate root for a single passenger's reservation of one
// seat on a trip.
//
// Booking follows these invariants:
//   - The identifier and ticket number are immutable once issued and never reused
//   - The seat number is unique among non-cancelled bookings on the same trip
//   - The price is fixed at creation (the trip's ticket price) and never recomputed
//   - Status moves strictly forward: Confirmed -> {Cancelled, NoShow}, both terminal
//   - A cancellation always carries a reason, an actor and a timestamp
//
// A booking is created exactly once and never physically deleted; all later
// mutation is a status transition with its audit trail appended to the record.
type Booking struct {
	id           kernel.UUID
	ticketNumber kernel.RefCode

	tripID     kernel.UUID
	seatNumber int

	customer Customer

	price         int64
	paymentMethod kernel.PaymentMethod
	paymentStatus PaymentStatus

	status      Status
	bookingDate time.Time

	cancellationReason string
	cancelledAt        *time.Time
	cancelledBy        string

	isConstructed bool
}

// NewBooking creates a confirmed booking. The seat number must come from
// Trip.AllocateSeat inside the same transaction; the price is the trip's
// ticket price at booking time and is never recomputed afterwards.
func NewBooking(
	id kernel.UUID,
	ticketNumber kernel.RefCode,
	tripID kernel.UUID,
	seatNumber int,
	customer Customer,
	price int64,
	paymentMethod kernel.PaymentMethod,
	paymentStatus PaymentStatus,
	bookingDate time.Time,
) (*Booking, error) {
	b := &Booking{
		status:        Confirmed,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setTicketNumber(ticketNumber),
		b.setTripID(tripID),
		b.setSeatNumber(seatNumber),
		b.setCustomer(customer),
		b.setPrice(price),
		b.setPaymentMethod(paymentMethod),
		b.setPaymentStatus(paymentStatus),
		b.setBookingDate(bookingDate),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking reconstructs a booking from persistent storage, including its
// status and cancellation audit trail.
func RestoreBooking(
	id kernel.UUID,
	ticketNumber kernel.RefCode,
	tripID kernel.UUID,
	seatNumber int,
	customer Customer,
	price int64,
	paymentMethod kernel.PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	bookingDate time.Time,
	cancellationReason string,
	cancelledAt *time.Time,
	cancelledBy string,
) (*Booking, error) {
	b, err := NewBooking(id, ticketNumber, tripID, seatNumber, customer,
		price, paymentMethod, paymentStatus, bookingDate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if status == Cancelled && (cancellationReason == "" || cancelledAt == nil || cancelledBy == "") {
		return nil, errs.NewValueIsRequiredError("cancellation audit trail")
	}

	b.status = status
	b.cancellationReason = cancellationReason
	b.cancelledAt = cancelledAt
	b.cancelledBy = cancelledBy
	return b, nil
}

// Validate ensures the Booking instance was properly constructed.
func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// IsEqual compares two bookings by their unique identifiers.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// TicketNumber returns the booking's unique, immutable ticket number.
func (b *Booking) TicketNumber() kernel.RefCode {
	return b.ticketNumber
}

// TripID returns the identifier of the trip the seat is reserved on.
func (b *Booking) TripID() kernel.UUID {
	return b.tripID
}

// SeatNumber returns the allocated seat number.
func (b *Booking) SeatNumber() int {
	return b.seatNumber
}

// Customer returns the passenger details.
func (b *Booking) Customer() Customer {
	return b.customer
}

// Price returns the fare fixed at creation, in integral currency units.
func (b *Booking) Price() int64 {
	return b.price
}

// PaymentMethod returns how the fare was (or will be) paid.
func (b *Booking) PaymentMethod() kernel.PaymentMethod {
	return b.paymentMethod
}

// PaymentStatus returns whether the fare has been settled.
func (b *Booking) PaymentStatus() PaymentStatus {
	return b.paymentStatus
}

// Status returns the current lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// BookingDate returns when the booking was created.
func (b *Booking) BookingDate() time.Time {
	return b.bookingDate
}

// CancellationReason returns the stated reason; empty unless cancelled.
func (b *Booking) CancellationReason() string {
	return b.cancellationReason
}

// CancelledAt returns when the booking was cancelled; nil unless cancelled.
func (b *Booking) CancelledAt() *time.Time {
	return b.cancelledAt
}

// CancelledBy returns the actor who cancelled the booking; empty unless cancelled.
func (b *Booking) CancelledBy() string {
	return b.cancelledBy
}

// Cancel transitions the booking to Cancelled and stamps the audit trail.
//
// Business rules:
//   - reason must be non-blank (ValueIsRequiredError otherwise)
//   - actor must be non-blank
//   - the booking must currently be Confirmed (StatusConflictError otherwise)
//
// The seat release on the owning trip happens in the same transaction; the
// aggregate records only its own state change. On failure the booking is left
// unchanged.
func (b *Booking) Cancel(reason, actor string, now time.Time) error {
	if isBlank(reason) {
		return errs.NewValueIsRequiredError("reason")
	}
	if isBlank(actor) {
		return errs.NewValueIsRequiredError("actor")
	}

	newStatus, err := b.status.Cancel()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.cancellationReason = reason
	b.cancelledAt = &now
	b.cancelledBy = actor
	return nil
}

// MarkNoShow transitions the booking to NoShow. Only Confirmed bookings on
// departed trips are swept; any other source status yields StatusConflictError
// and leaves the record unchanged.
func (b *Booking) MarkNoShow() error {
	newStatus, err := b.status.MarkNoShow()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setTicketNumber(code kernel.RefCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if code.Kind() != kernel.TicketKind {
		return errs.NewValueIsInvalidErrorWithCause("ticketNumber",
			fmt.Errorf("%s is not a ticket code", code))
	}
	b.ticketNumber = code
	return nil
}

func (b *Booking) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	b.tripID = tripID
	return nil
}

func (b *Booking) setSeatNumber(seat int) error {
	if seat <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("seatNumber",
			fmt.Errorf("%d is not greater than 0", seat))
	}
	b.seatNumber = seat
	return nil
}

func (b *Booking) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	b.customer = customer
	return nil
}

func (b *Booking) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", price))
	}
	b.price = price
	return nil
}

func (b *Booking) setPaymentMethod(method kernel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	b.paymentMethod = method
	return nil
}

func (b *Booking) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.paymentStatus = status
	return nil
}

func (b *Booking) setBookingDate(when time.Time) error {
	if when.IsZero() {
		return errs.NewValueIsRequiredError("bookingDate")
	}
	b.bookingDate = when
	return nil
}
