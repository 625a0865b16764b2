package shipment

import (
	"errors"
	"fmt"
	"time"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage constructor")

// Package is the aggregate root for a cargo-space reservation on a trip.
//
// Package follows these invariants:
//   - The identifier and tracking number are immutable once issued and never reused
//   - The receiver always carries an ID number; collection requires an exact,
//     case-sensitive match against it
//   - The price is computed once by the pricing policy at creation and never
//     recomputed
//   - Status moves strictly forward: IN_TRANSIT -> {ARRIVED, CANCELLED},
//     ARRIVED -> {COLLECTED, CANCELLED}; COLLECTED and CANCELLED are terminal
//
// A package is created exactly once and never physically deleted; all later
// mutation is a status transition with its audit trail appended to the record.
type Package struct {
	id             kernel.UUID
	trackingNumber kernel.RefCode

	tripID   kernel.UUID
	sender   Party
	receiver Party

	weightKg      float64
	declaredValue *int64
	isFragile     bool

	price         int64
	paymentMethod kernel.PaymentMethod

	status      Status
	bookingDate time.Time

	expectedArrivalTime time.Time
	actualArrivalTime   *time.Time

	collectedAt     *time.Time
	collectedByName string
	collectedByID   string

	cancellationReason string
	cancelledAt        *time.Time

	isConstructed bool
}

// NewPackage creates a shipment in IN_TRANSIT status. The price must come from
// the pricing policy and the expected arrival from the trip's estimate; both
// are fixed here for the life of the record.
//
// The receiver's ID number is required at booking time because collection is
// verified against it later; a package without one could never be handed over.
func NewPackage(
	id kernel.UUID,
	trackingNumber kernel.RefCode,
	tripID kernel.UUID,
	sender Party,
	receiver Party,
	weightKg float64,
	declaredValue *int64,
	isFragile bool,
	price int64,
	paymentMethod kernel.PaymentMethod,
	bookingDate time.Time,
	expectedArrivalTime time.Time,
) (*Package, error) {
	p := &Package{
		status:        InTransit,
		isFragile:     isFragile,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setTripID(tripID),
		p.setSender(sender),
		p.setReceiver(receiver),
		p.setWeight(weightKg),
		p.setDeclaredValue(declaredValue),
		p.setPrice(price),
		p.setPaymentMethod(paymentMethod),
		p.setBookingDate(bookingDate),
		p.setExpectedArrival(expectedArrivalTime),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a package from persistent storage, including its
// status and the arrival/collection/cancellation audit trail.
func RestorePackage(
	id kernel.UUID,
	trackingNumber kernel.RefCode,
	tripID kernel.UUID,
	sender Party,
	receiver Party,
	weightKg float64,
	declaredValue *int64,
	isFragile bool,
	price int64,
	paymentMethod kernel.PaymentMethod,
	status Status,
	bookingDate time.Time,
	expectedArrivalTime time.Time,
	actualArrivalTime *time.Time,
	collectedAt *time.Time,
	collectedByName string,
	collectedByID string,
	cancellationReason string,
	cancelledAt *time.Time,
) (*Package, error) {
	p, err := NewPackage(id, trackingNumber, tripID, sender, receiver,
		weightKg, declaredValue, isFragile, price, paymentMethod,
		bookingDate, expectedArrivalTime)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if status == Collected && (collectedAt == nil || collectedByName == "" || collectedByID == "") {
		return nil, errs.NewValueIsRequiredError("collection audit trail")
	}
	if status == Cancelled && (cancellationReason == "" || cancelledAt == nil) {
		return nil, errs.NewValueIsRequiredError("cancellation audit trail")
	}

	p.status = status
	p.actualArrivalTime = actualArrivalTime
	p.collectedAt = collectedAt
	p.collectedByName = collectedByName
	p.collectedByID = collectedByID
	p.cancellationReason = cancellationReason
	p.cancelledAt = cancelledAt
	return p, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the package's unique, immutable tracking number.
func (p *Package) TrackingNumber() kernel.RefCode {
	return p.trackingNumber
}

// TripID returns the identifier of the trip carrying the package.
func (p *Package) TripID() kernel.UUID {
	return p.tripID
}

// Sender returns the sending party.
func (p *Package) Sender() Party {
	return p.sender
}

// Receiver returns the receiving party. Its ID number is the reference for
// the collection identity check.
func (p *Package) Receiver() Party {
	return p.receiver
}

// WeightKg returns the package weight in kilograms.
func (p *Package) WeightKg() float64 {
	return p.weightKg
}

// DeclaredValue returns the declared value in integral currency units, nil if
// not declared.
func (p *Package) DeclaredValue() *int64 {
	return p.declaredValue
}

// IsFragile reports whether the package requires fragile handling.
func (p *Package) IsFragile() bool {
	return p.isFragile
}

// Price returns the shipment price fixed at creation.
func (p *Package) Price() int64 {
	return p.price
}

// PaymentMethod returns how the shipment was paid for.
func (p *Package) PaymentMethod() kernel.PaymentMethod {
	return p.paymentMethod
}

// Status returns the current lifecycle status.
func (p *Package) Status() Status {
	return p.status
}

// BookingDate returns when the shipment was booked.
func (p *Package) BookingDate() time.Time {
	return p.bookingDate
}

// ExpectedArrivalTime returns the trip's arrival estimate captured at booking.
func (p *Package) ExpectedArrivalTime() time.Time {
	return p.expectedArrivalTime
}

// ActualArrivalTime returns when the package was marked arrived; nil before.
func (p *Package) ActualArrivalTime() *time.Time {
	return p.actualArrivalTime
}

// CollectedAt returns when the package was collected; nil before.
func (p *Package) CollectedAt() *time.Time {
	return p.collectedAt
}

// CollectedByName returns the name given by the person who collected the
// package; empty before collection.
func (p *Package) CollectedByName() string {
	return p.collectedByName
}

// CollectedByID returns the ID number presented at collection; empty before
// collection. By construction it equals the receiver's ID number.
func (p *Package) CollectedByID() string {
	return p.collectedByID
}

// CancellationReason returns the stated reason; empty unless cancelled.
func (p *Package) CancellationReason() string {
	return p.cancellationReason
}

// CancelledAt returns when the shipment was cancelled; nil unless cancelled.
func (p *Package) CancelledAt() *time.Time {
	return p.cancelledAt
}

// MarkArrived transitions the package to Arrived and stamps the actual
// arrival time. Only IN_TRANSIT packages can arrive; anything else yields
// StatusConflictError and leaves the record unchanged.
func (p *Package) MarkArrived(now time.Time) error {
	newStatus, err := p.status.MarkArrived()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.actualArrivalTime = &now
	return nil
}

// Collect hands the package over after verifying the receiver's identity.
//
// Business rules:
//   - The package must be Arrived (StatusConflictError otherwise)
//   - receiverIDNumber must exactly equal the stored receiver ID number,
//     case-sensitive with no normalization (IdentityMismatchError otherwise)
//   - collectedByName must be non-empty
//
// On an identity mismatch the package stays Arrived and the operation may be
// retried with a corrected ID.
func (p *Package) Collect(receiverIDNumber, collectedByName string, now time.Time) error {
	if collectedByName == "" {
		return errs.NewValueIsRequiredError("collectedByName")
	}

	// status gate first so a mismatch can never leak whether a terminal
	// package had a matching ID
	newStatus, err := p.status.Collect()
	if err != nil {
		return err
	}

	if receiverIDNumber != p.receiver.IDNumber() {
		return errs.NewIdentityMismatchError("receiverIdNumber")
	}

	p.status = newStatus
	p.collectedAt = &now
	p.collectedByName = collectedByName
	p.collectedByID = receiverIDNumber
	return nil
}

// Cancel transitions the package to Cancelled. Allowed from IN_TRANSIT and
// ARRIVED only; a collected package can never be cancelled.
func (p *Package) Cancel(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.cancellationReason = reason
	p.cancelledAt = &now
	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setTrackingNumber(code kernel.RefCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if code.Kind() != kernel.TrackingKind {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%s is not a tracking code", code))
	}
	p.trackingNumber = code
	return nil
}

func (p *Package) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	p.tripID = tripID
	return nil
}

func (p *Package) setSender(sender Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	p.sender = sender
	return nil
}

func (p *Package) setReceiver(receiver Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	if receiver.IDNumber() == "" {
		return errs.NewValueIsRequiredError("receiverIdNumber")
	}
	p.receiver = receiver
	return nil
}

func (p *Package) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("packageWeight",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Package) setDeclaredValue(value *int64) error {
	if value != nil && *value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("packageValue",
			fmt.Errorf("%d is not greater than 0", *value))
	}
	p.declaredValue = value
	return nil
}

func (p *Package) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Package) setPaymentMethod(method kernel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.paymentMethod = method
	return nil
}

func (p *Package) setBookingDate(when time.Time) error {
	if when.IsZero() {
		return errs.NewValueIsRequiredError("bookingDate")
	}
	p.bookingDate = when
	return nil
}

func (p *Package) setExpectedArrival(when time.Time) error {
	if when.IsZero() {
		return errs.NewValueIsRequiredError("expectedArrivalTime")
	}
	p.expectedArrivalTime = when
	return nil
}
