package shipment

import (
	"reservation/internal/pkg/errs"
)

// Status represents the lifecycle state of a package shipment.
// It implements a state machine with strictly forward transitions:
//
//	InTransit ──┬──> Arrived ──┬──> Collected
//	            │              └──> Cancelled
//	            └──> Cancelled
//
// Collected and Cancelled are terminal. String representations use the wire
// form consumed by external systems ("IN_TRANSIT", "ARRIVED", "COLLECTED",
// "CANCELLED").
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InTransit is the initial status of every booked package.
	InTransit

	// Arrived indicates the package reached its destination and awaits
	// identity-verified collection.
	Arrived

	// Collected indicates the receiver claimed the package after the
	// identity check. Terminal.
	Collected

	// Cancelled indicates the shipment was cancelled before collection.
	// Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		InTransit: "IN_TRANSIT",
		Arrived:   "ARRIVED",
		Collected: "COLLECTED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InTransit: "IN_TRANSIT",
		Arrived:   "ARRIVED",
		Collected: "COLLECTED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a package status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("packageStatus")
}

// Validate checks if the Status value is valid.
// Valid statuses are: InTransit, Arrived, Collected, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("packageStatus")
	}
	return nil
}

// String returns the wire representation of the status, "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Collected || s == Cancelled
}

// MarkArrived transitions the status to Arrived.
//
// Valid transitions:
//   - InTransit -> Arrived
//
// Returns (0, StatusConflictError) from any other status.
func (s Status) MarkArrived() (Status, error) {
	if s != InTransit {
		return 0, errs.NewStatusConflictError("package", s.String(), "mark arrived")
	}
	return Arrived, nil
}

// Collect transitions the status to Collected.
//
// Valid transitions:
//   - Arrived -> Collected
//
// A package still in transit cannot be collected, nor can a cancelled or
// already collected one; the identity check happens on the aggregate, not
// here.
func (s Status) Collect() (Status, error) {
	if s != Arrived {
		return 0, errs.NewStatusConflictError("package", s.String(), "collect")
	}
	return Collected, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - InTransit -> Cancelled
//   - Arrived -> Cancelled
//
// A collected package can never be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != InTransit && s != Arrived {
		return 0, errs.NewStatusConflictError("package", s.String(), "cancel")
	}
	return Cancelled, nil
}
