package booking

import (
	"reservation/internal/pkg/errs"
)

// Status represents the lifecycle state of a passenger booking.
// It implements a state machine with strictly forward transitions:
//
//	Confirmed ──┬──> Cancelled
//	            └──> NoShow
//
// Cancelled and NoShow are terminal; no transition ever leaves them and no
// transition reverts to an earlier state. String representations use the wire
// form consumed by external systems ("CONFIRMED", "CANCELLED", "NO_SHOW").
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the initial status of every booking. A booking is created
	// CONFIRMED or not at all.
	Confirmed

	// Cancelled indicates the booking was cancelled with a reason and the
	// seat was released. Terminal.
	Cancelled

	// NoShow indicates the passenger did not travel; marked after departure
	// by the scheduled sweep. Terminal.
	NoShow
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Confirmed: "CONFIRMED",
		Cancelled: "CANCELLED",
		NoShow:    "NO_SHOW",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed: "CONFIRMED",
		Cancelled: "CANCELLED",
		NoShow:    "NO_SHOW",
	}
}

// StatusFromString parses the wire representation of a booking status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("bookingStatus")
}

// Validate checks if the Status value is valid.
// Valid statuses are: Confirmed, Cancelled, NoShow.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("bookingStatus")
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
	return s == Cancelled || s == NoShow
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Confirmed -> Cancelled
//
// Returns (0, StatusConflictError) from any other status: a cancelled or
// no-show booking stays exactly as it is.
func (s Status) Cancel() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewStatusConflictError("booking", s.String(), "cancel")
	}
	return Cancelled, nil
}

// MarkNoShow transitions the status to NoShow.
//
// Valid transitions:
//   - Confirmed -> NoShow
//
// Returns (0, StatusConflictError) from any other status. A booking cancelled
// while the no-show sweep is running keeps its cancellation; the sweep's
// stale transition is rejected here or by the conditional write.
func (s Status) MarkNoShow() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewStatusConflictError("booking", s.String(), "mark no-show")
	}
	return NoShow, nil
}
