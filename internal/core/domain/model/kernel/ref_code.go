package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"reservation/internal/pkg/errs"
)

// MaxDailySequence is the highest sequence number a daily reference-code
// space can hold. Exceeding it is a configuration failure, never a wraparound.
const MaxDailySequence = 99999

// RefCodeKind distinguishes the two families of reference codes issued by the
// system: ticket numbers for passenger bookings and tracking numbers for
// package shipments.
type RefCodeKind int

const (
	// UnknownKind represents an invalid or undefined reference-code kind.
	UnknownKind RefCodeKind = iota

	// TicketKind identifies ticket numbers ("TKT-" prefix).
	TicketKind

	// TrackingKind identifies tracking numbers ("PKG-" prefix).
	TrackingKind
)

// Prefix returns the wire prefix of the kind ("TKT" or "PKG").
func (k RefCodeKind) Prefix() string {
	switch k {
	case TicketKind:
		return "TKT"
	case TrackingKind:
		return "PKG"
	default:
		return ""
	}
}

// String returns a human-readable name for the kind.
func (k RefCodeKind) String() string {
	switch k {
	case TicketKind:
		return "Ticket"
	case TrackingKind:
		return "Tracking"
	default:
		return "Unknown"
	}
}

// Validate checks that the kind is one of the defined reference-code families.
func (k RefCodeKind) Validate() error {
	if k != TicketKind && k != TrackingKind {
		return errs.NewValueIsInvalidErrorWithCause("refCodeKind",
			fmt.Errorf("%d is not a valid reference code kind", k))
	}
	return nil
}

var refCodePattern = regexp.MustCompile(`^(TKT|PKG)-(\d{8})-(\d{5})$`)

// RefCode is a value object representing a unique, date-scoped, human-readable
// reference code in the form "TKT-YYYYMMDD-NNNNN" or "PKG-YYYYMMDD-NNNNN".
// The five-digit sequence is zero-padded and strictly increasing within a
// (kind, day) pair; codes are never reassigned or reused.
//
// RefCode is immutable. The zero value is invalid and must be created via
// NewRefCode or RefCodeFromString.
//
// Example:
//
//	code, err := kernel.NewRefCode(kernel.TicketKind, bookingDate, 17)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(code.String()) // "TKT-20250901-00017"
type RefCode struct {
	kind RefCodeKind
	day  string
	seq  int

	guard ConstructorGuard
}

// NewRefCode creates a reference code for the given kind, issue day and daily
// sequence number. The sequence must lie in [1, MaxDailySequence]; a sequence
// past the end of the space yields a SequenceExhaustedError.
func NewRefCode(kind RefCodeKind, when time.Time, seq int) (RefCode, error) {
	if err := kind.Validate(); err != nil {
		return RefCode{}, err
	}
	if when.IsZero() {
		return RefCode{}, errs.NewValueIsRequiredError("when")
	}
	day := when.Format("20060102")
	if seq > MaxDailySequence {
		return RefCode{}, errs.NewSequenceExhaustedError(kind.Prefix(), day)
	}
	if seq < 1 {
		return RefCode{}, errs.NewValueIsOutOfRangeError("seq", seq, 1, MaxDailySequence)
	}

	return RefCode{
		kind:  kind,
		day:   day,
		seq:   seq,
		guard: NewConstructorGuard(),
	}, nil
}

// RefCodeFromString parses a reference code from its wire representation.
// Used when reconstructing records from persistence or resolving codes
// supplied by callers (e.g. public tracking lookups).
func RefCodeFromString(s string) (RefCode, error) {
	m := refCodePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RefCode{}, errs.NewValueIsInvalidErrorWithCause("refCode",
			fmt.Errorf("%q does not match the reference code format", s))
	}

	kind := TicketKind
	if m[1] == "PKG" {
		kind = TrackingKind
	}

	seq, err := strconv.Atoi(m[3])
	if err != nil || seq < 1 {
		return RefCode{}, errs.NewValueIsInvalidErrorWithCause("refCode",
			fmt.Errorf("%q has an invalid sequence component", s))
	}

	if _, err = time.Parse("20060102", m[2]); err != nil {
		return RefCode{}, errs.NewValueIsInvalidErrorWithCause("refCode",
			fmt.Errorf("%q has an invalid date component", s))
	}

	return RefCode{kind: kind, day: m[2], seq: seq, guard: NewConstructorGuard()}, nil
}

// Kind returns the reference-code family.
func (c RefCode) Kind() RefCodeKind {
	return c.kind
}

// Day returns the issue day in YYYYMMDD form.
func (c RefCode) Day() string {
	return c.day
}

// Seq returns the daily sequence number.
func (c RefCode) Seq() int {
	return c.seq
}

// String returns the wire representation, e.g. "PKG-20250901-00042".
func (c RefCode) String() string {
	return fmt.Sprintf("%s-%s-%05d", c.kind.Prefix(), c.day, c.seq)
}

// IsEqual compares two reference codes by value.
func (c RefCode) IsEqual(other RefCode) bool {
	return c.kind == other.kind && c.day == other.day && c.seq == other.seq
}

// Validate checks that the code was created through one of the constructors.
func (c RefCode) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError(
		"RefCode must be created via NewRefCode or RefCodeFromString"))
}
