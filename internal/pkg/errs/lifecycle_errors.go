package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the reservation lifecycle taxonomy. Every lifecycle
// operation fails with exactly one of these categories; all of them are
// recoverable by the caller and leave the underlying record untouched.
var (
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrStatusConflict    = errors.New("status conflict")
	ErrIdentityMismatch  = errors.New("identity mismatch")
	ErrSequenceExhausted = errors.New("sequence exhausted")
)

// CapacityExceededError indicates that a trip has no seats left to allocate.
type CapacityExceededError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewCapacityExceededError creates a CapacityExceededError without an underlying cause.
func NewCapacityExceededError(paramName string, id any) *CapacityExceededError {
	return &CapacityExceededError{ParamName: paramName, ID: id}
}

// NewCapacityExceededErrorWithCause creates a CapacityExceededError wrapping an
// underlying cause.
func NewCapacityExceededErrorWithCause(paramName string, id any, cause error) *CapacityExceededError {
	return &CapacityExceededError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *CapacityExceededError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrCapacityExceeded, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrCapacityExceeded, e.ID))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// StatusConflictError indicates that a status precondition no longer holds:
// the record is not in a state from which the attempted transition is allowed.
type StatusConflictError struct {
	ParamName string
	Current   string
	Attempted string
	Cause     error
}

// NewStatusConflictError creates a StatusConflictError describing the record,
// its current status, and the attempted transition.
func NewStatusConflictError(paramName, current, attempted string) *StatusConflictError {
	return &StatusConflictError{ParamName: paramName, Current: current, Attempted: attempted}
}

// NewStatusConflictErrorWithCause creates a StatusConflictError wrapping an
// underlying cause.
func NewStatusConflictErrorWithCause(paramName, current, attempted string, cause error) *StatusConflictError {
	return &StatusConflictError{ParamName: paramName, Current: current, Attempted: attempted, Cause: cause}
}

func (e *StatusConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s %s in status %s (cause: %s)",
			ErrStatusConflict, e.Attempted, e.ParamName, e.Current, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s %s in status %s",
		ErrStatusConflict, e.Attempted, e.ParamName, e.Current))
}

func (e *StatusConflictError) Unwrap() error {
	return ErrStatusConflict
}

// IdentityMismatchError indicates that a supplied identity document number does
// not exactly match the one stored on the record. The stored number is never
// included in the message.
type IdentityMismatchError struct {
	ParamName string
	Cause     error
}

// NewIdentityMismatchError creates an IdentityMismatchError for the named parameter.
func NewIdentityMismatchError(paramName string) *IdentityMismatchError {
	return &IdentityMismatchError{ParamName: paramName}
}

// NewIdentityMismatchErrorWithCause creates an IdentityMismatchError wrapping
// an underlying cause.
func NewIdentityMismatchErrorWithCause(paramName string, cause error) *IdentityMismatchError {
	return &IdentityMismatchError{ParamName: paramName, Cause: cause}
}

func (e *IdentityMismatchError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrIdentityMismatch, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrIdentityMismatch, e.ParamName))
}

func (e *IdentityMismatchError) Unwrap() error {
	return ErrIdentityMismatch
}

// SequenceExhaustedError indicates that the daily reference-code sequence space
// for a code kind has run out. This is a configuration-level failure: the daily
// space must be widened, the generator never wraps around.
type SequenceExhaustedError struct {
	Kind  string
	Day   string
	Cause error
}

// NewSequenceExhaustedError creates a SequenceExhaustedError for a code kind on a day.
func NewSequenceExhaustedError(kind, day string) *SequenceExhaustedError {
	return &SequenceExhaustedError{Kind: kind, Day: day}
}

// NewSequenceExhaustedErrorWithCause creates a SequenceExhaustedError wrapping
// an underlying cause.
func NewSequenceExhaustedErrorWithCause(kind, day string, cause error) *SequenceExhaustedError {
	return &SequenceExhaustedError{Kind: kind, Day: day, Cause: cause}
}

func (e *SequenceExhaustedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: kind is: %s, day is: %s (cause: %s)",
			ErrSequenceExhausted, e.Kind, e.Day, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: kind is: %s, day is: %s", ErrSequenceExhausted, e.Kind, e.Day))
}

func (e *SequenceExhaustedError) Unwrap() error {
	return ErrSequenceExhausted
}
