// Package guard provides a constructor guard for commands, queries and other
// objects that must be instantiated through their designated constructor.
// A zero-value guard fails validation, which makes accidentally bypassed
// constructors detectable at the application boundary.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed properly and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed it as a field and set it with NewConstructorGuard inside the
// constructor; any zero-value instance of the enclosing type will then
// fail Validate.
//
// Example:
//
//	type CancelBookingCommand struct {
//	    bookingID kernel.UUID
//	    reason    string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewCancelBookingCommand(id kernel.UUID, reason string) (CancelBookingCommand, error) {
//	    // ... validation ...
//	    return CancelBookingCommand{bookingID: id, reason: reason, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
