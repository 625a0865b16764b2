package ports

import "context"

// Event identifies a lifecycle moment worth telling customers about.
type Event string

const (
	// BookingCreated fires after a booking commits; notifies the passenger.
	BookingCreated Event = "BookingCreated"

	// BookingCancelled fires after a cancellation commits; notifies the passenger.
	BookingCancelled Event = "BookingCancelled"

	// PackageBooked fires after a package booking commits; notifies sender
	// and receiver.
	PackageBooked Event = "PackageBooked"

	// PackageArrived fires after arrival marking commits; notifies the receiver.
	PackageArrived Event = "PackageArrived"

	// PackageCollected fires after collection commits; notifies the sender.
	PackageCollected Event = "PackageCollected"
)

// Recipient is one SMS/email target of a notification.
type Recipient struct {
	Name        string
	PhoneNumber string
	Email       string
}

// Notification is a lifecycle event plus the recipients it should reach.
// RefCode carries the ticket or tracking number the message refers to.
type Notification struct {
	Event      Event
	RefCode    string
	Message    string
	Recipients []Recipient
}

// Notifier dispatches lifecycle notifications to customers, best-effort and
// fire-and-forget.
//
// The core calls Notify after a successful state transition has committed;
// the reservation record is already the source of truth at that point, so a
// delivery failure is logged by the implementation and never surfaces to the
// lifecycle caller — which is why Notify returns nothing. Implementations
// must not block the caller; dispatch happens asynchronously with its own
// retry policy.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
