// Package booking provides domain entities and business logic for passenger
// reservations in the reservation system. It implements the Booking aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Booking: The aggregate root that manages reservation identity, seat,
//     fare and cancellation audit trail
//   - Status: A state machine that enforces valid booking status transitions
//   - Customer: A value object for passenger details
//
// Key business rules:
//   - Bookings are created CONFIRMED with a unique ticket number and a seat
//     allocated by the owning trip
//   - Status follows a strictly forward workflow: CONFIRMED -> {CANCELLED, NO_SHOW}
//   - Cancellation requires a non-blank reason and records who cancelled and when
//   - The fare is fixed at creation and never recomputed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package booking
