// Package shipment provides domain entities and business logic for package
// shipments in the reservation system. It implements the Package aggregate
// root with lifecycle management, arrival marking and identity-verified
// collection.
//
// The package includes:
//   - Package: The aggregate root that manages shipment identity, pricing,
//     arrival and collection audit trails
//   - Status: A state machine that enforces valid shipment status transitions
//   - Party: A value object for sender and receiver details
//
// Key business rules:
//   - Packages are booked IN_TRANSIT with a unique tracking number and a
//     price computed once by the pricing policy
//   - The receiver's ID number is captured at booking and collection requires
//     an exact, case-sensitive match against it
//   - Status follows a strictly forward workflow:
//     IN_TRANSIT -> {ARRIVED, CANCELLED}, ARRIVED -> {COLLECTED, CANCELLED}
//   - A failed identity check leaves the package ARRIVED and retryable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
