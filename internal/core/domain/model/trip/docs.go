// Package trip provides the Trip aggregate for the reservation system.
// A trip is a dated, scheduled instance of a route with a fixed capacity,
// timeslot and ticket price, materialized by an external scheduler.
//
// The reservation core never creates or deletes trips; it reads their master
// data and owns exactly one piece of mutable state: the available-seat
// counter. Seat allocation and release go through the aggregate so the
// counter, the lowest-unused-seat rule and the optimistic version move
// together.
//
// Key business rules:
//   - Available seats never leave the range [0, capacity]
//   - AllocateSeat hands out the lowest seat number not held by a
//     non-cancelled booking and fails with CapacityExceededError at zero
//   - Every seat mutation bumps the aggregate version; persistence applies
//     the change only while the stored version is unchanged
package trip
