// Package services provides domain services that implement business rules
// spanning multiple aggregates or belonging to no single one.
//
// The package includes:
//   - PackagePrice: the pure pricing policy for package shipments, shared by
//     the booking path and the public estimate endpoint
//   - DescribeBookingStatus / DescribePackageStatus: the single transition
//     table and presentation view for lifecycle statuses, consumed by every
//     reader instead of per-consumer badge logic
package services
