package services

import (
	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/shipment"
)

// StatusDescription is the single presentation-facing view of a lifecycle
// status. Dashboards, reports and API payloads all read from this table
// instead of re-deriving badge logic per consumer.
type StatusDescription struct {
	// Code is the wire form of the status ("CONFIRMED", "IN_TRANSIT", ...).
	Code string

	// Label is the human-readable form shown on consoles.
	Label string

	// Terminal reports whether the status admits no further transitions.
	Terminal bool

	// Next lists the wire codes of the statuses reachable from this one.
	Next []string
}

func bookingTransitionTable() map[booking.Status]StatusDescription {
	return map[booking.Status]StatusDescription{
		booking.Confirmed: {
			Code:  "CONFIRMED",
			Label: "Confirmed",
			Next:  []string{"CANCELLED", "NO_SHOW"},
		},
		booking.Cancelled: {
			Code:     "CANCELLED",
			Label:    "Cancelled",
			Terminal: true,
			Next:     []string{},
		},
		booking.NoShow: {
			Code:     "NO_SHOW",
			Label:    "No-show",
			Terminal: true,
			Next:     []string{},
		},
	}
}

func packageTransitionTable() map[shipment.Status]StatusDescription {
	return map[shipment.Status]StatusDescription{
		shipment.InTransit: {
			Code:  "IN_TRANSIT",
			Label: "In transit",
			Next:  []string{"ARRIVED", "CANCELLED"},
		},
		shipment.Arrived: {
			Code:  "ARRIVED",
			Label: "Arrived",
			Next:  []string{"COLLECTED", "CANCELLED"},
		},
		shipment.Collected: {
			Code:     "COLLECTED",
			Label:    "Collected",
			Terminal: true,
			Next:     []string{},
		},
		shipment.Cancelled: {
			Code:     "CANCELLED",
			Label:    "Cancelled",
			Terminal: true,
			Next:     []string{},
		},
	}
}

// DescribeBookingStatus returns the presentation view of a booking status.
// Unknown statuses get an empty terminal description rather than a panic so
// a corrupt row can still be rendered.
func DescribeBookingStatus(s booking.Status) StatusDescription {
	if d, ok := bookingTransitionTable()[s]; ok {
		return d
	}
	return StatusDescription{Code: "UNKNOWN", Label: "Unknown", Terminal: true, Next: []string{}}
}

// DescribePackageStatus returns the presentation view of a package status.
func DescribePackageStatus(s shipment.Status) StatusDescription {
	if d, ok := packageTransitionTable()[s]; ok {
		return d
	}
	return StatusDescription{Code: "UNKNOWN", Label: "Unknown", Terminal: true, Next: []string{}}
}
