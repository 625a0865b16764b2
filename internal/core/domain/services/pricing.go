package services

import (
	"math"

	"reservation/internal/pkg/errs"
)

// Pricing constants for package shipments. All currency amounts are integral
// RWF-equivalent units; there are no fractional cents anywhere in the system.
const (
	// BaseRatePerKg is the freight charge per kilogram.
	BaseRatePerKg = 1000

	// TicketPremiumRate is the share of the trip's ticket price added on top
	// of the weight charge.
	TicketPremiumRate = 0.30

	// MinimumPackagePrice is the floor below which no shipment is priced.
	MinimumPackagePrice = 2000
)

// PackagePrice computes the shipment price for a package of the given weight
// travelling on a trip with the given ticket price:
//
//	basePrice = weightKg * BaseRatePerKg
//	premium   = ticketPrice * TicketPremiumRate
//	price     = max(basePrice + premium, MinimumPackagePrice)
//
// The function is pure and is the single pricing authority: the booking path
// and the public estimate endpoint both call it, so a quoted estimate and the
// price fixed at booking agree bit-for-bit.
func PackagePrice(weightKg float64, ticketPrice int64) (int64, error) {
	if weightKg <= 0 {
		return 0, errs.NewValueIsInvalidError("packageWeight")
	}
	if ticketPrice <= 0 {
		return 0, errs.NewValueIsInvalidError("ticketPrice")
	}

	basePrice := int64(math.Round(weightKg * BaseRatePerKg))
	premium := int64(math.Round(float64(ticketPrice) * TicketPremiumRate))

	price := basePrice + premium
	if price < MinimumPackagePrice {
		price = MinimumPackagePrice
	}
	return price, nil
}
