package kernel

import (
	"fmt"

	"reservation/internal/pkg/errs"
)

// PaymentMethod identifies how a reservation was paid for. It is shared by
// passenger bookings and package shipments.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an invalid or undefined payment method.
	UnknownPaymentMethod PaymentMethod = iota

	// Cash payment at the counter.
	Cash

	// MobileMoney payment (MoMo).
	MobileMoney

	// Card payment.
	Card
)

func paymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Cash:        "CASH",
		MobileMoney: "MOMO",
		Card:        "CARD",
	}
}

// PaymentMethodFromString parses the wire representation of a payment method
// ("CASH", "MOMO" or "CARD").
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range paymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	if s, ok := paymentMethodStrings()[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the payment method is one of the defined values.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}
