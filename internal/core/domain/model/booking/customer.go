package booking

import (
	"reservation/internal/pkg/errs"
)

// Customer is a value object holding the passenger details stamped onto a
// booking. It is immutable once the booking is created.
type Customer struct {
	names       string
	phoneNumber string

	isConstructed bool
}

// NewCustomer creates a customer with non-empty names and phone number.
func NewCustomer(names, phoneNumber string) (Customer, error) {
	if names == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerName")
	}
	if phoneNumber == "" {
		return Customer{}, errs.NewValueIsRequiredError("customerPhone")
	}

	return Customer{names: names, phoneNumber: phoneNumber, isConstructed: true}, nil
}

// Names returns the passenger's full names.
func (c Customer) Names() string {
	return c.names
}

// PhoneNumber returns the passenger's phone number, the target of booking
// notifications.
func (c Customer) PhoneNumber() string {
	return c.phoneNumber
}

// Validate ensures the customer was created via NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("Customer must be created via NewCustomer")
	}
	return nil
}
