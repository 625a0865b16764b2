package shipment

import (
	"reservation/internal/pkg/errs"
)

// Party is a value object identifying one side of a shipment: the sender who
// pays for cargo space, or the receiver who collects the package on arrival.
// Email and ID number are optional in general; the aggregate requires the
// receiver's ID number because collection is identity-verified against it.
type Party struct {
	names       string
	phoneNumber string
	email       string
	idNumber    string

	isConstructed bool
}

// NewParty creates a party with non-empty names and phone number.
// email and idNumber may be empty.
func NewParty(names, phoneNumber, email, idNumber string) (Party, error) {
	if names == "" {
		return Party{}, errs.NewValueIsRequiredError("names")
	}
	if phoneNumber == "" {
		return Party{}, errs.NewValueIsRequiredError("phoneNumber")
	}

	return Party{
		names:         names,
		phoneNumber:   phoneNumber,
		email:         email,
		idNumber:      idNumber,
		isConstructed: true,
	}, nil
}

// Names returns the party's full names.
func (p Party) Names() string {
	return p.names
}

// PhoneNumber returns the party's phone number, the target of shipment
// notifications.
func (p Party) PhoneNumber() string {
	return p.phoneNumber
}

// Email returns the party's email address; may be empty.
func (p Party) Email() string {
	return p.email
}

// IDNumber returns the party's identity document number; may be empty for
// senders, never for receivers on a booked package.
func (p Party) IDNumber() string {
	return p.idNumber
}

// Validate ensures the party was created via NewParty.
func (p Party) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("Party must be created via NewParty")
	}
	return nil
}
