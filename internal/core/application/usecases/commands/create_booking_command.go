package commands

import (
	"errors"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
)

// CreateBookingCommand represents a request to reserve one seat on a trip for
// a passenger. The seat number, ticket number and price are not part of the
// command: they are allocated inside the transaction.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	tripID        kernel.UUID
	customerName  string
	customerPhone string
	paymentMethod kernel.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to book a seat on a trip.
// Validates that the trip ID is valid, the customer fields are non-empty and
// the payment method is known.
func NewCreateBookingCommand(
	tripID kernel.UUID,
	customerName string,
	customerPhone string,
	paymentMethod kernel.PaymentMethod,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setCustomer(customerName, customerPhone),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// TripID returns the identifier of the trip to book on.
func (c CreateBookingCommand) TripID() kernel.UUID {
	return c.tripID
}

// CustomerName returns the passenger's full names.
func (c CreateBookingCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the passenger's phone number.
func (c CreateBookingCommand) CustomerPhone() string {
	return c.customerPhone
}

// PaymentMethod returns how the fare is paid.
func (c CreateBookingCommand) PaymentMethod() kernel.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateBookingCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *CreateBookingCommand) setCustomer(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	c.customerName = name
	c.customerPhone = phone
	return nil
}

func (c *CreateBookingCommand) setPaymentMethod(method kernel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
