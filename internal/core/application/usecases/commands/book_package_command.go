package commands

import (
	"errors"
	"fmt"

	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/shipment"
	"reservation/internal/pkg/errs"
	"reservation/internal/pkg/guard"
)

var (
	ErrBookPackageCommandIsNotConstructed = errors.New(
		"BookPackageCommand must be created via NewBookPackageCommand constructor",
	)
)

// BookPackageCommand represents a request to ship a package on a trip. The
// tracking number, the price and the expected arrival time are not part of
// the command: they are derived inside the transaction.
type BookPackageCommand struct { //nolint:recvcheck //using for validation
	tripID        kernel.UUID
	sender        shipment.Party
	receiver      shipment.Party
	weightKg      float64
	declaredValue *int64
	isFragile     bool
	paymentMethod kernel.PaymentMethod

	guard guard.ConstructorGuard
}

// NewBookPackageCommand creates a command to book a package shipment.
// The receiver must carry an ID number: collection is verified against it.
func NewBookPackageCommand(
	tripID kernel.UUID,
	sender shipment.Party,
	receiver shipment.Party,
	weightKg float64,
	declaredValue *int64,
	isFragile bool,
	paymentMethod kernel.PaymentMethod,
) (BookPackageCommand, error) {
	cmd := BookPackageCommand{
		isFragile: isFragile,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setParties(sender, receiver),
		cmd.setWeight(weightKg),
		cmd.setDeclaredValue(declaredValue),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return BookPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookPackageCommand) Validate() error {
	return c.guard.Validate(ErrBookPackageCommandIsNotConstructed)
}

// TripID returns the identifier of the trip that carries the package.
func (c BookPackageCommand) TripID() kernel.UUID {
	return c.tripID
}

// Sender returns the sending party.
func (c BookPackageCommand) Sender() shipment.Party {
	return c.sender
}

// Receiver returns the receiving party.
func (c BookPackageCommand) Receiver() shipment.Party {
	return c.receiver
}

// WeightKg returns the package weight in kilograms.
func (c BookPackageCommand) WeightKg() float64 {
	return c.weightKg
}

// DeclaredValue returns the declared value in whole currency units, or nil
// when none was declared.
func (c BookPackageCommand) DeclaredValue() *int64 {
	return c.declaredValue
}

// IsFragile reports whether the package needs fragile handling.
func (c BookPackageCommand) IsFragile() bool {
	return c.isFragile
}

// PaymentMethod returns how the shipping fee is paid.
func (c BookPackageCommand) PaymentMethod() kernel.PaymentMethod {
	return c.paymentMethod
}

func (c *BookPackageCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	c.tripID = tripID
	return nil
}

func (c *BookPackageCommand) setParties(sender, receiver shipment.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	if err := receiver.Validate(); err != nil {
		return err
	}
	if receiver.IDNumber() == "" {
		return errs.NewValueIsRequiredError("receiverIdNumber")
	}
	c.sender = sender
	c.receiver = receiver
	return nil
}

func (c *BookPackageCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("packageWeight",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	c.weightKg = weightKg
	return nil
}

func (c *BookPackageCommand) setDeclaredValue(value *int64) error {
	if value != nil && *value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("packageValue",
			fmt.Errorf("%d is not greater than 0", *value))
	}
	c.declaredValue = value
	return nil
}

func (c *BookPackageCommand) setPaymentMethod(method kernel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
