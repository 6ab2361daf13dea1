package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrSendParcelCommandIsNotConstructed = errors.New(
	"SendParcelCommand must be created via NewSendParcelCommand constructor",
)

// SendParcelCommand represents a request to create a pure parcel-logistics
// order: no restaurant, no menu lines, fees only. A driver claims it straight
// from PENDING.
type SendParcelCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	pickupAddress  string
	dropoffAddress string
	paymentMethod  order.PaymentMethod
	totals         order.Totals

	guard guard.ConstructorGuard
}

// NewSendParcelCommand creates a command to register a parcel delivery.
func NewSendParcelCommand(
	orderID, customerID kernel.UUID,
	pickupAddress, dropoffAddress string,
	paymentMethod order.PaymentMethod,
	totals order.Totals,
) (SendParcelCommand, error) {
	cmd := SendParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDropoffAddress(dropoffAddress),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setTotals(totals),
	); err != nil {
		return SendParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendParcelCommand) Validate() error {
	return c.guard.Validate(ErrSendParcelCommandIsNotConstructed)
}

// OrderID returns the identifier to create the order under.
func (c SendParcelCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the sending customer.
func (c SendParcelCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns where the parcel is collected.
func (c SendParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns where the parcel is delivered.
func (c SendParcelCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// PaymentMethod returns how the customer intends to pay.
func (c SendParcelCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Totals returns the priced fees.
func (c SendParcelCommand) Totals() order.Totals {
	return c.totals
}

func (c *SendParcelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SendParcelCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SendParcelCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}

	c.pickupAddress = address
	return nil
}

func (c *SendParcelCommand) setDropoffAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoffAddress")
	}

	c.dropoffAddress = address
	return nil
}

func (c *SendParcelCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}

func (c *SendParcelCommand) setTotals(totals order.Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	c.totals = totals
	return nil
}
