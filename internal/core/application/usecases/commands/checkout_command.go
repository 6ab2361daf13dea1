package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/cart"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to turn a priced cart into a PENDING
// order. The lines and totals are the pricing engine's output; the command
// carries them as an immutable snapshot so the order records what the
// customer saw at checkout.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), customerID, restaurantID,
//	    lines, restaurant.Address(), dropoff, order.PaymentCard, totals)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	restaurantID   kernel.UUID
	lines          []cart.Line
	pickupAddress  string
	dropoffAddress string
	paymentMethod  order.PaymentMethod
	totals         order.Totals

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to place a restaurant order.
// An empty line snapshot is rejected with errs.ErrEmptyCart: there is nothing
// to order.
func NewCheckoutCommand(
	orderID, customerID, restaurantID kernel.UUID,
	lines []cart.Line,
	pickupAddress, dropoffAddress string,
	paymentMethod order.PaymentMethod,
	totals order.Totals,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDropoffAddress(dropoffAddress),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setTotals(totals),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier to create the order under.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the checking-out customer.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the cart belongs to.
func (c CheckoutCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the priced line snapshot.
func (c CheckoutCommand) Lines() []cart.Line {
	lines := make([]cart.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// PickupAddress returns where the order is collected.
func (c CheckoutCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns where the order is delivered.
func (c CheckoutCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// PaymentMethod returns how the customer intends to pay.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Totals returns the priced totals.
func (c CheckoutCommand) Totals() order.Totals {
	return c.totals
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CheckoutCommand) setLines(lines []cart.Line) error {
	if len(lines) == 0 {
		return errs.ErrEmptyCart
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]cart.Line, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CheckoutCommand) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}

	c.pickupAddress = address
	return nil
}

func (c *CheckoutCommand) setDropoffAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoffAddress")
	}

	c.dropoffAddress = address
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}

func (c *CheckoutCommand) setTotals(totals order.Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	c.totals = totals
	return nil
}
