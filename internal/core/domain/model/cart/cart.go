package cart

import (
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// Cart is the ordered sequence of priced lines a customer is assembling.
// It additionally remembers which restaurant the lines came from, captured
// from the first line added; a cart holding lines from a restaurant produces
// an order bound to that restaurant on checkout.
//
// Cart is a session-scoped mutable entity with a single logical owner; it is
// not safe for concurrent use and does not need to be, since exactly one
// actor drives a session.
type Cart struct {
	lines        []Line
	restaurantID *kernel.UUID
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddLine appends a priced line. The first line fixes the cart's restaurant;
// keeping a single restaurant per cart mirrors the checkout contract, which
// produces one order bound to at most one restaurant.
func (c *Cart) AddLine(line Line, restaurantID kernel.UUID) error {
	if err := line.Validate(); err != nil {
		return err
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	if c.restaurantID != nil && !c.restaurantID.IsEqual(restaurantID) {
		return errs.NewValueIsInvalidError("restaurantId")
	}

	if c.restaurantID == nil {
		c.restaurantID = &restaurantID
	}
	c.lines = append(c.lines, line)
	return nil
}

// RemoveLine deletes the line at the given zero-based position, preserving
// the order of the remaining lines.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(c.lines)-1)
	}

	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	if len(c.lines) == 0 {
		c.restaurantID = nil
	}
	return nil
}

// Clear discards every line and the restaurant binding.
func (c *Cart) Clear() {
	c.lines = nil
	c.restaurantID = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// RestaurantID returns the restaurant the cart's lines belong to.
// Returns nil for an empty cart.
func (c *Cart) RestaurantID() *kernel.UUID {
	return c.restaurantID
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}
