package order

import (
	"errors"
	"fmt"
	"time"

	"swiftdrop/internal/core/domain/model/actor"
	"swiftdrop/internal/core/domain/model/cart"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through a factory function. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or NewParcelOrder constructor")
)

// Order is the durable unit of work of the marketplace: a customer's priced,
// addressed request that the four actors move through the lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - A restaurant order carries at least one line; a parcel order carries
//     none and no restaurant
//   - Totals always satisfy totalFee = foodSubtotal + deliveryFee + serviceFee
//   - createdAt is immutable; updatedAt never decreases and is bumped on
//     every status or driver change
//   - Status only changes through TransitionTo, which enforces the
//     transition table; on failure the order is left completely unchanged
//   - The version counter increments on every applied mutation, giving
//     stores a compare-and-swap handle
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID *kernel.UUID
	driverID     *kernel.UUID

	lines          []cart.Line
	pickupAddress  string
	dropoffAddress string

	status        Status
	paymentMethod PaymentMethod
	totals        Totals

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewOrder creates a restaurant order in PENDING status from the lines a
// cart handed over at checkout.
//
// Parameters:
//   - id: unique identifier generated at creation
//   - customerID: the checking-out customer
//   - restaurantID: the restaurant the cart's lines belong to
//   - lines: the priced line snapshot (at least one line)
//   - pickupAddress/dropoffAddress: where the order is collected and delivered
//   - paymentMethod: how the customer intends to pay (recorded, not executed)
//   - totals: the priced totals from the pricing engine
//   - createdAt: creation instant; also the initial updatedAt
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	lines []cart.Line,
	pickupAddress, dropoffAddress string,
	paymentMethod PaymentMethod,
	totals Totals,
	createdAt time.Time,
) (*Order, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	o, err := newOrder(id, customerID, lines, pickupAddress, dropoffAddress, paymentMethod, totals, createdAt)
	if err != nil {
		return nil, err
	}

	o.restaurantID = &restaurantID
	return o, nil
}

// NewParcelOrder creates a pure parcel-logistics order in PENDING status:
// no restaurant, no lines, fees only. Drivers accept it straight from
// PENDING since there is no kitchen to wait for.
func NewParcelOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAddress, dropoffAddress string,
	paymentMethod PaymentMethod,
	totals Totals,
	createdAt time.Time,
) (*Order, error) {
	return newOrder(id, customerID, nil, pickupAddress, dropoffAddress, paymentMethod, totals, createdAt)
}

func newOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lines []cart.Line,
	pickupAddress, dropoffAddress string,
	paymentMethod PaymentMethod,
	totals Totals,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setPickupAddress(pickupAddress),
		o.setDropoffAddress(dropoffAddress),
		o.setPaymentMethod(paymentMethod),
		o.setTotals(totals),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence with all fields as stored.
// Used by repositories only; it re-validates every invariant so corrupt
// rows cannot become live aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID *kernel.UUID,
	driverID *kernel.UUID,
	lines []cart.Line,
	pickupAddress, dropoffAddress string,
	status Status,
	paymentMethod PaymentMethod,
	totals Totals,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	o, err := newOrder(id, customerID, lines, pickupAddress, dropoffAddress, paymentMethod, totals, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if restaurantID != nil {
		if err = restaurantID.Validate(); err != nil {
			return nil, err
		}
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("updatedAt %s precedes createdAt %s", updatedAt, createdAt))
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is negative", version))
	}

	o.restaurantID = restaurantID
	o.driverID = driverID
	o.status = status
	o.updatedAt = updatedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant fulfilling the order.
// Returns nil for a parcel order.
func (o *Order) RestaurantID() *kernel.UUID {
	return o.restaurantID
}

// DriverID returns the driver assigned to the order.
// Returns nil until a driver accepts it.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Lines returns a copy of the order's line snapshot.
func (o *Order) Lines() []cart.Line {
	out := make([]cart.Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// PickupAddress returns where the order is collected.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DropoffAddress returns where the order is delivered.
func (o *Order) DropoffAddress() string {
	return o.dropoffAddress
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the recorded payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Totals returns the order's monetary summary.
func (o *Order) Totals() Totals {
	return o.totals
}

// CreatedAt returns the immutable creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last applied status or driver change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the mutation counter used for optimistic concurrency.
func (o *Order) Version() int64 {
	return o.version
}

// Clone returns an independent copy of the order. Stores hand out clones so
// a reader can never observe a partially applied mutation.
func (o *Order) Clone() *Order {
	clone := *o
	clone.lines = make([]cart.Line, len(o.lines))
	copy(clone.lines, o.lines)
	if o.restaurantID != nil {
		id := *o.restaurantID
		clone.restaurantID = &id
	}
	if o.driverID != nil {
		id := *o.driverID
		clone.driverID = &id
	}
	return &clone
}

// TransitionTo applies one lifecycle step requested by an actor.
//
// The requested (current status, target) pair is looked up in the transition
// table; a missing or unavailable edge fails with IllegalTransitionError and
// an edge the acting actor is not the responsible party for fails with
// UnauthorizedError. The invariant being protected is that only the party
// currently responsible for the order (kitchen, courier or customer) can
// advance it.
//
// On success the status is set, updatedAt is bumped to now (never backwards)
// and the version increments. When a driver claims the order via an
// acceptance edge, the driver is recorded as well. Nothing else changes. On
// any failure the order is left completely unchanged.
func (o *Order) TransitionTo(target Status, acting *actor.Actor, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := acting.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	transitionRule, ok := getTransitionRules()[edge{from: o.status, to: target}]
	if !ok {
		return errs.NewIllegalTransitionError(o.status.String(), target.String())
	}

	if transitionRule.available != nil {
		if err := transitionRule.available(o); err != nil {
			return errs.NewIllegalTransitionErrorWithCause(o.status.String(), target.String(), err)
		}
	}

	if !transitionRule.authorized(o, acting) {
		return errs.NewUnauthorizedError(acting.Role().String(),
			fmt.Sprintf("transition order to %s", target))
	}

	o.status = target
	if transitionRule.assignsDriver {
		driverID := acting.ID()
		o.driverID = &driverID
	}
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
	o.version++
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setLines(lines []cart.Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]cart.Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = address
	return nil
}

func (o *Order) setDropoffAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoffAddress")
	}
	o.dropoffAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}
	o.totals = totals
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	o.updatedAt = createdAt
	return nil
}
