package order

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

// ErrTotalsAreNotConstructed is returned when a Totals instance was not
// created through the NewTotals factory function.
var ErrTotalsAreNotConstructed = errors.New("Totals must be created via NewTotals constructor")

// Totals is the monetary summary of an order: the food subtotal plus the
// delivery and service fees, with the grand total derived from them.
//
// Totals follows these invariants:
//   - Every component is non-negative
//   - TotalFee always equals FoodSubtotal + DeliveryFee + ServiceFee
//
// The grand total is computed, never supplied, so the sum invariant cannot
// be violated by a caller.
type Totals struct { //nolint:recvcheck //using for validation
	foodSubtotal kernel.Money
	deliveryFee  kernel.Money
	serviceFee   kernel.Money
	totalFee     kernel.Money

	guard guard.ConstructorGuard
}

// NewTotals creates the order totals from their three components and derives
// the grand total. Negative components are rejected as pricing integrity
// defects.
func NewTotals(foodSubtotal, deliveryFee, serviceFee kernel.Money) (Totals, error) {
	t := Totals{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setFoodSubtotal(foodSubtotal),
		t.setDeliveryFee(deliveryFee),
		t.setServiceFee(serviceFee),
	); err != nil {
		return Totals{}, err
	}

	t.totalFee = t.foodSubtotal.Add(t.deliveryFee).Add(t.serviceFee)
	return t, nil
}

// RestoreTotals rebuilds totals from persistence, re-checking the sum
// invariant against the stored grand total.
func RestoreTotals(foodSubtotal, deliveryFee, serviceFee, totalFee kernel.Money) (Totals, error) {
	t, err := NewTotals(foodSubtotal, deliveryFee, serviceFee)
	if err != nil {
		return Totals{}, err
	}

	if !t.totalFee.IsEqual(totalFee) {
		return Totals{}, errs.NewPricingIntegrityErrorWithCause("totalFee", totalFee.String(),
			fmt.Errorf("stored total does not equal %s", t.totalFee))
	}

	return t, nil
}

// Validate ensures the totals were created through a constructor.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}

// FoodSubtotal returns the sum of the order's line totals.
func (t Totals) FoodSubtotal() kernel.Money {
	return t.foodSubtotal
}

// DeliveryFee returns the delivery fee from the fee schedule.
func (t Totals) DeliveryFee() kernel.Money {
	return t.deliveryFee
}

// ServiceFee returns the platform service fee from the fee schedule.
func (t Totals) ServiceFee() kernel.Money {
	return t.serviceFee
}

// TotalFee returns the derived grand total.
func (t Totals) TotalFee() kernel.Money {
	return t.totalFee
}

func (t *Totals) setFoodSubtotal(v kernel.Money) error {
	if v.IsNegative() {
		return errs.NewPricingIntegrityError("foodSubtotal", v.String())
	}
	t.foodSubtotal = v
	return nil
}

func (t *Totals) setDeliveryFee(v kernel.Money) error {
	if v.IsNegative() {
		return errs.NewPricingIntegrityError("deliveryFee", v.String())
	}
	t.deliveryFee = v
	return nil
}

func (t *Totals) setServiceFee(v kernel.Money) error {
	if v.IsNegative() {
		return errs.NewPricingIntegrityError("serviceFee", v.String())
	}
	t.serviceFee = v
	return nil
}
