package cart

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is the resolved, priced form of a menu selection: the item name
// snapshot, the chosen quantity and the unit price with variation and
// modifier deltas already folded in.
//
// Line follows these invariants:
//   - Quantity is at least 1
//   - Unit price and line total are never negative
//   - Total always equals unit price times quantity
//
// A Line is immutable once created. It is owned by the in-progress cart and
// moves unchanged into the order snapshot on checkout.
type Line struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
	total      kernel.Money

	guard guard.ConstructorGuard
}

// NewLine creates a priced cart line. The unit price must already include
// variation and modifier deltas; the line total is derived from it.
func NewLine(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setName(name),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	line.total = line.unitPrice.MulInt(line.quantity)
	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// MenuItemID returns the catalog item this line was priced from.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the denormalized item name snapshot.
func (l Line) Name() string {
	return l.name
}

// Quantity returns the number of units on this line.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the resolved per-unit price.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns the line total: unit price times quantity.
func (l Line) Total() kernel.Money {
	return l.total
}

func (l *Line) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsNegative() {
		return errs.NewPricingIntegrityError("unitPrice", unitPrice.String())
	}
	l.unitPrice = unitPrice
	return nil
}
