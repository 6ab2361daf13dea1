package catalog

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem factory function.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// Variation is a size or style choice on a menu item carrying a price delta
// relative to the base price, for example "Double Cheese" +10.00.
type Variation struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}

// Modifier is an optional add-on carrying a price delta, for example extra
// sauce. Any number of modifiers may be combined on a selection.
type Modifier struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}

// MenuItem is reference data describing a purchasable catalog entry.
//
// MenuItem follows these invariants:
//   - Base price is never negative (a negative price in the catalog is a
//     data-integrity defect, surfaced by the pricing engine)
//   - When variationsRequired is set, the item declares at least one variation
//   - Unavailable items cannot be priced into a cart
type MenuItem struct {
	id            kernel.UUID
	restaurantID  kernel.UUID
	name          string
	description   string
	basePrice     kernel.Money
	isAvailable   bool
	variations    []Variation
	variationsReq bool
	modifiers     []Modifier

	isConstructed bool
}

// NewMenuItem creates a catalog menu item. variationsRequired declares that a
// selection must pick one of the item's variations; it is rejected when the
// item has none to pick.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name, description string,
	basePrice kernel.Money,
	isAvailable bool,
	variations []Variation,
	variationsRequired bool,
	modifiers []Modifier,
) (*MenuItem, error) {
	item := &MenuItem{
		description:   description,
		isAvailable:   isAvailable,
		variationsReq: variationsRequired,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setBasePrice(basePrice),
		item.setVariations(variations, variationsRequired),
		item.setModifiers(modifiers),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the MenuItem was created via NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the restaurant this item belongs to.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the item's menu description.
func (m *MenuItem) Description() string {
	return m.description
}

// BasePrice returns the price before variation and modifier deltas.
func (m *MenuItem) BasePrice() kernel.Money {
	return m.basePrice
}

// IsAvailable reports whether the item may currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// VariationsRequired reports whether a selection must choose a variation.
func (m *MenuItem) VariationsRequired() bool {
	return m.variationsReq
}

// Variations returns a copy of the item's declared variations.
func (m *MenuItem) Variations() []Variation {
	out := make([]Variation, len(m.variations))
	copy(out, m.variations)
	return out
}

// Modifiers returns a copy of the item's declared modifiers.
func (m *MenuItem) Modifiers() []Modifier {
	out := make([]Modifier, len(m.modifiers))
	copy(out, m.modifiers)
	return out
}

// VariationByID looks up a declared variation. The second return value
// reports whether the id belongs to this item's variation set.
func (m *MenuItem) VariationByID(id kernel.UUID) (Variation, bool) {
	for _, v := range m.variations {
		if v.ID.IsEqual(id) {
			return v, true
		}
	}
	return Variation{}, false
}

// ModifierByID looks up a declared modifier. The second return value reports
// whether the id belongs to this item's modifier set.
func (m *MenuItem) ModifierByID(id kernel.UUID) (Modifier, bool) {
	for _, mod := range m.modifiers {
		if mod.ID.IsEqual(id) {
			return mod, true
		}
	}
	return Modifier{}, false
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setBasePrice(basePrice kernel.Money) error {
	if basePrice.IsNegative() {
		return errs.NewPricingIntegrityError("basePrice", basePrice.String())
	}
	m.basePrice = basePrice
	return nil
}

func (m *MenuItem) setVariations(variations []Variation, required bool) error {
	if required && len(variations) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("variations",
			fmt.Errorf("variations are mandatory but none are declared"))
	}
	m.variations = make([]Variation, len(variations))
	copy(m.variations, variations)
	return nil
}

func (m *MenuItem) setModifiers(modifiers []Modifier) error {
	m.modifiers = make([]Modifier, len(modifiers))
	copy(m.modifiers, modifiers)
	return nil
}
