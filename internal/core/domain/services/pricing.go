package services

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/cart"
	"swiftdrop/internal/core/domain/model/catalog"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/errs"
)

// ErrMenuItemUnavailable is returned when a selection references a menu item
// the restaurant has switched off. Unavailable items stay visible in the
// catalog, so the pricing engine is the gate that keeps them out of carts.
var ErrMenuItemUnavailable = errors.New("menu item is not available")

// FeeSchedule supplies the marketplace fees the pricing engine adds on top of
// the food subtotal. Implementations decide how fees depend on the delivery
// zone and the order size.
type FeeSchedule interface {
	// DeliveryFee returns the courier fee for delivering into the given zone.
	DeliveryFee(zone string) kernel.Money

	// ServiceFee returns the platform fee for an order with the given food
	// subtotal.
	ServiceFee(foodSubtotal kernel.Money) kernel.Money
}

// FlatFeeSchedule charges the same delivery and service fee for every order
// regardless of zone or size. It is the schedule the platform launched with.
type FlatFeeSchedule struct {
	deliveryFee kernel.Money
	serviceFee  kernel.Money
}

// NewFlatFeeSchedule creates a FlatFeeSchedule with the given fees.
// Both fees must be non-negative.
func NewFlatFeeSchedule(deliveryFee, serviceFee kernel.Money) (FlatFeeSchedule, error) {
	if deliveryFee.IsNegative() {
		return FlatFeeSchedule{}, errs.NewPricingIntegrityError("deliveryFee", deliveryFee.String())
	}
	if serviceFee.IsNegative() {
		return FlatFeeSchedule{}, errs.NewPricingIntegrityError("serviceFee", serviceFee.String())
	}
	return FlatFeeSchedule{deliveryFee: deliveryFee, serviceFee: serviceFee}, nil
}

// DeliveryFee implements FeeSchedule.
func (f FlatFeeSchedule) DeliveryFee(string) kernel.Money {
	return f.deliveryFee
}

// ServiceFee implements FeeSchedule.
func (f FlatFeeSchedule) ServiceFee(kernel.Money) kernel.Money {
	return f.serviceFee
}

// PricingService is the domain service that owns every money calculation in
// the marketplace. The cart and the order never compute prices themselves;
// they carry the line and totals snapshots this service produces, so a priced
// amount can never drift from the catalog it was derived from.
//
// Business rules:
//   - Only available menu items can be priced
//   - Items with mandatory variations cannot be priced without one
//   - Variation and modifier references must exist on the priced item
//   - A priced unit is base price, plus the chosen variation's price,
//     plus the sum of the chosen modifiers' prices
//   - Fees come from the FeeSchedule, never from the caller
type PricingService struct {
	fees FeeSchedule
}

// NewPricingService creates a PricingService backed by the given fee schedule.
func NewPricingService(fees FeeSchedule) (PricingService, error) {
	if fees == nil {
		return PricingService{}, errs.NewValueIsRequiredError("fees")
	}
	return PricingService{fees: fees}, nil
}

// PriceSelection resolves a customer's menu selection against the catalog item
// and returns an immutable, fully priced cart line.
//
// Parameters:
//   - item: the catalog item being ordered
//   - variationID: the chosen variation, nil when the item has none chosen
//   - modifierIDs: the chosen add-ons, may be empty
//   - quantity: how many units, at least 1
//
// Returns ErrMenuItemUnavailable (wrapped) for switched-off items,
// errs.ErrValueIsRequired when a mandatory variation is missing and
// errs.ErrObjectNotFound for variation or modifier ids the item doesn't carry.
func (s PricingService) PriceSelection(
	item *catalog.MenuItem,
	variationID *kernel.UUID,
	modifierIDs []kernel.UUID,
	quantity int,
) (cart.Line, error) {
	if err := item.Validate(); err != nil {
		return cart.Line{}, err
	}

	if !item.IsAvailable() {
		return cart.Line{}, fmt.Errorf("%q: %w", item.Name(), ErrMenuItemUnavailable)
	}

	name := item.Name()
	unitPrice := item.BasePrice()

	if item.VariationsRequired() && variationID == nil {
		return cart.Line{}, errs.NewValueIsRequiredError("variationID")
	}

	if variationID != nil {
		variation, ok := item.VariationByID(*variationID)
		if !ok {
			return cart.Line{}, errs.NewObjectNotFoundError("variationID", variationID)
		}
		name = fmt.Sprintf("%s (%s)", item.Name(), variation.Name)
		unitPrice = unitPrice.Add(variation.Price)
	}

	for _, modifierID := range modifierIDs {
		modifier, ok := item.ModifierByID(modifierID)
		if !ok {
			return cart.Line{}, errs.NewObjectNotFoundError("modifierID", modifierID)
		}
		unitPrice = unitPrice.Add(modifier.Price)
	}

	if unitPrice.IsNegative() {
		return cart.Line{}, errs.NewPricingIntegrityError("unitPrice", unitPrice.String())
	}

	return cart.NewLine(item.ID(), name, quantity, unitPrice)
}

// PriceOrder folds priced cart lines into order totals for delivery into the
// given zone. The food subtotal is the sum of the line totals; delivery and
// service fees come from the fee schedule.
func (s PricingService) PriceOrder(lines []cart.Line, zone string) (order.Totals, error) {
	foodSubtotal := kernel.ZeroMoney()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return order.Totals{}, err
		}
		foodSubtotal = foodSubtotal.Add(line.Total())
	}

	return order.NewTotals(foodSubtotal, s.fees.DeliveryFee(zone), s.fees.ServiceFee(foodSubtotal))
}

// PriceParcel prices a pure parcel delivery into the given zone: no food, so
// the totals are fees only.
func (s PricingService) PriceParcel(zone string) (order.Totals, error) {
	return order.NewTotals(kernel.ZeroMoney(), s.fees.DeliveryFee(zone), s.fees.ServiceFee(kernel.ZeroMoney()))
}
