package commands

import (
	"context"
	"time"

	"swiftdrop/internal/core/domain/model/order"
)

// CheckoutCommandHandler handles the business logic for placing an order.
// Builds the order aggregate in PENDING status from the command's priced
// snapshot and persists it transactionally.
type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCheckoutCommandHandler(uowFactory OrderUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Uses a transaction so the order is persisted completely or not at all.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.Lines(),
		cmd.PickupAddress(),
		cmd.DropoffAddress(),
		cmd.PaymentMethod(),
		cmd.Totals(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
