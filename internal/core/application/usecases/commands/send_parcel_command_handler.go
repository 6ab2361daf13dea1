package commands

import (
	"context"
	"time"

	"swiftdrop/internal/core/domain/model/order"
)

// SendParcelCommandHandler handles the business logic for parcel deliveries.
type SendParcelCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendParcelCommandHandler creates a handler for parcel delivery operations.
func NewSendParcelCommandHandler(uowFactory OrderUoWFactory) SendParcelCommandHandler {
	return SendParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel command, creating an itemless PENDING order.
func (h *SendParcelCommandHandler) Handle(ctx context.Context, cmd SendParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	parcel, err := order.NewParcelOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
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

	if err = uow.OrderRepository().Add(ctx, parcel); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
