package commands

import (
	"context"
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler cancels pending orders that nobody has
// accepted within the configured age. Each order is cancelled in its own
// transaction: an order that races with a concurrent transition is simply
// skipped and picked up again on the next sweep.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale-order sweeps.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many orders were cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-cmd.OlderThan())
	stale, err := h.uowFactory.Create().OrderRepository().GetAllPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, aggregate := range stale {
		err = h.cancelOne(ctx, aggregate, cmd)
		switch {
		case err == nil:
			cancelled++
		case errors.Is(err, errs.ErrVersionConflict), errors.Is(err, errs.ErrIllegalTransition):
			// Someone moved the order under us. It is no longer stale-pending.
		default:
			return cancelled, err
		}
	}

	return cancelled, nil
}

func (h *CancelStaleOrdersCommandHandler) cancelOne(ctx context.Context, aggregate *order.Order, cmd CancelStaleOrdersCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := aggregate.TransitionTo(order.StatusCancelled, cmd.Acting(), time.Now()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
