package commands

import (
	"context"
	"errors"
	"time"

	"swiftdrop/internal/pkg/errs"
)

// maxTransitionAttempts bounds optimistic-concurrency retries. One retry is
// enough: a loser re-reads the winner's state, and the aggregate then rejects
// the move on its own terms if it is no longer legal.
const maxTransitionAttempts = 2

// TransitionOrderCommandHandler handles the business logic for order
// lifecycle transitions.
//
// Concurrency: the repository write is compare-and-swap on the aggregate
// version. When two actors race on the same order, the loser gets
// errs.ErrVersionConflict, and the handler re-reads the order and re-applies
// the transition against the fresh state. A transition that became illegal
// surfaces as errs.ErrIllegalTransition, never as a silent overwrite.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for transition operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var err error
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		err = h.transitionOnce(ctx, cmd)
		if err == nil || !errors.Is(err, errs.ErrVersionConflict) {
			return err
		}
	}

	return err
}

func (h *TransitionOrderCommandHandler) transitionOnce(ctx context.Context, cmd TransitionOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Acting(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
