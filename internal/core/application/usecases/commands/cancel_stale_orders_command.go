package commands

import (
	"errors"
	"fmt"
	"time"

	"swiftdrop/internal/core/domain/model/actor"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents a request to cancel every order that
// has sat in PENDING longer than the given age. The acting actor is the
// platform party the cancellations are attributed to, so the usual
// authorization rules of the order lifecycle still apply.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration
	acting    *actor.Actor

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale pending orders.
func NewCancelStaleOrdersCommand(olderThan time.Duration, acting *actor.Actor) (CancelStaleOrdersCommand, error) {
	cmd := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOlderThan(olderThan),
		cmd.setActing(acting),
	); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum age of a pending order before it is cancelled.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

// Acting returns the actor the cancellations are attributed to.
func (c CancelStaleOrdersCommand) Acting() *actor.Actor {
	return c.acting
}

func (c *CancelStaleOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("olderThan", fmt.Errorf("%s is not a positive duration", olderThan))
	}

	c.olderThan = olderThan
	return nil
}

func (c *CancelStaleOrdersCommand) setActing(acting *actor.Actor) error {
	if err := acting.Validate(); err != nil {
		return err
	}

	c.acting = acting
	return nil
}
