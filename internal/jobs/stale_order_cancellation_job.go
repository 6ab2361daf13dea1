package jobs

import (
	"context"
	"log/slog"
	"time"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/actor"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob manages the scheduled cancellation of abandoned orders.
// Runs every minute to cancel PENDING orders no restaurant has accepted in time.
type StaleOrderCancellationJob struct {
	handler   commands.CancelStaleOrdersCommandHandler
	olderThan time.Duration
	acting    *actor.Actor
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderCancellationJob creates a new job for cancelling stale orders.
// The sweep acts as the given platform actor and targets orders that have
// been PENDING for longer than olderThan.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	olderThan time.Duration,
	acting *actor.Actor,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler:   handler,
		olderThan: olderThan,
		acting:    acting,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the stale order cancellation job to run every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.olderThan, j.acting)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation command is invalid", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err, "cancelled", cancelled)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "cancelled", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)")
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
