package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eatery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpirationJob cancels pending orders that were never confirmed.
// Runs every minute and expires orders older than the configured age.
type OrderExpirationJob struct {
	handler commands.ExpireOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpirationJob creates a job that expires stale pending orders.
// maxAge is how long an order may stay pending before it is cancelled.
func NewOrderExpirationJob(
	handler commands.ExpireOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "order_expiration_job"),
	}
}

// Start begins the expiration job to run every minute.
func (j *OrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireOrdersCommand(time.Now().Add(-j.maxAge))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order expiration job failed to build command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An empty run is the normal case, not a failure
			if !errors.Is(handleErr, commands.ErrNoStaleOrders) {
				j.logger.ErrorContext(ctx, "Order expiration job failed", "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiration job started (running every minute)")
	return nil
}

// Stop stops the expiration job.
func (j *OrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiration job stopped")
}
