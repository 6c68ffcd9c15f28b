package jobs

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderTimeoutJob runs the scheduled transition sweep: auto-completing
// orders that sat in ready for a day and auto-cancelling unpaid orders.
// Runs every five minutes; the timeout windows are measured in hours and
// minutes, so a tighter schedule would only add load.
type OrderTimeoutJob struct {
	handler commands.ProcessOrderTimeoutsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderTimeoutJob creates the timeout sweep job.
func NewOrderTimeoutJob(handler commands.ProcessOrderTimeoutsCommandHandler, logger *slog.Logger) *OrderTimeoutJob {
	return &OrderTimeoutJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_timeout_job"),
	}
}

// Start schedules the sweep every five minutes.
func (j *OrderTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		summary, err := j.handler.Handle(ctx, commands.NewProcessOrderTimeoutsCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order timeout sweep failed", "error", err)
		}
		if len(summary.AutoCompleted) > 0 || len(summary.AutoCancelled) > 0 || len(summary.Failures) > 0 {
			j.logger.InfoContext(ctx, "Order timeout sweep finished",
				"auto_completed", len(summary.AutoCompleted),
				"auto_cancelled", len(summary.AutoCancelled),
				"failures", len(summary.Failures),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order timeout job started (running every five minutes)")
	return nil
}

// Stop stops the timeout sweep job.
func (j *OrderTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order timeout job stopped")
}
