package jobs

import (
	"context"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderProgressJob simulates fulfillment by advancing every undelivered order
// one lifecycle stage. Runs every ten seconds, so an order reaches Delivered
// about fifty seconds after placement.
type OrderProgressJob struct {
	handler commands.AdvanceOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderProgressJob creates the lifecycle advancement job.
func NewOrderProgressJob(handler commands.AdvanceOrdersCommandHandler, logger *slog.Logger) *OrderProgressJob {
	return &OrderProgressJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_progress_job"),
	}
}

// Start begins the order progress job to run every ten seconds.
func (j *OrderProgressJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order progress job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progress job started (running every 10 seconds)")
	return nil
}

// Stop stops the order progress job.
func (j *OrderProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progress job stopped")
}
