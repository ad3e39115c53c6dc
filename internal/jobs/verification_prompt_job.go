package jobs

import (
	"context"
	"log/slog"

	"grocery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// VerificationPromptJob prompts customers of freshly delivered orders to hand
// the order number to the rider. Runs every second so the prompt lands shortly
// after the verification delay elapses.
type VerificationPromptJob struct {
	handler commands.RequestVerificationCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewVerificationPromptJob creates the verification prompt job.
func NewVerificationPromptJob(
	handler commands.RequestVerificationCommandHandler,
	logger *slog.Logger,
) *VerificationPromptJob {
	return &VerificationPromptJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "verification_prompt_job"),
	}
}

// Start begins the verification prompt job to run every second.
func (j *VerificationPromptJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRequestVerificationCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Verification prompt job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Verification prompt job started (running every second)")
	return nil
}

// Stop stops the verification prompt job.
func (j *VerificationPromptJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Verification prompt job stopped")
}
