// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. OrderProgressJob - Runs every ten seconds to advance undelivered orders one lifecycle stage
// 2. VerificationPromptJob - Runs every second to prompt customers of delivered orders for verification
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceOrdersHandler, requestVerificationHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Job failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
