// Package jobs provides scheduled background tasks for the delivery marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel PENDING orders that
// no restaurant accepted within the configured time-to-live
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, staleOrderTTL, platformActor, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cancellation job uses the cron expression "0 * * * * *" which means it
// runs at the top of every minute. Stale orders are a cleanup concern, so
// minute-level granularity is sufficient.
//
// # Error Handling
//
// - Orders that were transitioned concurrently are skipped by the sweep,
// not treated as failures
// - Failed job starts will stop any already running jobs
package jobs
