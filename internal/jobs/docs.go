// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. DeliveryDispatchJob - Runs every second to create the courier legs that partner-flow orders are waiting for
// 2. MarketRateRefreshJob - Runs every five minutes to recompute per-category market-average prices from completed orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, refreshHandler, logger)
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
// The dispatch job uses the cron expression "* * * * * *" and runs every
// second, keeping courier legs close to real time. The rate refresh uses
// "0 */5 * * * *" since market averages move slowly.
//
// # Error Handling
//
// - Dispatch failures are logged and retried on the next tick
// - Refresh failures are logged; the previous rates stay in effect
// - Failed job starts will stop any already running jobs
package jobs
