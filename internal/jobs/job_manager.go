package jobs

import (
	"fmt"
	"log/slog"

	"taza/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryDispatchJob  *DeliveryDispatchJob
	marketRateRefreshJob *MarketRateRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchDeliveriesCommandHandler,
	refreshHandler commands.RefreshMarketRatesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryDispatchJob:  NewDeliveryDispatchJob(dispatchHandler, logger),
		marketRateRefreshJob: NewMarketRateRefreshJob(refreshHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery dispatch job: %w", err)
	}

	if err := jm.marketRateRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deliveryDispatchJob.Stop()
		return fmt.Errorf("failed to start market rate refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.marketRateRefreshJob.Stop()
	jm.deliveryDispatchJob.Stop()
}
