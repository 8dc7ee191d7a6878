package jobs

import (
	"context"
	"log/slog"

	"taza/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryDispatchJob manages the scheduled creation of courier legs.
// Runs every second so partner-flow orders get their pickup and return legs
// without manual intervention.
type DeliveryDispatchJob struct {
	handler commands.DispatchDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryDispatchJob creates a new job for dispatching courier legs.
// Uses DispatchDeliveriesCommandHandler to scan waiting orders every second.
func NewDeliveryDispatchJob(handler commands.DispatchDeliveriesCommandHandler, logger *slog.Logger) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_dispatch_job"),
	}
}

// Start begins the delivery dispatch job to run every second.
func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewDispatchDeliveriesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to create dispatch command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started (running every second)")
	return nil
}

// Stop stops the delivery dispatch job.
func (j *DeliveryDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}
