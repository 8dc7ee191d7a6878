package jobs

import (
	"context"
	"log/slog"

	"taza/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MarketRateRefreshJob manages the scheduled recomputation of per-category
// market-average prices. Runs every five minutes; completed orders shift the
// averages slowly, so a tighter schedule would only add load.
type MarketRateRefreshJob struct {
	handler commands.RefreshMarketRatesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMarketRateRefreshJob creates a new job for refreshing market rates.
func NewMarketRateRefreshJob(handler commands.RefreshMarketRatesCommandHandler, logger *slog.Logger) *MarketRateRefreshJob {
	return &MarketRateRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "market_rate_refresh_job"),
	}
}

// Start begins the market rate refresh job to run every five minutes.
func (j *MarketRateRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewRefreshMarketRatesCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to create refresh command", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Market rate refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Market rate refresh job started (running every 5 minutes)")
	return nil
}

// Stop stops the market rate refresh job.
func (j *MarketRateRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Market rate refresh job stopped")
}
