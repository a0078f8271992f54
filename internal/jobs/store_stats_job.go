package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"serviceordering/internal/core/ports"
)

// StoreStatsJob periodically reports how many service orders and hub
// registrations are currently stored. The numbers give operators a cheap
// signal about store growth without querying the API.
type StoreStatsJob struct {
	orders    ports.OrderRepository
	listeners ports.ListenerRepository
	cron      *cron.Cron
	schedule  string
	logger    *slog.Logger
}

// NewStoreStatsJob creates a job that logs store statistics on the given
// cron schedule (with a seconds field, e.g. "0 * * * * *" for every minute).
func NewStoreStatsJob(
	orders ports.OrderRepository,
	listeners ports.ListenerRepository,
	schedule string,
	logger *slog.Logger,
) *StoreStatsJob {
	return &StoreStatsJob{
		orders:    orders,
		listeners: listeners,
		cron:      cron.New(cron.WithSeconds()),
		schedule:  schedule,
		logger:    logger.With("component", "store_stats_job"),
	}
}

// Start begins periodic reporting on the configured schedule.
func (j *StoreStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		orders, err := j.orders.List(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Store stats job failed to list service orders", "error", err)
			return
		}

		listeners, err := j.listeners.List(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Store stats job failed to list hub registrations", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Store statistics",
			"service_orders", len(orders),
			"hub_registrations", len(listeners))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job.
func (j *StoreStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Store stats job stopped")
}
