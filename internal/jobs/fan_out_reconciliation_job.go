package jobs

import (
	"context"
	"log/slog"

	"github.com/lax56237/Daily-Drop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs reconciliation every five minutes.
const DefaultReconcileSchedule = "0 */5 * * * *"

// FanOutReconciler retries seller routing for incompletely fanned-out orders.
type FanOutReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileFanOutCommand) (commands.ReconcileFanOutResult, error)
}

// FanOutReconciliationJob periodically routes order items that had no seller
// when the order was placed.
type FanOutReconciliationJob struct {
	handler  FanOutReconciler
	schedule string
	batch    int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFanOutReconciliationJob creates a reconciliation job. An empty schedule
// falls back to DefaultReconcileSchedule.
func NewFanOutReconciliationJob(handler FanOutReconciler, schedule string, logger *slog.Logger) *FanOutReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &FanOutReconciliationJob{
		handler:  handler,
		schedule: schedule,
		batch:    commands.DefaultReconcileBatch,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "fan_out_reconciliation_job"),
	}
}

// Run performs one reconciliation pass.
func (j *FanOutReconciliationJob) Run(ctx context.Context) {
	cmd, err := commands.NewReconcileFanOutCommand(j.batch)
	if err != nil {
		j.logger.ErrorContext(ctx, "Fan-out reconciliation misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Fan-out reconciliation failed", "error", err)
		return
	}
	if result.Examined == 0 {
		return
	}

	level := slog.LevelInfo
	if result.StillIncomplete > 0 {
		level = slog.LevelWarn
	}
	j.logger.Log(ctx, level, "Fan-out reconciliation finished",
		"examined", result.Examined,
		"seller_orders", result.SellerOrders,
		"still_incomplete", result.StillIncomplete,
	)
}

// Start schedules reconciliation.
func (j *FanOutReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fan-out reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job and waits for a running pass to finish.
func (j *FanOutReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fan-out reconciliation job stopped")
}
