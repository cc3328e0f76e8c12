package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/lax56237/Daily-Drop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultOtpSweepSchedule runs the sweep every 30 seconds.
const DefaultOtpSweepSchedule = "*/30 * * * * *"

// OtpSweepJob removes expired account verification codes from stores that
// keep them in process memory.
type OtpSweepJob struct {
	sweeper  ports.OtpSweeper
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

// NewOtpSweepJob creates a sweep job. An empty schedule falls back to
// DefaultOtpSweepSchedule.
func NewOtpSweepJob(sweeper ports.OtpSweeper, schedule string, logger *slog.Logger) *OtpSweepJob {
	if schedule == "" {
		schedule = DefaultOtpSweepSchedule
	}
	return &OtpSweepJob{
		sweeper:  sweeper,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "otp_sweep_job"),
	}
}

// Run performs one sweep.
func (j *OtpSweepJob) Run(ctx context.Context) {
	removed, err := j.sweeper.Sweep(ctx, j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "OTP sweep failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.DebugContext(ctx, "Expired codes removed", "count", removed)
	}
}

// Start schedules the sweep.
func (j *OtpSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "OTP sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *OtpSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "OTP sweep job stopped")
}
