package jobs

import (
	"fmt"
	"log/slog"

	"github.com/lax56237/Daily-Drop/internal/core/ports"
)

// Schedules holds the cron specs (with seconds) of the jobs.
type Schedules struct {
	OtpSweep  string
	Reconcile string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	otpSweepJob       *OtpSweepJob
	reconciliationJob *FanOutReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs. The sweep
// job is only created when sweeper is not nil; stores with native expiry
// need none.
func NewJobManager(
	sweeper ports.OtpSweeper,
	reconciler FanOutReconciler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		reconciliationJob: NewFanOutReconciliationJob(reconciler, schedules.Reconcile, logger),
	}
	if sweeper != nil {
		jm.otpSweepJob = NewOtpSweepJob(sweeper, schedules.OtpSweep, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start fan-out reconciliation job: %w", err)
	}

	if jm.otpSweepJob != nil {
		if err := jm.otpSweepJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.reconciliationJob.Stop()
			return fmt.Errorf("failed to start OTP sweep job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.otpSweepJob != nil {
		jm.otpSweepJob.Stop()
	}
	jm.reconciliationJob.Stop()
}
