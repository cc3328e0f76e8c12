// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Every schedule is a six-field cron expression with seconds.
//
// # Available Jobs
//
// 1. FanOutReconciliationJob - routes order items that had no seller at placement (default every five minutes)
// 2. OtpSweepJob - drops expired account verification codes from the in-memory store (default every 30 seconds)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(memoryStore, reconcileHandler, jobs.Schedules{}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Pass a nil sweeper when codes live in Redis; keys expire there on their own.
//
// # Error Handling
//
// Failures are logged and the job keeps its schedule. A failed job start
// stops any already running jobs. Reconciliation passes never overlap.
package jobs
