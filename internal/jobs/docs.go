// Package jobs provides scheduled background tasks for the bakery storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the order lifecycle.
//
// # Available Jobs
//
// 1. OrderTimeoutJob - Runs every five minutes to auto-complete orders left
// in ready for 24 hours and auto-cancel pending orders unpaid for 30 minutes.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processTimeoutsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep isolates per-order failures into its summary; the job only logs
// the totals. Query-level failures are logged as errors and retried on the
// next tick.
package jobs
