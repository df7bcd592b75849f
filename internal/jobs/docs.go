// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the service needs.
//
// # Available Jobs
//
// 1. PendingPromotionJob - Periodically promotes PENDING orders to PROCESSING
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(promotionJob)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Coordination
//
// The promotion job runs on every service instance, but only one instance
// performs work per tick: each run first takes a database-backed named lock
// and silently skips the tick when another instance already holds it.
// Within a single instance, a tick that is still running suppresses the
// next one instead of overlapping it.
package jobs
