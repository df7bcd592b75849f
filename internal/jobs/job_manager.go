package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingPromotionJob *PendingPromotionJob
}

// NewJobManager creates a new job manager owning all scheduled jobs.
func NewJobManager(pendingPromotionJob *PendingPromotionJob) *JobManager {
	return &JobManager{
		pendingPromotionJob: pendingPromotionJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingPromotionJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending promotion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingPromotionJob.Stop()
}
