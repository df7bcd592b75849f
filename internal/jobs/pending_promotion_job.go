package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// promotionLockName identifies the promotion job's lease in the lock table.
// All instances must use the same name to contend for the same lock.
const promotionLockName = "PendingPromotionJob.promote"

// promotionHandler is the slice of the command layer the job needs.
type promotionHandler interface {
	Handle(ctx context.Context, cmd commands.PromotePendingOrdersCommand) (int, error)
}

// PendingPromotionJob periodically moves all PENDING orders to PROCESSING.
// Every instance schedules the job, but a shared lock ensures only one of
// them does the work on any given tick.
type PendingPromotionJob struct {
	handler  promotionHandler
	locks    ports.LockProvider
	cron     *cron.Cron
	interval time.Duration
	logger   *slog.Logger
}

// NewPendingPromotionJob creates the promotion job. The interval controls
// how often the job fires; lock contention across instances is handled by
// the lock provider, and overlapping ticks within one instance are skipped.
func NewPendingPromotionJob(
	handler commands.PromotePendingOrdersCommandHandler,
	locks ports.LockProvider,
	interval time.Duration,
	logger *slog.Logger,
) *PendingPromotionJob {
	return &PendingPromotionJob{
		handler:  handler,
		locks:    locks,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		interval: interval,
		logger:   logger.With("component", "pending_promotion_job"),
	}
}

// Start schedules the promotion job at the configured interval.
func (j *PendingPromotionJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending promotion job started", "interval", j.interval.String())
	return nil
}

// Stop stops the promotion job.
func (j *PendingPromotionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending promotion job stopped")
}

// run executes one promotion tick. Losing the lock race to another
// instance is the normal case in a multi-instance deployment and is not
// reported as an error.
func (j *PendingPromotionJob) run() {
	ctx := context.Background()

	lock, err := j.locks.Acquire(ctx, promotionLockName)
	if err != nil {
		if errors.Is(err, ports.ErrLockAlreadyHeld) {
			j.logger.DebugContext(ctx, "Promotion tick skipped, lock held elsewhere")
			return
		}
		j.logger.ErrorContext(ctx, "Failed to acquire promotion lock", "error", err)
		return
	}
	defer func() {
		if releaseErr := lock.Release(ctx); releaseErr != nil {
			j.logger.ErrorContext(ctx, "Failed to release promotion lock", "error", releaseErr)
		}
	}()

	promoted, err := j.handler.Handle(ctx, commands.NewPromotePendingOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending promotion job failed", "error", err)
		return
	}

	if promoted > 0 {
		j.logger.InfoContext(ctx, "Promoted pending orders", "count", promoted)
	}
}
