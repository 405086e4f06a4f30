// Package jobs defines River Queue job types for periodic maintenance:
// the notice expiry sweep and the reminder dispatch scan.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"crewdeck.io/notifier/internal/notification"
	"crewdeck.io/notifier/internal/pkg/logger"
)

// NoticeSweepArgs is the periodic maintenance job that removes notices whose
// expires_at has passed. Notices without an expiry are never touched.
type NoticeSweepArgs struct{}

// Kind returns the job kind identifier for the periodic expiry sweep.
func (NoticeSweepArgs) Kind() string { return "notice_sweep" }

// InsertOpts ensures at most one sweep is enqueued per period.
func (NoticeSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// NoticeSweepWorker runs the expiry sweeper on a schedule.
type NoticeSweepWorker struct {
	river.WorkerDefaults[NoticeSweepArgs]
	sweeper *notification.Sweeper
}

// NewNoticeSweepWorker creates the sweep worker.
func NewNoticeSweepWorker(sweeper *notification.Sweeper) *NoticeSweepWorker {
	return &NoticeSweepWorker{sweeper: sweeper}
}

// Work removes expired notice rows.
func (w *NoticeSweepWorker) Work(ctx context.Context, _ *river.Job[NoticeSweepArgs]) error {
	if w == nil || w.sweeper == nil {
		return fmt.Errorf("notice sweep worker is not initialized")
	}

	now := time.Now().UTC()
	deleted, err := w.sweeper.Sweep(ctx, now)
	if err != nil {
		return fmt.Errorf("sweep expired notices at %s: %w", now.Format(time.RFC3339), err)
	}

	logger.Info("notice sweep completed",
		zap.Int("deleted_rows", deleted),
		zap.String("swept_at", now.Format(time.RFC3339)),
	)
	return nil
}
