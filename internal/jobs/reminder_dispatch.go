package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"crewdeck.io/notifier/internal/pkg/logger"
	"crewdeck.io/notifier/internal/reminder"
)

// ReminderDispatchArgs is the periodic job that scans for due reminders and
// hands them to the configured delivery channel.
type ReminderDispatchArgs struct{}

// Kind returns the job kind identifier for reminder dispatch.
func (ReminderDispatchArgs) Kind() string { return "reminder_dispatch" }

// InsertOpts ensures dispatch runs do not pile up when a previous run is slow.
func (ReminderDispatchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// ReminderDispatchWorker delivers due reminders. A reminder is marked sent
// only after its delivery succeeds, so a failed delivery is retried on the
// next run. Failures are isolated per reminder and never abort the batch.
type ReminderDispatchWorker struct {
	river.WorkerDefaults[ReminderDispatchArgs]
	scheduler *reminder.Scheduler
	delivery  reminder.Delivery
}

// NewReminderDispatchWorker creates the dispatch worker.
func NewReminderDispatchWorker(scheduler *reminder.Scheduler, delivery reminder.Delivery) *ReminderDispatchWorker {
	return &ReminderDispatchWorker{scheduler: scheduler, delivery: delivery}
}

// Work scans and delivers every reminder due at the time of the run.
func (w *ReminderDispatchWorker) Work(ctx context.Context, _ *river.Job[ReminderDispatchArgs]) error {
	if w == nil || w.scheduler == nil || w.delivery == nil {
		return fmt.Errorf("reminder dispatch worker is not initialized")
	}

	now := time.Now().UTC()
	due, err := w.scheduler.Due(ctx, now)
	if err != nil {
		return fmt.Errorf("scan due reminders at %s: %w", now.Format(time.RFC3339), err)
	}
	if len(due) == 0 {
		return nil
	}

	delivered := 0
	for _, r := range due {
		if err := w.delivery.Deliver(ctx, r); err != nil {
			logger.Error("reminder delivery failed",
				zap.String("reminder_id", r.ID),
				zap.String("reference_id", r.ReferenceID),
				zap.Error(err),
			)
			continue
		}
		if err := w.scheduler.MarkSent(ctx, r.ID); err != nil {
			logger.Error("failed to mark reminder sent",
				zap.String("reminder_id", r.ID),
				zap.Error(err),
			)
			continue
		}
		delivered++
	}

	logger.Info("reminder dispatch completed",
		zap.Int("due", len(due)),
		zap.Int("delivered", delivered),
	)
	return nil
}
