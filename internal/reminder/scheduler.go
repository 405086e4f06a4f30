// Package reminder implements time-offset reminders tied to a future
// reference event, such as an upcoming departure.
//
// A reminder's lifecycle is pending → sent, terminal. There is no
// cancellation state: when an event changes, the caller deletes the
// obsolete batch and schedules a new one.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crewdeck.io/notifier/ent"
	entreminder "crewdeck.io/notifier/ent/reminder"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
	"crewdeck.io/notifier/internal/pkg/logger"
)

// Offset is one fixed trigger offset before the reference event.
type Offset struct {
	Label    entreminder.Offset
	Duration time.Duration
	// Phrase is the human wording used in the generated message.
	Phrase string
}

// Offsets is the fixed set of trigger offsets, furthest out first.
// Every scheduled event gets exactly one reminder per offset.
var Offsets = []Offset{
	{Label: entreminder.OffsetBEFORE_72H, Duration: 72 * time.Hour, Phrase: "in 3 days"},
	{Label: entreminder.OffsetBEFORE_24H, Duration: 24 * time.Hour, Phrase: "tomorrow"},
	{Label: entreminder.OffsetBEFORE_3H, Duration: 3 * time.Hour, Phrase: "in 3 hours"},
}

// Scheduler creates, queries, and retires reminders.
type Scheduler struct {
	client *ent.Client
}

// NewScheduler creates a reminder scheduler over the backing store.
func NewScheduler(client *ent.Client) *Scheduler {
	return &Scheduler{client: client}
}

// Schedule creates the full reminder batch for an event: one reminder per
// offset, trigger = eventTime − offset, all unsent. Past event times are
// accepted as-is; their reminders are simply already due. Temporal sanity is
// the caller's responsibility.
func (s *Scheduler) Schedule(ctx context.Context, referenceID string, eventTime time.Time) ([]*ent.Reminder, error) {
	if referenceID == "" {
		return nil, fmt.Errorf("reference id is required")
	}

	builders := make([]*ent.ReminderCreate, 0, len(Offsets))
	for _, off := range Offsets {
		builders = append(builders, s.client.Reminder.Create().
			SetID(uuid.NewString()).
			SetReferenceID(referenceID).
			SetOffset(off.Label).
			SetTriggerAt(eventTime.Add(-off.Duration)).
			SetMessage(fmt.Sprintf("Departure %s: your event on %s is coming up.",
				off.Phrase, eventTime.UTC().Format("Mon, 02 Jan 2006 15:04 MST"))).
			SetSent(false))
	}

	reminders, err := s.client.Reminder.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, apperrors.ErrStoreFailure(fmt.Errorf("schedule reminders for %s: %w", referenceID, err))
	}

	logger.Info("reminder batch scheduled",
		zap.String("reference_id", referenceID),
		zap.Time("event_time", eventTime),
		zap.Int("count", len(reminders)),
	)
	return reminders, nil
}

// Due returns every unsent reminder with trigger_at <= now, across all
// owners, ordered by trigger ascending.
func (s *Scheduler) Due(ctx context.Context, now time.Time) ([]*ent.Reminder, error) {
	reminders, err := s.client.Reminder.Query().
		Where(
			entreminder.SentEQ(false),
			entreminder.TriggerAtLTE(now),
		).
		Order(ent.Asc(entreminder.FieldTriggerAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due reminders: %w", err)
	}
	return reminders, nil
}

// MarkSent transitions a reminder to sent. The transition happens exactly
// once; re-invocation on an already-sent reminder is a no-op.
func (s *Scheduler) MarkSent(ctx context.Context, reminderID string) error {
	n, err := s.client.Reminder.Update().
		Where(
			entreminder.IDEQ(reminderID),
			entreminder.SentEQ(false),
		).
		SetSent(true).
		SetSentAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark reminder %s sent: %w", reminderID, err)
	}
	if n > 0 {
		return nil
	}

	exists, err := s.client.Reminder.Query().
		Where(entreminder.IDEQ(reminderID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check reminder %s: %w", reminderID, err)
	}
	if !exists {
		return apperrors.ErrReminderNotFoundf(reminderID)
	}
	return nil
}

// DeleteForReference removes every reminder of an event, sent or not.
// Called when the referenced event changes or disappears, before
// rescheduling.
func (s *Scheduler) DeleteForReference(ctx context.Context, referenceID string) (int, error) {
	n, err := s.client.Reminder.Delete().
		Where(entreminder.ReferenceIDEQ(referenceID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete reminders for %s: %w", referenceID, err)
	}
	return n, nil
}
