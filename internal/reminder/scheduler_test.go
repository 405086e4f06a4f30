package reminder

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdeck.io/notifier/ent"
	entreminder "crewdeck.io/notifier/ent/reminder"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
	"crewdeck.io/notifier/internal/pkg/logger"
	"crewdeck.io/notifier/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := logger.Init("error", "json"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestOffsets(t *testing.T) {
	t.Parallel()

	require.Len(t, Offsets, 3)
	assert.Equal(t, entreminder.OffsetBEFORE_72H, Offsets[0].Label)
	assert.Equal(t, 72*time.Hour, Offsets[0].Duration)
	assert.Equal(t, entreminder.OffsetBEFORE_24H, Offsets[1].Label)
	assert.Equal(t, 24*time.Hour, Offsets[1].Duration)
	assert.Equal(t, entreminder.OffsetBEFORE_3H, Offsets[2].Label)
	assert.Equal(t, 3*time.Hour, Offsets[2].Duration)
}

func TestSchedulerSchedule(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sched_create")
	s := NewScheduler(client)
	ctx := context.Background()

	eventTime := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)
	reminders, err := s.Schedule(ctx, "departure-123", eventTime)
	require.NoError(t, err)
	require.Len(t, reminders, 3)

	byOffset := make(map[entreminder.Offset]*ent.Reminder, len(reminders))
	for _, r := range reminders {
		assert.Equal(t, "departure-123", r.ReferenceID)
		assert.False(t, r.Sent)
		assert.Nil(t, r.SentAt)
		assert.NotEmpty(t, r.Message)
		byOffset[r.Offset] = r
	}

	require.Contains(t, byOffset, entreminder.OffsetBEFORE_72H)
	require.Contains(t, byOffset, entreminder.OffsetBEFORE_24H)
	require.Contains(t, byOffset, entreminder.OffsetBEFORE_3H)
	assert.Equal(t, eventTime.Add(-72*time.Hour), byOffset[entreminder.OffsetBEFORE_72H].TriggerAt.UTC())
	assert.Equal(t, eventTime.Add(-24*time.Hour), byOffset[entreminder.OffsetBEFORE_24H].TriggerAt.UTC())
	assert.Equal(t, eventTime.Add(-3*time.Hour), byOffset[entreminder.OffsetBEFORE_3H].TriggerAt.UTC())
}

func TestSchedulerSchedule_EmptyReference(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sched_noref")
	s := NewScheduler(client)

	_, err := s.Schedule(context.Background(), "", time.Now().UTC())
	require.Error(t, err)
}

func TestSchedulerDue(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sched_due")
	s := NewScheduler(client)
	ctx := context.Background()
	now := time.Now().UTC()

	// Event 4 hours out: the 72h and 24h reminders are already due.
	_, err := s.Schedule(ctx, "departure-soon", now.Add(4*time.Hour))
	require.NoError(t, err)
	// Event a week out: nothing due yet.
	_, err = s.Schedule(ctx, "departure-far", now.Add(7*24*time.Hour))
	require.NoError(t, err)

	due, err := s.Due(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, entreminder.OffsetBEFORE_72H, due[0].Offset, "ordered by trigger ascending")
	assert.Equal(t, entreminder.OffsetBEFORE_24H, due[1].Offset)

	// Sent reminders drop out of the due set.
	require.NoError(t, s.MarkSent(ctx, due[0].ID))
	due, err = s.Due(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, entreminder.OffsetBEFORE_24H, due[0].Offset)
}

func TestSchedulerMarkSent_Idempotent(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sched_sent")
	s := NewScheduler(client)
	ctx := context.Background()

	reminders, err := s.Schedule(ctx, "departure-1", time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	id := reminders[0].ID

	require.NoError(t, s.MarkSent(ctx, id))

	first, err := client.Reminder.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, first.Sent)
	require.NotNil(t, first.SentAt)

	// Second invocation is a no-op and must not move sent_at.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.MarkSent(ctx, id))

	second, err := client.Reminder.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, second.SentAt.Equal(*first.SentAt))
}

func TestSchedulerMarkSent_Unknown(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sched_unknown")
	s := NewScheduler(client)

	err := s.MarkSent(context.Background(), "no-such-reminder")
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeReminderNotFound, appErr.Code)
}

func TestSchedulerDeleteForReference(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sched_delete")
	s := NewScheduler(client)
	ctx := context.Background()
	eventTime := time.Now().UTC().Add(48 * time.Hour)

	_, err := s.Schedule(ctx, "departure-old", eventTime)
	require.NoError(t, err)
	_, err = s.Schedule(ctx, "departure-keep", eventTime)
	require.NoError(t, err)

	n, err := s.DeleteForReference(ctx, "departure-old")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	remaining, err := client.Reminder.Query().
		Where(entreminder.ReferenceIDEQ("departure-old")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	kept, err := client.Reminder.Query().
		Where(entreminder.ReferenceIDEQ("departure-keep")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, kept)
}
