package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdeck.io/notifier/ent"
	entnotice "crewdeck.io/notifier/ent/notice"
	entreminder "crewdeck.io/notifier/ent/reminder"
	"crewdeck.io/notifier/internal/reminder"
)

func newTestTriggers(t *testing.T, prefix string) (*Triggers, *ent.Client) {
	t.Helper()

	coord, client := newTestCoordinator(t, prefix, nil)
	return NewTriggers(coord, reminder.NewScheduler(client)), client
}

func TestTriggersOnCertificateExpiring(t *testing.T) {
	t.Parallel()

	triggers, client := newTestTriggers(t, "trig_cert")
	ctx := context.Background()
	expiresOn := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)

	triggers.OnCertificateExpiring(ctx, "u-1", "cert-1", "GMDSS GOC", expiresOn, 10)

	n, err := client.Notice.Query().Where(entnotice.UserIDEQ("u-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entnotice.CategoryCERTIFICATE_EXPIRY, n.Category)
	assert.Equal(t, entnotice.PriorityURGENT, n.Priority, "10 days remaining sits in the urgent band")
	assert.Contains(t, n.Message, "GMDSS GOC")
	assert.Contains(t, n.Message, "10")
	assert.Equal(t, "cert-1", n.ActionTarget)
}

func TestTriggersOnDeparture_NoticeAndReminderBatch(t *testing.T) {
	t.Parallel()

	triggers, client := newTestTriggers(t, "trig_departure")
	ctx := context.Background()
	departure := time.Now().UTC().Add(10 * 24 * time.Hour)

	triggers.OnDeparture(ctx, "u-1", "ticket-7", "MV Northern Star", "Rotterdam", departure)

	n, err := client.Notice.Query().Where(entnotice.UserIDEQ("u-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entnotice.CategoryTRAVEL_REMINDER, n.Category)
	assert.Equal(t, entnotice.PriorityLOW, n.Priority, "ten days out is below every travel band")
	assert.Contains(t, n.Message, "MV Northern Star")
	assert.Contains(t, n.Message, "Rotterdam")

	reminders, err := client.Reminder.Query().
		Where(entreminder.ReferenceIDEQ("ticket-7")).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, reminders, 3)
}

func TestTriggersOnCircularPublished(t *testing.T) {
	t.Parallel()

	triggers, client := newTestTriggers(t, "trig_circular")
	ctx := context.Background()

	mustCreatePreference(t, client, "u-muted", []string{CategoryGeneral})

	triggers.OnCircularPublished(ctx, []string{"u-1", "u-muted", "u-2"}, "circ-1", "2026-014", "Revised garbage management plan")

	count, err := client.Notice.Query().
		Where(entnotice.CategoryEQ(entnotice.CategoryNEW_CIRCULAR)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestTriggersOnCircularOverdue_PriorityBands(t *testing.T) {
	t.Parallel()

	triggers, client := newTestTriggers(t, "trig_overdue")
	ctx := context.Background()

	triggers.OnCircularOverdue(ctx, "u-mild", "circ-1", "2026-014", 3)
	triggers.OnCircularOverdue(ctx, "u-late", "circ-1", "2026-014", 9)

	mild, err := client.Notice.Query().Where(entnotice.UserIDEQ("u-mild")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entnotice.PriorityHIGH, mild.Priority)

	late, err := client.Notice.Query().Where(entnotice.UserIDEQ("u-late")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entnotice.PriorityURGENT, late.Priority)
}

func TestTriggersOnCrewMessage_RespectsPreference(t *testing.T) {
	t.Parallel()

	triggers, client := newTestTriggers(t, "trig_message")
	ctx := context.Background()

	mustCreatePreference(t, client, "u-muted", []string{CategoryGeneral})

	triggers.OnCrewMessage(ctx, "u-1", "Second Engineer", "Spare parts arrived")
	triggers.OnCrewMessage(ctx, "u-muted", "Second Engineer", "Spare parts arrived")

	notices, err := client.Notice.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "u-1", notices[0].UserID)
	assert.Equal(t, "Message from Second Engineer", notices[0].Title)
}
