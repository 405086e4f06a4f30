package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdeck.io/notifier/ent"
	entnotice "crewdeck.io/notifier/ent/notice"
	"crewdeck.io/notifier/internal/identity"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
	"crewdeck.io/notifier/internal/pkg/worker"
	"crewdeck.io/notifier/internal/testutil"
)

func newTestCoordinator(t *testing.T, prefix string, directory identity.Directory) (*Coordinator, *ent.Client) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	pool, err := worker.NewFanoutPool(4)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	gate := NewGate(client, time.Minute)
	return NewCoordinator(client, gate, pool, directory), client
}

func TestCoordinatorNotify_PersistsTemplateNotice(t *testing.T) {
	t.Parallel()

	coord, client := newTestCoordinator(t, "fanout_notify", nil)
	ctx := context.Background()

	delivered, err := coord.Notify(ctx, "u-1", Spec{
		Category:     CategoryCrewMessage,
		FromTemplate: true,
		Variables: map[string]string{
			"sender":  "Chief Mate",
			"message": "Muster drill at 0800",
		},
	})
	require.NoError(t, err)
	assert.True(t, delivered)

	n, err := client.Notice.Query().Where(entnotice.UserIDEQ("u-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Message from Chief Mate", n.Title)
	assert.Equal(t, "Muster drill at 0800", n.Message)
	assert.False(t, n.Read)
	assert.NotEmpty(t, n.ID)
}

func TestCoordinatorNotify_SuppressedByPreference(t *testing.T) {
	t.Parallel()

	coord, client := newTestCoordinator(t, "fanout_suppressed", nil)
	ctx := context.Background()

	mustCreatePreference(t, client, "u-1", []string{CategoryCertificateExpiry})

	delivered, err := coord.Notify(ctx, "u-1", Spec{
		Category: CategoryGeneral,
		Title:    "Hello",
		Message:  "World",
	})
	require.NoError(t, err, "suppression is a no-op, not an error")
	assert.False(t, delivered)

	count, err := client.Notice.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCoordinatorNotify_StoreFailureCode(t *testing.T) {
	t.Parallel()

	coord, client := newTestCoordinator(t, "fanout_storefail", nil)
	ctx := context.Background()

	// Warm the gate cache with one successful delivery, then cut the store
	// so the next persist fails.
	delivered, err := coord.Notify(ctx, "u-1", Spec{Category: CategoryGeneral, Title: "t", Message: "m"})
	require.NoError(t, err)
	require.True(t, delivered)
	require.NoError(t, client.Close())

	_, err = coord.Notify(ctx, "u-1", Spec{Category: CategoryGeneral, Title: "t", Message: "m"})
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeStoreFailure, appErr.Code)
}

func TestCoordinatorNotifyMany_IsolatesSuppressedRecipients(t *testing.T) {
	t.Parallel()

	coord, client := newTestCoordinator(t, "fanout_many", nil)
	ctx := context.Background()

	// u-blocked disables the category; everyone else gets the notice.
	mustCreatePreference(t, client, "u-blocked", []string{CategoryCrewMessage})

	userIDs := []string{"u-1", "u-2", "u-blocked", "u-3"}
	notified := coord.NotifyMany(ctx, userIDs, Spec{
		Category: CategoryGeneral,
		Title:    "Port agent changed",
		Message:  "See updated contact sheet",
	})

	assert.Equal(t, 3, notified)

	count, err := client.Notice.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCoordinatorNotifyMany_LargeBatchBounded(t *testing.T) {
	t.Parallel()

	coord, client := newTestCoordinator(t, "fanout_batch", nil)
	ctx := context.Background()

	userIDs := make([]string, 40)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("crew-%02d", i)
	}

	notified := coord.NotifyMany(ctx, userIDs, Spec{
		Category:     CategoryDocumentUpdate,
		FromTemplate: true,
		Variables: map[string]string{
			"document":   "SMS Manual",
			"updated_by": "DPA",
		},
	})
	assert.Equal(t, len(userIDs), notified)

	count, err := client.Notice.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(userIDs), count)
}

func TestCoordinatorNotifyMany_CancelledMidBatchReturns(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "fanout_cancel")
	pool, err := worker.NewFanoutPool(1)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	coord := NewCoordinator(client, NewGate(client, time.Minute), pool, nil)

	// Occupy the single worker so every recipient task queues behind it.
	release := make(chan struct{})
	require.NoError(t, pool.Submit(context.Background(), func(ctx context.Context) {
		<-release
	}))

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan int, 1)
	go func() {
		result <- coord.NotifyMany(ctx, []string{"u-1", "u-2", "u-3"}, Spec{
			Category: CategoryGeneral,
			Title:    "t",
			Message:  "m",
		})
	}()

	cancel()
	close(release)

	select {
	case notified := <-result:
		assert.Zero(t, notified, "no recipient may count as persisted after cancellation")
	case <-time.After(2 * time.Second):
		t.Fatal("NotifyMany did not return after its context was cancelled mid-batch")
	}
}

func TestCoordinatorAnnounce(t *testing.T) {
	t.Parallel()

	directory := &identity.StaticDirectory{IDs: []string{"u-1", "u-2", "u-3"}}
	coord, client := newTestCoordinator(t, "fanout_announce", directory)
	ctx := context.Background()

	notified, err := coord.Announce(ctx, "Fleet broadcast test", PriorityUrgent, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, notified)

	notices, err := client.Notice.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 3)
	for _, n := range notices {
		assert.Equal(t, entnotice.CategorySYSTEM_ANNOUNCEMENT, n.Category)
		assert.Equal(t, entnotice.PriorityURGENT, n.Priority)
		assert.Equal(t, "Fleet broadcast test", n.Message)
		require.NotNil(t, n.ExpiresAt, "announcement with ttl must carry expiry")
		assert.WithinDuration(t, time.Now().Add(time.Hour), *n.ExpiresAt, 10*time.Second)
	}
}

func TestCoordinatorAnnounce_NoTTLNeverExpires(t *testing.T) {
	t.Parallel()

	directory := &identity.StaticDirectory{IDs: []string{"u-1"}}
	coord, client := newTestCoordinator(t, "fanout_nottl", directory)
	ctx := context.Background()

	notified, err := coord.Announce(ctx, "Permanent note", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	n, err := client.Notice.Query().Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, n.ExpiresAt)
	assert.Equal(t, entnotice.PriorityMEDIUM, n.Priority, "announcement default priority")
}
