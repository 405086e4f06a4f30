package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entnotice "crewdeck.io/notifier/ent/notice"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
	"crewdeck.io/notifier/internal/testutil"
)

func TestReadStateMarkRead_SetsReadAtOnce(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "readstate_mark")
	rs := NewReadState(client)
	ctx := context.Background()

	mustCreateNotice(t, client, "n-1", "u-1")

	require.NoError(t, rs.MarkRead(ctx, "u-1", "n-1"))

	first, err := client.Notice.Get(ctx, "n-1")
	require.NoError(t, err)
	assert.True(t, first.Read)
	require.NotNil(t, first.ReadAt)

	// A second mark is a no-op success and must not move read_at.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, rs.MarkRead(ctx, "u-1", "n-1"))

	second, err := client.Notice.Get(ctx, "n-1")
	require.NoError(t, err)
	assert.True(t, second.ReadAt.Equal(*first.ReadAt), "read_at moved on repeat mark")
}

func TestReadStateMarkRead_UnknownOrForeign(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "readstate_missing")
	rs := NewReadState(client)
	ctx := context.Background()

	mustCreateNotice(t, client, "n-other", "u-2")

	for _, id := range []string{"n-ghost", "n-other"} {
		err := rs.MarkRead(ctx, "u-1", id)
		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeNoticeNotFound, appErr.Code)
	}
}

func TestReadStateMarkManyRead(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "readstate_many")
	rs := NewReadState(client)
	ctx := context.Background()

	mustCreateNotice(t, client, "n-1", "u-1")
	mustCreateNotice(t, client, "n-2", "u-1", withRead())
	mustCreateNotice(t, client, "n-3", "u-2")

	// Already-read, foreign, and unknown ids are all skipped silently.
	updated, err := rs.MarkManyRead(ctx, "u-1", []string{"n-1", "n-2", "n-3", "n-ghost"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	foreign, err := client.Notice.Get(ctx, "n-3")
	require.NoError(t, err)
	assert.False(t, foreign.Read)
}

func TestReadStateMarkAllRead(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "readstate_all")
	rs := NewReadState(client)
	ctx := context.Background()

	mustCreateNotice(t, client, "n-1", "u-1")
	mustCreateNotice(t, client, "n-2", "u-1")
	mustCreateNotice(t, client, "n-3", "u-1", withRead())
	mustCreateNotice(t, client, "n-4", "u-2")

	updated, err := rs.MarkAllRead(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 2, updated, "only unread notices transition")

	remaining, err := client.Notice.Query().
		Where(entnotice.UserIDEQ("u-1"), entnotice.ReadEQ(false)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	updated, err = rs.MarkAllRead(ctx, "u-1")
	require.NoError(t, err)
	assert.Zero(t, updated, "repeat run transitions nothing")
}
