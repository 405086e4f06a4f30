package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entnotice "crewdeck.io/notifier/ent/notice"
	"crewdeck.io/notifier/internal/testutil"
)

func TestSweeperSweep(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sweeper")
	sweeper := NewSweeper(client)
	ctx := context.Background()
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-expired-1", "u-1", withExpiresAt(now.Add(-time.Hour)))
	mustCreateNotice(t, client, "n-expired-2", "u-2", withExpiresAt(now.Add(-time.Minute)))
	mustCreateNotice(t, client, "n-future", "u-1", withExpiresAt(now.Add(time.Hour)))
	mustCreateNotice(t, client, "n-forever", "u-1")

	deleted, err := sweeper.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := client.Notice.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"n-future", "n-forever"}, remaining)
}

func TestSweeperSweep_ExactBoundaryDeleted(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sweeper_boundary")
	sweeper := NewSweeper(client)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mustCreateNotice(t, client, "n-boundary", "u-1", withExpiresAt(now))

	deleted, err := sweeper.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestSweeperSweep_NothingExpired(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sweeper_noop")
	sweeper := NewSweeper(client)
	ctx := context.Background()

	mustCreateNotice(t, client, "n-1", "u-1")

	deleted, err := sweeper.Sweep(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, deleted)

	count, err := client.Notice.Query().Where(entnotice.IDEQ("n-1")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
