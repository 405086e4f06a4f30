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

func TestAggregatorStats(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "stats")
	agg := NewAggregator(client)
	now := time.Now().UTC()
	ctx := context.Background()

	mustCreateNotice(t, client, "n-1", "u-1",
		withCategory(entnotice.CategoryCERTIFICATE_EXPIRY),
		withPriority(entnotice.PriorityURGENT),
	)
	mustCreateNotice(t, client, "n-2", "u-1",
		withCategory(entnotice.CategoryCERTIFICATE_EXPIRY),
		withPriority(entnotice.PriorityHIGH),
		withRead(),
	)
	mustCreateNotice(t, client, "n-3", "u-1",
		withCategory(entnotice.CategoryNEW_CIRCULAR),
	)
	mustCreateNotice(t, client, "n-expired", "u-1",
		withPriority(entnotice.PriorityURGENT),
		withExpiresAt(now.Add(-time.Minute)),
	)
	mustCreateNotice(t, client, "n-foreign", "u-2")

	s, err := agg.Stats(ctx, "u-1", now)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Total, "expired notice excluded from total")
	assert.Equal(t, 2, s.Unread)
	assert.Equal(t, 1, s.HighPriority)
	assert.Equal(t, 1, s.Urgent, "HIGH and URGENT counted separately")
	assert.Equal(t, 2, s.ByCategory[CategoryCertificateExpiry])
	assert.Equal(t, 1, s.ByCategory[CategoryNewCircular])
	_, present := s.ByCategory[CategoryCrewMessage]
	assert.False(t, present, "absent categories have no key")
}

func TestAggregatorStats_EmptyInbox(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "stats_empty")
	agg := NewAggregator(client)

	s, err := agg.Stats(context.Background(), "u-none", time.Now().UTC())
	require.NoError(t, err)

	assert.Zero(t, s.Total)
	assert.Zero(t, s.Unread)
	assert.NotNil(t, s.ByCategory)
	assert.Empty(t, s.ByCategory)
}
