package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdeck.io/notifier/ent"
	entnotice "crewdeck.io/notifier/ent/notice"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
	"crewdeck.io/notifier/internal/testutil"
)

// Wednesday 2026-09-02 15:00 UTC. Week starts Monday 2026-08-31.
var wednesdayNoon = time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC)

func TestBucketFor(t *testing.T) {
	t.Parallel()

	now := wednesdayNoon
	tests := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{"just now", now, BucketToday},
		{"midnight today", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), BucketToday},
		{"late yesterday", time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC), BucketYesterday},
		{"early yesterday", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), BucketYesterday},
		{"monday this week", time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC), BucketThisWeek},
		{"monday midnight", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), BucketThisWeek},
		{"sunday last week", time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC), BucketOlder},
		{"months ago", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), BucketOlder},
		{"future timestamp", now.Add(2 * time.Hour), BucketToday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := bucketFor(tt.createdAt, now); got != tt.want {
				t.Fatalf("bucketFor(%s) = %s, want %s", tt.createdAt, got, tt.want)
			}
		})
	}
}

func TestBucketFor_SundayNow(t *testing.T) {
	t.Parallel()

	// On a Sunday the ISO week began the previous Monday, so Saturday
	// falls into This Week, not Older.
	sunday := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	lastSunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, BucketThisWeek, bucketFor(saturday, sunday))
	assert.Equal(t, BucketOlder, bucketFor(lastSunday, sunday))
}

func TestStartOfWeek(t *testing.T) {
	t.Parallel()

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 7; d++ {
		day := monday.AddDate(0, 0, d).Add(13 * time.Hour)
		if got := startOfWeek(day); !got.Equal(monday) {
			t.Fatalf("startOfWeek(%s) = %s, want %s", day, got, monday)
		}
	}
}

func TestPageNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{"defaults", Page{}, Page{Number: 1, PerPage: 20}},
		{"negative page", Page{Number: -3, PerPage: 10}, Page{Number: 1, PerPage: 10}},
		{"per page capped", Page{Number: 2, PerPage: 500}, Page{Number: 2, PerPage: 100}},
		{"valid untouched", Page{Number: 4, PerPage: 25}, Page{Number: 4, PerPage: 25}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("%s: Normalize() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestRangeBounds_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := rangeBounds("last_year", wednesdayNoon)
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

// mustCreateNotice inserts a notice row directly, bypassing the factory, so
// tests control creation time and expiry exactly.
func mustCreateNotice(t *testing.T, client *ent.Client, id, userID string, opts ...func(*ent.NoticeCreate)) *ent.Notice {
	t.Helper()

	create := client.Notice.Create().
		SetID(id).
		SetUserID(userID).
		SetCategory(entnotice.CategoryGENERAL).
		SetTitle("Notice " + id).
		SetMessage("Message body for " + id).
		SetPriority(entnotice.PriorityMEDIUM)
	for _, opt := range opts {
		opt(create)
	}
	n, err := create.Save(context.Background())
	require.NoError(t, err)
	return n
}

func withCreatedAt(ts time.Time) func(*ent.NoticeCreate) {
	return func(c *ent.NoticeCreate) { c.SetCreatedAt(ts) }
}

func withExpiresAt(ts time.Time) func(*ent.NoticeCreate) {
	return func(c *ent.NoticeCreate) { c.SetExpiresAt(ts) }
}

func withCategory(cat entnotice.Category) func(*ent.NoticeCreate) {
	return func(c *ent.NoticeCreate) { c.SetCategory(cat) }
}

func withPriority(p entnotice.Priority) func(*ent.NoticeCreate) {
	return func(c *ent.NoticeCreate) { c.SetPriority(p) }
}

func withRead() func(*ent.NoticeCreate) {
	return func(c *ent.NoticeCreate) { c.SetRead(true).SetReadAt(time.Now().UTC()) }
}

func withTitle(title string) func(*ent.NoticeCreate) {
	return func(c *ent.NoticeCreate) { c.SetTitle(title) }
}

func TestInboxList_UserScopedNewestFirst(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_list")
	inbox := NewInbox(client)
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-1", "u-1", withCreatedAt(now.Add(-3*time.Hour)))
	mustCreateNotice(t, client, "n-2", "u-1", withCreatedAt(now.Add(-1*time.Hour)))
	mustCreateNotice(t, client, "n-3", "u-2", withCreatedAt(now.Add(-2*time.Hour)))

	notices, total, err := inbox.List(context.Background(), "u-1", Filter{}, Page{}, now)
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	require.Len(t, notices, 2)
	assert.Equal(t, "n-2", notices[0].ID)
	assert.Equal(t, "n-1", notices[1].ID)
}

func TestInboxList_Filters(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_filters")
	inbox := NewInbox(client)
	now := time.Now().UTC()
	ctx := context.Background()

	mustCreateNotice(t, client, "n-cert", "u-1",
		withCreatedAt(now.Add(-4*time.Hour)),
		withCategory(entnotice.CategoryCERTIFICATE_EXPIRY),
		withPriority(entnotice.PriorityURGENT),
		withTitle("GMDSS certificate expiring"),
	)
	mustCreateNotice(t, client, "n-read", "u-1",
		withCreatedAt(now.Add(-3*time.Hour)),
		withRead(),
	)
	mustCreateNotice(t, client, "n-plain", "u-1", withCreatedAt(now.Add(-2*time.Hour)))

	t.Run("by category", func(t *testing.T) {
		notices, total, err := inbox.List(ctx, "u-1", Filter{Category: CategoryCertificateExpiry}, Page{}, now)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, notices, 1)
		assert.Equal(t, "n-cert", notices[0].ID)
	})

	t.Run("by priority", func(t *testing.T) {
		notices, _, err := inbox.List(ctx, "u-1", Filter{Priority: PriorityUrgent}, Page{}, now)
		require.NoError(t, err)
		require.Len(t, notices, 1)
		assert.Equal(t, "n-cert", notices[0].ID)
	})

	t.Run("unread only", func(t *testing.T) {
		unread := false
		_, total, err := inbox.List(ctx, "u-1", Filter{Read: &unread}, Page{}, now)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		notices, _, err := inbox.List(ctx, "u-1", Filter{Search: "gmdss"}, Page{}, now)
		require.NoError(t, err)
		require.Len(t, notices, 1)
		assert.Equal(t, "n-cert", notices[0].ID)
	})

	t.Run("unknown category filter rejected", func(t *testing.T) {
		_, _, err := inbox.List(ctx, "u-1", Filter{Category: "PORT_CALL"}, Page{}, now)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.CodeUnknownCategory, appErr.Code)
	})
}

func TestInboxList_ExpiredAlwaysExcluded(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_expiry")
	inbox := NewInbox(client)
	now := time.Now().UTC()
	ctx := context.Background()

	mustCreateNotice(t, client, "n-live", "u-1", withCreatedAt(now.Add(-time.Hour)))
	mustCreateNotice(t, client, "n-expired", "u-1",
		withCreatedAt(now.Add(-2*time.Hour)),
		withExpiresAt(now.Add(-time.Minute)),
	)
	mustCreateNotice(t, client, "n-future-expiry", "u-1",
		withCreatedAt(now.Add(-3*time.Hour)),
		withExpiresAt(now.Add(time.Hour)),
	)

	// Even a filter that would match the expired notice cannot surface it.
	notices, total, err := inbox.List(ctx, "u-1", Filter{}, Page{}, now)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, n := range notices {
		assert.NotEqual(t, "n-expired", n.ID)
	}

	groups, err := inbox.GroupByRecency(ctx, "u-1", now)
	require.NoError(t, err)
	for _, g := range groups {
		for _, n := range g.Notices {
			assert.NotEqual(t, "n-expired", n.ID)
		}
	}
}

func TestInboxList_Pagination(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_page")
	inbox := NewInbox(client)
	now := time.Now().UTC()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mustCreateNotice(t, client, fmt.Sprintf("n-%d", i), "u-1", withCreatedAt(now.Add(-time.Duration(i)*time.Hour)))
	}

	first, total, err := inbox.List(ctx, "u-1", Filter{}, Page{Number: 1, PerPage: 2}, now)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, first, 2)
	assert.Equal(t, "n-0", first[0].ID)

	third, _, err := inbox.List(ctx, "u-1", Filter{}, Page{Number: 3, PerPage: 2}, now)
	require.NoError(t, err)
	require.Len(t, third, 1)
	assert.Equal(t, "n-4", third[0].ID)
}

func TestInboxGroupByRecency(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_grouped")
	inbox := NewInbox(client)
	now := time.Now().UTC()
	ctx := context.Background()

	mustCreateNotice(t, client, "n-today", "u-1", withCreatedAt(now.Add(-time.Minute)))
	mustCreateNotice(t, client, "n-old-1", "u-1", withCreatedAt(now.AddDate(0, -1, 0)))
	mustCreateNotice(t, client, "n-old-2", "u-1", withCreatedAt(now.AddDate(0, -2, 0)))

	groups, err := inbox.GroupByRecency(ctx, "u-1", now)
	require.NoError(t, err)

	// Empty buckets are omitted and order is Today before Older.
	require.Len(t, groups, 2)
	assert.Equal(t, BucketToday, groups[0].Label)
	assert.Equal(t, 1, groups[0].Count)
	assert.Equal(t, BucketOlder, groups[1].Label)
	assert.Equal(t, 2, groups[1].Count)
	assert.Equal(t, "n-old-1", groups[1].Notices[0].ID, "newest first within bucket")

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	assert.Equal(t, 3, total, "buckets partition the visible set")
}

func TestInboxDelete(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "inbox_delete")
	inbox := NewInbox(client)
	ctx := context.Background()

	mustCreateNotice(t, client, "n-1", "u-1")
	mustCreateNotice(t, client, "n-2", "u-1")
	mustCreateNotice(t, client, "n-other", "u-2")

	require.NoError(t, inbox.Delete(ctx, "u-1", "n-1"))

	err := inbox.Delete(ctx, "u-1", "n-1")
	require.Error(t, err, "second delete of same notice fails")

	err = inbox.Delete(ctx, "u-1", "n-other")
	require.Error(t, err, "cannot delete another user's notice")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNoticeNotFound, appErr.Code)

	deleted, err := inbox.DeleteMany(ctx, "u-1", []string{"n-2", "n-ghost"})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted, "unknown ids are skipped")

	deleted, err = inbox.DeleteAll(ctx, "u-2")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}
