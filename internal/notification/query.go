package notification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"crewdeck.io/notifier/ent"
	entnotice "crewdeck.io/notifier/ent/notice"
	"crewdeck.io/notifier/ent/predicate"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

// Relative date-range filter values.
const (
	RangeToday     = "today"
	RangeYesterday = "yesterday"
	RangeThisWeek  = "this_week"
	RangeThisMonth = "this_month"
)

// Recency bucket labels, in display order.
const (
	BucketToday     = "Today"
	BucketYesterday = "Yesterday"
	BucketThisWeek  = "This Week"
	BucketOlder     = "Older"
)

// Filter narrows a notice listing. Zero values mean "no constraint".
type Filter struct {
	Category string
	Priority string
	// Read filters by read-state when non-nil.
	Read *bool
	// Search is a case-insensitive substring match on title or message.
	Search string
	// DateRange is one of the Range* constants.
	DateRange string
}

// Page is a 1-based pagination request.
type Page struct {
	Number  int
	PerPage int
}

// RecencyGroup is one non-empty bucket of a grouped listing.
type RecencyGroup struct {
	Label   string        `json:"label"`
	Notices []*ent.Notice `json:"notices"`
	Count   int           `json:"count"`
}

// Inbox retrieves a user's notices under filter, sort, and pagination
// constraints. Expired notices are excluded from every result,
// unconditionally and regardless of other filters.
type Inbox struct {
	client *ent.Client
}

// NewInbox creates the query engine over the backing store.
func NewInbox(client *ent.Client) *Inbox {
	return &Inbox{client: client}
}

// List returns one page of the user's notices, newest first, plus the total
// match count. All time arithmetic for relative ranges is done against now.
func (i *Inbox) List(ctx context.Context, userID string, f Filter, p Page, now time.Time) ([]*ent.Notice, int, error) {
	preds, err := f.predicates(now)
	if err != nil {
		return nil, 0, err
	}
	preds = append(preds, entnotice.UserIDEQ(userID))
	// Expiry exclusion is applied last and never bypassed.
	preds = append(preds, notExpired(now))

	query := i.client.Notice.Query().Where(preds...)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count notices for user %s: %w", userID, err)
	}

	p = p.Normalize()
	notices, err := query.
		Order(ent.Desc(entnotice.FieldCreatedAt)).
		Offset((p.Number - 1) * p.PerPage).
		Limit(p.PerPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list notices for user %s: %w", userID, err)
	}
	return notices, total, nil
}

// GroupByRecency buckets the user's visible notices into Today, Yesterday,
// This Week, and Older against now. Buckets with no notices are omitted;
// order is preserved. Within a bucket, notices stay newest first.
func (i *Inbox) GroupByRecency(ctx context.Context, userID string, now time.Time) ([]RecencyGroup, error) {
	notices, err := i.client.Notice.Query().
		Where(entnotice.UserIDEQ(userID), notExpired(now)).
		Order(ent.Desc(entnotice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notices for user %s: %w", userID, err)
	}

	buckets := map[string][]*ent.Notice{}
	for _, n := range notices {
		label := bucketFor(n.CreatedAt, now)
		buckets[label] = append(buckets[label], n)
	}

	var groups []RecencyGroup
	for _, label := range []string{BucketToday, BucketYesterday, BucketThisWeek, BucketOlder} {
		if ns := buckets[label]; len(ns) > 0 {
			groups = append(groups, RecencyGroup{Label: label, Notices: ns, Count: len(ns)})
		}
	}
	return groups, nil
}

// Delete removes one notice owned by the user.
func (i *Inbox) Delete(ctx context.Context, userID, noticeID string) error {
	n, err := i.client.Notice.Delete().
		Where(entnotice.IDEQ(noticeID), entnotice.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete notice %s: %w", noticeID, err)
	}
	if n == 0 {
		return apperrors.ErrNoticeNotFoundf(noticeID)
	}
	return nil
}

// DeleteMany removes the given notices owned by the user, returning how many
// existed and were deleted. Unknown ids are skipped, not errors.
func (i *Inbox) DeleteMany(ctx context.Context, userID string, noticeIDs []string) (int, error) {
	if len(noticeIDs) == 0 {
		return 0, nil
	}
	n, err := i.client.Notice.Delete().
		Where(entnotice.IDIn(noticeIDs...), entnotice.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete notices for user %s: %w", userID, err)
	}
	return n, nil
}

// DeleteAll removes every notice owned by the user.
func (i *Inbox) DeleteAll(ctx context.Context, userID string) (int, error) {
	n, err := i.client.Notice.Delete().
		Where(entnotice.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all notices for user %s: %w", userID, err)
	}
	return n, nil
}

// notExpired is the shared visibility predicate: a notice is visible when it
// has no expiry or its expiry is still in the future.
func notExpired(now time.Time) predicate.Notice {
	return entnotice.Or(
		entnotice.ExpiresAtIsNil(),
		entnotice.ExpiresAtGT(now),
	)
}

func (f Filter) predicates(now time.Time) ([]predicate.Notice, error) {
	var preds []predicate.Notice

	if f.Category != "" {
		c, err := toEntCategory(f.Category)
		if err != nil {
			return nil, apperrors.ErrUnknownCategoryf(f.Category)
		}
		preds = append(preds, entnotice.CategoryEQ(c))
	}
	if f.Priority != "" {
		p, err := toEntPriority(f.Priority)
		if err != nil {
			return nil, apperrors.New(apperrors.CodeValidationFailed,
				fmt.Sprintf("invalid priority filter %q", f.Priority), http.StatusBadRequest)
		}
		preds = append(preds, entnotice.PriorityEQ(p))
	}
	if f.Read != nil {
		preds = append(preds, entnotice.ReadEQ(*f.Read))
	}
	if f.Search != "" {
		preds = append(preds, entnotice.Or(
			entnotice.TitleContainsFold(f.Search),
			entnotice.MessageContainsFold(f.Search),
		))
	}
	if f.DateRange != "" {
		from, to, err := rangeBounds(f.DateRange, now)
		if err != nil {
			return nil, err
		}
		preds = append(preds, entnotice.CreatedAtGTE(from))
		if !to.IsZero() {
			preds = append(preds, entnotice.CreatedAtLT(to))
		}
	}
	return preds, nil
}

// rangeBounds resolves a relative date-range name to [from, to) creation
// bounds. A zero "to" means unbounded.
func rangeBounds(dateRange string, now time.Time) (time.Time, time.Time, error) {
	today := startOfDay(now)
	switch dateRange {
	case RangeToday:
		return today, time.Time{}, nil
	case RangeYesterday:
		return today.AddDate(0, 0, -1), today, nil
	case RangeThisWeek:
		return startOfWeek(now), time.Time{}, nil
	case RangeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), time.Time{}, nil
	default:
		return time.Time{}, time.Time{}, apperrors.New(apperrors.CodeValidationFailed,
			fmt.Sprintf("invalid date range %q", dateRange), http.StatusBadRequest)
	}
}

// bucketFor assigns a creation time to a recency bucket. The cascade
// guarantees the four buckets partition the visible set for any fixed now.
func bucketFor(createdAt, now time.Time) string {
	today := startOfDay(now)
	yesterday := today.AddDate(0, 0, -1)
	week := startOfWeek(now)

	switch {
	case !createdAt.Before(today):
		return BucketToday
	case !createdAt.Before(yesterday):
		return BucketYesterday
	case !createdAt.Before(week):
		return BucketThisWeek
	default:
		return BucketOlder
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the most recent Monday's midnight (ISO week start).
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// Normalize resolves the paging window actually applied: page numbers start
// at 1, per-page defaults to 20 and is capped at 100.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 20
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
	return p
}
