package notification

import (
	"context"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent"
	entnotice "crewdeck.io/notifier/ent/notice"
)

// Summary holds recomputed notice counters for one user. Counters are never
// cached or incremented in place: each call recomputes them from the store,
// so they cannot drift. ByCategory contains only categories that occur at
// least once; callers treat a missing key as zero.
type Summary struct {
	Total        int            `json:"total"`
	Unread       int            `json:"unread"`
	HighPriority int            `json:"high_priority"`
	Urgent       int            `json:"urgent"`
	ByCategory   map[string]int `json:"by_category"`
}

// Aggregator computes notice statistics. It shares the expiry exclusion rule
// with the query engine but is otherwise independent of it.
type Aggregator struct {
	client *ent.Client
}

// NewAggregator creates a stats aggregator over the backing store.
func NewAggregator(client *ent.Client) *Aggregator {
	return &Aggregator{client: client}
}

// Stats computes the user's counters in a single pass over the
// expiry-filtered notice set.
func (a *Aggregator) Stats(ctx context.Context, userID string, now time.Time) (Summary, error) {
	notices, err := a.client.Notice.Query().
		Where(entnotice.UserIDEQ(userID), notExpired(now)).
		Select(entnotice.FieldCategory, entnotice.FieldPriority, entnotice.FieldRead).
		All(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load notices for user %s: %w", userID, err)
	}

	summary := Summary{ByCategory: make(map[string]int)}
	for _, n := range notices {
		summary.Total++
		if !n.Read {
			summary.Unread++
		}
		switch n.Priority {
		case entnotice.PriorityHIGH:
			summary.HighPriority++
		case entnotice.PriorityURGENT:
			summary.Urgent++
		}
		summary.ByCategory[n.Category.String()]++
	}
	return summary, nil
}
