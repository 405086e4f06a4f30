package notification

import (
	"context"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent"
	entnotice "crewdeck.io/notifier/ent/notice"
)

// Sweeper hard-deletes notices whose expiry has passed. Visibility is
// already enforced at query time, so the sweep needs no transactional
// coupling with readers: a notice mid-deletion is simply absent from a
// concurrent query.
type Sweeper struct {
	client *ent.Client
}

// NewSweeper creates the retention sweeper.
func NewSweeper(client *ent.Client) *Sweeper {
	return &Sweeper{client: client}
}

// Sweep deletes every notice with expires_at <= now and returns the count.
// The recurrence interval is a deployment parameter of the job layer, not
// part of this contract.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	n, err := s.client.Notice.Delete().
		Where(entnotice.ExpiresAtLTE(now)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep expired notices before %s: %w", now.Format(time.RFC3339), err)
	}
	return n, nil
}
