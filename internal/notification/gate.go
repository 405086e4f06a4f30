package notification

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"crewdeck.io/notifier/ent"
	entpreference "crewdeck.io/notifier/ent/preference"
)

// Gate answers whether a user accepts notices of a given category.
//
// A user without a Preference record accepts everything (default-allow).
// Preferences are read on every notify, so lookups go through a short TTL
// cache; Invalidate is called on preference updates.
type Gate struct {
	client *ent.Client
	cache  *gocache.Cache
}

// NewGate creates a preference gate with the given cache TTL.
func NewGate(client *ent.Client, cacheTTL time.Duration) *Gate {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &Gate{
		client: client,
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// IsCategoryEnabled reports whether category notices may be created for the
// user. Pure predicate: no side effects beyond cache population; store read
// failures propagate.
func (g *Gate) IsCategoryEnabled(ctx context.Context, userID, category string) (bool, error) {
	enabled, err := g.enabledSet(ctx, userID)
	if err != nil {
		return false, err
	}
	if enabled == nil {
		// No preference record: every category is enabled.
		return true, nil
	}
	_, ok := enabled[category]
	return ok, nil
}

// Invalidate drops the cached preference for a user.
func (g *Gate) Invalidate(userID string) {
	g.cache.Delete(userID)
}

// enabledSet returns the user's enabled category set, or nil when the user
// has no preference record.
func (g *Gate) enabledSet(ctx context.Context, userID string) (map[string]struct{}, error) {
	if v, ok := g.cache.Get(userID); ok {
		return v.(map[string]struct{}), nil
	}

	pref, err := g.client.Preference.Query().
		Where(entpreference.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			g.cache.SetDefault(userID, map[string]struct{}(nil))
			return nil, nil
		}
		return nil, fmt.Errorf("load preference for user %s: %w", userID, err)
	}

	enabled := make(map[string]struct{}, len(pref.EnabledCategories))
	for _, c := range pref.EnabledCategories {
		enabled[c] = struct{}{}
	}
	g.cache.SetDefault(userID, enabled)
	return enabled, nil
}
