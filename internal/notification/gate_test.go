package notification

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdeck.io/notifier/ent"
	"crewdeck.io/notifier/internal/pkg/logger"
	"crewdeck.io/notifier/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func mustCreatePreference(t *testing.T, client *ent.Client, userID string, enabled []string) {
	t.Helper()
	err := client.Preference.Create().
		SetID("pref-" + userID).
		SetUserID(userID).
		SetEnabledCategories(enabled).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestGate_DefaultAllowWithoutRecord(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "gate_default")
	gate := NewGate(client, time.Minute)
	ctx := context.Background()

	for _, category := range Categories() {
		enabled, err := gate.IsCategoryEnabled(ctx, "u-fresh", category)
		require.NoError(t, err)
		assert.True(t, enabled, "category %s should default to enabled", category)
	}
}

func TestGate_DisabledCategorySuppressed(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "gate_disabled")
	gate := NewGate(client, time.Minute)
	ctx := context.Background()

	mustCreatePreference(t, client, "u-1", []string{CategoryCertificateExpiry, CategoryCrewMessage})

	enabled, err := gate.IsCategoryEnabled(ctx, "u-1", CategoryCertificateExpiry)
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = gate.IsCategoryEnabled(ctx, "u-1", CategoryNewCircular)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestGate_CacheAndInvalidate(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "gate_cache")
	gate := NewGate(client, time.Hour)
	ctx := context.Background()

	// First lookup caches the absent record as default-allow.
	enabled, err := gate.IsCategoryEnabled(ctx, "u-1", CategoryNewCircular)
	require.NoError(t, err)
	assert.True(t, enabled)

	// The store changes underneath; the stale cache entry still answers.
	mustCreatePreference(t, client, "u-1", []string{CategoryCrewMessage})

	enabled, err = gate.IsCategoryEnabled(ctx, "u-1", CategoryNewCircular)
	require.NoError(t, err)
	assert.True(t, enabled, "cached answer expected until invalidation")

	gate.Invalidate("u-1")

	enabled, err = gate.IsCategoryEnabled(ctx, "u-1", CategoryNewCircular)
	require.NoError(t, err)
	assert.False(t, enabled, "fresh read after invalidation")
}
