package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "crewdeck.io/notifier/internal/pkg/errors"
	"crewdeck.io/notifier/internal/testutil"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool { return &b }
func catsptr(c []string) *[]string { return &c }

func TestPreferenceServiceGet_DefaultsWithoutRecord(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "prefs_get_default")
	svc := NewPreferenceService(client, nil)

	prefs, err := svc.Get(context.Background(), "u-fresh")
	require.NoError(t, err)

	assert.Equal(t, "u-fresh", prefs.UserID)
	assert.ElementsMatch(t, Categories(), prefs.EnabledCategories)
	assert.True(t, prefs.Sound)
	assert.True(t, prefs.Vibration)
	assert.Equal(t, DigestInstant, prefs.Digest)

	// Reading defaults never creates a record.
	count, err := client.Preference.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPreferenceServiceUpdate_LazyCreate(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "prefs_lazy")
	svc := NewPreferenceService(client, nil)
	ctx := context.Background()

	prefs, err := svc.Update(ctx, "u-1", PrefsUpdate{
		Digest: strptr(DigestDaily),
	})
	require.NoError(t, err)

	// Fields absent from the first update keep the baseline defaults.
	assert.Equal(t, DigestDaily, prefs.Digest)
	assert.ElementsMatch(t, Categories(), prefs.EnabledCategories)
	assert.True(t, prefs.Sound)

	count, err := client.Preference.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPreferenceServiceUpdate_PartialLeavesOthers(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "prefs_partial")
	svc := NewPreferenceService(client, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, "u-1", PrefsUpdate{
		EnabledCategories: catsptr([]string{CategoryCrewMessage}),
		Sound:             boolptr(false),
		QuietStart:        strptr("22:00"),
		QuietEnd:          strptr("06:00"),
	})
	require.NoError(t, err)

	prefs, err := svc.Update(ctx, "u-1", PrefsUpdate{
		Vibration: boolptr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{CategoryCrewMessage}, prefs.EnabledCategories)
	assert.False(t, prefs.Sound)
	assert.False(t, prefs.Vibration)
	assert.Equal(t, "22:00", prefs.QuietStart)
	assert.Equal(t, "06:00", prefs.QuietEnd)
}

func TestPreferenceServiceUpdate_Validation(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "prefs_invalid")
	svc := NewPreferenceService(client, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, "u-1", PrefsUpdate{
		EnabledCategories: catsptr([]string{"PORT_CALL"}),
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnknownCategory, appErr.Code)

	_, err = svc.Update(ctx, "u-1", PrefsUpdate{Digest: strptr("HOURLY")})
	require.Error(t, err)
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// Failed validation must not create the record.
	count, err := client.Preference.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPreferenceServiceUpdate_InvalidatesGate(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "prefs_gate")
	gate := NewGate(client, time.Hour)
	svc := NewPreferenceService(client, gate)
	ctx := context.Background()

	enabled, err := gate.IsCategoryEnabled(ctx, "u-1", CategoryNewCircular)
	require.NoError(t, err)
	require.True(t, enabled)

	_, err = svc.Update(ctx, "u-1", PrefsUpdate{
		EnabledCategories: catsptr([]string{CategoryCrewMessage}),
	})
	require.NoError(t, err)

	enabled, err = gate.IsCategoryEnabled(ctx, "u-1", CategoryNewCircular)
	require.NoError(t, err)
	assert.False(t, enabled, "update must invalidate the gate cache")
}
