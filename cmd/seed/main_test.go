package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	raw := `
preferences:
  - user_id: u-1
    enabled_categories: [CERTIFICATE_EXPIRY, NEW_CIRCULAR]
    digest: DAILY
notices:
  - user_id: u-1
    category: CERTIFICATE_EXPIRY
    from_template: true
    variables:
      certificate: GMDSS
      expiry_date: "2026-10-01"
      days_remaining: "32"
    action_target: cert-77
    ttl: 720h
reminders:
  - reference_id: tkt-9
    event_time: 2026-09-10T08:00:00Z
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	fix, err := loadFixture(path)
	require.NoError(t, err)

	require.Len(t, fix.Preferences, 1)
	assert.Equal(t, "u-1", fix.Preferences[0].UserID)
	assert.Equal(t, "DAILY", fix.Preferences[0].Digest)

	require.Len(t, fix.Notices, 1)
	assert.True(t, fix.Notices[0].FromTemplate)
	assert.Equal(t, "GMDSS", fix.Notices[0].Variables["certificate"])
	assert.Equal(t, duration(720*time.Hour), fix.Notices[0].TTL)

	require.Len(t, fix.Reminders, 1)
	assert.Equal(t, time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC), fix.Reminders[0].EventTime.UTC())
}

func TestLoadFixture_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadFixture(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestNoticeSpec_TTLAndAction(t *testing.T) {
	t.Parallel()

	spec := noticeSpec(noticeFixture{
		UserID:       "u-1",
		Category:     "GENERAL",
		Title:        "Welcome aboard",
		Message:      "Fixture notice",
		ActionTarget: "doc-1",
		ActionLabel:  "Open",
		TTL:          duration(time.Hour),
	})

	require.NotNil(t, spec.Action)
	assert.Equal(t, "doc-1", spec.Action.Target)
	require.NotNil(t, spec.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *spec.ExpiresAt, 5*time.Second)
}
