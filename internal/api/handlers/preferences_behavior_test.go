package handlers

import (
	"net/http"
	"testing"
	"time"

	entnotice "crewdeck.io/notifier/ent/notice"
	"crewdeck.io/notifier/internal/notification"
)

func TestGetPreferences_DefaultWithoutRecord(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_prefs_default")

	w := doRequest(t, router, http.MethodGet, "/api/v1/preferences", "", "user-1")
	assertStatus(t, w, http.StatusOK)

	var resp notification.Prefs
	decodeJSON(t, w.Body.Bytes(), &resp)
	if resp.UserID != "user-1" {
		t.Fatalf("user_id = %q, want %q", resp.UserID, "user-1")
	}
	if len(resp.EnabledCategories) != len(notification.Categories()) {
		t.Fatalf("enabled categories len = %d, want %d", len(resp.EnabledCategories), len(notification.Categories()))
	}
	if resp.Digest != notification.DigestInstant {
		t.Fatalf("digest = %q, want %q", resp.Digest, notification.DigestInstant)
	}
	if !resp.Sound || !resp.Vibration {
		t.Fatalf("sound/vibration = %v/%v, want true/true", resp.Sound, resp.Vibration)
	}

	// Reading defaults never creates a record.
	count, err := client.Preference.Query().Count(t.Context())
	if err != nil {
		t.Fatalf("count preferences: %v", err)
	}
	if count != 0 {
		t.Fatalf("preference rows = %d, want 0", count)
	}
}

func TestUpdatePreferences_PartialUpdateAndGateEffect(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_prefs_update")

	{
		body := `{"enabled_categories": ["CERTIFICATE_EXPIRY"], "digest": "DAILY"}`
		w := doRequest(t, router, http.MethodPut, "/api/v1/preferences", body, "user-1")
		assertStatus(t, w, http.StatusOK)

		var resp notification.Prefs
		decodeJSON(t, w.Body.Bytes(), &resp)
		if len(resp.EnabledCategories) != 1 || resp.EnabledCategories[0] != "CERTIFICATE_EXPIRY" {
			t.Fatalf("enabled categories = %v, want [CERTIFICATE_EXPIRY]", resp.EnabledCategories)
		}
		if resp.Digest != "DAILY" {
			t.Fatalf("digest = %q, want %q", resp.Digest, "DAILY")
		}
		if !resp.Sound {
			t.Fatal("sound = false, want default true to survive a partial update")
		}
	}

	// The narrowed preference now suppresses other categories on create.
	{
		body := `{"user_id": "user-1", "category": "GENERAL", "title": "t", "message": "m"}`
		w := doRequest(t, router, http.MethodPost, "/api/v1/notices", body, "admin-1")
		assertStatus(t, w, http.StatusOK)

		count, err := client.Notice.Query().Where(entnotice.UserIDEQ("user-1")).Count(t.Context())
		if err != nil {
			t.Fatalf("count notices: %v", err)
		}
		if count != 0 {
			t.Fatalf("notice rows = %d, want 0 after suppression", count)
		}
	}

	// A second partial update touches only the named field.
	{
		body := `{"sound": false}`
		w := doRequest(t, router, http.MethodPut, "/api/v1/preferences", body, "user-1")
		assertStatus(t, w, http.StatusOK)

		var resp notification.Prefs
		decodeJSON(t, w.Body.Bytes(), &resp)
		if resp.Sound {
			t.Fatal("sound = true, want false")
		}
		if resp.Digest != "DAILY" {
			t.Fatalf("digest = %q, want DAILY untouched", resp.Digest)
		}
	}
}

func TestUpdatePreferences_Invalid(t *testing.T) {
	t.Parallel()

	router, _ := newBehaviorTestRouter(t, "h_prefs_invalid")

	tests := []struct {
		name string
		body string
		code string
	}{
		{"unknown category", `{"enabled_categories": ["NOT_A_CATEGORY"]}`, "UNKNOWN_CATEGORY"},
		{"unknown digest", `{"digest": "HOURLY"}`, "VALIDATION_FAILED"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := doRequest(t, router, http.MethodPut, "/api/v1/preferences", tc.body, "user-1")
			assertStatus(t, w, http.StatusBadRequest)
			assertErrorCode(t, w.Body.Bytes(), tc.code)
		})
	}
}

func TestGetNoticeStats(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_stats")
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotice(t, client, "n-2", "user-1", true, now.Add(-2*time.Hour))
	urgent := mustCreateNotice(t, client, "n-3", "user-1", false, now.Add(-1*time.Hour))
	if _, err := urgent.Update().SetPriority(entnotice.PriorityURGENT).Save(t.Context()); err != nil {
		t.Fatalf("raise priority: %v", err)
	}
	mustCreateNotice(t, client, "n-other", "user-2", false, now)

	w := doRequest(t, router, http.MethodGet, "/api/v1/notices/stats", "", "user-1")
	assertStatus(t, w, http.StatusOK)

	var resp notification.Summary
	decodeJSON(t, w.Body.Bytes(), &resp)
	if resp.Total != 3 || resp.Unread != 2 || resp.Urgent != 1 || resp.HighPriority != 0 {
		t.Fatalf("summary = %+v, want total 3 unread 2 urgent 1 high 0", resp)
	}
	if resp.ByCategory["GENERAL"] != 3 {
		t.Fatalf("by_category[GENERAL] = %d, want 3", resp.ByCategory["GENERAL"])
	}
}
