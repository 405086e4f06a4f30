package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	entreminder "crewdeck.io/notifier/ent/reminder"
)

func TestScheduleReminders(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_rem_schedule")

	eventTime := time.Now().UTC().Add(7 * 24 * time.Hour)
	body := fmt.Sprintf(`{"reference_id": "departure-42", "event_time": %q}`,
		eventTime.Format(time.RFC3339))
	w := doRequest(t, router, http.MethodPost, "/api/v1/reminders", body, "admin-1")
	assertStatus(t, w, http.StatusCreated)

	var resp struct {
		Reminders []ReminderView `json:"reminders"`
	}
	decodeJSON(t, w.Body.Bytes(), &resp)
	if len(resp.Reminders) != 3 {
		t.Fatalf("reminders len = %d, want 3", len(resp.Reminders))
	}
	for _, r := range resp.Reminders {
		if r.ReferenceID != "departure-42" {
			t.Fatalf("reference_id = %q, want %q", r.ReferenceID, "departure-42")
		}
		if r.Sent {
			t.Fatal("sent = true, want false on a freshly scheduled reminder")
		}
	}

	count, err := client.Reminder.Query().Count(t.Context())
	if err != nil {
		t.Fatalf("count reminders: %v", err)
	}
	if count != 3 {
		t.Fatalf("reminder rows = %d, want 3", count)
	}
}

func TestScheduleReminders_MissingReference(t *testing.T) {
	t.Parallel()

	router, _ := newBehaviorTestRouter(t, "h_rem_badreq")

	w := doRequest(t, router, http.MethodPost, "/api/v1/reminders",
		`{"event_time": "2026-09-10T08:00:00Z"}`, "admin-1")
	assertStatus(t, w, http.StatusBadRequest)
	assertErrorCode(t, w.Body.Bytes(), "VALIDATION_FAILED")
}

func TestListDueReminders(t *testing.T) {
	t.Parallel()

	router, _ := newBehaviorTestRouter(t, "h_rem_due")

	// Event 4 hours out: two of its reminders are already due.
	eventTime := time.Now().UTC().Add(4 * time.Hour)
	body := fmt.Sprintf(`{"reference_id": "departure-soon", "event_time": %q}`,
		eventTime.Format(time.RFC3339))
	w := doRequest(t, router, http.MethodPost, "/api/v1/reminders", body, "admin-1")
	assertStatus(t, w, http.StatusCreated)

	w = doRequest(t, router, http.MethodGet, "/api/v1/reminders/due", "", "admin-1")
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Reminders []ReminderView `json:"reminders"`
	}
	decodeJSON(t, w.Body.Bytes(), &resp)
	if len(resp.Reminders) != 2 {
		t.Fatalf("due reminders len = %d, want 2", len(resp.Reminders))
	}
	if resp.Reminders[0].Offset != entreminder.OffsetBEFORE_72H.String() {
		t.Fatalf("first due offset = %q, want %q", resp.Reminders[0].Offset, entreminder.OffsetBEFORE_72H)
	}
}

func TestMarkReminderSent(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_rem_sent")

	eventTime := time.Now().UTC().Add(time.Hour)
	body := fmt.Sprintf(`{"reference_id": "departure-1", "event_time": %q}`,
		eventTime.Format(time.RFC3339))
	w := doRequest(t, router, http.MethodPost, "/api/v1/reminders", body, "admin-1")
	assertStatus(t, w, http.StatusCreated)

	var resp struct {
		Reminders []ReminderView `json:"reminders"`
	}
	decodeJSON(t, w.Body.Bytes(), &resp)
	id := resp.Reminders[0].ID

	w = doRequest(t, router, http.MethodPost, "/api/v1/reminders/"+id+"/sent", "", "admin-1")
	assertStatus(t, w, http.StatusNoContent)

	r, err := client.Reminder.Get(t.Context(), id)
	if err != nil {
		t.Fatalf("query reminder: %v", err)
	}
	if !r.Sent || r.SentAt == nil {
		t.Fatalf("sent/sent_at = %v/%v, want true/non-nil", r.Sent, r.SentAt)
	}

	// Re-marking is a no-op success.
	w = doRequest(t, router, http.MethodPost, "/api/v1/reminders/"+id+"/sent", "", "admin-1")
	assertStatus(t, w, http.StatusNoContent)
}

func TestMarkReminderSent_Unknown(t *testing.T) {
	t.Parallel()

	router, _ := newBehaviorTestRouter(t, "h_rem_unknown")

	w := doRequest(t, router, http.MethodPost, "/api/v1/reminders/no-such-id/sent", "", "admin-1")
	assertStatus(t, w, http.StatusNotFound)
	assertErrorCode(t, w.Body.Bytes(), "REMINDER_NOT_FOUND")
}

func TestDeleteRemindersForReference(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_rem_delete")

	eventTime := time.Now().UTC().Add(48 * time.Hour)
	for _, ref := range []string{"departure-old", "departure-keep"} {
		body := fmt.Sprintf(`{"reference_id": %q, "event_time": %q}`,
			ref, eventTime.Format(time.RFC3339))
		w := doRequest(t, router, http.MethodPost, "/api/v1/reminders", body, "admin-1")
		assertStatus(t, w, http.StatusCreated)
	}

	w := doRequest(t, router, http.MethodDelete, "/api/v1/reminders/reference/departure-old", "", "admin-1")
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Deleted int `json:"deleted"`
	}
	decodeJSON(t, w.Body.Bytes(), &resp)
	if resp.Deleted != 3 {
		t.Fatalf("deleted = %d, want 3", resp.Deleted)
	}

	kept, err := client.Reminder.Query().
		Where(entreminder.ReferenceIDEQ("departure-keep")).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count kept reminders: %v", err)
	}
	if kept != 3 {
		t.Fatalf("kept reminders = %d, want 3", kept)
	}
}
