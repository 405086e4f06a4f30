package handlers

import (
	"net/http"
	"testing"
	"time"

	entnotice "crewdeck.io/notifier/ent/notice"
)

func TestListNotices_UserScopedAndReadFilter(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_list")
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotice(t, client, "n-2", "user-1", true, now.Add(-2*time.Hour))
	mustCreateNotice(t, client, "n-3", "user-2", false, now.Add(-1*time.Hour))

	{
		w := doRequest(t, router, http.MethodGet, "/api/v1/notices?read=false", "", "user-1")
		assertStatus(t, w, http.StatusOK)

		var resp NoticeList
		decodeJSON(t, w.Body.Bytes(), &resp)
		if len(resp.Items) != 1 {
			t.Fatalf("unread-only items len = %d, want 1", len(resp.Items))
		}
		if resp.Items[0].ID != "n-1" {
			t.Fatalf("unread-only item id = %q, want %q", resp.Items[0].ID, "n-1")
		}
		if resp.Pagination.Total != 1 {
			t.Fatalf("unread-only total = %d, want 1", resp.Pagination.Total)
		}
	}

	{
		w := doRequest(t, router, http.MethodGet, "/api/v1/notices", "", "user-1")
		assertStatus(t, w, http.StatusOK)

		var resp NoticeList
		decodeJSON(t, w.Body.Bytes(), &resp)
		if len(resp.Items) != 2 {
			t.Fatalf("all items len = %d, want 2", len(resp.Items))
		}
		if resp.Items[0].ID != "n-2" || resp.Items[1].ID != "n-1" {
			t.Fatalf("unexpected order/items: got [%s, %s], want [n-2, n-1]", resp.Items[0].ID, resp.Items[1].ID)
		}
		if resp.Pagination.Page != 1 || resp.Pagination.PerPage != 20 {
			t.Fatalf("pagination echo = %+v, want page 1 per_page 20", resp.Pagination)
		}
	}
}

func TestListNotices_ExpiredNeverVisible(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_list_expired")
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-live", "user-1", false, now.Add(-time.Hour))
	expired := mustCreateNotice(t, client, "n-expired", "user-1", false, now.Add(-2*time.Hour))
	if _, err := expired.Update().SetExpiresAt(now.Add(-time.Minute)).Save(t.Context()); err != nil {
		t.Fatalf("expire notice: %v", err)
	}

	w := doRequest(t, router, http.MethodGet, "/api/v1/notices", "", "user-1")
	assertStatus(t, w, http.StatusOK)

	var resp NoticeList
	decodeJSON(t, w.Body.Bytes(), &resp)
	if len(resp.Items) != 1 || resp.Items[0].ID != "n-live" {
		t.Fatalf("items = %+v, want only n-live", resp.Items)
	}
}

func TestListNotices_InvalidReadParam(t *testing.T) {
	t.Parallel()

	router, _ := newBehaviorTestRouter(t, "h_list_badread")

	w := doRequest(t, router, http.MethodGet, "/api/v1/notices?read=maybe", "", "user-1")
	assertStatus(t, w, http.StatusBadRequest)
	assertErrorCode(t, w.Body.Bytes(), "INVALID_REQUEST_FIELD")
}

func TestListNoticesGrouped(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_grouped")
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-today", "user-1", false, now.Add(-time.Minute))
	mustCreateNotice(t, client, "n-old", "user-1", false, now.AddDate(0, 0, -30))

	w := doRequest(t, router, http.MethodGet, "/api/v1/notices/grouped", "", "user-1")
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Groups []RecencyGroupView `json:"groups"`
	}
	decodeJSON(t, w.Body.Bytes(), &resp)
	if len(resp.Groups) != 2 {
		t.Fatalf("groups len = %d, want 2 (%+v)", len(resp.Groups), resp.Groups)
	}
	if resp.Groups[0].Label != "Today" || resp.Groups[0].Count != 1 {
		t.Fatalf("first group = %+v, want Today with 1 notice", resp.Groups[0])
	}
	if resp.Groups[1].Label != "Older" || resp.Groups[1].Count != 1 {
		t.Fatalf("second group = %+v, want Older with 1 notice", resp.Groups[1])
	}
}

func TestCreateNotice_TemplateAndSuppression(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_create")

	{
		body := `{
			"user_id": "user-1",
			"category": "CREW_MESSAGE",
			"from_template": true,
			"variables": {"sender": "Bosun", "message": "Lifeboat check at noon"}
		}`
		w := doRequest(t, router, http.MethodPost, "/api/v1/notices", body, "admin-1")
		assertStatus(t, w, http.StatusCreated)

		n, err := client.Notice.Query().Where(entnotice.UserIDEQ("user-1")).Only(t.Context())
		if err != nil {
			t.Fatalf("query created notice: %v", err)
		}
		if n.Title != "Message from Bosun" {
			t.Fatalf("title = %q, want %q", n.Title, "Message from Bosun")
		}
	}

	{
		mustCreatePreference(t, client, "user-muted", []string{"CERTIFICATE_EXPIRY"})

		body := `{"user_id": "user-muted", "category": "GENERAL", "title": "t", "message": "m"}`
		w := doRequest(t, router, http.MethodPost, "/api/v1/notices", body, "admin-1")
		assertStatus(t, w, http.StatusOK)

		var resp struct {
			Delivered bool `json:"delivered"`
		}
		decodeJSON(t, w.Body.Bytes(), &resp)
		if resp.Delivered {
			t.Fatal("delivered = true, want false for suppressed recipient")
		}
	}
}

func TestCreateNotice_UnknownCategory(t *testing.T) {
	t.Parallel()

	router, _ := newBehaviorTestRouter(t, "h_create_badcat")

	body := `{"user_id": "user-1", "category": "NOT_A_CATEGORY", "title": "t", "message": "m"}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/notices", body, "admin-1")
	assertStatus(t, w, http.StatusBadRequest)
	assertErrorCode(t, w.Body.Bytes(), "UNKNOWN_CATEGORY")
}

func TestCreateNoticesBulk_ReportsPersistedCount(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_bulk")

	mustCreatePreference(t, client, "user-muted", []string{"CERTIFICATE_EXPIRY"})

	body := `{
		"user_ids": ["user-1", "user-muted", "user-2"],
		"category": "GENERAL",
		"title": "Port agent changed",
		"message": "See updated contact sheet"
	}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/notices/bulk", body, "admin-1")
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Requested int `json:"requested"`
		Notified  int `json:"notified"`
	}
	decodeJSON(t, w.Body.Bytes(), &resp)
	if resp.Requested != 3 || resp.Notified != 2 {
		t.Fatalf("requested/notified = %d/%d, want 3/2", resp.Requested, resp.Notified)
	}
}

func TestAnnounce(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_announce", "user-1", "user-2")

	body := `{"message": "Fleet broadcast", "priority": "URGENT", "ttl_seconds": 3600}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/notices/announce", body, "admin-1")
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Notified int `json:"notified"`
	}
	decodeJSON(t, w.Body.Bytes(), &resp)
	if resp.Notified != 2 {
		t.Fatalf("notified = %d, want 2", resp.Notified)
	}

	count, err := client.Notice.Query().
		Where(entnotice.CategoryEQ(entnotice.CategorySYSTEM_ANNOUNCEMENT)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count announcements: %v", err)
	}
	if count != 2 {
		t.Fatalf("announcement rows = %d, want 2", count)
	}
}

func TestMarkNoticeRead_UserScoped(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_markread")
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-own", "user-1", false, now.Add(-2*time.Hour))
	mustCreateNotice(t, client, "n-other", "user-2", false, now.Add(-1*time.Hour))

	{
		w := doRequest(t, router, http.MethodPost, "/api/v1/notices/n-own/read", "", "user-1")
		assertStatus(t, w, http.StatusNoContent)

		n, err := client.Notice.Get(t.Context(), "n-own")
		if err != nil {
			t.Fatalf("query notice: %v", err)
		}
		if !n.Read || n.ReadAt == nil {
			t.Fatalf("read/read_at = %v/%v, want true/non-nil", n.Read, n.ReadAt)
		}
	}

	{
		w := doRequest(t, router, http.MethodPost, "/api/v1/notices/n-other/read", "", "user-1")
		assertStatus(t, w, http.StatusNotFound)
		assertErrorCode(t, w.Body.Bytes(), "NOTICE_NOT_FOUND")
	}
}

func TestMarkAllNoticesRead_UserScoped(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_markall")
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotice(t, client, "n-2", "user-1", false, now.Add(-2*time.Hour))
	mustCreateNotice(t, client, "n-3", "user-2", false, now.Add(-1*time.Hour))

	w := doRequest(t, router, http.MethodPost, "/api/v1/notices/read-all", "", "user-1")
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Updated int `json:"updated"`
	}
	decodeJSON(t, w.Body.Bytes(), &resp)
	if resp.Updated != 2 {
		t.Fatalf("updated = %d, want 2", resp.Updated)
	}

	otherUnread, err := client.Notice.Query().
		Where(entnotice.UserIDEQ("user-2"), entnotice.ReadEQ(false)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count user-2 unread: %v", err)
	}
	if otherUnread != 1 {
		t.Fatalf("user-2 unread = %d, want 1", otherUnread)
	}
}

func TestDeleteNotices_SelectionAndAll(t *testing.T) {
	t.Parallel()

	router, client := newBehaviorTestRouter(t, "h_delete")
	now := time.Now().UTC()

	mustCreateNotice(t, client, "n-1", "user-1", false, now.Add(-3*time.Hour))
	mustCreateNotice(t, client, "n-2", "user-1", false, now.Add(-2*time.Hour))
	mustCreateNotice(t, client, "n-3", "user-1", false, now.Add(-1*time.Hour))

	{
		w := doRequest(t, router, http.MethodPost, "/api/v1/notices/delete",
			`{"notice_ids": ["n-1", "n-missing"]}`, "user-1")
		assertStatus(t, w, http.StatusOK)

		var resp struct {
			Deleted int `json:"deleted"`
		}
		decodeJSON(t, w.Body.Bytes(), &resp)
		if resp.Deleted != 1 {
			t.Fatalf("deleted = %d, want 1 (unknown ids are skipped)", resp.Deleted)
		}
	}

	{
		w := doRequest(t, router, http.MethodDelete, "/api/v1/notices", "", "user-1")
		assertStatus(t, w, http.StatusOK)

		var resp struct {
			Deleted int `json:"deleted"`
		}
		decodeJSON(t, w.Body.Bytes(), &resp)
		if resp.Deleted != 2 {
			t.Fatalf("deleted = %d, want 2", resp.Deleted)
		}
	}
}

func TestNoticeHandlers_Unauthenticated(t *testing.T) {
	t.Parallel()

	router, _ := newBehaviorTestRouter(t, "h_unauth")

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"list", http.MethodGet, "/api/v1/notices"},
		{"grouped", http.MethodGet, "/api/v1/notices/grouped"},
		{"stats", http.MethodGet, "/api/v1/notices/stats"},
		{"mark one read", http.MethodPost, "/api/v1/notices/n-1/read"},
		{"mark all read", http.MethodPost, "/api/v1/notices/read-all"},
		{"delete all", http.MethodDelete, "/api/v1/notices"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := doRequest(t, router, tc.method, tc.path, "", "")
			assertStatus(t, w, http.StatusUnauthorized)
			assertErrorCode(t, w.Body.Bytes(), "UNAUTHENTICATED")
		})
	}
}
