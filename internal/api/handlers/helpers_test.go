package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"crewdeck.io/notifier/ent"
	entnotice "crewdeck.io/notifier/ent/notice"
	"crewdeck.io/notifier/internal/api/middleware"
	"crewdeck.io/notifier/internal/identity"
	"crewdeck.io/notifier/internal/notification"
	"crewdeck.io/notifier/internal/pkg/logger"
	"crewdeck.io/notifier/internal/pkg/worker"
	"crewdeck.io/notifier/internal/reminder"
	"crewdeck.io/notifier/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("error", "json"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const testUserHeader = "X-Test-User"

// newBehaviorTestRouter mounts the full route table over a fresh schema,
// with error rendering active and JWT auth replaced by a header-driven
// identity stub. Requests without the header exercise the unauthenticated
// path.
func newBehaviorTestRouter(t *testing.T, prefix string, directoryIDs ...string) (*gin.Engine, *ent.Client) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	pool, err := worker.NewFanoutPool(4)
	if err != nil {
		t.Fatalf("create fan-out pool: %v", err)
	}
	t.Cleanup(pool.Release)

	gate := notification.NewGate(client, time.Minute)
	srv := NewServer(ServerDeps{
		EntClient:   client,
		Inbox:       notification.NewInbox(client),
		ReadState:   notification.NewReadState(client),
		Aggregator:  notification.NewAggregator(client),
		Coordinator: notification.NewCoordinator(client, gate, pool, &identity.StaticDirectory{IDs: directoryIDs}),
		Prefs:       notification.NewPreferenceService(client, gate),
		Scheduler:   reminder.NewScheduler(client),
	})

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(func(c *gin.Context) {
		if userID := c.GetHeader(testUserHeader); userID != "" {
			c.Request = c.Request.WithContext(identity.WithUser(c.Request.Context(), userID, userID))
		}
		c.Next()
	})

	v1 := router.Group("/api/v1")
	notices := v1.Group("/notices")
	{
		notices.GET("", srv.ListNotices)
		notices.GET("/grouped", srv.ListNoticesGrouped)
		notices.GET("/stats", srv.GetNoticeStats)
		notices.POST("", srv.CreateNotice)
		notices.POST("/bulk", srv.CreateNoticesBulk)
		notices.POST("/announce", srv.Announce)
		notices.POST("/:notice_id/read", srv.MarkNoticeRead)
		notices.POST("/read", srv.MarkNoticesRead)
		notices.POST("/read-all", srv.MarkAllNoticesRead)
		notices.POST("/delete", srv.DeleteNotices)
		notices.DELETE("/:notice_id", srv.DeleteNotice)
		notices.DELETE("", srv.DeleteAllNotices)
	}
	prefs := v1.Group("/preferences")
	{
		prefs.GET("", srv.GetPreferences)
		prefs.PUT("", srv.UpdatePreferences)
	}
	reminders := v1.Group("/reminders")
	{
		reminders.POST("", srv.ScheduleReminders)
		reminders.GET("/due", srv.ListDueReminders)
		reminders.POST("/:reminder_id/sent", srv.MarkReminderSent)
		reminders.DELETE("/reference/:reference_id", srv.DeleteRemindersForReference)
	}

	return router, client
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if strings.TrimSpace(body) != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(testUserHeader, userID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, body []byte, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode response %s: %v", body, err)
	}
}

func assertErrorCode(t *testing.T, body []byte, want string) {
	t.Helper()
	var resp struct {
		Code string `json:"code"`
	}
	decodeJSON(t, body, &resp)
	if resp.Code != want {
		t.Fatalf("error code = %q, want %q (body=%s)", resp.Code, want, body)
	}
}

func mustCreateNotice(t *testing.T, client *ent.Client, id, userID string, read bool, createdAt time.Time) *ent.Notice {
	t.Helper()

	builder := client.Notice.Create().
		SetID(id).
		SetUserID(userID).
		SetCategory(entnotice.CategoryGENERAL).
		SetTitle("title-" + id).
		SetMessage("message-" + id).
		SetPriority(entnotice.PriorityMEDIUM).
		SetCreatedAt(createdAt).
		SetRead(read)
	if read {
		builder = builder.SetReadAt(createdAt.Add(5 * time.Minute))
	}
	obj, err := builder.Save(t.Context())
	if err != nil {
		t.Fatalf("create notice: %v", err)
	}
	return obj
}

func mustCreatePreference(t *testing.T, client *ent.Client, userID string, enabled []string) {
	t.Helper()

	if _, err := client.Preference.Create().
		SetID("pref-" + userID).
		SetUserID(userID).
		SetEnabledCategories(enabled).
		Save(t.Context()); err != nil {
		t.Fatalf("create preference: %v", err)
	}
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d body=%s", w.Code, want, w.Body.String())
	}
}
