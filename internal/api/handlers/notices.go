package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"crewdeck.io/notifier/internal/notification"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

// ListNotices handles GET /notices.
//
// Query parameters: category, priority, read (true/false), q (substring
// search), range (today/yesterday/this_week/this_month), page, per_page.
func (s *Server) ListNotices(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	filter := notification.Filter{
		Category:  c.Query("category"),
		Priority:  c.Query("priority"),
		Search:    c.Query("q"),
		DateRange: c.Query("range"),
	}
	if raw := c.Query("read"); raw != "" {
		read, err := strconv.ParseBool(raw)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "read must be true or false"))
			return
		}
		filter.Read = &read
	}

	page := notification.Page{
		Number:  intQuery(c, "page"),
		PerPage: intQuery(c, "per_page"),
	}.Normalize()

	notices, total, err := s.inbox.List(c.Request.Context(), userID, filter, page, time.Now().UTC())
	if err != nil {
		_ = c.Error(err)
		return
	}

	totalPages := (total + page.PerPage - 1) / page.PerPage
	c.JSON(http.StatusOK, NoticeList{
		Items: noticesToAPI(notices),
		Pagination: Pagination{
			Page:       page.Number,
			PerPage:    page.PerPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// ListNoticesGrouped handles GET /notices/grouped.
func (s *Server) ListNoticesGrouped(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	groups, err := s.inbox.GroupByRecency(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groupsToAPI(groups)})
}

// GetNoticeStats handles GET /notices/stats.
func (s *Server) GetNoticeStats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := s.aggregator.Stats(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CreateNoticeRequest is the body of POST /notices. With from_template set,
// category and variables drive the content; otherwise title and message are
// taken as-is.
type CreateNoticeRequest struct {
	UserID       string            `json:"user_id" binding:"required"`
	Category     string            `json:"category" binding:"required"`
	FromTemplate bool              `json:"from_template"`
	Variables    map[string]string `json:"variables"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	Priority     string            `json:"priority"`
	ActionTarget string            `json:"action_target"`
	ActionLabel  string            `json:"action_label"`
	Metadata     map[string]string `json:"metadata"`
	TTLSeconds   int64             `json:"ttl_seconds"`
}

func (r CreateNoticeRequest) spec() notification.Spec {
	spec := notification.Spec{
		Category:     r.Category,
		FromTemplate: r.FromTemplate,
		Variables:    r.Variables,
		Title:        r.Title,
		Message:      r.Message,
		Priority:     r.Priority,
		Metadata:     r.Metadata,
	}
	if r.ActionTarget != "" {
		spec.Action = &notification.Action{Target: r.ActionTarget, Label: r.ActionLabel}
	}
	if r.TTLSeconds > 0 {
		expiresAt := time.Now().UTC().Add(time.Duration(r.TTLSeconds) * time.Second)
		spec.ExpiresAt = &expiresAt
	}
	return spec
}

// CreateNotice handles POST /notices.
func (s *Server) CreateNotice(c *gin.Context) {
	var req CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	delivered, err := s.coordinator.Notify(c.Request.Context(), req.UserID, req.spec())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !delivered {
		// Suppressed by the recipient's category preferences.
		c.JSON(http.StatusOK, gin.H{"delivered": false})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"delivered": true})
}

// BulkNoticeRequest is the body of POST /notices/bulk.
type BulkNoticeRequest struct {
	UserIDs      []string          `json:"user_ids" binding:"required,min=1"`
	Category     string            `json:"category" binding:"required"`
	FromTemplate bool              `json:"from_template"`
	Variables    map[string]string `json:"variables"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	Priority     string            `json:"priority"`
	ActionTarget string            `json:"action_target"`
	ActionLabel  string            `json:"action_label"`
	Metadata     map[string]string `json:"metadata"`
	TTLSeconds   int64             `json:"ttl_seconds"`
}

// CreateNoticesBulk handles POST /notices/bulk. Per-recipient failures are
// isolated; the response reports how many notices were persisted.
func (s *Server) CreateNoticesBulk(c *gin.Context) {
	var req BulkNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	single := CreateNoticeRequest{
		Category:     req.Category,
		FromTemplate: req.FromTemplate,
		Variables:    req.Variables,
		Title:        req.Title,
		Message:      req.Message,
		Priority:     req.Priority,
		ActionTarget: req.ActionTarget,
		ActionLabel:  req.ActionLabel,
		Metadata:     req.Metadata,
		TTLSeconds:   req.TTLSeconds,
	}
	notified := s.coordinator.NotifyMany(c.Request.Context(), req.UserIDs, single.spec())
	c.JSON(http.StatusOK, gin.H{
		"requested": len(req.UserIDs),
		"notified":  notified,
	})
}

// AnnounceRequest is the body of POST /notices/announce.
type AnnounceRequest struct {
	Message    string `json:"message" binding:"required"`
	Priority   string `json:"priority"`
	TTLSeconds int64  `json:"ttl_seconds"`
}

// Announce handles POST /notices/announce, broadcasting a system
// announcement to every known user.
func (s *Server) Announce(c *gin.Context) {
	var req AnnounceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	notified, err := s.coordinator.Announce(c.Request.Context(), req.Message, req.Priority, ttl)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notified": notified})
}

// MarkNoticeRead handles POST /notices/{notice_id}/read. Marking an already
// read notice is a no-op success.
func (s *Server) MarkNoticeRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := s.readState.MarkRead(c.Request.Context(), userID, c.Param("notice_id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// IDListRequest carries an explicit notice ID selection.
type IDListRequest struct {
	NoticeIDs []string `json:"notice_ids" binding:"required,min=1"`
}

// MarkNoticesRead handles POST /notices/read. Unknown IDs are skipped; the
// response reports how many notices actually transitioned.
func (s *Server) MarkNoticesRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req IDListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	updated, err := s.readState.MarkManyRead(c.Request.Context(), userID, req.NoticeIDs)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// MarkAllNoticesRead handles POST /notices/read-all.
func (s *Server) MarkAllNoticesRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	updated, err := s.readState.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DeleteNotice handles DELETE /notices/{notice_id}.
func (s *Server) DeleteNotice(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := s.inbox.Delete(c.Request.Context(), userID, c.Param("notice_id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteNotices handles POST /notices/delete with an explicit ID selection.
func (s *Server) DeleteNotices(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req IDListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	deleted, err := s.inbox.DeleteMany(c.Request.Context(), userID, req.NoticeIDs)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// DeleteAllNotices handles DELETE /notices.
func (s *Server) DeleteAllNotices(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	deleted, err := s.inbox.DeleteAll(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
