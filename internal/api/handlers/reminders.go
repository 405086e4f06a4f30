package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

// ScheduleRemindersRequest is the body of POST /reminders. EventTime is the
// instant of the referenced event; one reminder is created per standard
// offset regardless of the current time, so triggers already in the past
// are immediately due.
type ScheduleRemindersRequest struct {
	ReferenceID string    `json:"reference_id" binding:"required"`
	EventTime   time.Time `json:"event_time" binding:"required"`
}

// ScheduleReminders handles POST /reminders.
func (s *Server) ScheduleReminders(c *gin.Context) {
	var req ScheduleRemindersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	reminders, err := s.scheduler.Schedule(c.Request.Context(), req.ReferenceID, req.EventTime)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reminders": remindersToAPI(reminders)})
}

// ListDueReminders handles GET /reminders/due.
func (s *Server) ListDueReminders(c *gin.Context) {
	due, err := s.scheduler.Due(c.Request.Context(), time.Now().UTC())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": remindersToAPI(due)})
}

// MarkReminderSent handles POST /reminders/{reminder_id}/sent. Marking an
// already sent reminder is a no-op success.
func (s *Server) MarkReminderSent(c *gin.Context) {
	if err := s.scheduler.MarkSent(c.Request.Context(), c.Param("reminder_id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRemindersForReference handles DELETE /reminders/reference/{reference_id},
// cancelling the pending batch when the underlying event is called off.
func (s *Server) DeleteRemindersForReference(c *gin.Context) {
	deleted, err := s.scheduler.DeleteForReference(c.Request.Context(), c.Param("reference_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
