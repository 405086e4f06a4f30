package handlers

import (
	"time"

	"crewdeck.io/notifier/ent"
	"crewdeck.io/notifier/internal/notification"
)

// NoticeView is the wire representation of a notice.
type NoticeView struct {
	ID           string            `json:"id"`
	Category     string            `json:"category"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	Priority     string            `json:"priority"`
	Read         bool              `json:"read"`
	ReadAt       *time.Time        `json:"read_at,omitempty"`
	ActionTarget string            `json:"action_target,omitempty"`
	ActionLabel  string            `json:"action_label,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	ExpiresAt    *time.Time        `json:"expires_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Pagination echoes the resolved paging window of a listing.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NoticeList is a paginated notice listing.
type NoticeList struct {
	Items      []NoticeView `json:"items"`
	Pagination Pagination   `json:"pagination"`
}

// RecencyGroupView is one bucket of a grouped listing.
type RecencyGroupView struct {
	Label   string       `json:"label"`
	Notices []NoticeView `json:"notices"`
	Count   int          `json:"count"`
}

// ReminderView is the wire representation of a reminder.
type ReminderView struct {
	ID          string     `json:"id"`
	ReferenceID string     `json:"reference_id"`
	Offset      string     `json:"offset"`
	TriggerAt   time.Time  `json:"trigger_at"`
	Message     string     `json:"message"`
	Sent        bool       `json:"sent"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
}

func noticeToAPI(n *ent.Notice) NoticeView {
	return NoticeView{
		ID:           n.ID,
		Category:     n.Category.String(),
		Title:        n.Title,
		Message:      n.Message,
		Priority:     n.Priority.String(),
		Read:         n.Read,
		ReadAt:       n.ReadAt,
		ActionTarget: n.ActionTarget,
		ActionLabel:  n.ActionLabel,
		Metadata:     n.Metadata,
		ExpiresAt:    n.ExpiresAt,
		CreatedAt:    n.CreatedAt,
	}
}

func noticesToAPI(notices []*ent.Notice) []NoticeView {
	items := make([]NoticeView, 0, len(notices))
	for _, n := range notices {
		items = append(items, noticeToAPI(n))
	}
	return items
}

func groupsToAPI(groups []notification.RecencyGroup) []RecencyGroupView {
	out := make([]RecencyGroupView, 0, len(groups))
	for _, g := range groups {
		out = append(out, RecencyGroupView{
			Label:   g.Label,
			Notices: noticesToAPI(g.Notices),
			Count:   g.Count,
		})
	}
	return out
}

func reminderToAPI(r *ent.Reminder) ReminderView {
	return ReminderView{
		ID:          r.ID,
		ReferenceID: r.ReferenceID,
		Offset:      r.Offset.String(),
		TriggerAt:   r.TriggerAt,
		Message:     r.Message,
		Sent:        r.Sent,
		SentAt:      r.SentAt,
	}
}

func remindersToAPI(reminders []*ent.Reminder) []ReminderView {
	items := make([]ReminderView, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, reminderToAPI(r))
	}
	return items
}
