package notification

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"crewdeck.io/notifier/internal/pkg/logger"
	"crewdeck.io/notifier/internal/reminder"
)

// Triggers encapsulates the domain entry points that raise notices:
// certificate expiry, departures, circulars, sign-off, document updates,
// and crew messages. Each trigger resolves its priority through the shared
// bands in priority.go so every call site agrees on the thresholds.
//
// Triggers are best-effort: failures are logged and never propagated to the
// business operation that fired them.
type Triggers struct {
	coordinator *Coordinator
	scheduler   *reminder.Scheduler
}

// NewTriggers creates the notification trigger service.
func NewTriggers(coordinator *Coordinator, scheduler *reminder.Scheduler) *Triggers {
	return &Triggers{coordinator: coordinator, scheduler: scheduler}
}

// OnCertificateExpiring fires when a crew certificate approaches expiry.
func (t *Triggers) OnCertificateExpiring(ctx context.Context, userID, certificateID, certificateName string, expiresOn time.Time, daysRemaining int) {
	spec := Spec{
		Category:     CategoryCertificateExpiry,
		FromTemplate: true,
		Variables: map[string]string{
			"certificate":    certificateName,
			"expiry_date":    expiresOn.Format("2006-01-02"),
			"days_remaining": strconv.Itoa(daysRemaining),
			VarPriority:      CertificatePriority(daysRemaining),
		},
		Action: &Action{Target: certificateID, Label: "View certificate"},
	}

	if _, err := t.coordinator.Notify(ctx, userID, spec); err != nil {
		logger.Error("failed to raise certificate expiry notice",
			zap.String("user_id", userID),
			zap.String("certificate_id", certificateID),
			zap.Error(err),
		)
	}
}

// OnDeparture fires when a travel itinerary with a known departure time is
// registered. Besides the travel notice it schedules the reminder batch for
// the departure instant.
func (t *Triggers) OnDeparture(ctx context.Context, userID, ticketID, vessel, port string, departure time.Time) {
	spec := Spec{
		Category:     CategoryTravelReminder,
		FromTemplate: true,
		Variables: map[string]string{
			"vessel":         vessel,
			"port":           port,
			"departure_time": departure.UTC().Format("Mon, 02 Jan 2006 15:04 MST"),
			VarPriority:      TravelPriority(time.Until(departure)),
		},
		Action: &Action{Target: ticketID, Label: "View itinerary"},
	}

	if _, err := t.coordinator.Notify(ctx, userID, spec); err != nil {
		logger.Error("failed to raise departure notice",
			zap.String("user_id", userID),
			zap.String("ticket_id", ticketID),
			zap.Error(err),
		)
	}

	if _, err := t.scheduler.Schedule(ctx, ticketID, departure); err != nil {
		logger.Error("failed to schedule departure reminders",
			zap.String("user_id", userID),
			zap.String("ticket_id", ticketID),
			zap.Error(err),
		)
	}
}

// OnCircularPublished fires when a new circular is published, notifying
// every affected crew member.
func (t *Triggers) OnCircularPublished(ctx context.Context, userIDs []string, circularID, number, title string) {
	spec := Spec{
		Category:     CategoryNewCircular,
		FromTemplate: true,
		Variables: map[string]string{
			"number": number,
			"title":  title,
		},
		Action: &Action{Target: circularID, Label: "Read circular"},
	}

	sent := t.coordinator.NotifyMany(ctx, userIDs, spec)
	if sent < len(userIDs) {
		logger.Warn("circular notice reached a subset of recipients",
			zap.String("circular_id", circularID),
			zap.Int("recipients", len(userIDs)),
			zap.Int("notified", sent),
		)
	}
}

// OnCircularOverdue fires the follow-up for a circular whose acknowledgement
// is overdue.
func (t *Triggers) OnCircularOverdue(ctx context.Context, userID, circularID, number string, daysOverdue int) {
	spec := Spec{
		Category:     CategoryNewCircular,
		FromTemplate: true,
		Variables: map[string]string{
			"number":    number,
			"title":     "acknowledgement overdue",
			VarPriority: CircularFollowUpPriority(daysOverdue),
		},
		Action: &Action{Target: circularID, Label: "Acknowledge now"},
	}

	if _, err := t.coordinator.Notify(ctx, userID, spec); err != nil {
		logger.Error("failed to raise circular follow-up",
			zap.String("user_id", userID),
			zap.String("circular_id", circularID),
			zap.Error(err),
		)
	}
}

// OnSignoffApproaching fires when a crew member's sign-off date nears.
func (t *Triggers) OnSignoffApproaching(ctx context.Context, userID, vessel string, signoffDate time.Time) {
	spec := Spec{
		Category:     CategorySignoffReminder,
		FromTemplate: true,
		Variables: map[string]string{
			"vessel":       vessel,
			"signoff_date": signoffDate.Format("2006-01-02"),
		},
	}

	if _, err := t.coordinator.Notify(ctx, userID, spec); err != nil {
		logger.Error("failed to raise sign-off notice",
			zap.String("user_id", userID),
			zap.String("vessel", vessel),
			zap.Error(err),
		)
	}
}

// OnDocumentUpdated fires when a shared document changes.
func (t *Triggers) OnDocumentUpdated(ctx context.Context, userIDs []string, documentID, documentName, updatedBy string) {
	spec := Spec{
		Category:     CategoryDocumentUpdate,
		FromTemplate: true,
		Variables: map[string]string{
			"document":   documentName,
			"updated_by": updatedBy,
		},
		Action: &Action{Target: documentID, Label: "Open document"},
	}

	t.coordinator.NotifyMany(ctx, userIDs, spec)
}

// OnCrewMessage fires when a crew member sends a direct message.
func (t *Triggers) OnCrewMessage(ctx context.Context, userID, senderName, message string) {
	spec := Spec{
		Category:     CategoryCrewMessage,
		FromTemplate: true,
		Variables: map[string]string{
			"sender":  senderName,
			"message": message,
		},
	}

	if _, err := t.coordinator.Notify(ctx, userID, spec); err != nil {
		logger.Error("failed to raise crew message notice",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
