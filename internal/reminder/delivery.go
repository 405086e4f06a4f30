package reminder

import (
	"context"

	"go.uber.org/zap"

	"crewdeck.io/notifier/ent"
	"crewdeck.io/notifier/internal/pkg/logger"
)

// Delivery hands a due reminder to an external channel (push, email,
// in-app socket). Transport is outside this engine; implementations live
// with the deployment. A reminder is marked sent only after Deliver
// returns nil.
type Delivery interface {
	Deliver(ctx context.Context, r *ent.Reminder) error
}

// LogDelivery writes due reminders to the log. Default binding for
// deployments without a configured channel, and useful in development.
type LogDelivery struct{}

// Deliver logs the reminder and reports success.
func (LogDelivery) Deliver(_ context.Context, r *ent.Reminder) error {
	logger.Info("reminder due",
		zap.String("reminder_id", r.ID),
		zap.String("reference_id", r.ReferenceID),
		zap.String("offset", r.Offset.String()),
		zap.Time("trigger_at", r.TriggerAt),
		zap.String("message", r.Message),
	)
	return nil
}
