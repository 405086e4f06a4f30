package notification

import "time"

// Priority derivation bands. Multiple call sites (triggers, API callers)
// must agree on these thresholds, so they live here rather than at each
// call site. The certificate and travel bands overlap but are intentionally
// kept separate; no single canonical rule covers both.

// CertificatePriority derives urgency from the days remaining until a
// certificate expires.
func CertificatePriority(daysRemaining int) string {
	switch {
	case daysRemaining <= 14:
		return PriorityUrgent
	case daysRemaining <= 30:
		return PriorityHigh
	case daysRemaining <= 90:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// TravelPriority derives urgency from the time remaining until a departure
// or other travel event.
func TravelPriority(untilEvent time.Duration) string {
	switch {
	case untilEvent <= 3*time.Hour:
		return PriorityUrgent
	case untilEvent <= 24*time.Hour:
		return PriorityHigh
	case untilEvent <= 72*time.Hour:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// CircularFollowUpPriority derives urgency for an unacknowledged-circular
// follow-up from how many days the acknowledgement is overdue.
func CircularFollowUpPriority(daysOverdue int) string {
	if daysOverdue > 7 {
		return PriorityUrgent
	}
	return PriorityHigh
}
