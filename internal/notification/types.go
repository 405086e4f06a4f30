// Package notification implements the notice engine: templating, preference
// gating, fan-out, querying, statistics, read-state, and retention.
//
// Persistence is Ent-backed; the factory stays pure and only the fan-out
// coordinator writes notices. Collaborators (sessions, user directory) are
// consumed through the identity package.
package notification

import (
	"fmt"
	"time"

	"crewdeck.io/notifier/ent/notice"
)

// Category constants matching ent/schema/notice.go enum values.
const (
	CategoryCertificateExpiry  = "CERTIFICATE_EXPIRY"
	CategoryTravelReminder     = "TRAVEL_REMINDER"
	CategoryNewCircular        = "NEW_CIRCULAR"
	CategorySignoffReminder    = "SIGNOFF_REMINDER"
	CategorySystemAnnouncement = "SYSTEM_ANNOUNCEMENT"
	CategoryDocumentUpdate     = "DOCUMENT_UPDATE"
	CategoryCrewMessage        = "CREW_MESSAGE"
	CategoryGeneral            = "GENERAL"
)

// Priority constants, ordered LOW < MEDIUM < HIGH < URGENT.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Categories lists every known category in a stable order.
func Categories() []string {
	return []string{
		CategoryCertificateExpiry,
		CategoryTravelReminder,
		CategoryNewCircular,
		CategorySignoffReminder,
		CategorySystemAnnouncement,
		CategoryDocumentUpdate,
		CategoryCrewMessage,
		CategoryGeneral,
	}
}

// ValidCategory reports whether category is a known category name.
func ValidCategory(category string) bool {
	_, err := toEntCategory(category)
	return err == nil
}

// ValidPriority reports whether priority is a known priority name.
func ValidPriority(priority string) bool {
	_, err := toEntPriority(priority)
	return err == nil
}

var priorityRank = map[string]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// Action is an optional reference from a notice to a target resource.
type Action struct {
	Target string `json:"target"`
	Label  string `json:"label"`
}

// Spec describes a notice to be created, either rendered from the template
// registry or supplied freeform. Exactly one of the two shapes applies:
// when FromTemplate is set, Variables feed the registered pattern and
// Title/Message/Priority are ignored; otherwise they are taken verbatim.
type Spec struct {
	Category     string
	FromTemplate bool
	Variables    map[string]string

	Title    string
	Message  string
	Priority string

	Action    *Action
	Metadata  map[string]string
	ExpiresAt *time.Time
}

// Draft is a fully resolved, persistable notice record. Building a Draft has
// no store side effects; only the fan-out coordinator persists it.
type Draft struct {
	UserID    string
	Category  string
	Title     string
	Message   string
	Priority  string
	Action    *Action
	Metadata  map[string]string
	ExpiresAt *time.Time
}

func toEntCategory(c string) (notice.Category, error) {
	switch c {
	case CategoryCertificateExpiry:
		return notice.CategoryCERTIFICATE_EXPIRY, nil
	case CategoryTravelReminder:
		return notice.CategoryTRAVEL_REMINDER, nil
	case CategoryNewCircular:
		return notice.CategoryNEW_CIRCULAR, nil
	case CategorySignoffReminder:
		return notice.CategorySIGNOFF_REMINDER, nil
	case CategorySystemAnnouncement:
		return notice.CategorySYSTEM_ANNOUNCEMENT, nil
	case CategoryDocumentUpdate:
		return notice.CategoryDOCUMENT_UPDATE, nil
	case CategoryCrewMessage:
		return notice.CategoryCREW_MESSAGE, nil
	case CategoryGeneral:
		return notice.CategoryGENERAL, nil
	default:
		return "", fmt.Errorf("unknown notice category: %s", c)
	}
}

func toEntPriority(p string) (notice.Priority, error) {
	switch p {
	case PriorityLow:
		return notice.PriorityLOW, nil
	case PriorityMedium:
		return notice.PriorityMEDIUM, nil
	case PriorityHigh:
		return notice.PriorityHIGH, nil
	case PriorityUrgent:
		return notice.PriorityURGENT, nil
	default:
		return "", fmt.Errorf("unknown notice priority: %s", p)
	}
}
