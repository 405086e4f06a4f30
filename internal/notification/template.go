package notification

import (
	"strings"

	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

// Template is one entry in the static registry: title/message patterns with
// {placeholder} tokens and a default priority.
type Template struct {
	Title    string
	Message  string
	Priority string
}

// VarPriority is the reserved variable key that overrides a template's
// default priority.
const VarPriority = "priority"

// templates is the static registry keyed by category. No runtime mutation.
var templates = map[string]Template{
	CategoryCertificateExpiry: {
		Title:    "Certificate expiring: {certificate}",
		Message:  "Your {certificate} certificate expires on {expiry_date} ({days_remaining} days remaining). Contact your manning office to arrange renewal.",
		Priority: PriorityHigh,
	},
	CategoryTravelReminder: {
		Title:    "Upcoming departure from {port}",
		Message:  "Your journey to join {vessel} departs from {port} on {departure_time}. Check your travel documents before leaving.",
		Priority: PriorityHigh,
	},
	CategoryNewCircular: {
		Title:    "New circular: {title}",
		Message:  "Circular {number} \"{title}\" has been published and requires your acknowledgement.",
		Priority: PriorityMedium,
	},
	CategorySignoffReminder: {
		Title:    "Sign-off approaching on {vessel}",
		Message:  "Your sign-off from {vessel} is planned for {signoff_date}. Make sure handover notes are up to date.",
		Priority: PriorityMedium,
	},
	CategorySystemAnnouncement: {
		Title:    "Announcement",
		Message:  "{message}",
		Priority: PriorityMedium,
	},
	CategoryDocumentUpdate: {
		Title:    "Document updated: {document}",
		Message:  "{document} was updated by {updated_by}. Review the latest version in your document locker.",
		Priority: PriorityLow,
	},
	CategoryCrewMessage: {
		Title:    "Message from {sender}",
		Message:  "{message}",
		Priority: PriorityMedium,
	},
	CategoryGeneral: {
		Title:    "{title}",
		Message:  "{message}",
		Priority: PriorityLow,
	},
}

// LookupTemplate returns the registered template for a category.
// An unknown category is a programmer error, surfaced as UNKNOWN_CATEGORY.
func LookupTemplate(category string) (Template, error) {
	tpl, ok := templates[category]
	if !ok {
		return Template{}, apperrors.ErrUnknownCategoryf(category)
	}
	return tpl, nil
}

// substitute replaces every {key} token present in vars. Tokens without a
// matching variable are left verbatim; that passthrough is part of the
// template contract, not a failure.
func substitute(pattern string, vars map[string]string) string {
	if len(vars) == 0 {
		return pattern
	}
	pairs := make([]string, 0, 2*len(vars))
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(pattern)
}
