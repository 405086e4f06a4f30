package notification

import (
	"fmt"
	"net/http"

	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

// Build resolves a Spec into a persistable Draft. It is pure with respect to
// the store: no reads, no writes, no clock access.
func Build(userID string, spec Spec) (Draft, error) {
	if spec.FromTemplate {
		return buildFromTemplate(userID, spec)
	}
	return buildFreeform(userID, spec)
}

// BuildFromTemplate renders the registered template for category, feeding
// vars into the {key} tokens of title and message.
func BuildFromTemplate(userID, category string, vars map[string]string) (Draft, error) {
	return buildFromTemplate(userID, Spec{
		Category:     category,
		FromTemplate: true,
		Variables:    vars,
	})
}

func buildFromTemplate(userID string, spec Spec) (Draft, error) {
	tpl, err := LookupTemplate(spec.Category)
	if err != nil {
		return Draft{}, err
	}

	priority := tpl.Priority
	if override, ok := spec.Variables[VarPriority]; ok {
		if !ValidPriority(override) {
			return Draft{}, apperrors.New(apperrors.CodeValidationFailed,
				fmt.Sprintf("invalid priority override %q", override), http.StatusBadRequest)
		}
		priority = override
	}

	draft := Draft{
		UserID:    userID,
		Category:  spec.Category,
		Title:     substitute(tpl.Title, spec.Variables),
		Message:   substitute(tpl.Message, spec.Variables),
		Priority:  priority,
		Action:    spec.Action,
		Metadata:  spec.Metadata,
		ExpiresAt: spec.ExpiresAt,
	}
	if err := validateDraft(draft); err != nil {
		return Draft{}, err
	}
	return draft, nil
}

func buildFreeform(userID string, spec Spec) (Draft, error) {
	priority := spec.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return Draft{}, apperrors.New(apperrors.CodeValidationFailed,
			fmt.Sprintf("invalid priority %q", priority), http.StatusBadRequest)
	}

	draft := Draft{
		UserID:    userID,
		Category:  spec.Category,
		Title:     spec.Title,
		Message:   spec.Message,
		Priority:  priority,
		Action:    spec.Action,
		Metadata:  spec.Metadata,
		ExpiresAt: spec.ExpiresAt,
	}
	if err := validateDraft(draft); err != nil {
		return Draft{}, err
	}
	return draft, nil
}

func validateDraft(d Draft) error {
	if d.UserID == "" {
		return apperrors.New(apperrors.CodeValidationFailed, "user id is required", http.StatusBadRequest)
	}
	if !ValidCategory(d.Category) {
		return apperrors.ErrUnknownCategoryf(d.Category)
	}
	if d.Title == "" {
		return apperrors.New(apperrors.CodeValidationFailed, "title is required", http.StatusBadRequest)
	}
	if d.Message == "" {
		return apperrors.New(apperrors.CodeValidationFailed, "message is required", http.StatusBadRequest)
	}
	return nil
}
