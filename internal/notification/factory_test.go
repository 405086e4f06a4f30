package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

func TestBuildFromTemplate(t *testing.T) {
	t.Parallel()

	draft, err := BuildFromTemplate("u-1", CategoryTravelReminder, map[string]string{
		"vessel":         "MV Orion",
		"port":           "Rotterdam",
		"departure_time": "Tue, 08 Sep 2026 14:30 UTC",
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", draft.UserID)
	assert.Equal(t, CategoryTravelReminder, draft.Category)
	assert.Equal(t, "Upcoming departure from Rotterdam", draft.Title)
	assert.Contains(t, draft.Message, "MV Orion")
	assert.Equal(t, PriorityHigh, draft.Priority, "travel template defaults to HIGH")
}

func TestBuildFromTemplate_PriorityOverride(t *testing.T) {
	t.Parallel()

	draft, err := BuildFromTemplate("u-1", CategoryTravelReminder, map[string]string{
		"vessel":         "MV Orion",
		"port":           "Rotterdam",
		"departure_time": "soon",
		VarPriority:      PriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, draft.Priority)
}

func TestBuildFromTemplate_InvalidPriorityOverride(t *testing.T) {
	t.Parallel()

	_, err := BuildFromTemplate("u-1", CategoryTravelReminder, map[string]string{
		"vessel":    "MV Orion",
		VarPriority: "CRITICAL",
	})
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestBuildFromTemplate_UnknownCategory(t *testing.T) {
	t.Parallel()

	_, err := BuildFromTemplate("u-1", "PORT_CALL", nil)
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnknownCategory, appErr.Code)
}

func TestBuild_Freeform(t *testing.T) {
	t.Parallel()

	expiresAt := time.Now().Add(time.Hour)
	draft, err := Build("u-1", Spec{
		Category:  CategoryGeneral,
		Title:     "Welcome aboard",
		Message:   "Crew portal is live",
		Action:    &Action{Target: "doc-1", Label: "Open"},
		Metadata:  map[string]string{"source": "onboarding"},
		ExpiresAt: &expiresAt,
	})
	require.NoError(t, err)

	assert.Equal(t, PriorityMedium, draft.Priority, "empty priority defaults to MEDIUM")
	assert.Equal(t, "Welcome aboard", draft.Title)
	require.NotNil(t, draft.Action)
	assert.Equal(t, "doc-1", draft.Action.Target)
	require.NotNil(t, draft.ExpiresAt)
	assert.True(t, draft.ExpiresAt.Equal(expiresAt))
}

func TestBuild_FreeformValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userID   string
		spec     Spec
		wantCode string
	}{
		{
			name:     "missing user id",
			userID:   "",
			spec:     Spec{Category: CategoryGeneral, Title: "t", Message: "m"},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:     "unknown category",
			userID:   "u-1",
			spec:     Spec{Category: "WATCHKEEPING", Title: "t", Message: "m"},
			wantCode: apperrors.CodeUnknownCategory,
		},
		{
			name:     "missing title",
			userID:   "u-1",
			spec:     Spec{Category: CategoryGeneral, Message: "m"},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:     "missing message",
			userID:   "u-1",
			spec:     Spec{Category: CategoryGeneral, Title: "t"},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:     "invalid priority",
			userID:   "u-1",
			spec:     Spec{Category: CategoryGeneral, Title: "t", Message: "m", Priority: "SEVERE"},
			wantCode: apperrors.CodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Build(tt.userID, tt.spec)
			require.Error(t, err)

			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}
