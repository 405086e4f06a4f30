package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

func TestLookupTemplate_AllCategoriesRegistered(t *testing.T) {
	t.Parallel()

	for _, category := range Categories() {
		tpl, err := LookupTemplate(category)
		if err != nil {
			t.Fatalf("LookupTemplate(%s) error = %v", category, err)
		}
		if tpl.Title == "" || tpl.Message == "" {
			t.Fatalf("LookupTemplate(%s) returned empty pattern", category)
		}
		if !ValidPriority(tpl.Priority) {
			t.Fatalf("LookupTemplate(%s) default priority %q is not valid", category, tpl.Priority)
		}
	}
}

func TestLookupTemplate_UnknownCategory(t *testing.T) {
	t.Parallel()

	_, err := LookupTemplate("BOARDING_CALL")
	require.Error(t, err)

	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnknownCategory, appErr.Code)
	assert.Equal(t, "BOARDING_CALL", appErr.Params["category"])
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		vars    map[string]string
		want    string
	}{
		{
			name:    "replaces all known tokens",
			pattern: "Your {certificate} expires on {expiry_date}",
			vars:    map[string]string{"certificate": "GMDSS", "expiry_date": "2026-10-01"},
			want:    "Your GMDSS expires on 2026-10-01",
		},
		{
			name:    "unmatched tokens stay verbatim",
			pattern: "Hello {name}, gate {gate}",
			vars:    map[string]string{"name": "Ravi"},
			want:    "Hello Ravi, gate {gate}",
		},
		{
			name:    "no variables leaves pattern untouched",
			pattern: "Departure from {port}",
			vars:    nil,
			want:    "Departure from {port}",
		},
		{
			name:    "repeated token replaced everywhere",
			pattern: "{vessel} to {vessel}",
			vars:    map[string]string{"vessel": "MV Orion"},
			want:    "MV Orion to MV Orion",
		},
		{
			name:    "value containing a token is not re-expanded",
			pattern: "{a} {b}",
			vars:    map[string]string{"a": "{b}", "b": "x"},
			want:    "{b} x",
		},
		{
			name:    "extra variables without tokens are ignored",
			pattern: "plain text",
			vars:    map[string]string{"unused": "y"},
			want:    "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := substitute(tt.pattern, tt.vars); got != tt.want {
				t.Fatalf("substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplates_CertificateExpiryRendersAllFields(t *testing.T) {
	t.Parallel()

	tpl, err := LookupTemplate(CategoryCertificateExpiry)
	require.NoError(t, err)

	vars := map[string]string{
		"certificate":    "STCW Basic Safety",
		"expiry_date":    "2026-09-20",
		"days_remaining": "21",
	}
	title := substitute(tpl.Title, vars)
	message := substitute(tpl.Message, vars)

	assert.Equal(t, "Certificate expiring: STCW Basic Safety", title)
	assert.Contains(t, message, "2026-09-20")
	assert.Contains(t, message, "21 days remaining")
	assert.False(t, strings.Contains(message, "{"), "rendered message still has tokens: %s", message)
}
