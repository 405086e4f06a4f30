package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
)

func TestAppErrorWrapping(t *testing.T) {
	t.Parallel()

	base := stderrors.New("connection refused")
	appErr := ErrStoreFailure(base)

	if appErr.Code != CodeStoreFailure {
		t.Fatalf("code = %q, want %q", appErr.Code, CodeStoreFailure)
	}
	if appErr.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", appErr.HTTPStatus, http.StatusInternalServerError)
	}
	if !stderrors.Is(appErr, base) {
		t.Fatal("errors.Is should see through AppError to the wrapped error")
	}

	got, ok := IsAppError(appErr)
	if !ok || got != appErr {
		t.Fatal("IsAppError should recover the AppError")
	}
	if _, ok := IsAppError(base); ok {
		t.Fatal("IsAppError on a plain error should report false")
	}
}

func TestConstructorsCarryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
		paramKey   string
	}{
		{"unknown category", ErrUnknownCategoryf("BOGUS"), CodeUnknownCategory, http.StatusBadRequest, "category"},
		{"notice not found", ErrNoticeNotFoundf("n-1"), CodeNoticeNotFound, http.StatusNotFound, "notice_id"},
		{"reminder not found", ErrReminderNotFoundf("r-1"), CodeReminderNotFound, http.StatusNotFound, "reminder_id"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.err.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", tc.err.Code, tc.wantCode)
			}
			if tc.err.HTTPStatus != tc.wantStatus {
				t.Fatalf("status = %d, want %d", tc.err.HTTPStatus, tc.wantStatus)
			}
			if _, ok := tc.err.Params[tc.paramKey]; !ok {
				t.Fatalf("params missing key %q: %v", tc.paramKey, tc.err.Params)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	plain := New("VALIDATION_FAILED", "title is required", http.StatusBadRequest)
	if plain.Error() != "VALIDATION_FAILED: title is required" {
		t.Fatalf("unexpected error string: %q", plain.Error())
	}

	wrapped := Wrap(stderrors.New("boom"), "STORE_FAILURE", "insert failed", http.StatusInternalServerError)
	if wrapped.Error() != "STORE_FAILURE: insert failed: boom" {
		t.Fatalf("unexpected wrapped error string: %q", wrapped.Error())
	}
}
