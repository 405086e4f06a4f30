package errors

import "net/http"

// Error code constants. Errors carry code + params; clients own the
// user-facing wording. Backend logs are always in English.

// Identity error codes.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeTokenExpired    = "TOKEN_EXPIRED"
	CodeTokenInvalid    = "TOKEN_INVALID"
)

// Notice error codes.
const (
	CodeUnknownCategory = "UNKNOWN_CATEGORY"
	CodeNoticeNotFound  = "NOTICE_NOT_FOUND"
)

// Reminder error codes.
const (
	CodeReminderNotFound = "REMINDER_NOT_FOUND"
)

// Store error codes.
const (
	CodeStoreFailure = "STORE_FAILURE"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrUnknownCategoryf creates an unknown category error. A template lookup
// miss is a programmer error and is not recoverable locally.
func ErrUnknownCategoryf(category string) *AppError {
	return (&AppError{
		Code:       CodeUnknownCategory,
		Message:    "no template registered for category",
		HTTPStatus: http.StatusBadRequest,
	}).WithParams(map[string]interface{}{"category": category})
}

// ErrNoticeNotFoundf creates a notice not found error.
func ErrNoticeNotFoundf(noticeID string) *AppError {
	return (&AppError{
		Code:       CodeNoticeNotFound,
		Message:    "notice not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"notice_id": noticeID})
}

// ErrReminderNotFoundf creates a reminder not found error.
func ErrReminderNotFoundf(reminderID string) *AppError {
	return (&AppError{
		Code:       CodeReminderNotFound,
		Message:    "reminder not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"reminder_id": reminderID})
}

// ErrStoreFailure wraps a backing-store error. Single-record operations
// surface it to the caller unmodified; batch operations count it per item.
func ErrStoreFailure(err error) *AppError {
	return Wrap(err, CodeStoreFailure, "backing store rejected the operation", http.StatusInternalServerError)
}
