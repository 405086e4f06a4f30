// Package identity holds the collaborator contracts the engine consumes for
// caller identity: the current session user and the active-user directory.
//
// The engine never owns user records; authentication and the user roster live
// in the surrounding platform. Both contracts are narrow interfaces so the
// HTTP layer, jobs, and tests can each bind their own implementation.
package identity

import (
	"context"

	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

type contextKey string

const (
	ctxKeyUserID   contextKey = "user_id"
	ctxKeyUsername contextKey = "username"
)

// WithUser stores authenticated user info in the context.
func WithUser(ctx context.Context, userID, username string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	ctx = context.WithValue(ctx, ctxKeyUsername, username)
	return ctx
}

// CurrentUserID returns the authenticated user id from the context.
// Fails with UNAUTHENTICATED when no session is present.
func CurrentUserID(ctx context.Context) (string, error) {
	if v, ok := ctx.Value(ctxKeyUserID).(string); ok && v != "" {
		return v, nil
	}
	return "", apperrors.Unauthenticated(apperrors.CodeUnauthenticated, "no authenticated user in context")
}

// Username returns the authenticated username, or "" when absent.
func Username(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyUsername).(string); ok {
		return v
	}
	return ""
}

// Directory enumerates the active user set. Consumed only by announcements.
type Directory interface {
	AllUserIDs(ctx context.Context) ([]string, error)
}

// StaticDirectory serves a fixed user list. Used for single-crew deployments
// and local development; production deployments bind the platform's own
// user service behind the Directory interface.
type StaticDirectory struct {
	IDs []string
}

// AllUserIDs returns a copy of the configured user list.
func (d *StaticDirectory) AllUserIDs(_ context.Context) ([]string, error) {
	out := make([]string, len(d.IDs))
	copy(out, d.IDs)
	return out, nil
}
