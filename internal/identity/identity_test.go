package identity

import (
	"context"
	"testing"

	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

func TestCurrentUserID(t *testing.T) {
	t.Parallel()

	ctx := WithUser(context.Background(), "crew-7", "a.santos")

	id, err := CurrentUserID(ctx)
	if err != nil {
		t.Fatalf("CurrentUserID: %v", err)
	}
	if id != "crew-7" {
		t.Fatalf("user id = %q, want %q", id, "crew-7")
	}
	if Username(ctx) != "a.santos" {
		t.Fatalf("username = %q, want %q", Username(ctx), "a.santos")
	}
}

func TestCurrentUserIDUnauthenticated(t *testing.T) {
	t.Parallel()

	_, err := CurrentUserID(context.Background())
	if err == nil {
		t.Fatal("expected error for missing session")
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeUnauthenticated {
		t.Fatalf("error = %v, want code %s", err, apperrors.CodeUnauthenticated)
	}
}

func TestStaticDirectoryReturnsCopy(t *testing.T) {
	t.Parallel()

	dir := &StaticDirectory{IDs: []string{"u-1", "u-2"}}
	ids, err := dir.AllUserIDs(context.Background())
	if err != nil {
		t.Fatalf("AllUserIDs: %v", err)
	}
	ids[0] = "mutated"

	again, _ := dir.AllUserIDs(context.Background())
	if again[0] != "u-1" {
		t.Fatal("AllUserIDs must not expose internal slice")
	}
}
