package notification

import (
	"context"
	"fmt"
	"time"

	"crewdeck.io/notifier/ent"
	entnotice "crewdeck.io/notifier/ent/notice"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

// ReadState transitions notices from unread to read. All transitions are
// idempotent: re-marking an already-read notice is a no-op and read_at is
// never overwritten.
type ReadState struct {
	client *ent.Client
}

// NewReadState creates the read-state manager.
func NewReadState(client *ent.Client) *ReadState {
	return &ReadState{client: client}
}

// MarkRead marks one notice read. Already-read notices are left untouched;
// a notice that does not exist (or belongs to another user) is an error.
func (r *ReadState) MarkRead(ctx context.Context, userID, noticeID string) error {
	n, err := r.client.Notice.Update().
		Where(
			entnotice.IDEQ(noticeID),
			entnotice.UserIDEQ(userID),
			entnotice.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark notice %s read: %w", noticeID, err)
	}
	if n > 0 {
		return nil
	}

	// Nothing updated: either already read (fine) or not found (error).
	exists, err := r.client.Notice.Query().
		Where(entnotice.IDEQ(noticeID), entnotice.UserIDEQ(userID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check notice %s: %w", noticeID, err)
	}
	if !exists {
		return apperrors.ErrNoticeNotFoundf(noticeID)
	}
	return nil
}

// MarkManyRead marks the given notices read, returning how many actually
// transitioned. Unknown or already-read ids are skipped, never errors.
func (r *ReadState) MarkManyRead(ctx context.Context, userID string, noticeIDs []string) (int, error) {
	if len(noticeIDs) == 0 {
		return 0, nil
	}
	n, err := r.client.Notice.Update().
		Where(
			entnotice.IDIn(noticeIDs...),
			entnotice.UserIDEQ(userID),
			entnotice.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark notices read for user %s: %w", userID, err)
	}
	return n, nil
}

// MarkAllRead marks every unread notice of the user read, returning the
// transition count.
func (r *ReadState) MarkAllRead(ctx context.Context, userID string) (int, error) {
	n, err := r.client.Notice.Update().
		Where(
			entnotice.UserIDEQ(userID),
			entnotice.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all notices read for user %s: %w", userID, err)
	}
	return n, nil
}
