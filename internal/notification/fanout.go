package notification

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"crewdeck.io/notifier/ent"
	"crewdeck.io/notifier/internal/identity"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
	"crewdeck.io/notifier/internal/pkg/logger"
	"crewdeck.io/notifier/internal/pkg/worker"
)

// Coordinator applies notice creation across one or many recipients.
// It is the only component that persists notices.
type Coordinator struct {
	client    *ent.Client
	gate      *Gate
	pool      *worker.Pool
	directory identity.Directory
}

// NewCoordinator creates a fan-out coordinator. The pool bounds per-recipient
// concurrency of NotifyMany; directory is consulted only by Announce.
func NewCoordinator(client *ent.Client, gate *Gate, pool *worker.Pool, directory identity.Directory) *Coordinator {
	return &Coordinator{
		client:    client,
		gate:      gate,
		pool:      pool,
		directory: directory,
	}
}

// Notify creates a notice for a single user. Returns false without
// persisting when the user's preferences disable the category; that is the
// documented no-op path, not an error. Store failures surface unmodified.
func (c *Coordinator) Notify(ctx context.Context, userID string, spec Spec) (bool, error) {
	enabled, err := c.gate.IsCategoryEnabled(ctx, userID, spec.Category)
	if err != nil {
		return false, err
	}
	if !enabled {
		logger.Debug("notice suppressed by preference",
			zap.String("user_id", userID),
			zap.String("category", spec.Category),
		)
		return false, nil
	}

	draft, err := Build(userID, spec)
	if err != nil {
		return false, err
	}
	if err := c.persist(ctx, draft); err != nil {
		return false, err
	}
	return true, nil
}

// NotifyMany applies Notify to each recipient independently on the fan-out
// pool. A failure for one recipient never aborts the rest; the return value
// is the number of notices actually persisted.
func (c *Coordinator) NotifyMany(ctx context.Context, userIDs []string, spec Spec) int {
	if len(userIDs) == 0 {
		return 0
	}

	var (
		persisted atomic.Int64
		failed    atomic.Int64
		wg        sync.WaitGroup
	)

	for _, userID := range userIDs {
		userID := userID
		wg.Add(1)
		err := c.pool.Submit(ctx, func(ctx context.Context) {
			defer wg.Done()
			if ctx.Err() != nil {
				// Cancelled while queued; the recipient was never attempted.
				failed.Add(1)
				return
			}
			ok, err := c.Notify(ctx, userID, spec)
			if err != nil {
				failed.Add(1)
				logger.Error("notice delivery failed",
					zap.String("user_id", userID),
					zap.String("category", spec.Category),
					zap.Error(err),
				)
				return
			}
			if ok {
				persisted.Add(1)
			}
		})
		if err != nil {
			// Pool rejected the task (closed pool or cancelled context);
			// count as a failed recipient and keep going.
			wg.Done()
			failed.Add(1)
			logger.Error("fan-out submit failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}
	wg.Wait()

	if n := failed.Load(); n > 0 {
		logger.Warn("fan-out completed with failures",
			zap.String("category", spec.Category),
			zap.Int("recipients", len(userIDs)),
			zap.Int64("persisted", persisted.Load()),
			zap.Int64("failed", n),
		)
	}
	return int(persisted.Load())
}

// Announce fans a system announcement out to every active user, with
// expiry set to now + ttl. A non-positive ttl means the announcement never
// expires. Returns the number of users actually notified.
func (c *Coordinator) Announce(ctx context.Context, message, priority string, ttl time.Duration) (int, error) {
	userIDs, err := c.directory.AllUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve active users: %w", err)
	}

	spec := Spec{
		Category:     CategorySystemAnnouncement,
		FromTemplate: true,
		Variables:    map[string]string{"message": message},
	}
	if priority != "" {
		spec.Variables[VarPriority] = priority
	}
	if ttl > 0 {
		expires := time.Now().UTC().Add(ttl)
		spec.ExpiresAt = &expires
	}

	return c.NotifyMany(ctx, userIDs, spec), nil
}

// persist writes one resolved draft.
func (c *Coordinator) persist(ctx context.Context, draft Draft) error {
	category, err := toEntCategory(draft.Category)
	if err != nil {
		return err
	}
	priority, err := toEntPriority(draft.Priority)
	if err != nil {
		return err
	}

	create := c.client.Notice.Create().
		SetID(uuid.NewString()).
		SetUserID(draft.UserID).
		SetCategory(category).
		SetTitle(draft.Title).
		SetMessage(draft.Message).
		SetPriority(priority).
		SetRead(false).
		SetNillableExpiresAt(draft.ExpiresAt)
	if draft.Action != nil {
		create.SetActionTarget(draft.Action.Target).
			SetActionLabel(draft.Action.Label)
	}
	if len(draft.Metadata) > 0 {
		create.SetMetadata(draft.Metadata)
	}

	if _, err := create.Save(ctx); err != nil {
		return apperrors.ErrStoreFailure(fmt.Errorf("create notice for user %s: %w", draft.UserID, err))
	}

	logger.Debug("notice persisted",
		zap.String("user_id", draft.UserID),
		zap.String("category", draft.Category),
		zap.String("priority", draft.Priority),
	)
	return nil
}
