// Package worker provides goroutine pool management.
//
// Naked goroutines are avoided throughout the engine; all concurrency goes
// through a pool with context propagation and unified panic recovery.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"crewdeck.io/notifier/internal/pkg/logger"
)

// ErrPoolClosed is returned when submitting to a closed pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a context-aware task function.
type Task func(ctx context.Context)

// Pool wraps ants.Pool with context-aware submission.
type Pool struct {
	pool *ants.Pool
	name string
}

// Pools is the worker pool collection.
//
// Fanout caps the per-recipient concurrency of NotifyMany so a single slow
// recipient never stalls a broadcast; General serves everything else.
type Pools struct {
	General *Pool
	Fanout  *Pool

	// serviceCtx is the service lifecycle context for detached tasks
	serviceCtx    context.Context
	serviceCancel context.CancelFunc
}

// PoolConfig contains worker pool configuration.
type PoolConfig struct {
	GeneralPoolSize int
	FanoutPoolSize  int
}

// DefaultPoolConfig returns default configuration.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		GeneralPoolSize: 50,
		FanoutPoolSize:  16,
	}
}

// NewPools creates the worker pool collection.
func NewPools(ctx context.Context, cfg PoolConfig) (*Pools, error) {
	serviceCtx, serviceCancel := context.WithCancel(ctx)

	// Unified panic recovery
	panicHandler := func(p interface{}) {
		logger.Error("Worker panic recovered",
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	generalAnts, err := ants.NewPool(cfg.GeneralPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		serviceCancel()
		return nil, err
	}

	fanoutAnts, err := ants.NewPool(cfg.FanoutPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		generalAnts.Release()
		serviceCancel()
		return nil, err
	}

	return &Pools{
		General:       &Pool{pool: generalAnts, name: "general"},
		Fanout:        &Pool{pool: fanoutAnts, name: "fanout"},
		serviceCtx:    serviceCtx,
		serviceCancel: serviceCancel,
	}, nil
}

// NewFanoutPool creates a standalone fan-out pool. Used where the full
// collection is not wired, e.g. in tests of the fan-out coordinator.
func NewFanoutPool(size int) (*Pool, error) {
	if size <= 0 {
		size = DefaultPoolConfig().FanoutPoolSize
	}
	p, err := ants.NewPool(size,
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: p, name: "fanout"}, nil
}

// Submit submits a context-aware task. If the context is already cancelled,
// returns ctx.Err() immediately without submitting. Once accepted, the task
// always runs, even when the context is cancelled while queued: the task
// observes ctx itself, so callers keeping completion accounting (wait groups,
// counters) see every accepted task finish.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return p.pool.Submit(func() {
		task(ctx)
	})
}

// Release shuts down a standalone pool.
func (p *Pool) Release() {
	p.pool.Release()
}

// Cap returns the pool's concurrency cap.
func (p *Pool) Cap() int {
	return p.pool.Cap()
}

// SubmitDetached submits a detached background task bound to the service
// lifecycle context instead of a request context.
func (p *Pools) SubmitDetached(task Task) error {
	return p.General.pool.Submit(func() {
		select {
		case <-p.serviceCtx.Done():
			logger.Debug("Detached task skipped: service shutting down")
			return
		default:
		}
		task(p.serviceCtx)
	})
}

// Shutdown gracefully shuts down all pools with a timeout.
func (p *Pools) Shutdown() {
	p.serviceCancel()

	const shutdownTimeout = 30 * time.Second
	if err := p.General.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("General pool shutdown timeout", zap.Error(err))
	}
	if err := p.Fanout.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("Fanout pool shutdown timeout", zap.Error(err))
	}
}

// Metrics returns pool metrics for observability.
func (p *Pools) Metrics() map[string]interface{} {
	return map[string]interface{}{
		"general": map[string]int{
			"running": p.General.pool.Running(),
			"free":    p.General.pool.Free(),
			"cap":     p.General.pool.Cap(),
		},
		"fanout": map[string]int{
			"running": p.Fanout.pool.Running(),
			"free":    p.Fanout.pool.Free(),
			"cap":     p.Fanout.pool.Cap(),
		},
	}
}
