package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"crewdeck.io/notifier/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	m.Run()
}

func TestSubmitRunsTask(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	defer pools.Shutdown()

	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	err = pools.General.Submit(context.Background(), func(ctx context.Context) {
		defer wg.Done()
		ran.Store(true)
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	wg.Wait()

	if !ran.Load() {
		t.Fatal("task did not run")
	}
}

func TestSubmitCancelledContext(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	defer pools.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = pools.Fanout.Submit(ctx, func(ctx context.Context) {
		t.Error("task should not run with cancelled context")
	})
	if err == nil {
		t.Fatal("Submit with cancelled context should return an error")
	}
}

func TestSubmitRunsTaskCancelledWhileQueued(t *testing.T) {
	pool, err := NewFanoutPool(1)
	if err != nil {
		t.Fatalf("NewFanoutPool: %v", err)
	}
	defer pool.Release()

	// Occupy the single worker so the next task has to queue.
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	err = pool.Submit(context.Background(), func(ctx context.Context) {
		defer wg.Done()
		<-release
	})
	if err != nil {
		t.Fatalf("Submit blocker: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var sawErr atomic.Value
	wg.Add(1)
	err = pool.Submit(ctx, func(ctx context.Context) {
		defer wg.Done()
		sawErr.Store(ctx.Err())
	})
	if err != nil {
		t.Fatalf("Submit queued task: %v", err)
	}

	cancel()
	close(release)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queued task was skipped after cancellation; accepted tasks must always run")
	}

	if got, ok := sawErr.Load().(error); !ok || got == nil {
		t.Fatalf("queued task saw ctx.Err() = %v, want context.Canceled", got)
	}
}

func TestFanoutPoolBoundsConcurrency(t *testing.T) {
	pool, err := NewFanoutPool(2)
	if err != nil {
		t.Fatalf("NewFanoutPool: %v", err)
	}
	defer pool.Release()

	if pool.Cap() != 2 {
		t.Fatalf("cap = %d, want 2", pool.Cap())
	}

	var inFlight, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		err := pool.Submit(context.Background(), func(ctx context.Context) {
			defer wg.Done()
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
		})
		if err != nil {
			wg.Done()
			t.Fatalf("Submit: %v", err)
		}
	}
	wg.Wait()

	if got := peak.Load(); got > 2 {
		t.Fatalf("peak concurrency = %d, want <= 2", got)
	}
}

func TestSubmitDetachedSkipsAfterShutdown(t *testing.T) {
	pools, err := NewPools(context.Background(), PoolConfig{GeneralPoolSize: 4, FanoutPoolSize: 4})
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}

	done := make(chan struct{})
	if err := pools.SubmitDetached(func(ctx context.Context) {
		close(done)
	}); err != nil {
		t.Fatalf("SubmitDetached: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached task did not run")
	}

	pools.Shutdown()
}
