// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"crewdeck.io/notifier/internal/api/handlers"
	"crewdeck.io/notifier/internal/api/middleware"
	"crewdeck.io/notifier/internal/config"
	"crewdeck.io/notifier/internal/identity"
	"crewdeck.io/notifier/internal/infrastructure"
	"crewdeck.io/notifier/internal/jobs"
	"crewdeck.io/notifier/internal/notification"
	"crewdeck.io/notifier/internal/pkg/worker"
	"crewdeck.io/notifier/internal/reminder"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
	Engine *Engine
}

// Engine groups the notification and reminder services built during
// bootstrap, exposed for the trigger layer and tooling.
type Engine struct {
	Gate        *notification.Gate
	Coordinator *notification.Coordinator
	Inbox       *notification.Inbox
	ReadState   *notification.ReadState
	Aggregator  *notification.Aggregator
	Prefs       *notification.PreferenceService
	Sweeper     *notification.Sweeper
	Scheduler   *reminder.Scheduler
	Triggers    *notification.Triggers
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database clients: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		FanoutPoolSize:  cfg.Worker.FanoutPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	directory := &identity.StaticDirectory{IDs: cfg.Notify.DirectoryUsers}

	gate := notification.NewGate(db.EntClient, cfg.Notify.PreferenceCacheTTL)
	coordinator := notification.NewCoordinator(db.EntClient, gate, pools.Fanout, directory)
	scheduler := reminder.NewScheduler(db.EntClient)
	engine := &Engine{
		Gate:        gate,
		Coordinator: coordinator,
		Inbox:       notification.NewInbox(db.EntClient),
		ReadState:   notification.NewReadState(db.EntClient),
		Aggregator:  notification.NewAggregator(db.EntClient),
		Prefs:       notification.NewPreferenceService(db.EntClient, gate),
		Sweeper:     notification.NewSweeper(db.EntClient),
		Scheduler:   scheduler,
		Triggers:    notification.NewTriggers(coordinator, scheduler),
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewNoticeSweepWorker(engine.Sweeper))
	river.AddWorker(workers, jobs.NewReminderDispatchWorker(engine.Scheduler, reminder.LogDelivery{}))

	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.Notify.SweepInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NoticeSweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.Reminder.DispatchInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.ReminderDispatchArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Security.JWTSigningKey),
		Issuer:     cfg.Security.JWTIssuer,
		ExpiresIn:  cfg.Security.JWTExpiry,
	}
	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:   db.EntClient,
		Pool:        db.Pool,
		JWTCfg:      jwtCfg,
		Inbox:       engine.Inbox,
		ReadState:   engine.ReadState,
		Aggregator:  engine.Aggregator,
		Coordinator: engine.Coordinator,
		Prefs:       engine.Prefs,
		Scheduler:   engine.Scheduler,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, jwtCfg.SigningKey),
		DB:     db,
		Pools:  pools,
		Engine: engine,
	}, nil
}
