// Package main provides data seeding for CrewDeck Notifier.
//
// The seed fixture is a YAML file describing preferences, notices, and
// reminders for local development and demo environments. Seeding goes
// through the engine services, so preference gating and reminder offset
// rules apply exactly as they do in production.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"crewdeck.io/notifier/internal/config"
	"crewdeck.io/notifier/internal/infrastructure"
	"crewdeck.io/notifier/internal/notification"
	"crewdeck.io/notifier/internal/pkg/logger"
	"crewdeck.io/notifier/internal/pkg/worker"
	"crewdeck.io/notifier/internal/reminder"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

// fixture is the root of the seed YAML file.
type fixture struct {
	Preferences []preferenceFixture `yaml:"preferences"`
	Notices     []noticeFixture     `yaml:"notices"`
	Reminders   []reminderFixture   `yaml:"reminders"`
}

type preferenceFixture struct {
	UserID            string   `yaml:"user_id"`
	EnabledCategories []string `yaml:"enabled_categories"`
	Digest            string   `yaml:"digest"`
	QuietStart        string   `yaml:"quiet_start"`
	QuietEnd          string   `yaml:"quiet_end"`
}

type noticeFixture struct {
	UserID       string            `yaml:"user_id"`
	Category     string            `yaml:"category"`
	FromTemplate bool              `yaml:"from_template"`
	Variables    map[string]string `yaml:"variables"`
	Title        string            `yaml:"title"`
	Message      string            `yaml:"message"`
	Priority     string            `yaml:"priority"`
	ActionTarget string            `yaml:"action_target"`
	ActionLabel  string            `yaml:"action_label"`
	TTL          duration          `yaml:"ttl"`
}

// duration lets fixtures spell durations as Go strings like "720h".
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = duration(parsed)
	return nil
}

type reminderFixture struct {
	ReferenceID string    `yaml:"reference_id"`
	EventTime   time.Time `yaml:"event_time"`
}

func run() error {
	file := flag.String("file", "seed.yaml", "path to the seed fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	fix, err := loadFixture(*file)
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pool, err := worker.NewFanoutPool(cfg.Worker.FanoutPoolSize)
	if err != nil {
		return fmt.Errorf("init fanout pool: %w", err)
	}
	defer pool.Release()

	gate := notification.NewGate(db.EntClient, cfg.Notify.PreferenceCacheTTL)
	prefs := notification.NewPreferenceService(db.EntClient, gate)
	coordinator := notification.NewCoordinator(db.EntClient, gate, pool, nil)
	scheduler := reminder.NewScheduler(db.EntClient)

	logger.Info("Starting data seeding...", zap.String("fixture", *file))

	for _, p := range fix.Preferences {
		upd := notification.PrefsUpdate{}
		if p.EnabledCategories != nil {
			upd.EnabledCategories = &p.EnabledCategories
		}
		if p.Digest != "" {
			upd.Digest = &p.Digest
		}
		if p.QuietStart != "" {
			upd.QuietStart = &p.QuietStart
		}
		if p.QuietEnd != "" {
			upd.QuietEnd = &p.QuietEnd
		}
		if _, err := prefs.Update(ctx, p.UserID, upd); err != nil {
			return fmt.Errorf("seed preferences for %s: %w", p.UserID, err)
		}
	}

	delivered := 0
	for _, n := range fix.Notices {
		ok, err := coordinator.Notify(ctx, n.UserID, noticeSpec(n))
		if err != nil {
			return fmt.Errorf("seed notice for %s: %w", n.UserID, err)
		}
		if ok {
			delivered++
		}
	}

	scheduled := 0
	for _, r := range fix.Reminders {
		batch, err := scheduler.Schedule(ctx, r.ReferenceID, r.EventTime)
		if err != nil {
			return fmt.Errorf("seed reminders for %s: %w", r.ReferenceID, err)
		}
		scheduled += len(batch)
	}

	logger.Info("Data seeding completed",
		zap.Int("preferences", len(fix.Preferences)),
		zap.Int("notices_delivered", delivered),
		zap.Int("reminders_scheduled", scheduled),
	)
	return nil
}

func loadFixture(path string) (*fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fix fixture
	if err := yaml.Unmarshal(raw, &fix); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fix, nil
}

func noticeSpec(n noticeFixture) notification.Spec {
	spec := notification.Spec{
		Category:     n.Category,
		FromTemplate: n.FromTemplate,
		Variables:    n.Variables,
		Title:        n.Title,
		Message:      n.Message,
		Priority:     n.Priority,
	}
	if n.ActionTarget != "" {
		spec.Action = &notification.Action{Target: n.ActionTarget, Label: n.ActionLabel}
	}
	if n.TTL > 0 {
		expiresAt := time.Now().UTC().Add(time.Duration(n.TTL))
		spec.ExpiresAt = &expiresAt
	}
	return spec
}
