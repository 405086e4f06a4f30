// Package handlers implements the HTTP API surface of CrewDeck Notifier.
//
// Handlers stay thin: they bind and validate request DTOs, call into the
// notification and reminder engines, and translate engine errors through the
// shared error middleware. Route registration happens in internal/app.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"crewdeck.io/notifier/ent"
	"crewdeck.io/notifier/internal/api/middleware"
	"crewdeck.io/notifier/internal/identity"
	"crewdeck.io/notifier/internal/notification"
	"crewdeck.io/notifier/internal/reminder"
)

// Server holds the engine services backing every handler.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	jwtCfg      middleware.JWTConfig
	inbox       *notification.Inbox
	readState   *notification.ReadState
	aggregator  *notification.Aggregator
	coordinator *notification.Coordinator
	prefs       *notification.PreferenceService
	scheduler   *reminder.Scheduler
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	JWTCfg      middleware.JWTConfig
	Inbox       *notification.Inbox
	ReadState   *notification.ReadState
	Aggregator  *notification.Aggregator
	Coordinator *notification.Coordinator
	Prefs       *notification.PreferenceService
	Scheduler   *reminder.Scheduler
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		jwtCfg:      deps.JWTCfg,
		inbox:       deps.Inbox,
		readState:   deps.ReadState,
		aggregator:  deps.Aggregator,
		coordinator: deps.Coordinator,
		prefs:       deps.Prefs,
		scheduler:   deps.Scheduler,
	}
}

// currentUser extracts the authenticated user ID or aborts with the
// identity error. Handlers call this first and return on failure.
func currentUser(c *gin.Context) (string, bool) {
	userID, err := identity.CurrentUserID(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return "", false
	}
	return userID, true
}
