package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"crewdeck.io/notifier/internal/api/handlers"
	"crewdeck.io/notifier/internal/api/middleware"
	"crewdeck.io/notifier/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/health/",
}

func newRouter(cfg *config.Config, server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
		router.Use(cors.New(corsCfg))
	}
	router.Use(jwtSkipPublic(signingKey))

	registerRoutes(router, server)
	return router
}

func registerRoutes(router *gin.Engine, server *handlers.Server) {
	v1 := router.Group("/api/v1")

	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	notices := v1.Group("/notices")
	{
		notices.GET("", server.ListNotices)
		notices.GET("/grouped", server.ListNoticesGrouped)
		notices.GET("/stats", server.GetNoticeStats)
		notices.POST("", server.CreateNotice)
		notices.POST("/bulk", server.CreateNoticesBulk)
		notices.POST("/announce", server.Announce)
		notices.POST("/:notice_id/read", server.MarkNoticeRead)
		notices.POST("/read", server.MarkNoticesRead)
		notices.POST("/read-all", server.MarkAllNoticesRead)
		notices.POST("/delete", server.DeleteNotices)
		notices.DELETE("/:notice_id", server.DeleteNotice)
		notices.DELETE("", server.DeleteAllNotices)
	}

	prefs := v1.Group("/preferences")
	{
		prefs.GET("", server.GetPreferences)
		prefs.PUT("", server.UpdatePreferences)
	}

	reminders := v1.Group("/reminders")
	{
		reminders.POST("", server.ScheduleReminders)
		reminders.GET("/due", server.ListDueReminders)
		reminders.POST("/:reminder_id/sent", server.MarkReminderSent)
		reminders.DELETE("/reference/:reference_id", server.DeleteRemindersForReference)
	}
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
