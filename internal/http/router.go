package http

import (
	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Auth routes when local auth is enabled
	if cfg.AuthService != nil && cfg.AuthService.IsAuthEnabled() && cfg.SessionManager != nil {
		users := NewUsersController(cfg.AuthService, cfg.SessionManager)
		router.POST("/api/auth/register", users.Register)
		router.POST("/api/auth/login", users.Login)
		router.POST("/api/auth/logout", users.Logout)
		router.GET("/api/auth/me", users.Me)
	}

	// Schedule endpoints
	scheduleController := NewScheduleController(cfg.ScheduleConfig)
	router.GET("/api/schedule", scheduleController.GetSchedule)

	// Reading endpoints
	if cfg.Reading != nil {
		readingController := NewReadingController(cfg.Reading)
		router.GET("/api/reading/:day", readingController.GetDaily)
		router.POST("/api/reading/:day/complete", readingController.Complete)
		router.POST("/api/explain", readingController.Explain)
		router.GET("/api/header-image", readingController.HeaderImage)
		router.GET("/api/journey-map/:id", readingController.JourneyMap)
	}

	// Progress endpoints
	if cfg.Progress != nil {
		statusController := NewStatusController(cfg.Progress)
		router.GET("/api/status", statusController.GetStatus)
		router.POST("/api/status", statusController.ToggleStatus)
		router.GET("/api/archive", statusController.GetArchive)
	}

	// Journal endpoints
	if cfg.Journal != nil {
		journalController := NewJournalController(cfg.Journal)
		router.GET("/api/journal/:kind", journalController.List)
		router.POST("/api/journal/:kind", journalController.Save)
	}

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		router.POST("/api/tasks/pregenerate", tasksController.RunPregenerate)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
