package http

import (
	"github.com/epistleapp/epistle/internal/auth"
	"github.com/epistleapp/epistle/internal/config"
	"github.com/epistleapp/epistle/internal/database"
	"github.com/epistleapp/epistle/internal/schedule"
	"github.com/epistleapp/epistle/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database       *database.Database
	ScheduleConfig schedule.Config
	Reading        ReadingProvider
	Progress       ProgressStore
	Journal        JournalStore

	// Authentication (nil members disable the auth surface)
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	AuthConfig     config.Auth
	CSRFSecret     []byte
	SecureCookies  bool

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
