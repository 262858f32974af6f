package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/config"
)

// Context keys for user data
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUsername = "auth_username"
)

// Middleware resolves the session into request-scoped user identity. Signed
// out requests pass through anonymously; the sync layer treats them as
// local-only.
type Middleware struct {
	service        *Service
	sessionManager *SessionManager
	config         config.Auth
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, sessionManager *SessionManager, cfg config.Auth) *Middleware {
	return &Middleware{
		service:        service,
		sessionManager: sessionManager,
		config:         cfg,
	}
}

// Handler returns a Gin middleware that annotates requests with the session
// user, when one exists. It never rejects a request.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.config.Mode != config.AuthModeLocal || m.sessionManager == nil {
			c.Next()
			return
		}

		userID := m.sessionManager.GetUserID(c.Request)
		if userID != 0 {
			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyUsername, m.sessionManager.GetUsername(c.Request))
		}
		c.Next()
	}
}

// RequireAuth rejects unauthenticated requests. Only meaningful on routes
// that exist solely for signed-in users, such as logout.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.config.Mode != config.AuthModeLocal {
			c.Next()
			return
		}
		if _, ok := CurrentUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": ErrAuthRequired.Error(),
			})
			return
		}
		c.Next()
	}
}

// CurrentUserID retrieves the authenticated user's ID from the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok && userID != 0 {
			return userID, true
		}
	}
	return 0, false
}

// CurrentUsername retrieves the authenticated user's username from the context.
func CurrentUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}
