package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epistleapp/epistle/internal/config"
)

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentUserID(c)
	assert.False(t, ok)

	c.Set(ContextKeyUserID, uint(42))
	id, ok := CurrentUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestMiddleware_NoneModePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewMiddleware(nil, nil, config.Auth{Mode: config.AuthModeNone})

	router := gin.New()
	router.Use(m.Handler())
	router.GET("/", func(c *gin.Context) {
		_, ok := CurrentUserID(c)
		assert.False(t, ok)
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNoContent, resp.Code)
}

func TestMiddleware_RequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewMiddleware(nil, nil, config.Auth{Mode: config.AuthModeLocal})

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_RequireAuth_DisabledMode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := NewMiddleware(nil, nil, config.Auth{Mode: config.AuthModeNone})

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusNoContent, resp.Code)
}
