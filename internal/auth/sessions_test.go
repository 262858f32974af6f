package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/epistleapp/epistle/internal/config"
	"github.com/epistleapp/epistle/internal/entities"
)

func setupSessionManager(t *testing.T) (*SessionManager, func()) {
	dbPath := "./test_sessions_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	sm, err := NewSessionManager(sqlDB, config.Auth{
		Mode:            config.AuthModeLocal,
		SessionLifetime: time.Hour,
		SecureCookies:   false,
	})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return sm, cleanup
}

func TestSessionManager_LoginRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sm, cleanup := setupSessionManager(t)
	defer cleanup()

	user := &entities.User{ID: 42, Username: "hannah"}

	router := gin.New()
	router.Use(sm.SessionLoadSave())
	router.POST("/login", func(c *gin.Context) {
		require.NoError(t, sm.CreateSession(c.Request, user))
		c.Status(http.StatusNoContent)
	})
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":       sm.GetUserID(c.Request),
			"username": sm.GetUsername(c.Request),
		})
	})

	login := httptest.NewRecorder()
	router.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusNoContent, login.Code)

	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	whoami := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, cookie := range cookies {
		whoami.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, whoami)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":42,"username":"hannah"}`, resp.Body.String())
}

func TestSessionManager_SessionProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sm, cleanup := setupSessionManager(t)
	defer cleanup()

	provider := sm.SessionProvider()
	user := &entities.User{ID: 7, Username: "hannah"}

	router := gin.New()
	router.Use(sm.SessionLoadSave())
	router.POST("/login", func(c *gin.Context) {
		require.NoError(t, sm.CreateSession(c.Request, user))
		session := provider.Current(c.Request.Context())
		require.NotNil(t, session)
		assert.Equal(t, uint(7), session.UserID)
		c.Status(http.StatusNoContent)
	})
	router.GET("/anon", func(c *gin.Context) {
		assert.Nil(t, provider.Current(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/anon", nil))
	require.Equal(t, http.StatusNoContent, resp.Code)
}

func TestSessionManager_Destroy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sm, cleanup := setupSessionManager(t)
	defer cleanup()

	user := &entities.User{ID: 42, Username: "hannah"}

	router := gin.New()
	router.Use(sm.SessionLoadSave())
	router.POST("/login", func(c *gin.Context) {
		require.NoError(t, sm.CreateSession(c.Request, user))
		c.Status(http.StatusNoContent)
	})
	router.POST("/logout", func(c *gin.Context) {
		require.NoError(t, sm.DestroySession(c.Request))
		c.Status(http.StatusNoContent)
	})
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": sm.GetUserID(c.Request)})
	})

	login := httptest.NewRecorder()
	router.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	logout := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, cookie := range cookies {
		logout.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, logout)
	require.Equal(t, http.StatusNoContent, resp.Code)

	whoami := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, cookie := range cookies {
		whoami.AddCookie(cookie)
	}
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, whoami)
	assert.JSONEq(t, `{"id":0}`, resp.Body.String())
}
