package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/auth"
)

// UsersController handles registration, login and logout. Only mounted when
// auth mode is "local".
type UsersController struct {
	service        *auth.Service
	sessionManager *auth.SessionManager
}

func NewUsersController(service *auth.Service, sessionManager *auth.SessionManager) *UsersController {
	return &UsersController{
		service:        service,
		sessionManager: sessionManager,
	}
}

// RegisterRequest is the request body for account creation.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and signs the new user in.
// POST /api/auth/register
func (uc *UsersController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username, email and password are required")
		return
	}

	user, err := uc.service.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserExists):
			respondError(c, http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrUsernameInvalid),
			errors.Is(err, auth.ErrEmailInvalid),
			errors.Is(err, auth.ErrPasswordTooShort),
			errors.Is(err, auth.ErrPasswordTooLong):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "register user")
		}
		return
	}

	if err := uc.sessionManager.CreateSession(c.Request, user); err != nil {
		respondInternalError(c, err, "create session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and starts a session.
// POST /api/auth/login
func (uc *UsersController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, err := uc.service.Authenticate(req.Username, req.Password)
	if err != nil {
		// One message for both cases so usernames cannot be probed.
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrInvalidPassword) {
			respondError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondInternalError(c, err, "login")
		return
	}

	if err := uc.sessionManager.CreateSession(c.Request, user); err != nil {
		respondInternalError(c, err, "create session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

// Logout destroys the current session.
// POST /api/auth/logout
func (uc *UsersController) Logout(c *gin.Context) {
	if err := uc.sessionManager.DestroySession(c.Request); err != nil {
		respondInternalError(c, err, "logout")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "signed out"})
}

// Me reports the signed-in user, if any.
// GET /api/auth/me
func (uc *UsersController) Me(c *gin.Context) {
	id, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"id":            id,
		"username":      auth.CurrentUsername(c),
	})
}
