package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/entities"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// --- Parameter Parsing ---

// parseDayParam extracts and validates the 1-based day number from URL
// parameters. Responds with a 400 error and returns false when invalid.
func parseDayParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		respondBadRequest(c, "invalid day")
		return 0, false
	}
	return day, true
}

// parseIDParam extracts and validates a positive id from URL parameters.
// Responds with a 400 error and returns false when invalid.
func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

// parseLangQuery reads the lang query parameter, defaulting to Korean.
// Responds with a 400 error and returns false for unknown languages.
func parseLangQuery(c *gin.Context) (entities.Language, bool) {
	lang := entities.Language(c.DefaultQuery("lang", string(entities.LanguageKorean)))
	if !lang.Valid() {
		respondBadRequest(c, "unsupported language")
		return "", false
	}
	return lang, true
}
