package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/entities"
)

// ProgressStore defines the sync layer operations the status and archive
// endpoints need.
type ProgressStore interface {
	ReadStatus(ctx context.Context) entities.MeditationRecord
	ToggleStatus(ctx context.Context, day int, rating entities.MeditationStatus) (entities.MeditationRecord, error)
	ReadArchive(ctx context.Context) map[int]entities.ArchivedReading
}

type StatusController struct {
	store ProgressStore
}

func NewStatusController(store ProgressStore) *StatusController {
	return &StatusController{store: store}
}

// GetStatus returns the full meditation status record.
// GET /api/status
func (sc *StatusController) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": sc.store.ReadStatus(c.Request.Context())})
}

// ToggleRequest is the request body for status toggles.
type ToggleRequest struct {
	Day    int                       `json:"day" binding:"required"`
	Status entities.MeditationStatus `json:"status" binding:"required"`
}

// ToggleStatus applies the tri-state toggle and returns the record as written.
// POST /api/status
func (sc *StatusController) ToggleStatus(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "day and status are required")
		return
	}
	if req.Day < 1 {
		respondBadRequest(c, "invalid day")
		return
	}
	if !req.Status.Valid() {
		respondBadRequest(c, "status must be one of good, ok, bad")
		return
	}

	record, err := sc.store.ToggleStatus(c.Request.Context(), req.Day, req.Status)
	if err != nil {
		respondInternalError(c, err, "toggle status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"statuses": record})
}

// GetArchive returns every archived reading keyed by day.
// GET /api/archive
func (sc *StatusController) GetArchive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"archive": sc.store.ReadArchive(c.Request.Context())})
}
