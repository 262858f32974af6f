package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/entities"
)

// JournalStore defines the sync layer operations the journal endpoints need.
// Writes carry the full ordered list, newest first.
type JournalStore interface {
	ReadDiary(ctx context.Context, storageKey string) []entities.SavedDiaryEntry
	WriteDiary(ctx context.Context, storageKey string, entries []entities.SavedDiaryEntry) error
	ReadPlans(ctx context.Context, storageKey string) []entities.SavedPlanEntry
	WritePlans(ctx context.Context, storageKey string, entries []entities.SavedPlanEntry) error
}

type JournalController struct {
	store JournalStore
}

func NewJournalController(store JournalStore) *JournalController {
	return &JournalController{store: store}
}

// journalKey reads the required storage key query parameter. The key scopes
// a journal to its context, e.g. one diary per reading day.
func journalKey(c *gin.Context) (string, bool) {
	key := c.Query("key")
	if key == "" {
		respondBadRequest(c, "key is required")
		return "", false
	}
	return key, true
}

// List returns saved entries for a journal kind, newest first.
// GET /api/journal/:kind?key=
func (jc *JournalController) List(c *gin.Context) {
	key, ok := journalKey(c)
	if !ok {
		return
	}

	switch c.Param("kind") {
	case "diary":
		c.JSON(http.StatusOK, gin.H{"entries": jc.store.ReadDiary(c.Request.Context(), key)})
	case "plan":
		c.JSON(http.StatusOK, gin.H{"entries": jc.store.ReadPlans(c.Request.Context(), key)})
	default:
		respondBadRequest(c, "kind must be diary or plan")
	}
}

// SaveDiaryRequest carries the full diary list for a storage key.
type SaveDiaryRequest struct {
	Entries []entities.SavedDiaryEntry `json:"entries"`
}

// SavePlansRequest carries the full plan list for a storage key.
type SavePlansRequest struct {
	Entries []entities.SavedPlanEntry `json:"entries"`
}

// Save stores the full entry list for a journal kind.
// POST /api/journal/:kind?key=
func (jc *JournalController) Save(c *gin.Context) {
	key, ok := journalKey(c)
	if !ok {
		return
	}

	switch c.Param("kind") {
	case "diary":
		var req SaveDiaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid diary payload")
			return
		}
		if err := jc.store.WriteDiary(c.Request.Context(), key, req.Entries); err != nil {
			respondInternalError(c, err, "save diary")
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": req.Entries})
	case "plan":
		var req SavePlansRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid plan payload")
			return
		}
		if err := jc.store.WritePlans(c.Request.Context(), key, req.Entries); err != nil {
			respondInternalError(c, err, "save plans")
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": req.Entries})
	default:
		respondBadRequest(c, "kind must be diary or plan")
	}
}
