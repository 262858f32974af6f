package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/genai"
	"github.com/epistleapp/epistle/internal/reading"
)

// ReadingProvider defines the content pipeline operations the reading
// endpoints need.
type ReadingProvider interface {
	GetDaily(ctx context.Context, day int, lang entities.Language) (*entities.ReadingBundle, error)
	Complete(ctx context.Context, day int, lang entities.Language) (*entities.ArchivedReading, error)
	ExplainSelection(ctx context.Context, selection, passage string, lang entities.Language) (string, error)
	HeaderImage(ctx context.Context) (string, error)
	JourneyMap(ctx context.Context, journeyID int, lang entities.Language) (string, error)
}

type ReadingController struct {
	provider ReadingProvider
}

func NewReadingController(provider ReadingProvider) *ReadingController {
	return &ReadingController{provider: provider}
}

// GetDaily returns the content bundle for a day.
// GET /api/reading/:day?lang=ko&format=html
func (rc *ReadingController) GetDaily(c *gin.Context) {
	day, ok := parseDayParam(c)
	if !ok {
		return
	}
	lang, ok := parseLangQuery(c)
	if !ok {
		return
	}

	bundle, err := rc.provider.GetDaily(c.Request.Context(), day, lang)
	if err != nil {
		if genai.IsRateLimited(err) {
			respondError(c, http.StatusTooManyRequests, "content generation is rate limited, try again later")
			return
		}
		respondInternalError(c, err, "get daily reading")
		return
	}

	if c.Query("format") == "html" {
		c.JSON(http.StatusOK, renderBundleHTML(bundle))
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// Complete archives the day's reading and auto-rates it.
// POST /api/reading/:day/complete?lang=ko
func (rc *ReadingController) Complete(c *gin.Context) {
	day, ok := parseDayParam(c)
	if !ok {
		return
	}
	lang, ok := parseLangQuery(c)
	if !ok {
		return
	}

	entry, err := rc.provider.Complete(c.Request.Context(), day, lang)
	if err != nil {
		if genai.IsRateLimited(err) {
			respondError(c, http.StatusTooManyRequests, "content generation is rate limited, try again later")
			return
		}
		respondInternalError(c, err, "complete reading")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// HeaderImage serves the generated header background, generating and caching
// it on first request.
// GET /api/header-image
func (rc *ReadingController) HeaderImage(c *gin.Context) {
	image, err := rc.provider.HeaderImage(c.Request.Context())
	if err != nil {
		if genai.IsRateLimited(err) {
			respondError(c, http.StatusTooManyRequests, "image generation is rate limited, try again later")
			return
		}
		respondError(c, http.StatusServiceUnavailable, "header image unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": image})
}

// JourneyMap serves the route map image for one mission journey.
// GET /api/journey-map/:id?lang=ko
func (rc *ReadingController) JourneyMap(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	lang, ok := parseLangQuery(c)
	if !ok {
		return
	}

	image, err := rc.provider.JourneyMap(c.Request.Context(), id, lang)
	if err != nil {
		switch {
		case errors.Is(err, reading.ErrUnknownJourney):
			respondBadRequest(c, "unknown journey")
		case genai.IsRateLimited(err):
			respondError(c, http.StatusTooManyRequests, "image generation is rate limited, try again later")
		default:
			respondError(c, http.StatusServiceUnavailable, "journey map unavailable")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": image})
}

// ExplainRequest is the request body for passage explanations.
type ExplainRequest struct {
	Selection string            `json:"selection" binding:"required"`
	Passage   string            `json:"passage"`
	Language  entities.Language `json:"language"`
}

// Explain answers a question about a selected span of the passage.
// POST /api/explain
func (rc *ReadingController) Explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "selection is required")
		return
	}
	if req.Language == "" {
		req.Language = entities.LanguageKorean
	}
	if !req.Language.Valid() {
		respondBadRequest(c, "unsupported language")
		return
	}

	explanation, err := rc.provider.ExplainSelection(c.Request.Context(), req.Selection, req.Passage, req.Language)
	if err != nil {
		if genai.IsRateLimited(err) {
			respondError(c, http.StatusTooManyRequests, "explanations are rate limited, try again later")
			return
		}
		respondInternalError(c, err, "explain selection")
		return
	}

	c.JSON(http.StatusOK, gin.H{"explanation": explanation})
}
