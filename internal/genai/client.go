// Package genai wraps the generative content service behind a narrow
// interface so the reading pipeline can be tested without network calls.
package genai

import (
	"context"

	"github.com/epistleapp/epistle/internal/entities"
)

// ContentRequest identifies the chapters to generate content for. When the
// day's pair straddles two works, SecondBook names the second one and
// ChapterEnd is its chapter.
type ContentRequest struct {
	Book         string
	SecondBook   string
	ChapterStart int
	ChapterEnd   int
	Language     entities.Language
}

// GeneratedContent is the text half of a content bundle, before the image
// call and before canonical text substitution.
type GeneratedContent struct {
	Passage         string `json:"passage"`
	MeditationGuide string `json:"meditationGuide"`
	Context         string `json:"context"`
	Intention       string `json:"intention"`
	ImagePrompt     string `json:"imagePrompt"`
}

// ImageRequest carries the prompt seed plus a textual fallback used when the
// seed prompt is rejected.
type ImageRequest struct {
	InitialPrompt   string
	FallbackContext string
	Language        entities.Language
}

// Generator is the generation collaborator contract.
type Generator interface {
	// GenerateReadingContent produces the full text bundle or fails.
	GenerateReadingContent(ctx context.Context, req ContentRequest) (*GeneratedContent, error)
	// GenerateContextImage returns a displayable data URI, or "" when no
	// image could be produced. Image failure is never fatal.
	GenerateContextImage(ctx context.Context, req ImageRequest) string
	// ExplainSelection explains a selected span of the passage.
	ExplainSelection(ctx context.Context, selection, passage string, lang entities.Language) (string, error)
}
