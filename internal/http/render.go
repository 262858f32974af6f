package http

import (
	"bytes"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/epistleapp/epistle/internal/entities"
)

// markdown renders generated meditation text. Generated content arrives as
// markdown; clients asking for format=html get it pre-rendered.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// renderMarkdown converts a markdown snippet to HTML. On a rendering failure
// the raw markdown is returned so content is never lost.
func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		log.Printf("markdown rendering failed, returning raw text: %v", err)
		return source
	}
	return buf.String()
}

// renderedBundle mirrors ReadingBundle with the meditation fields converted
// to HTML. The passage stays plain text, verse numbering intact.
type renderedBundle struct {
	Passage         string  `json:"passage"`
	MeditationGuide string  `json:"meditationGuide"`
	Context         string  `json:"context"`
	Intention       string  `json:"intention"`
	ImagePrompt     string  `json:"imagePrompt"`
	ContextImageURL *string `json:"contextImageUrl"`
	Format          string  `json:"format"`
}

func renderBundleHTML(bundle *entities.ReadingBundle) renderedBundle {
	return renderedBundle{
		Passage:         bundle.Passage,
		MeditationGuide: renderMarkdown(bundle.MeditationGuide),
		Context:         renderMarkdown(bundle.Context),
		Intention:       renderMarkdown(bundle.Intention),
		ImagePrompt:     bundle.ImagePrompt,
		ContextImageURL: bundle.ContextImageURL,
		Format:          "html",
	}
}
