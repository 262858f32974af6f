package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/epistleapp/epistle/internal/entities"
)

// OpenAIGenerator implements Generator using the official openai-go SDK.
type OpenAIGenerator struct {
	client     openai.Client
	chatModel  string
	imageModel string
}

// Settings holds the generation-service configuration.
type Settings struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	ImageModel string
}

// NewOpenAIGenerator builds a generator from settings.
func NewOpenAIGenerator(cfg Settings) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("generation api key missing")
	}
	if cfg.ChatModel == "" {
		return nil, errors.New("chat model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIGenerator{
		client:     openai.NewClient(opts...),
		chatModel:  cfg.ChatModel,
		imageModel: cfg.ImageModel,
	}, nil
}

// GenerateReadingContent asks the model for the full text bundle as a single
// JSON object and decodes it.
func (g *OpenAIGenerator) GenerateReadingContent(ctx context.Context, req ContentRequest) (*GeneratedContent, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.chatModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(contentSystemPrompt(req.Language)),
			openai.UserMessage(contentUserPrompt(req)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate reading content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("generate reading content: empty choices")
	}

	content, err := decodeContentJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("generate reading content: %w", err)
	}
	return content, nil
}

// GenerateContextImage tries the seed prompt first, then a prompt derived
// from the fallback context. Any failure degrades to "".
func (g *OpenAIGenerator) GenerateContextImage(ctx context.Context, req ImageRequest) string {
	if g.imageModel == "" || req.InitialPrompt == "" {
		return ""
	}

	uri, err := g.generateImage(ctx, imageStylePrompt(req.InitialPrompt))
	if err == nil {
		return uri
	}
	log.Printf("genai: image generation failed, retrying with fallback context: %v", err)

	if req.FallbackContext == "" {
		return ""
	}
	uri, err = g.generateImage(ctx, imageStylePrompt(req.FallbackContext))
	if err != nil {
		log.Printf("genai: fallback image generation failed: %v", err)
		return ""
	}
	return uri
}

// ExplainSelection explains a selected span of the passage.
func (g *OpenAIGenerator) ExplainSelection(ctx context.Context, selection, passage string, lang entities.Language) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.chatModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(explainSystemPrompt(lang)),
			openai.UserMessage(explainUserPrompt(selection, passage)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("explain selection: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("explain selection: empty choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *OpenAIGenerator) generateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:          openai.ImageModel(g.imageModel),
		Prompt:         prompt,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", errors.New("empty image response")
	}
	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}

// decodeContentJSON tolerates models that wrap the JSON in a code fence.
func decodeContentJSON(raw string) (*GeneratedContent, error) {
	raw = strings.TrimSpace(raw)
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}

	var content GeneratedContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		return nil, fmt.Errorf("decode content JSON: %w", err)
	}
	if content.Passage == "" {
		return nil, errors.New("content JSON missing passage")
	}
	return &content, nil
}
