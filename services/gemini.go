package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"rightorrude/config"
)

const defaultGeminiModel = "gemini-2.5-flash"

// ModelGateway is the completion boundary the deliberation protocol consumes:
// prompt text in, cleaned reply text out. Failures of any kind (network,
// quota, safety block) come back as an error, never a panic.
type ModelGateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Gateway wraps the Gemini client library behind ModelGateway. The generation
// and safety configuration is fixed at construction and read-only afterwards;
// sessions never mutate it.
type Gateway struct {
	client *genai.Client
	model  string
}

// NewGateway builds a Gateway from the loaded configuration. Call it once at
// process start; the returned instance is safe for concurrent use.
func NewGateway(ctx context.Context, cfg *config.Config) (*Gateway, error) {
	if cfg.Gemini.ApiKey == "" {
		return nil, errors.New("gemini: API key not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	model := cfg.Gemini.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gateway{client: client, model: model}, nil
}

// Close releases the underlying client.
func (g *Gateway) Close() error {
	return g.client.Close()
}

// Complete sends one prompt and returns the reply text with any markdown code
// fences stripped. The response is requested as a single JSON object; safety
// thresholds sit at block-medium-and-above for all four harm categories.
func (g *Gateway) Complete(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.7)
	model.SetTopP(1.0)
	model.SetTopK(32)
	model.SetMaxOutputTokens(2048)
	model.ResponseMIMEType = "application/json"
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return cleanModelOutput(string(text)), nil
		}
	}
	return "", errors.New("gemini: no text part in response")
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
