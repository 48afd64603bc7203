package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/enrich"
)

// GeminiClient talks to Google Gemini via the official genai SDK.
// It is not safe for concurrent use: enrichment runs findings
// sequentially and mutates the shared model's output cap per call.
type GeminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	limiter *rate.Limiter
}

// NewGemini creates a Gemini client. Unlike the HTTP clients the SDK
// needs credentials at construction time, so a missing key fails here.
func NewGemini(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key not configured: %w", enrich.ErrUnavailable)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	name := cfg.Model
	if name == "" {
		name = defaults.GeminiModel
	}
	model := client.GenerativeModel(name)
	model.SetTemperature(float32(cfg.temperature()))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		limiter: cfg.limiter(),
	}, nil
}

// Complete implements enrich.TextGenerator.
func (g *GeminiClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if maxTokens > 0 {
		g.model.SetMaxOutputTokens(int32(maxTokens))
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no response candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// Close releases the underlying SDK client.
func (g *GeminiClient) Close() {
	g.client.Close()
}
