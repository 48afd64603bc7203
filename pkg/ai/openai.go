package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/enrich"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

const systemPrompt = "You are a cybersecurity expert providing professional analysis."

// OpenAIClient talks to the OpenAI chat-completions API, or any
// API-compatible endpoint when BaseURL is overridden.
type OpenAIClient struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewOpenAI creates an OpenAI client from the config. A missing API key
// is detected on the first call, not here, so construction never fails.
func NewOpenAI(cfg Config) *OpenAIClient {
	model := cfg.Model
	if model == "" {
		model = defaults.OpenAIModel
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIClient{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: cfg.temperature(),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		limiter: cfg.limiter(),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete implements enrich.TextGenerator.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.apiKey == "" || c.apiKey == "your_openai_api_key_here" {
		return "", fmt.Errorf("openai: API key not configured: %w", enrich.ErrUnavailable)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	body, err := jsonutil.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("openai: read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		// Bad credentials will not recover mid-run.
		return "", fmt.Errorf("openai: status %d: %w", resp.StatusCode, enrich.ErrUnavailable)
	default:
		return "", fmt.Errorf("openai: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed chatResponse
	if err := jsonutil.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices in response")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
