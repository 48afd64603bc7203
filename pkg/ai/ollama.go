package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/enrich"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

// OllamaClient talks to a local Ollama server. No credentials needed;
// availability means the daemon is running.
type OllamaClient struct {
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewOllama creates an Ollama client from the config.
func NewOllama(cfg Config) *OllamaClient {
	model := cfg.Model
	if model == "" {
		model = defaults.OllamaModel
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaClient{
		model:       model,
		baseURL:     baseURL,
		temperature: cfg.temperature(),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		limiter: cfg.limiter(),
	}
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	System  string        `json:"system,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Complete implements enrich.TextGenerator.
func (c *OllamaClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("ollama: %w", err)
	}

	body, err := jsonutil.Marshal(ollamaRequest{
		Model:  c.model,
		Prompt: prompt,
		System: systemPrompt,
		Stream: false,
		Options: ollamaOptions{
			NumPredict:  maxTokens,
			Temperature: c.temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("ollama: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) {
			// Daemon not running; it will not appear mid-run.
			return "", fmt.Errorf("ollama: server unreachable: %w", enrich.ErrUnavailable)
		}
		return "", fmt.Errorf("ollama: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("ollama: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed ollamaResponse
	if err := jsonutil.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama: %s", parsed.Error)
	}
	return strings.TrimSpace(parsed.Response), nil
}
