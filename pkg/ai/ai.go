// Package ai provides text-generation clients for report enrichment.
//
// Each client implements enrich.TextGenerator. Clients that cannot serve
// requests at all (missing credentials, unreachable endpoint) wrap
// enrich.ErrUnavailable so the enricher stops calling them for the rest
// of the session.
package ai

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/enrich"
)

// Provider identifies a text-generation backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
	ProviderMock   Provider = "mock"
)

// Config holds provider settings, typically loaded from settings.yaml.
type Config struct {
	Provider    Provider
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int

	// RequestsPerMinute caps API calls. Zero uses the default.
	RequestsPerMinute int
}

func (c Config) limiter() *rate.Limiter {
	rpm := c.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaults.AIRequestsPerMinute
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)
}

func (c Config) temperature() float64 {
	if c.Temperature <= 0 {
		return defaults.Temperature
	}
	return c.Temperature
}

// NewClient builds a TextGenerator for the configured provider. An empty
// or unknown provider yields the deterministic mock client, matching the
// tool's offline-first behavior.
func NewClient(ctx context.Context, cfg Config) (enrich.TextGenerator, error) {
	switch Provider(strings.ToLower(string(cfg.Provider))) {
	case ProviderOpenAI:
		return NewOpenAI(cfg), nil
	case ProviderGemini:
		return NewGemini(ctx, cfg)
	case ProviderOllama:
		return NewOllama(cfg), nil
	case ProviderMock, Provider(""):
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", cfg.Provider)
	}
}
