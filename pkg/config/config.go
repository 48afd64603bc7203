// Package config loads tool settings from a YAML file with
// environment-variable fallbacks for API keys.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/ai"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/report"
)

// DefaultPath is where the CLI looks for settings when no -config
// flag is given.
const DefaultPath = "config/settings.yaml"

// placeholderOpenAIKey is the sample value shipped in settings.yaml.
// It is treated the same as an unset key.
const placeholderOpenAIKey = "your_openai_api_key_here"

// Settings is the on-disk configuration shape.
type Settings struct {
	AI     AISettings     `yaml:"ai"`
	OpenAI OpenAISettings `yaml:"openai"`
	Gemini GeminiSettings `yaml:"gemini"`
	Ollama OllamaSettings `yaml:"ollama"`
	Report ReportSettings `yaml:"report"`
}

// AISettings selects the enrichment provider.
type AISettings struct {
	// Provider is one of openai, gemini, ollama, mock. Empty means
	// mock, so the tool works offline out of the box.
	Provider          string `yaml:"provider"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

type OpenAISettings struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type GeminiSettings struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OllamaSettings struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// ReportSettings carries report presentation defaults.
type ReportSettings struct {
	Title          string `yaml:"title"`
	Organization   string `yaml:"organization"`
	Classification string `yaml:"classification"`
	Theme          string `yaml:"theme"`
}

// Default returns settings equivalent to an absent config file.
func Default() *Settings {
	s := &Settings{}
	s.applyEnv()
	return s
}

// Load reads settings from path. A missing file is not an error and
// yields the defaults, matching how the tool behaves on first run.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	s.applyEnv()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// applyEnv fills API keys from the environment when the file leaves
// them blank or holds the sample placeholder.
func (s *Settings) applyEnv() {
	if s.OpenAI.APIKey == "" || s.OpenAI.APIKey == placeholderOpenAIKey {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			s.OpenAI.APIKey = key
		}
	}
	if s.Gemini.APIKey == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			s.Gemini.APIKey = key
		}
	}
}

// Validate rejects settings the pipeline could not act on.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.AI.Provider) {
	case "", "ollama", "mock":
	case "openai":
		if s.OpenAI.APIKey == "" || s.OpenAI.APIKey == placeholderOpenAIKey {
			return fmt.Errorf("%w: openai api_key (set it in the config file or via OPENAI_API_KEY)", ErrMissingRequired)
		}
	case "gemini":
		if s.Gemini.APIKey == "" {
			return fmt.Errorf("%w: gemini api_key (set it in the config file or via GEMINI_API_KEY)", ErrMissingRequired)
		}
	default:
		return fmt.Errorf("%w: unknown ai provider %q", ErrInvalidConfig, s.AI.Provider)
	}
	if s.OpenAI.Temperature < 0 || s.OpenAI.Temperature > 2 {
		return fmt.Errorf("%w: openai temperature %v out of range [0,2]", ErrInvalidConfig, s.OpenAI.Temperature)
	}
	if s.OpenAI.MaxTokens < 0 {
		return fmt.Errorf("%w: openai max_tokens must not be negative", ErrInvalidConfig)
	}
	switch strings.ToLower(s.Report.Theme) {
	case "", "executive", "technical", "compliance":
	default:
		return fmt.Errorf("%w: unknown report theme %q", ErrInvalidConfig, s.Report.Theme)
	}
	return nil
}

// AIConfig maps the settings onto the provider configuration.
func (s *Settings) AIConfig() ai.Config {
	cfg := ai.Config{
		Provider:          ai.Provider(strings.ToLower(s.AI.Provider)),
		RequestsPerMinute: s.AI.RequestsPerMinute,
		Temperature:       s.OpenAI.Temperature,
		MaxTokens:         s.OpenAI.MaxTokens,
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaults.MaxTokens
	}

	switch cfg.Provider {
	case ai.ProviderGemini:
		cfg.APIKey = s.Gemini.APIKey
		cfg.Model = s.Gemini.Model
	case ai.ProviderOllama:
		cfg.Model = s.Ollama.Model
		cfg.BaseURL = s.Ollama.BaseURL
	default:
		cfg.APIKey = s.OpenAI.APIKey
		cfg.Model = s.OpenAI.Model
		cfg.BaseURL = s.OpenAI.BaseURL
	}
	return cfg
}

// ReportConfig maps the report block onto the builder configuration.
func (s *Settings) ReportConfig() report.Config {
	return report.Config{
		Title:          s.Report.Title,
		Company:        s.Report.Organization,
		Classification: s.Report.Classification,
		Theme:          report.Theme(strings.ToLower(s.Report.Theme)),
	}
}
