package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/enrich"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

func TestNewClientDefaultsToMock(t *testing.T) {
	t.Parallel()

	gen, err := NewClient(context.Background(), Config{})
	require.NoError(t, err)
	assert.IsType(t, &MockClient{}, gen)

	_, err = NewClient(context.Background(), Config{Provider: "skynet"})
	assert.Error(t, err)
}

func TestOpenAIMissingKeyIsUnavailable(t *testing.T) {
	t.Parallel()

	c := NewOpenAI(Config{})
	_, err := c.Complete(context.Background(), "hello", 10)
	assert.ErrorIs(t, err, enrich.ErrUnavailable)

	c = NewOpenAI(Config{APIKey: "your_openai_api_key_here"})
	_, err = c.Complete(context.Background(), "hello", 10)
	assert.ErrorIs(t, err, enrich.ErrUnavailable)
}

func TestOpenAIChatCompletion(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, jsonutil.NewStreamDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "summarize this", req.Messages[1].Content)
		assert.Equal(t, 128, req.MaxTokens)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  a summary  "}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAI(Config{APIKey: "sk-test", Model: "gpt-4o", BaseURL: srv.URL + "/v1"})
	out, err := c.Complete(context.Background(), "summarize this", 128)
	require.NoError(t, err)
	assert.Equal(t, "a summary", out)
}

func TestOpenAIAuthFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewOpenAI(Config{APIKey: "sk-bad", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "x", 10)
	assert.ErrorIs(t, err, enrich.ErrUnavailable)
}

func TestOpenAIServerErrorIsTransient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewOpenAI(Config{APIKey: "sk-test", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "x", 10)
	require.Error(t, err)
	assert.False(t, errors.Is(err, enrich.ErrUnavailable), "5xx must not mark the client unavailable")
}

func TestOllamaGenerate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		require.NoError(t, jsonutil.NewStreamDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, 64, req.Options.NumPredict)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"ollama says hi","done":true}`))
	}))
	defer srv.Close()

	c := NewOllama(Config{Model: "llama3", BaseURL: srv.URL})
	out, err := c.Complete(context.Background(), "hi", 64)
	require.NoError(t, err)
	assert.Equal(t, "ollama says hi", out)
}

func TestOllamaUnreachableIsUnavailable(t *testing.T) {
	t.Parallel()

	// Reserve a port, then close it so the dial is refused.
	srv := httptest.NewServer(http.NewServeMux())
	addr := srv.URL
	srv.Close()

	c := NewOllama(Config{BaseURL: addr})
	_, err := c.Complete(context.Background(), "hi", 10)
	assert.ErrorIs(t, err, enrich.ErrUnavailable)
}

func TestGeminiMissingKey(t *testing.T) {
	t.Parallel()

	_, err := NewGemini(context.Background(), Config{Provider: ProviderGemini})
	assert.ErrorIs(t, err, enrich.ErrUnavailable)
}

func TestMockResponsesAreTaskShaped(t *testing.T) {
	t.Parallel()

	c := NewMock()
	ctx := context.Background()

	sev, err := c.Complete(ctx, "Assign ONE of these severity levels:\n- Critical\n- High\n- Medium\n- Low\nTitle: SQL Injection", 16)
	require.NoError(t, err)
	assert.Equal(t, "High", sev)

	sum, err := c.Complete(ctx, "Write an Executive Summary: for an open SSH port", 256)
	require.NoError(t, err)
	assert.Contains(t, sum, "SSH")

	rem, err := c.Complete(ctx, "Provide remediation steps for XSS", 256)
	require.NoError(t, err)
	assert.True(t, strings.Contains(rem, "Content Security Policy"))

	def, err := c.Complete(ctx, "unrelated prompt", 256)
	require.NoError(t, err)
	assert.NotEmpty(t, def)
}
