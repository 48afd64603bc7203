package enrich

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

// generatorFunc adapts a function to the TextGenerator interface.
type generatorFunc func(ctx context.Context, prompt string, maxTokens int) (string, error)

func (fn generatorFunc) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return fn(ctx, prompt, maxTokens)
}

var errBoom = errors.New("model exploded")

func failingGen() TextGenerator {
	return generatorFunc(func(context.Context, string, int) (string, error) {
		return "", errBoom
	})
}

func TestSummarizeFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	e := New(failingGen())
	f := &finding.Finding{Title: "Open Port: 22/tcp (ssh)", Severity: finding.Medium}

	out := e.Summarize(context.Background(), f)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "Open Port: 22/tcp (ssh)")
	assert.Contains(t, out, "medium severity")
}

func TestClassifySeverityParsesModelOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		output string
		want   finding.Severity
	}{
		{"Critical", finding.Critical},
		{"Severity: High.", finding.High},
		{"I would rate this as medium risk", finding.Medium},
		{"low", finding.Low},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			t.Parallel()
			e := New(generatorFunc(func(context.Context, string, int) (string, error) {
				return tt.output, nil
			}))
			f := &finding.Finding{Title: "zzz"}
			assert.Equal(t, tt.want, e.ClassifySeverity(context.Background(), f))
		})
	}
}

func TestClassifySeverityUnrecognizedOutputFallsBackToRules(t *testing.T) {
	t.Parallel()

	e := New(generatorFunc(func(context.Context, string, int) (string, error) {
		return "definitely a banana", nil
	}))
	f := &finding.Finding{Title: "SQL Injection in login"}
	assert.Equal(t, finding.Critical, e.ClassifySeverity(context.Background(), f))
}

func TestSuggestRemediationFallbackRules(t *testing.T) {
	t.Parallel()

	e := New(nil) // fallback-only mode
	ctx := context.Background()

	sqli := e.SuggestRemediation(ctx, &finding.Finding{Title: "SQL Injection"})
	assert.Contains(t, sqli, "parameterized queries")

	ssh := e.SuggestRemediation(ctx, &finding.Finding{Title: "Open SSH Port Detected"})
	assert.Contains(t, ssh, "SSH")

	generic := e.SuggestRemediation(ctx, &finding.Finding{Title: "Something odd"})
	assert.Contains(t, generic, "Immediate Actions")
}

func TestEnrichmentNeverRaisesAndNeverLeavesBlank(t *testing.T) {
	t.Parallel()

	e := New(failingGen())
	f := &finding.Finding{Title: "Reflected XSS", Severity: "", Description: "xss in q"}

	e.EnrichFinding(context.Background(), f)

	assert.NotEmpty(t, f.AISummary)
	assert.NotEmpty(t, f.Remediation)
	assert.True(t, f.Severity.IsValid())
}

func TestEnrichFindingAllOrNothing(t *testing.T) {
	t.Parallel()

	// The generator succeeds for the summary, then fails. The finding must
	// still end fully populated (failed calls use fallbacks), and severity
	// must be canonical.
	var calls atomic.Int32
	e := New(generatorFunc(func(context.Context, string, int) (string, error) {
		if calls.Add(1) == 1 {
			return "model summary", nil
		}
		return "", errBoom
	}))

	f := &finding.Finding{Title: "Directory listing enabled", Severity: finding.Medium}
	e.EnrichFinding(context.Background(), f)

	assert.Equal(t, "model summary", f.AISummary)
	assert.NotEmpty(t, f.Remediation)
	assert.True(t, f.Severity.IsValid())
}

func TestEnrichIdempotentOverwrite(t *testing.T) {
	t.Parallel()

	e := New(nil)
	f := &finding.Finding{Title: "SQL Injection", AISummary: "stale", Remediation: "stale"}

	e.EnrichFinding(context.Background(), f)
	first := *f
	e.EnrichFinding(context.Background(), f)

	assert.Equal(t, first.AISummary, f.AISummary)
	assert.Equal(t, first.Remediation, f.Remediation)
	assert.Equal(t, first.Severity, f.Severity)
}

func TestUnavailableGeneratorDetectedOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	e := New(generatorFunc(func(context.Context, string, int) (string, error) {
		calls.Add(1)
		return "", ErrUnavailable
	}))

	findings := []finding.Finding{{Title: "a"}, {Title: "b"}, {Title: "c"}}
	e.EnrichAll(context.Background(), findings)

	assert.Equal(t, int32(1), calls.Load(), "permanent unavailability must not be retried per call")
	for _, f := range findings {
		assert.NotEmpty(t, f.AISummary)
	}
}

func TestCompleteRespectsTimeout(t *testing.T) {
	t.Parallel()

	e := New(generatorFunc(func(ctx context.Context, _ string, _ int) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), WithTimeout(20*time.Millisecond))

	start := time.Now()
	out := e.Summarize(context.Background(), &finding.Finding{Title: "slow"})
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.NotEmpty(t, out, "timeout must fall back, not propagate")
}

func TestExecutiveSummaryFallback(t *testing.T) {
	t.Parallel()

	e := New(nil)
	findings := []finding.Finding{
		{Title: "a", Severity: finding.Critical},
		{Title: "b", Severity: finding.High},
		{Title: "c", Severity: finding.Low},
	}
	out := e.ExecutiveSummary(context.Background(), findings)
	assert.Contains(t, out, "3 security findings")
	assert.Contains(t, out, "2 findings are classified as high or critical")
}

func TestEmptyCompletionTreatedAsFailure(t *testing.T) {
	t.Parallel()

	e := New(generatorFunc(func(context.Context, string, int) (string, error) {
		return "   ", nil
	}))
	out := e.Summarize(context.Background(), &finding.Finding{Title: "t", Severity: finding.Low})
	assert.True(t, strings.Contains(out, "low severity"), "blank model output must fall back")
}
