// Package enrich orchestrates optional AI-assisted enrichment of findings:
// per-finding summaries, severity validation, and remediation guidance,
// plus a report-level executive summary.
//
// The external text generator is a capability: when it is absent, errors,
// or times out, every operation falls back to a local deterministic
// template. No operation here ever returns an error or leaves an
// enrichment field blank. A permanently unavailable generator is detected
// once per Enricher and not retried per call.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/classify"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

// ErrUnavailable marks a text generator that cannot serve any request
// (missing credentials, unreachable endpoint). Providers wrap it so the
// enricher can stop calling them for the rest of the session.
var ErrUnavailable = errors.New("enrich: text generator unavailable")

// TextGenerator is the external text-generation collaborator.
// Implementations live in pkg/ai; a nil generator means fallback-only mode.
type TextGenerator interface {
	// Complete returns model output for the prompt, bounded by maxTokens.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Enricher wraps a TextGenerator with timeouts and deterministic fallbacks.
type Enricher struct {
	gen     TextGenerator
	timeout time.Duration
	logger  *slog.Logger

	unavailable atomic.Bool
	warnOnce    sync.Once
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithTimeout bounds each generator call. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(e *Enricher) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Enricher. gen may be nil, in which case every operation
// uses its local fallback.
func New(gen TextGenerator, opts ...Option) *Enricher {
	e := &Enricher{
		gen:     gen,
		timeout: defaults.EnrichTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if gen == nil {
		e.unavailable.Store(true)
	}
	return e
}

// Unavailable reports whether the generator has been written off for
// this Enricher's lifetime. Callers can use it to tell model output
// from fallback output after an enrichment pass.
func (e *Enricher) Unavailable() bool {
	return e.unavailable.Load()
}

// complete runs one bounded generator call. The error is only consumed
// internally; callers branch to their fallback on any failure.
func (e *Enricher) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if e.unavailable.Load() {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := e.gen.Complete(ctx, prompt, maxTokens)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			e.unavailable.Store(true)
			e.warnOnce.Do(func() {
				e.logger.Warn("AI enrichment unavailable, using rule-based fallbacks", "error", err)
			})
		}
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("enrich: empty completion")
	}
	return out, nil
}

// Summarize returns an executive summary for one finding.
func (e *Enricher) Summarize(ctx context.Context, f *finding.Finding) string {
	if out, err := e.complete(ctx, summaryPrompt(f), defaults.MaxTokens); err == nil {
		return out
	}
	return fallbackSummary(f)
}

// ClassifySeverity returns a validated severity for the finding. Model
// output that does not name one of the canonical levels falls back to the
// rule-based classifier.
func (e *Enricher) ClassifySeverity(ctx context.Context, f *finding.Finding) finding.Severity {
	out, err := e.complete(ctx, severityPrompt(f), 16)
	if err != nil {
		return classify.Classify(f)
	}

	cleaned := strings.ToLower(strings.NewReplacer(":", "", ".", "").Replace(out))
	for _, sev := range []finding.Severity{finding.Critical, finding.High, finding.Medium, finding.Low} {
		if strings.Contains(cleaned, string(sev)) {
			return sev
		}
	}
	return classify.Classify(f)
}

// SuggestRemediation returns remediation guidance for one finding.
func (e *Enricher) SuggestRemediation(ctx context.Context, f *finding.Finding) string {
	if out, err := e.complete(ctx, remediationPrompt(f), 2000); err == nil {
		return out
	}
	return fallbackRemediation(f)
}

// TechnicalAnalysis returns a detailed technical narrative for one finding.
func (e *Enricher) TechnicalAnalysis(ctx context.Context, f *finding.Finding) string {
	if out, err := e.complete(ctx, technicalPrompt(f), 2000); err == nil {
		return out
	}
	return "Technical analysis requires further investigation by security experts."
}

// EnrichFinding overwrites the finding's three enrichment fields. The
// write is all-or-nothing per call: all texts are produced before any
// field is assigned, so a finding is never left partially enriched.
// Calling it again simply overwrites the fields with a fresh result.
func (e *Enricher) EnrichFinding(ctx context.Context, f *finding.Finding) {
	summary := e.Summarize(ctx, f)
	severity := e.ClassifySeverity(ctx, f)
	remediation := e.SuggestRemediation(ctx, f)

	if severity != f.Severity {
		// Re-rate the CVSS proxy only when the classification moved.
		f.CVSSScore = severity.CVSS()
	}
	f.AISummary = summary
	f.Severity = severity
	f.Remediation = remediation
}

// EnrichAll enriches every finding sequentially. Per-finding independence
// holds: no call observes another finding's partial state.
func (e *Enricher) EnrichAll(ctx context.Context, findings []finding.Finding) {
	for i := range findings {
		e.EnrichFinding(ctx, &findings[i])
	}
}

// ExecutiveSummary returns a report-level narrative over all findings,
// falling back to a statistics-derived paragraph.
func (e *Enricher) ExecutiveSummary(ctx context.Context, findings []finding.Finding) string {
	if out, err := e.complete(ctx, executivePrompt(findings), 2000); err == nil {
		return out
	}
	return FallbackExecutiveSummary(findings)
}

// FallbackExecutiveSummary is the deterministic report-level summary used
// when no generator is available. Exported so the HTML builder can render
// it directly.
func FallbackExecutiveSummary(findings []finding.Finding) string {
	sum := stats.SummaryOf(findings)
	highOrCritical := sum.CriticalFindings + sum.HighFindings

	return fmt.Sprintf(`Security Assessment Summary

This assessment identified %d security findings across the tested systems and applications. Of these, %d findings are classified as high or critical severity and require immediate attention.

The findings indicate various security concerns including network service exposures, web application vulnerabilities, and configuration issues. These vulnerabilities could potentially be exploited by attackers to gain unauthorized access, compromise data integrity, or disrupt system operations.

Priority should be given to addressing the high and critical severity findings first, followed by medium and low severity items. A coordinated remediation effort involving system administrators, developers, and security teams is recommended to ensure comprehensive security improvements.

Regular security assessments and monitoring should be implemented to maintain the security posture and detect new vulnerabilities as they emerge.`,
		sum.TotalFindings, highOrCritical)
}

func fallbackSummary(f *finding.Finding) string {
	title := f.Title
	if title == "" {
		title = "Security Finding"
	}
	severity := strings.ToLower(string(f.Severity))
	if severity == "" {
		severity = "medium"
	}
	return fmt.Sprintf("A %s severity security issue was identified: %s. This finding requires review and remediation according to security best practices.", severity, title)
}
