// Package pipeline orchestrates the full report run: parse scanner
// output, enrich, sort, aggregate, then export and render reports.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/enrich"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/export"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/metrics"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/parser/burp"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/parser/nmap"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/parser/nuclei"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/report"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

// Source identifies a scanner input format.
type Source string

const (
	SourceNmap   Source = "nmap"
	SourceBurp   Source = "burp"
	SourceNuclei Source = "nuclei"
)

// Input is one scanner report to ingest. An empty Path yields the
// source's deterministic mock findings, so the pipeline can run
// end-to-end without real scan files.
type Input struct {
	Source Source
	Path   string
}

// Options configures a pipeline run.
type Options struct {
	Inputs []Input

	// Generator powers AI enrichment. Nil skips the model entirely
	// and every enrichment uses its rule-based fallback.
	Generator enrich.TextGenerator

	// Export settings. Formats empty means no exports.
	OutputDir string
	BaseName  string
	Formats   []export.Format
	Metadata  export.Metadata

	// Report settings. Empty paths skip the corresponding artifact.
	Report     report.Config
	HTMLPath   string
	PDFPath    string
	PDFOptions []report.GeneratorOption

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Result is what a pipeline run produced.
type Result struct {
	Findings         []finding.Finding
	Statistics       stats.Stats
	Summary          stats.Summary
	ExecutiveSummary string

	// Artifacts maps a label (format name, "html", "pdf") to the
	// file written for it.
	Artifacts map[string]string
}

// Run executes the pipeline. Parse and enrichment failures degrade
// rather than abort; only export and report I/O failures return an
// error, and even then everything produced before the failure is in
// the Result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	start := time.Now()

	findings := parseInputs(opts.Inputs, logger, m)

	enricher := enrich.New(opts.Generator, enrich.WithLogger(logger))
	enricher.EnrichAll(ctx, findings)
	outcome := metrics.OutcomeModel
	if enricher.Unavailable() {
		outcome = metrics.OutcomeFallback
	}
	for range findings {
		m.ObserveEnrichment(outcome)
	}

	findings = finding.SortBySeverity(findings)
	st := stats.Compute(findings)

	result := &Result{
		Findings:         findings,
		Statistics:       st,
		Summary:          stats.SummaryOf(findings),
		ExecutiveSummary: enricher.ExecutiveSummary(ctx, findings),
		Artifacts:        map[string]string{},
	}

	if err := runExports(findings, opts, m, result); err != nil {
		return result, err
	}
	if err := runReports(ctx, opts, result, logger); err != nil {
		return result, err
	}

	m.ObservePipeline(len(findings), time.Since(start))
	logger.Info("pipeline complete",
		"findings", len(findings),
		"artifacts", len(result.Artifacts),
		"duration", time.Since(start))
	return result, nil
}

func parseInputs(inputs []Input, logger *slog.Logger, m *metrics.Metrics) []finding.Finding {
	var findings []finding.Finding
	for _, in := range inputs {
		parsed := parseOne(in)
		for _, f := range parsed {
			if f.Category == "parsing_error" {
				m.ObserveParseError(string(in.Source))
				logger.Warn("scanner report parse failure", "source", in.Source, "path", in.Path)
			}
		}
		m.ObserveParse(string(in.Source), len(parsed))
		logger.Info("parsed scanner report",
			"source", in.Source, "path", in.Path, "findings", len(parsed))
		findings = append(findings, parsed...)
	}
	return findings
}

func parseOne(in Input) []finding.Finding {
	switch in.Source {
	case SourceNmap:
		if in.Path == "" {
			return nmap.ParseMock()
		}
		return nmap.Parse(in.Path)
	case SourceBurp:
		if in.Path == "" {
			return burp.ParseMock()
		}
		return burp.Parse(in.Path)
	case SourceNuclei:
		if in.Path == "" {
			return nuclei.ParseMock()
		}
		return nuclei.Parse(in.Path)
	default:
		return []finding.Finding{finding.NewParseError(string(in.Source), string(in.Source),
			fmt.Errorf("unknown scanner source %q", in.Source))}
	}
}

func runExports(findings []finding.Finding, opts Options, m *metrics.Metrics, result *Result) error {
	if len(opts.Formats) == 0 {
		return nil
	}
	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	base := opts.BaseName
	if base == "" {
		base = "report"
	}

	var firstErr error
	for _, format := range opts.Formats {
		path := filepath.Join(dir, base+"."+format.Ext())
		begin := time.Now()
		err := export.Export(findings, path, format, opts.Metadata)
		m.ObserveExport(string(format), time.Since(begin), err)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("pipeline: export %s: %w", format, err)
			}
			continue
		}
		result.Artifacts[string(format)] = path
	}
	return firstErr
}

func runReports(ctx context.Context, opts Options, result *Result, logger *slog.Logger) error {
	if opts.HTMLPath == "" && opts.PDFPath == "" {
		return nil
	}

	cfg := opts.Report
	if cfg.ExecutiveSummary == "" {
		cfg.ExecutiveSummary = result.ExecutiveSummary
	}
	data := report.BuildData(result.Findings, cfg)
	gen := report.NewGenerator(append(opts.PDFOptions, report.WithLogger(logger))...)

	if opts.HTMLPath != "" {
		if err := gen.WriteHTML(data, opts.HTMLPath); err != nil {
			return fmt.Errorf("pipeline: html report: %w", err)
		}
		result.Artifacts["html"] = opts.HTMLPath
	}
	if opts.PDFPath != "" {
		if err := gen.GeneratePDF(ctx, data, opts.PDFPath); err != nil {
			return fmt.Errorf("pipeline: pdf report: %w", err)
		}
		result.Artifacts["pdf"] = opts.PDFPath
	}
	return nil
}
