package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/ai"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/config"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/enrich"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/pipeline"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/ui"
)

func runFull() {
	fullFlags := flag.NewFlagSet("full", flag.ExitOnError)

	nmapFile := fullFlags.String("nmap", "", "Nmap XML report")
	burpFile := fullFlags.String("burp", "", "Burp Suite export (JSON or XML)")
	nucleiFile := fullFlags.String("nuclei", "", "Nuclei JSON/JSONL output")
	mock := fullFlags.Bool("mock", false, "Use built-in sample findings for every source")

	formatsArg := fullFlags.String("formats", "json", "Comma-separated export formats: "+formatList())
	dir := fullFlags.String("dir", "exports", "Export output directory")
	base := fullFlags.String("name", "report", "Export base filename")

	htmlPath := fullFlags.String("html", "", "Write the HTML report to this path")
	pdfPath := fullFlags.String("pdf", "", "Write the PDF report to this path")
	theme := fullFlags.String("theme", "", "Report theme: executive, technical, compliance")
	title := fullFlags.String("title", "", "Report title")
	company := fullFlags.String("company", "", "Company / organization name")

	noAI := fullFlags.Bool("no-ai", false, "Skip AI enrichment, use rule-based text only")
	configPath := fullFlags.String("config", "", "Settings file (default "+config.DefaultPath+")")
	verbose := fullFlags.Bool("verbose", false, "Verbose logging")
	silent := fullFlags.Bool("silent", false, "Suppress banner and summary")
	noColor := fullFlags.Bool("no-color", false, "Disable colored output")
	fullFlags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)
	ui.PrintBanner()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	settings, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}

	inputs := collectInputs(*nmapFile, *burpFile, *nucleiFile, *mock)
	if len(inputs) == 0 {
		fatal(fmt.Errorf("no input files: use -nmap, -burp, -nuclei, or -mock"))
	}

	formats, err := parseFormats(*formatsArg)
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	generator := buildGenerator(ctx, settings, *noAI, logger)

	result, err := pipeline.Run(ctx, pipeline.Options{
		Inputs:    inputs,
		Generator: generator,
		OutputDir: *dir,
		BaseName:  *base,
		Formats:   formats,
		Metadata:  exportMetadata(settings, *title, *company),
		Report:    reportConfig(settings, *title, *company, *theme),
		HTMLPath:  *htmlPath,
		PDFPath:   *pdfPath,
		Logger:    logger,
	})
	if result != nil && !*silent {
		ui.PrintSummary(os.Stdout, stats.Compute(result.Findings))
		fmt.Println()
		ui.PrintArtifacts(os.Stdout, result.Artifacts)
	}
	if err != nil {
		fatal(err)
	}
}

// buildGenerator constructs the configured AI provider. Any
// construction failure degrades to rule-based enrichment rather than
// aborting the run.
func buildGenerator(ctx context.Context, settings *config.Settings, noAI bool, logger *slog.Logger) enrich.TextGenerator {
	if noAI {
		return nil
	}
	client, err := ai.NewClient(ctx, settings.AIConfig())
	if err != nil {
		logger.Warn("AI provider unavailable, continuing without enrichment", "error", err)
		return nil
	}
	return client
}
