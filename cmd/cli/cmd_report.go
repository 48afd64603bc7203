package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/config"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/report"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/ui"
)

func runReport() {
	reportFlags := flag.NewFlagSet("report", flag.ExitOnError)

	input := reportFlags.String("i", "findings.json", "Findings JSON (from 'parse' or a JSON export)")
	htmlPath := reportFlags.String("html", "", "Write the HTML report to this path")
	pdfPath := reportFlags.String("pdf", "", "Write the PDF report to this path")
	theme := reportFlags.String("theme", "executive", "Report theme: executive, technical, compliance")
	title := reportFlags.String("title", "", "Report title")
	company := reportFlags.String("company", "", "Company name")
	configPath := reportFlags.String("config", "", "Settings file (default "+config.DefaultPath+")")
	silent := reportFlags.Bool("silent", false, "Suppress banner and summary")
	noColor := reportFlags.Bool("no-color", false, "Disable colored output")
	reportFlags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)
	ui.PrintBanner()

	if *htmlPath == "" && *pdfPath == "" {
		fatal(fmt.Errorf("nothing to do: pass -html and/or -pdf"))
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}

	findings, err := loadFindings(*input)
	if err != nil {
		fatal(err)
	}

	cfg := reportConfig(settings, *title, *company, *theme)
	data := report.BuildData(findings, cfg)
	gen := report.NewGenerator()

	artifacts := map[string]string{}
	if *htmlPath != "" {
		if err := gen.WriteHTML(data, *htmlPath); err != nil {
			fatal(err)
		}
		artifacts["html"] = *htmlPath
	}
	if *pdfPath != "" {
		if err := gen.GeneratePDF(context.Background(), data, *pdfPath); err != nil {
			fatal(err)
		}
		artifacts["pdf"] = *pdfPath
	}

	if !*silent {
		ui.PrintArtifacts(os.Stdout, artifacts)
	}
}

func reportConfig(settings *config.Settings, title, company, theme string) report.Config {
	cfg := settings.ReportConfig()
	if title != "" {
		cfg.Title = title
	}
	if company != "" {
		cfg.Company = company
	}
	if theme != "" {
		cfg.Theme = report.Theme(theme)
	}
	return cfg
}
