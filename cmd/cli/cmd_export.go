package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/config"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/export"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/ui"
)

func runExport() {
	exportFlags := flag.NewFlagSet("export", flag.ExitOnError)

	input := exportFlags.String("i", "findings.json", "Findings JSON (from 'parse' or a JSON export)")
	formatsArg := exportFlags.String("formats", "json", "Comma-separated formats: "+formatList())
	dir := exportFlags.String("dir", "exports", "Output directory")
	base := exportFlags.String("name", "report", "Output base filename")
	title := exportFlags.String("title", "", "Report title")
	org := exportFlags.String("org", "", "Organization name")
	configPath := exportFlags.String("config", "", "Settings file (default "+config.DefaultPath+")")
	silent := exportFlags.Bool("silent", false, "Suppress banner and summary")
	noColor := exportFlags.Bool("no-color", false, "Disable colored output")
	exportFlags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)
	ui.PrintBanner()

	settings, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}

	findings, err := loadFindings(*input)
	if err != nil {
		fatal(err)
	}

	formats, err := parseFormats(*formatsArg)
	if err != nil {
		fatal(err)
	}

	meta := exportMetadata(settings, *title, *org)
	written, err := export.ExportAll(findings, *dir, *base, formats, meta)

	if !*silent {
		artifacts := make(map[string]string, len(written))
		for f, p := range written {
			artifacts[string(f)] = p
		}
		ui.PrintArtifacts(os.Stdout, artifacts)
	}
	if err != nil {
		fatal(err)
	}
}

func parseFormats(arg string) ([]export.Format, error) {
	var formats []export.Format
	for _, name := range strings.Split(arg, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := export.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no formats requested")
	}
	return formats, nil
}

func formatList() string {
	names := make([]string, 0, len(export.Supported()))
	for _, f := range export.Supported() {
		names = append(names, string(f))
	}
	return strings.Join(names, ",")
}

func exportMetadata(settings *config.Settings, title, org string) export.Metadata {
	meta := export.DefaultMetadata()
	if settings.Report.Title != "" {
		meta.Title = settings.Report.Title
	}
	if settings.Report.Organization != "" {
		meta.Organization = settings.Report.Organization
	}
	if title != "" {
		meta.Title = title
	}
	if org != "" {
		meta.Organization = org
	}
	return meta
}
