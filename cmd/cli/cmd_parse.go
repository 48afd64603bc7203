package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/parser/burp"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/parser/nmap"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/parser/nuclei"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/pipeline"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/ui"
)

func runParse() {
	parseFlags := flag.NewFlagSet("parse", flag.ExitOnError)

	nmapFile := parseFlags.String("nmap", "", "Nmap XML report")
	burpFile := parseFlags.String("burp", "", "Burp Suite export (JSON or XML)")
	nucleiFile := parseFlags.String("nuclei", "", "Nuclei JSON/JSONL output")
	mock := parseFlags.Bool("mock", false, "Use built-in sample findings for every source")
	output := parseFlags.String("o", "findings.json", "Output findings JSON path")
	silent := parseFlags.Bool("silent", false, "Suppress banner and summary")
	noColor := parseFlags.Bool("no-color", false, "Disable colored output")
	parseFlags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)
	ui.PrintBanner()

	inputs := collectInputs(*nmapFile, *burpFile, *nucleiFile, *mock)
	if len(inputs) == 0 {
		fatal(fmt.Errorf("no input files: use -nmap, -burp, -nuclei, or -mock"))
	}

	var findings []finding.Finding
	for _, in := range inputs {
		findings = append(findings, parseInput(in)...)
	}
	findings = finding.SortBySeverity(findings)

	if err := saveFindings(findings, *output); err != nil {
		fatal(err)
	}

	if !*silent {
		ui.PrintSummary(os.Stdout, stats.Compute(findings))
		fmt.Println()
		ui.PrintArtifacts(os.Stdout, map[string]string{"findings": *output})
	}
}

func collectInputs(nmapFile, burpFile, nucleiFile string, mock bool) []pipeline.Input {
	var inputs []pipeline.Input
	if nmapFile != "" || mock {
		inputs = append(inputs, pipeline.Input{Source: pipeline.SourceNmap, Path: nmapFile})
	}
	if burpFile != "" || mock {
		inputs = append(inputs, pipeline.Input{Source: pipeline.SourceBurp, Path: burpFile})
	}
	if nucleiFile != "" || mock {
		inputs = append(inputs, pipeline.Input{Source: pipeline.SourceNuclei, Path: nucleiFile})
	}
	return inputs
}

func parseInput(in pipeline.Input) []finding.Finding {
	switch in.Source {
	case pipeline.SourceNmap:
		if in.Path == "" {
			return nmap.ParseMock()
		}
		return nmap.Parse(in.Path)
	case pipeline.SourceBurp:
		if in.Path == "" {
			return burp.ParseMock()
		}
		return burp.Parse(in.Path)
	default:
		if in.Path == "" {
			return nuclei.ParseMock()
		}
		return nuclei.Parse(in.Path)
	}
}
