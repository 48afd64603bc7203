// cybersec-ai-autoreport turns raw scanner output (Nmap, Burp Suite,
// Nuclei) into enriched, multi-format security assessment reports.
package main

import (
	"fmt"
	"os"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/ui"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse":
		runParse()
	case "export":
		runExport()
	case "report", "html-report":
		runReport()
	case "full", "auto", "all":
		runFull()
	case "-h", "--help", "help":
		printUsage()
		os.Exit(0)
	case "-v", "--version", "version":
		fmt.Printf("%s v%s\n", defaults.ToolName, defaults.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	ui.PrintBanner()
	fmt.Print(`Usage:
  cybersec-ai-autoreport <command> [flags]

Commands:
  parse    Parse scanner reports into the canonical findings JSON
  export   Export findings to one or more output formats
  report   Render the HTML/PDF assessment report
  full     Run the whole pipeline: parse, enrich, export, report
  version  Print version
  help     Show this help

Run 'cybersec-ai-autoreport <command> -h' for command flags.

Examples:
  cybersec-ai-autoreport parse -nmap scan.xml -o findings.json
  cybersec-ai-autoreport export -i findings.json -formats json,csv,sarif -dir out
  cybersec-ai-autoreport report -i findings.json -pdf report.pdf -theme executive
  cybersec-ai-autoreport full -nmap scan.xml -burp burp.json -formats json,excel -pdf report.pdf
`)
}

// fatal prints a styled error and exits non-zero.
func fatal(err error) {
	ui.PrintError(os.Stderr, err)
	os.Exit(1)
}
