package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

// PrintSummary renders the severity roll-up table for a finding set.
func PrintSummary(w io.Writer, st stats.Stats) {
	fmt.Fprintln(w, SectionStyle.Render("Findings Summary"))
	fmt.Fprintln(w)

	for _, sev := range finding.Ordered() {
		count := st.BySeverity[string(sev)]
		badge := SeverityStyle(sev.Title()).Render(fmt.Sprintf("%-8s", sev.Title()))
		bar := severityBar(count, st.Total)
		fmt.Fprintf(w, "  %s %4d  %s\n", badge, count, bar)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n",
		LabelStyle.Render("Total"),
		ValueStyle.Render(fmt.Sprintf("%d", st.Total)))
}

// severityBar renders a proportional block bar, 30 cells wide.
func severityBar(count, total int) string {
	if total == 0 || count == 0 {
		return ""
	}
	width := count * 30 / total
	if width == 0 {
		width = 1
	}
	bar := make([]byte, width)
	for i := range bar {
		bar[i] = '#'
	}
	return HelpStyle.Render(string(bar))
}

// PrintFindings lists findings one per line with a severity badge.
func PrintFindings(w io.Writer, findings []finding.Finding) {
	for _, f := range findings {
		badge := SeverityStyle(f.Severity.Title()).Render(f.Severity.Title())
		target := f.Host
		if f.Port != "" && f.Port != "N/A" {
			target += ":" + f.Port
		}
		fmt.Fprintf(w, "%s %s %s\n", badge, f.Title, HelpStyle.Render("["+target+"]"))
	}
}

// PrintArtifacts lists written output files, stable-sorted by format.
func PrintArtifacts(w io.Writer, artifacts map[string]string) {
	if len(artifacts) == 0 {
		return
	}
	fmt.Fprintln(w, SectionStyle.Render("Artifacts"))

	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	for _, f := range formats {
		fmt.Fprintf(w, "  %s %-10s %s\n",
			Icon("✓", "[+]"), f, PathStyle.Render(artifacts[f]))
	}
}

// PrintError writes a styled error line to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render(Icon("✗", "[!]")), err)
}
