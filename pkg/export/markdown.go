package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

// WriteMarkdown emits a human-readable report with a severity table
// and a section per finding.
func WriteMarkdown(w io.Writer, findings []finding.Finding, meta Metadata) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", meta.Title)
	sb.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&sb, "**Organization:** %s  \n", meta.Organization)
	fmt.Fprintf(&sb, "**Assessment Date:** %s  \n", meta.AssessmentDate)
	fmt.Fprintf(&sb, "**Generated:** %s  \n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "**Total Findings:** %d\n\n", len(findings))

	sb.WriteString("## Summary Statistics\n\n")
	sb.WriteString("| Severity | Count |\n|----------|-------|\n")
	st := stats.Compute(findings)
	for _, sev := range finding.Ordered() {
		fmt.Fprintf(&sb, "| %s | %d |\n", sev.Title(), st.BySeverity[string(sev)])
	}

	sb.WriteString("\n## Detailed Findings\n\n")
	for i := range findings {
		f := &findings[i]
		fmt.Fprintf(&sb, "### %d. %s\n\n", i+1, f.Title)
		fmt.Fprintf(&sb, "**Severity:** %s  \n", f.Severity)
		fmt.Fprintf(&sb, "**CVSS Score:** %.1f  \n", f.CVSSScore)
		fmt.Fprintf(&sb, "**Category:** %s  \n", f.Category)
		fmt.Fprintf(&sb, "**Host:** %s  \n", orNA(f.Host))
		fmt.Fprintf(&sb, "**Port:** %s  \n\n", orNA(f.Port))
		fmt.Fprintf(&sb, "**Description:**  \n%s\n\n", f.Description)
		if f.Impact != "" {
			fmt.Fprintf(&sb, "**Impact:**  \n%s\n\n", f.Impact)
		}
		if f.Evidence != "" {
			fmt.Fprintf(&sb, "**Evidence:**  \n```\n%s\n```\n\n", f.Evidence)
		}
		if f.Remediation != "" {
			fmt.Fprintf(&sb, "**Remediation:**  \n%s\n\n", f.Remediation)
		}
		sb.WriteString("---\n\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
