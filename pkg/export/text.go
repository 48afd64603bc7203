package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

// WriteText emits a plain-text report suitable for terminals and
// ticket systems.
func WriteText(w io.Writer, findings []finding.Finding, meta Metadata) error {
	var sb strings.Builder

	sb.WriteString(meta.Title + "\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&sb, "Organization: %s\n", meta.Organization)
	fmt.Fprintf(&sb, "Assessment Date: %s\n", meta.AssessmentDate)
	fmt.Fprintf(&sb, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Total Findings: %d\n\n", len(findings))

	sb.WriteString("EXECUTIVE SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 17) + "\n\n")
	fmt.Fprintf(&sb, "This report contains %d security findings identified during the assessment.\n\n", len(findings))

	sb.WriteString("SEVERITY DISTRIBUTION\n")
	sb.WriteString(strings.Repeat("-", 20) + "\n")
	st := stats.Compute(findings)
	for _, sev := range finding.Ordered() {
		fmt.Fprintf(&sb, "%-10s: %d\n", sev.Title(), st.BySeverity[string(sev)])
	}

	sb.WriteString("\nDETAILED FINDINGS\n")
	sb.WriteString(strings.Repeat("=", 17) + "\n\n")
	for i := range findings {
		f := &findings[i]
		heading := fmt.Sprintf("%d. %s", i+1, f.Title)
		sb.WriteString(heading + "\n")
		sb.WriteString(strings.Repeat("-", len(heading)) + "\n")
		fmt.Fprintf(&sb, "Severity: %s\n", f.Severity)
		fmt.Fprintf(&sb, "CVSS Score: %.1f\n", f.CVSSScore)
		fmt.Fprintf(&sb, "Category: %s\n", f.Category)
		fmt.Fprintf(&sb, "Host: %s\n", orNA(f.Host))
		fmt.Fprintf(&sb, "Port: %s\n\n", orNA(f.Port))
		fmt.Fprintf(&sb, "Description:\n%s\n\n", f.Description)
		if f.Impact != "" {
			fmt.Fprintf(&sb, "Impact:\n%s\n\n", f.Impact)
		}
		if f.Evidence != "" {
			fmt.Fprintf(&sb, "Evidence:\n%s\n\n", f.Evidence)
		}
		if f.Remediation != "" {
			fmt.Fprintf(&sb, "Remediation:\n%s\n\n", f.Remediation)
		}
		sb.WriteString(strings.Repeat("=", 60) + "\n\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
