package enrich

import (
	"fmt"
	"strings"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

// Prompt builders for the text-generation collaborator. Exact wording is
// not contractual; the fallbacks in fallback.go are.

func target(f *finding.Finding) string {
	if f.Host != "" {
		return f.Host
	}
	if f.URL != "" {
		return f.URL
	}
	return "Unknown target"
}

func summaryPrompt(f *finding.Finding) string {
	return fmt.Sprintf(`You are a cybersecurity analyst writing for business executives.

Create a clear, non-technical summary of this security finding:

Title: %s
Description: %s
Impact: %s
Evidence: %s

Write a 2-3 sentence executive summary that explains:
1. What the issue is in simple terms
2. Why it matters to the business
3. The potential business impact

Executive Summary:`, f.Title, f.Description, f.Impact, f.Evidence)
}

func severityPrompt(f *finding.Finding) string {
	return fmt.Sprintf(`You are a cybersecurity expert using CVSS and industry standards.

Analyze this vulnerability and assign a severity rating:

Title: %s
Description: %s
Impact: %s
Host/Target: %s
Current Severity: %s

Based on CVSS criteria, assign ONE of these severity levels:
- Critical: Immediate threat, can cause severe damage
- High: Significant risk, should be addressed urgently
- Medium: Moderate risk, should be addressed in reasonable timeframe
- Low: Minor risk, can be addressed during routine maintenance

Severity:`, f.Title, f.Description, f.Impact, target(f), f.Severity)
}

func remediationPrompt(f *finding.Finding) string {
	return fmt.Sprintf(`You are a cybersecurity expert providing remediation guidance.

Provide specific, actionable remediation steps for this vulnerability:

Title: %s
Description: %s
Technology: %s
Host/Target: %s
Category: %s

Provide remediation steps that include:
1. Immediate actions (quick fixes)
2. Long-term solutions (proper fixes)
3. Detection/monitoring recommendations
4. Prevention measures

Remediation Steps:`, f.Title, f.Description, f.TechStack, target(f), f.Category)
}

func technicalPrompt(f *finding.Finding) string {
	return fmt.Sprintf(`You are a senior penetration tester writing a technical analysis.

Provide a technical analysis of this finding covering attack vectors,
affected components, and root cause:

Title: %s
Description: %s
Evidence: %s
Technology: %s

Technical Analysis:`, f.Title, f.Description, f.Evidence, f.TechStack)
}

func executivePrompt(findings []finding.Finding) string {
	sum := stats.SummaryOf(findings)

	var titles []string
	for i := range findings {
		if len(titles) >= 10 {
			break
		}
		titles = append(titles, fmt.Sprintf("- [%s] %s", findings[i].Severity.Title(), findings[i].Title))
	}

	return fmt.Sprintf(`You are a cybersecurity consultant writing an executive summary for a
security assessment report.

The assessment identified %d findings: %d critical, %d high, %d medium,
%d low, %d informational. Key findings:

%s

Write a professional executive summary (3-4 paragraphs) covering the
overall security posture, the most significant risks, and recommended
remediation priorities.

Executive Summary:`,
		sum.TotalFindings, sum.CriticalFindings, sum.HighFindings,
		sum.MediumFindings, sum.LowFindings, sum.InfoFindings,
		strings.Join(titles, "\n"))
}
