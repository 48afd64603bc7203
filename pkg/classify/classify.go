// Package classify assigns severity levels to findings using ordered
// keyword heuristics. It is the deterministic fallback behind the
// AI-assisted classifier and the default path when no enrichment is
// requested.
//
// The keyword tiers and their priority order are a behavioral contract:
// the critical tier is checked first and the first matching tier wins,
// even where substrings overlap (bare "injection" is High while
// "sql injection" is Critical).
package classify

import (
	"strings"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

// Keyword tiers in priority order. Matching is a case-insensitive
// substring test against title + description.
var (
	criticalIndicators = []string{
		"sql injection", "sqli", "remote code execution", "rce",
		"command injection", "path traversal", "directory traversal",
		"file upload", "arbitrary file", "authentication bypass",
		"privilege escalation", "buffer overflow",
	}

	highIndicators = []string{
		"cross-site scripting", "xss", "csrf", "cross-site request forgery",
		"session fixation", "insecure direct object", "security misconfiguration",
		"sensitive data exposure", "xml external entity", "xxe",
		"broken access control", "injection",
	}

	mediumIndicators = []string{
		"information disclosure", "information leakage", "directory listing",
		"version disclosure", "banner grabbing", "weak encryption",
		"insecure transmission", "missing security headers",
		"clickjacking", "open redirect",
	}

	lowIndicators = []string{
		"information", "disclosure", "fingerprinting", "enumeration",
		"default", "test page", "debug", "comment", "metadata",
	}
)

// categorySeverity maps normalized category tags to a severity when no
// keyword tier matched.
var categorySeverity = []struct {
	tag      string
	severity finding.Severity
}{
	{"web_vulnerability", finding.High},
	{"network_vulnerability", finding.Medium},
	{"information_disclosure", finding.Low},
	{"ssl_vulnerability", finding.Medium},
}

// Classify returns the severity for a finding using rule-based heuristics:
//
//  1. An already-valid severity on the finding is normalized and kept
//     (only the four core levels; "info" does not short-circuit, matching
//     the source vocabularies where informational items are re-rated).
//  2. Keyword tiers over title+description, critical tier first.
//  3. Category mapping.
//  4. Medium.
func Classify(f *finding.Finding) finding.Severity {
	existing := strings.ToLower(strings.TrimSpace(string(f.Severity)))
	switch existing {
	case "critical", "high", "medium", "low":
		return finding.Severity(existing)
	}

	text := strings.ToLower(f.Title + " " + f.Description)

	for _, tier := range []struct {
		indicators []string
		severity   finding.Severity
	}{
		{criticalIndicators, finding.Critical},
		{highIndicators, finding.High},
		{mediumIndicators, finding.Medium},
		{lowIndicators, finding.Low},
	} {
		for _, indicator := range tier.indicators {
			if strings.Contains(text, indicator) {
				return tier.severity
			}
		}
	}

	category := strings.ToLower(f.Category)
	for _, cs := range categorySeverity {
		if strings.Contains(category, cs.tag) {
			return cs.severity
		}
	}

	return finding.Medium
}

// ClassifyAll classifies every finding in place and returns the list
// stable-sorted from most to least severe.
func ClassifyAll(findings []finding.Finding) []finding.Finding {
	for i := range findings {
		findings[i].Severity = Classify(&findings[i])
		if findings[i].CVSSScore <= 0 {
			findings[i].CVSSScore = findings[i].Severity.CVSS()
		}
	}
	return finding.SortBySeverity(findings)
}
