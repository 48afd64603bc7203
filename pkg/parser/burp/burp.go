// Package burp parses Burp Suite issue exports, in both JSON and XML
// variants, into the canonical finding model. The variant is detected by
// file extension first, then by content sniffing (leading '{' or '[' is
// JSON, leading '<' is XML).
//
// Burp's four-level severity vocabulary (High/Medium/Low/Information) is
// collapsed onto the canonical enum with Information folded into Low.
// Malformed individual issues are skipped; only a total parse failure
// degrades to a single parsing-error finding.
package burp

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/iohelper"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

// Source is the parser name stamped on every finding.
const Source = "burp"

// severityMap collapses Burp's 4-level vocabulary onto the canonical enum.
var severityMap = map[string]finding.Severity{
	"high":        finding.High,
	"medium":      finding.Medium,
	"low":         finding.Low,
	"information": finding.Low,
}

// Parse reads a Burp Suite export file and returns findings. The returned
// list is always non-empty: a total parse failure yields a single
// "Burp Suite Parsing Error" finding, and a well-formed file with zero
// usable issues falls back to the deterministic mock set.
func Parse(path string) []finding.Finding {
	data, err := iohelper.ReadFile(path)
	if err != nil {
		return []finding.Finding{finding.NewParseError(Source, "Burp Suite", err)}
	}

	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return finishParse(parseJSON(data))
	case strings.HasSuffix(lower, ".xml"):
		return finishParse(parseXML(data))
	default:
		return finishParse(ParseBytes(data))
	}
}

// ParseBytes parses raw Burp export content, sniffing the format from the
// first non-whitespace byte.
func ParseBytes(data []byte) ([]finding.Finding, error) {
	content := strings.TrimSpace(string(data))
	switch {
	case strings.HasPrefix(content, "{"), strings.HasPrefix(content, "["):
		return parseJSON(data)
	case strings.HasPrefix(content, "<"):
		return parseXML(data)
	default:
		return nil, fmt.Errorf("unrecognized Burp export content")
	}
}

func finishParse(findings []finding.Finding, err error) []finding.Finding {
	if err != nil {
		return []finding.Finding{finding.NewParseError(Source, "Burp Suite", err)}
	}
	if len(findings) == 0 {
		return ParseMock()
	}
	finding.ApplyDefaultsAll(findings)
	return findings
}

// parseJSON handles both a top-level issue array and an object wrapping
// the array under an "issues" or "vulnerabilities" key. A lone issue
// object is treated as a one-element list.
func parseJSON(data []byte) ([]finding.Finding, error) {
	var root any
	if err := jsonutil.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode Burp JSON: %w", err)
	}

	var issues []any
	switch v := root.(type) {
	case []any:
		issues = v
	case map[string]any:
		if list, ok := v["issues"].([]any); ok {
			issues = list
		} else if list, ok := v["vulnerabilities"].([]any); ok {
			issues = list
		} else {
			issues = []any{v}
		}
	default:
		return nil, fmt.Errorf("unexpected Burp JSON structure %T", root)
	}

	var findings []finding.Finding
	for _, raw := range issues {
		issue, ok := raw.(map[string]any)
		if !ok {
			continue // malformed entry, skip per-record
		}
		if f, ok := parseIssue(issue); ok {
			findings = append(findings, f)
		}
	}
	return findings, nil
}

// parseIssue maps one JSON issue object to a Finding, applying Burp's
// field-name fallbacks. Returns ok=false for entries with no usable data.
func parseIssue(issue map[string]any) (finding.Finding, bool) {
	title := stringField(issue, "issueName", "name")
	description := stringField(issue, "issueDetail", "description")
	url := stringField(issue, "url", "host")
	host := stringField(issue, "host")
	if host == "" {
		host = url
	}

	if title == "" && description == "" && url == "" {
		return finding.Finding{}, false
	}
	if title == "" {
		title = finding.DefaultTitle
	}

	f := finding.Finding{
		Title:       title,
		Description: description,
		Severity:    mapSeverity(stringField(issue, "severity")),
		URL:         url,
		Host:        host,
		Impact:      stringField(issue, "impact"),
		Evidence:    stringField(issue, "issueBackground", "evidence"),
		Remediation: stringField(issue, "remediationDetail", "solution"),
		Confidence:  stringField(issue, "confidence"),
		TechStack:   "Web Application",
		Category:    "web_vulnerability",
		Source:      Source,
	}
	if f.Impact == "" {
		f.Impact = "Potential security vulnerability identified"
	}
	if f.Evidence == "" {
		f.Evidence = "Burp Suite scan detection"
	}
	if f.Confidence == "" {
		f.Confidence = "Medium"
	}
	return f, true
}

// Burp XML issue element. Issues may be nested at any depth, so parseXML
// walks the token stream instead of assuming a fixed document shape.
type xmlIssue struct {
	Name              string `xml:"name"`
	IssueDetail       string `xml:"issueDetail"`
	Severity          string `xml:"severity"`
	Confidence        string `xml:"confidence"`
	URL               string `xml:"url"`
	Host              string `xml:"host"`
	Impact            string `xml:"impact"`
	IssueBackground   string `xml:"issueBackground"`
	RemediationDetail string `xml:"remediationDetail"`
}

func parseXML(data []byte) ([]finding.Finding, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	var findings []finding.Finding
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode Burp XML: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "issue" {
			continue
		}

		var issue xmlIssue
		if err := decoder.DecodeElement(&issue, &start); err != nil {
			continue // malformed issue element, skip per-record
		}
		findings = append(findings, xmlIssueFinding(issue))
	}
	return findings, nil
}

func xmlIssueFinding(issue xmlIssue) finding.Finding {
	host := issue.Host
	if host == "" {
		host = issue.URL
	}
	f := finding.Finding{
		Title:       issue.Name,
		Description: issue.IssueDetail,
		Severity:    mapSeverity(issue.Severity),
		URL:         issue.URL,
		Host:        host,
		Impact:      issue.Impact,
		Evidence:    issue.IssueBackground,
		Remediation: issue.RemediationDetail,
		Confidence:  issue.Confidence,
		TechStack:   "Web Application",
		Category:    "web_vulnerability",
		Source:      Source,
	}
	if f.Title == "" {
		f.Title = finding.DefaultTitle
	}
	if f.Impact == "" {
		f.Impact = "Potential security vulnerability identified"
	}
	if f.Evidence == "" {
		f.Evidence = "Burp Suite scan detection"
	}
	if f.Confidence == "" {
		f.Confidence = "Medium"
	}
	return f
}

func mapSeverity(raw string) finding.Severity {
	if sev, ok := severityMap[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return sev
	}
	return finding.Medium
}

func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// ParseMock returns deterministic sample findings for use when no real
// export is supplied.
func ParseMock() []finding.Finding {
	findings := []finding.Finding{
		{
			Title:       "Cross-Site Scripting (XSS)",
			Description: "Reflected XSS vulnerability found in search parameter",
			Severity:    finding.High,
			URL:         "https://example.com/search?q=<script>alert(1)</script>",
			Host:        "example.com",
			Impact:      "Attackers can execute malicious scripts in victim browsers",
			Evidence:    "Parameter 'q' reflects user input without proper sanitization",
			Remediation: "Implement input validation and output encoding",
			TechStack:   "Web Application",
			Category:    "web_vulnerability",
			Confidence:  "High",
			Source:      Source,
		},
		{
			Title:       "SQL Injection",
			Description: "SQL injection vulnerability in login form",
			Severity:    finding.Critical,
			URL:         "https://example.com/login.php",
			Host:        "example.com",
			Impact:      "Attackers can access, modify, or delete database information",
			Evidence:    "Parameter 'username' is vulnerable to SQL injection attacks",
			Remediation: "Use parameterized queries or prepared statements",
			TechStack:   "Web Application",
			Category:    "web_vulnerability",
			Confidence:  "High",
			Source:      Source,
		},
		{
			Title:       "Information Disclosure",
			Description: "Server version information disclosed in HTTP headers",
			Severity:    finding.Low,
			URL:         "https://example.com/",
			Host:        "example.com",
			Impact:      "Server technology information may aid attackers",
			Evidence:    "Server header reveals Apache/2.4.41 version information",
			Remediation: "Configure server to suppress version information",
			TechStack:   "Web Server",
			Category:    "information_disclosure",
			Confidence:  "Medium",
			Source:      Source,
		},
	}
	finding.ApplyDefaultsAll(findings)
	return findings
}
