// Package nuclei parses Nuclei JSON-Lines output into the canonical
// finding model. Each line is one template match, parsed independently;
// a malformed line is skipped without failing the batch.
package nuclei

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/iohelper"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

// Source is the parser name stamped on every finding.
const Source = "nuclei"

// maxLineSize bounds a single JSONL record (nuclei can embed full
// responses in extracted results).
const maxLineSize = 4 * 1024 * 1024

// severityMap folds Nuclei's severity vocabulary onto the canonical enum.
// "info" maps to Low and "unknown" to Medium by contract.
var severityMap = map[string]finding.Severity{
	"critical": finding.Critical,
	"high":     finding.High,
	"medium":   finding.Medium,
	"low":      finding.Low,
	"info":     finding.Low,
	"unknown":  finding.Medium,
}

// flexStrings decodes a JSON value that may be a single string, an array
// of strings, or absent. Nuclei templates are inconsistent about this for
// tags, references, and CWE IDs.
type flexStrings []string

func (fs *flexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*fs = nil
		return nil
	}
	if data[0] == '[' {
		var list []string
		if err := jsonutil.Unmarshal(data, &list); err != nil {
			return err
		}
		*fs = list
		return nil
	}
	var single string
	if err := jsonutil.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*fs = nil
		return nil
	}
	// Comma-separated tag strings are common in template metadata.
	parts := strings.Split(single, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	*fs = parts
	return nil
}

// record is one JSONL entry from nuclei -jsonl output.
type record struct {
	TemplateID       string    `json:"template-id"`
	Host             string    `json:"host"`
	Target           string    `json:"target"`
	MatchedAt        string    `json:"matched-at"`
	MatcherName      string    `json:"matcher-name"`
	ExtractedResults []string  `json:"extracted-results"`
	Info             templInfo `json:"info"`
}

type templInfo struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Severity       string          `json:"severity"`
	Impact         string          `json:"impact"`
	Tags           flexStrings     `json:"tags"`
	Reference      flexStrings     `json:"reference"`
	Classification *classification `json:"classification"`
}

type classification struct {
	CVEID flexStrings `json:"cve-id"`
	CWEID flexStrings `json:"cwe-id"`
}

// Parse reads a Nuclei JSON-Lines file and returns findings. The returned
// list is always non-empty: a file with no parseable lines falls back to
// the deterministic mock set, and an unreadable file degrades to a single
// "Nuclei Parsing Error" finding.
func Parse(path string) []finding.Finding {
	data, err := iohelper.ReadFile(path)
	if err != nil {
		return []finding.Finding{finding.NewParseError(Source, "Nuclei", err)}
	}
	return ParseBytes(data)
}

// ParseBytes parses raw JSON-Lines content. Same contract as Parse.
func ParseBytes(data []byte) []finding.Finding {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var findings []finding.Finding
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec record
		if err := jsonutil.Unmarshal([]byte(line), &rec); err != nil {
			continue // malformed line, skip silently
		}
		findings = append(findings, recordFinding(rec))
	}

	if len(findings) == 0 {
		return ParseMock()
	}
	finding.ApplyDefaultsAll(findings)
	return findings
}

func recordFinding(rec record) finding.Finding {
	templateID := rec.TemplateID
	if templateID == "" {
		templateID = "unknown"
	}
	title := rec.Info.Name
	if title == "" {
		title = templateID
	}

	host := rec.Host
	if host == "" {
		host = rec.Target
	}
	matchedAt := rec.MatchedAt
	if matchedAt == "" {
		matchedAt = host
	}

	severity := finding.Medium
	if sev, ok := severityMap[strings.ToLower(strings.TrimSpace(rec.Info.Severity))]; ok {
		severity = sev
	}

	impact := rec.Info.Impact
	if impact == "" {
		impact = fmt.Sprintf("Vulnerability detected by %s", title)
	}

	techStack, category := categorize(rec.Info.Tags)

	f := finding.Finding{
		Title:       title,
		Description: rec.Info.Description,
		Severity:    severity,
		Host:        host,
		MatchedAt:   matchedAt,
		TemplateID:  templateID,
		Impact:      impact,
		Evidence:    buildEvidence(templateID, rec.MatcherName, rec.ExtractedResults),
		TechStack:   techStack,
		Category:    category,
		Source:      Source,
		Tags:        rec.Info.Tags,
		Matcher:     rec.MatcherName,
		Extracted:   rec.ExtractedResults,
		References:  rec.Info.Reference,
	}

	if cls := rec.Info.Classification; cls != nil {
		f.CVE = strings.Join(cls.CVEID, ", ")
		f.CWE = strings.Join(cls.CWEID, ", ")
	}
	return f
}

// categorize derives tech stack and category from template tags using
// fixed membership rules.
func categorize(tags []string) (techStack, category string) {
	techStack, category = "Web Application", "vulnerability_scan"

	has := func(candidates ...string) bool {
		for _, tag := range tags {
			for _, c := range candidates {
				if strings.EqualFold(tag, c) {
					return true
				}
			}
		}
		return false
	}

	switch {
	case has("network", "tcp", "udp"):
		return "Network Service", "network_vulnerability"
	case has("cms", "wordpress", "joomla", "drupal"):
		return "CMS", category
	case has("ssl", "tls", "certificate"):
		return "SSL/TLS", "ssl_vulnerability"
	}
	return techStack, category
}

func buildEvidence(templateID, matcherName string, extracted []string) string {
	parts := []string{fmt.Sprintf("Nuclei template '%s' matched", templateID)}
	if matcherName != "" {
		parts = append(parts, "Matcher: "+matcherName)
	}
	if len(extracted) > 0 {
		sample := extracted
		if len(sample) > 3 {
			sample = sample[:3]
		}
		parts = append(parts, "Extracted: "+strings.Join(sample, ", "))
	}
	return strings.Join(parts, ". ")
}

// ParseMock returns deterministic sample findings for use when no real
// scan output is supplied.
func ParseMock() []finding.Finding {
	findings := []finding.Finding{
		{
			Title:       "Apache HTTP Server Test Page",
			Description: "Apache HTTP Server default test page detected",
			Severity:    finding.Low,
			Host:        "https://example.com",
			MatchedAt:   "https://example.com/",
			TemplateID:  "apache-detect",
			Impact:      "Default Apache test page may reveal server information",
			Evidence:    "Nuclei template 'apache-detect' matched. Matcher: word",
			TechStack:   "Web Server",
			Category:    "information_disclosure",
			Source:      Source,
			Tags:        []string{"apache", "detect", "tech"},
		},
		{
			Title:       "SSL Certificate Information",
			Description: "SSL certificate information disclosure",
			Severity:    finding.Low,
			Host:        "https://example.com:443",
			MatchedAt:   "https://example.com:443",
			TemplateID:  "ssl-cert-info",
			Impact:      "SSL certificate details may provide reconnaissance information",
			Evidence:    "Nuclei template 'ssl-cert-info' matched. Extracted: example.com, Organization",
			TechStack:   "SSL/TLS",
			Category:    "ssl_vulnerability",
			Source:      Source,
			Tags:        []string{"ssl", "cert", "info"},
			Extracted:   []string{"example.com", "Organization Name", "2024-12-31"},
		},
		{
			Title:       "WordPress Version Detection",
			Description: "WordPress version information detected",
			Severity:    finding.Medium,
			Host:        "https://blog.example.com",
			MatchedAt:   "https://blog.example.com/wp-includes/",
			TemplateID:  "wordpress-version",
			Impact:      "WordPress version disclosure may aid in targeted attacks",
			Evidence:    "Nuclei template 'wordpress-version' matched. Extracted: 5.8.1",
			TechStack:   "CMS",
			Category:    "information_disclosure",
			Source:      Source,
			Tags:        []string{"wordpress", "version", "cms"},
			Extracted:   []string{"5.8.1"},
		},
		{
			Title:       "Directory Listing Enabled",
			Description: "Directory listing is enabled on the web server",
			Severity:    finding.Medium,
			Host:        "https://example.com",
			MatchedAt:   "https://example.com/uploads/",
			TemplateID:  "dir-listing",
			Impact:      "Directory listing may expose sensitive files and folder structure",
			Evidence:    "Nuclei template 'dir-listing' matched. Matcher: status,word",
			TechStack:   "Web Server",
			Category:    "information_disclosure",
			Source:      Source,
			Tags:        []string{"listing", "exposure", "files"},
		},
	}
	finding.ApplyDefaultsAll(findings)
	return findings
}
