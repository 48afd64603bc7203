package export

import (
	"io"
	"strings"
	"time"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

// SARIF 2.1.0 structures, the subset GitHub and GitLab consume.

type sarifDocument struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Results     []sarifResult     `json:"results"`
	Invocations []sarifInvocation `json:"invocations"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name         string      `json:"name"`
	Version      string      `json:"version"`
	Organization string      `json:"organization,omitempty"`
	Rules        []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string             `json:"id"`
	Name             string             `json:"name,omitempty"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	FullDescription  sarifMessage       `json:"fullDescription"`
	DefaultConfig    sarifConfiguration `json:"defaultConfiguration"`
	HelpURI          string             `json:"helpUri,omitempty"`
}

type sarifConfiguration struct {
	Level string `json:"level"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifInvocation struct {
	ExecutionSuccessful bool   `json:"executionSuccessful"`
	EndTimeUTC          string `json:"endTimeUtc"`
}

// sarifRuleID derives a stable rule ID from the finding's category.
func sarifRuleID(category string) string {
	if category == "" {
		category = "general"
	}
	return "rule-" + strings.ReplaceAll(strings.ToLower(category), " ", "-")
}

// WriteSARIF emits a SARIF 2.1.0 document with one rule per category
// and one result per finding.
func WriteSARIF(w io.Writer, findings []finding.Finding, meta Metadata) error {
	var rules []sarifRule
	seen := make(map[string]bool)
	results := make([]sarifResult, 0, len(findings))

	for i := range findings {
		f := &findings[i]
		ruleID := sarifRuleID(f.Category)
		level := f.Severity.ToSARIF()

		if !seen[ruleID] {
			seen[ruleID] = true
			name := f.Category
			if name == "" {
				name = "General Security Rule"
			}
			rules = append(rules, sarifRule{
				ID:               ruleID,
				Name:             name,
				ShortDescription: sarifMessage{Text: f.Title},
				FullDescription:  sarifMessage{Text: f.Description},
				DefaultConfig:    sarifConfiguration{Level: level},
				HelpURI:          defaults.ToolURI,
			})
		}

		uri := f.Host
		if uri == "" {
			uri = "unknown"
		}
		results = append(results, sarifResult{
			RuleID:  ruleID,
			Level:   level,
			Message: sarifMessage{Text: f.Title},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: uri},
				},
			}},
		})
	}
	if rules == nil {
		rules = []sarifRule{}
	}

	doc := sarifDocument{
		Version: "2.1.0",
		Schema:  defaults.SARIFSchemaURI,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:         defaults.ToolNameDisplay,
				Version:      defaults.Version,
				Organization: meta.Organization,
				Rules:        rules,
			}},
			Results: results,
			Invocations: []sarifInvocation{{
				ExecutionSuccessful: true,
				EndTimeUTC:          time.Now().UTC().Format(time.RFC3339),
			}},
		}},
	}

	enc := jsonutil.NewStreamEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
