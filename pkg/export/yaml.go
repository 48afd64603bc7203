package export

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

type yamlReport struct {
	Metadata    Metadata          `json:"metadata"`
	Summary     stats.Summary     `json:"summary"`
	Findings    []finding.Finding `json:"findings"`
	Statistics  stats.Stats       `json:"statistics"`
	GeneratedAt string            `json:"generated_at"`
}

// WriteYAML emits the report document as YAML. The report is routed
// through its JSON form first so every key keeps the canonical
// snake_case name instead of yaml.v3's lowercased field names.
func WriteYAML(w io.Writer, findings []finding.Finding, meta Metadata) error {
	report := yamlReport{
		Metadata:    meta,
		Summary:     stats.SummaryOf(findings),
		Findings:    findings,
		Statistics:  stats.Compute(findings),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	data, err := jsonutil.Marshal(report)
	if err != nil {
		return err
	}
	var doc any
	if err := jsonutil.Unmarshal(data, &doc); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
