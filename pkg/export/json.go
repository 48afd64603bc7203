package export

import (
	"io"
	"time"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

type jsonReport struct {
	Metadata      Metadata          `json:"metadata"`
	Summary       stats.Summary     `json:"summary"`
	Findings      []finding.Finding `json:"findings"`
	Statistics    stats.Stats       `json:"statistics"`
	GeneratedAt   string            `json:"generated_at"`
	SchemaVersion string            `json:"schema_version"`
}

// WriteJSON emits the canonical report document: metadata, summary,
// the findings themselves, full statistics, and a schema version.
func WriteJSON(w io.Writer, findings []finding.Finding, meta Metadata) error {
	report := jsonReport{
		Metadata:      meta,
		Summary:       stats.SummaryOf(findings),
		Findings:      findings,
		Statistics:    stats.Compute(findings),
		GeneratedAt:   time.Now().Format(time.RFC3339),
		SchemaVersion: defaults.SchemaVersion,
	}
	enc := jsonutil.NewStreamEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
