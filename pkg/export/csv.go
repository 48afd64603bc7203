package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

// csvColumns is the fixed analyst-facing column set. Order is part of
// the format and consumed by downstream spreadsheets.
var csvColumns = []string{
	"id", "title", "description", "severity", "cvss_score",
	"category", "subcategory", "host", "port", "service",
	"impact", "evidence", "remediation", "source",
	"discovery_date", "last_seen", "confidence",
}

// WriteCSV emits one row per finding with the fixed column set.
// Missing values stay as empty strings.
func WriteCSV(w io.Writer, findings []finding.Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for i := range findings {
		f := &findings[i]
		row := []string{
			f.ID,
			f.Title,
			f.Description,
			string(f.Severity),
			strconv.FormatFloat(f.CVSSScore, 'g', -1, 64),
			f.Category,
			f.Subcategory,
			f.Host,
			f.Port,
			f.Service,
			f.Impact,
			f.Evidence,
			f.Remediation,
			f.Source,
			f.DiscoveryDate,
			f.LastSeen,
			f.Confidence,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
