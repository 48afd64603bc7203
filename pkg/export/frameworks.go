package export

import (
	"io"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

// MITRE ATT&CK export.

type mitreReport struct {
	Metadata        Metadata       `json:"metadata"`
	AttackPatterns  []string       `json:"attack_patterns"`
	Techniques      []string       `json:"techniques"`
	Tactics         []string       `json:"tactics"`
	FindingsMapping []mitreMapping `json:"findings_mapping"`
}

type mitreMapping struct {
	FindingID        string   `json:"finding_id"`
	FindingTitle     string   `json:"finding_title"`
	MappedTechniques []string `json:"mapped_techniques"`
	Confidence       string   `json:"confidence"`
}

// WriteMITRE maps each finding to ATT&CK technique IDs and collects
// the unique techniques across the report.
func WriteMITRE(w io.Writer, findings []finding.Finding, meta Metadata) error {
	report := mitreReport{
		Metadata:        meta,
		AttackPatterns:  []string{},
		Techniques:      []string{},
		Tactics:         []string{},
		FindingsMapping: []mitreMapping{},
	}

	seen := make(map[string]bool)
	for i := range findings {
		f := &findings[i]
		techniques := defaults.MapMITRETechniques(f.Category, f.Title)
		confidence := f.Confidence
		if confidence == "" {
			confidence = "medium"
		}
		report.FindingsMapping = append(report.FindingsMapping, mitreMapping{
			FindingID:        f.ID,
			FindingTitle:     f.Title,
			MappedTechniques: techniques,
			Confidence:       confidence,
		})
		for _, t := range techniques {
			if !seen[t] {
				seen[t] = true
				report.Techniques = append(report.Techniques, t)
			}
		}
	}

	enc := jsonutil.NewStreamEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// NIST Cybersecurity Framework export.

type nistReport struct {
	Metadata         Metadata      `json:"metadata"`
	FrameworkVersion string        `json:"framework_version"`
	Functions        nistFunctions `json:"functions"`
	FindingsMapping  []nistMapping `json:"findings_mapping"`
}

type nistFunctions struct {
	Identify nistFunction `json:"identify"`
	Protect  nistFunction `json:"protect"`
	Detect   nistFunction `json:"detect"`
	Respond  nistFunction `json:"respond"`
	Recover  nistFunction `json:"recover"`
}

type nistFunction struct {
	Subcategories []string `json:"subcategories"`
}

type nistMapping struct {
	FindingID         string   `json:"finding_id"`
	FindingTitle      string   `json:"finding_title"`
	Severity          string   `json:"severity"`
	NISTSubcategories []string `json:"nist_subcategories"`
	Recommendations   string   `json:"recommendations"`
}

// WriteNIST maps each finding to CSF subcategories, with response
// subcategories appended for critical and high severities.
func WriteNIST(w io.Writer, findings []finding.Finding, meta Metadata) error {
	empty := nistFunction{Subcategories: []string{}}
	report := nistReport{
		Metadata:         meta,
		FrameworkVersion: defaults.NISTFrameworkVersion,
		Functions: nistFunctions{
			Identify: empty,
			Protect:  empty,
			Detect:   empty,
			Respond:  empty,
			Recover:  empty,
		},
		FindingsMapping: []nistMapping{},
	}

	for i := range findings {
		f := &findings[i]
		report.FindingsMapping = append(report.FindingsMapping, nistMapping{
			FindingID:         f.ID,
			FindingTitle:      f.Title,
			Severity:          string(f.Severity),
			NISTSubcategories: defaults.MapNISTSubcategories(f.Category, string(f.Severity)),
			Recommendations:   f.Remediation,
		})
	}

	enc := jsonutil.NewStreamEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
