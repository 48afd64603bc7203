package export

import (
	"encoding/xml"
	"io"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

type xmlReport struct {
	XMLName  xml.Name     `xml:"security_report"`
	Metadata xmlMetadata  `xml:"metadata"`
	Summary  xmlSummary   `xml:"summary"`
	Findings []xmlFinding `xml:"findings>finding"`
}

type xmlSummary struct {
	TotalFindings    int `xml:"total_findings"`
	CriticalFindings int `xml:"critical_findings"`
	HighFindings     int `xml:"high_findings"`
	MediumFindings   int `xml:"medium_findings"`
	LowFindings      int `xml:"low_findings"`
	InfoFindings     int `xml:"info_findings"`
}

type xmlMetadata struct {
	Title          string `xml:"title"`
	Organization   string `xml:"organization"`
	AssessmentDate string `xml:"assessment_date"`
	GeneratedBy    string `xml:"generated_by"`
	Version        string `xml:"version"`
	AssessmentType string `xml:"assessment_type"`
	Scope          string `xml:"scope"`
	Methodology    string `xml:"methodology"`
}

// xmlFinding mirrors the finding's JSON field names as elements.
// List-valued fields nest under <item> children.
type xmlFinding struct {
	ID          string  `xml:"id,attr"`
	Title       string  `xml:"title"`
	Description string  `xml:"description"`
	Severity    string  `xml:"severity"`
	CVSSScore   float64 `xml:"cvss_score"`
	Category    string  `xml:"category"`
	Subcategory string  `xml:"subcategory,omitempty"`
	Host        string  `xml:"host,omitempty"`
	Port        string  `xml:"port,omitempty"`
	Service     string  `xml:"service,omitempty"`
	Protocol    string  `xml:"protocol,omitempty"`
	URL         string  `xml:"url,omitempty"`
	Evidence    string  `xml:"evidence,omitempty"`
	Impact      string  `xml:"impact,omitempty"`
	Remediation string  `xml:"remediation,omitempty"`
	AISummary   string  `xml:"ai_summary,omitempty"`
	CVE         string  `xml:"cve,omitempty"`
	CWE         string  `xml:"cwe,omitempty"`

	References []string `xml:"references>item,omitempty"`
	Tags       []string `xml:"tags>item,omitempty"`

	Confidence     string `xml:"confidence,omitempty"`
	Exploitability string `xml:"exploitability,omitempty"`
	BusinessImpact string `xml:"business_impact,omitempty"`
	Source         string `xml:"source"`
	DiscoveryDate  string `xml:"discovery_date,omitempty"`
	LastSeen       string `xml:"last_seen,omitempty"`
}

// WriteXML emits a <security_report> document with metadata, summary,
// and one <finding> element per finding, indented two spaces.
func WriteXML(w io.Writer, findings []finding.Finding, meta Metadata) error {
	report := xmlReport{
		Metadata: xmlMetadata{
			Title:          meta.Title,
			Organization:   meta.Organization,
			AssessmentDate: meta.AssessmentDate,
			GeneratedBy:    meta.GeneratedBy,
			Version:        meta.Version,
			AssessmentType: meta.AssessmentType,
			Scope:          meta.Scope,
			Methodology:    meta.Methodology,
		},
	}
	sum := stats.SummaryOf(findings)
	report.Summary = xmlSummary{
		TotalFindings:    sum.TotalFindings,
		CriticalFindings: sum.CriticalFindings,
		HighFindings:     sum.HighFindings,
		MediumFindings:   sum.MediumFindings,
		LowFindings:      sum.LowFindings,
		InfoFindings:     sum.InfoFindings,
	}
	for i := range findings {
		f := &findings[i]
		report.Findings = append(report.Findings, xmlFinding{
			ID:             f.ID,
			Title:          f.Title,
			Description:    f.Description,
			Severity:       string(f.Severity),
			CVSSScore:      f.CVSSScore,
			Category:       f.Category,
			Subcategory:    f.Subcategory,
			Host:           f.Host,
			Port:           f.Port,
			Service:        f.Service,
			Protocol:       f.Protocol,
			URL:            f.URL,
			Evidence:       f.Evidence,
			Impact:         f.Impact,
			Remediation:    f.Remediation,
			AISummary:      f.AISummary,
			CVE:            f.CVE,
			CWE:            f.CWE,
			References:     f.References,
			Tags:           f.Tags,
			Confidence:     f.Confidence,
			Exploitability: f.Exploitability,
			BusinessImpact: f.BusinessImpact,
			Source:         f.Source,
			DiscoveryDate:  f.DiscoveryDate,
			LastSeen:       f.LastSeen,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
