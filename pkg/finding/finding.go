package finding

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Finding is one normalized security observation produced by a parser.
// Parsers create it, the enrichment stage may overwrite AISummary,
// Severity, and Remediation in place, and it is read-only thereafter.
type Finding struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	CVSSScore   float64  `json:"cvss_score"`

	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	TechStack   string `json:"tech_stack,omitempty"`

	Host     string `json:"host"`
	Hostname string `json:"hostname,omitempty"`
	Port     string `json:"port"`
	Service  string `json:"service"`
	Protocol string `json:"protocol,omitempty"`
	URL      string `json:"url,omitempty"`

	Evidence    string `json:"evidence,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Remediation string `json:"remediation,omitempty"`
	AISummary   string `json:"ai_summary,omitempty"`

	CVE         string `json:"cve,omitempty"`
	CWE         string `json:"cwe,omitempty"`
	TemplateID  string `json:"template_id,omitempty"`
	MatchedAt   string `json:"matched_at,omitempty"`
	VersionInfo string `json:"version_info,omitempty"`
	Matcher     string `json:"matcher,omitempty"`

	References       []string `json:"references,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Extracted        []string `json:"extracted,omitempty"`
	ComplianceImpact []string `json:"compliance_impact,omitempty"`

	Confidence     string `json:"confidence,omitempty"`
	Exploitability string `json:"exploitability,omitempty"`
	BusinessImpact string `json:"business_impact,omitempty"`

	Source        string `json:"source"`
	DiscoveryDate string `json:"discovery_date,omitempty"`
	LastSeen      string `json:"last_seen,omitempty"`
}

// Placeholder values applied by ApplyDefaults when a source omits a field.
const (
	DefaultTitle       = "Unknown Vulnerability"
	DefaultDescription = "No description available"
	DefaultCategory    = "Other"
	DefaultSubcategory = "General"
	DefaultHost        = "Unknown"
	DefaultPort        = "N/A"
	DefaultService     = "Unknown"
)

// ApplyDefaults fills required fields so every Finding satisfies the model
// invariants: non-empty id/title, a canonical severity, a CVSS score, and
// the documented placeholder values for target fields.
func (f *Finding) ApplyDefaults() {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Title == "" {
		f.Title = DefaultTitle
	}
	if f.Description == "" {
		f.Description = DefaultDescription
	}
	if sev, ok := Normalize(string(f.Severity)); ok {
		f.Severity = sev
	} else {
		f.Severity = Medium
	}
	if f.CVSSScore <= 0 || f.CVSSScore > 10 {
		f.CVSSScore = f.Severity.CVSS()
	}
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	if f.Subcategory == "" {
		f.Subcategory = DefaultSubcategory
	}
	if f.Host == "" {
		f.Host = DefaultHost
	}
	if f.Port == "" {
		f.Port = DefaultPort
	}
	if f.Service == "" {
		f.Service = DefaultService
	}
	now := time.Now().Format(time.RFC3339)
	if f.DiscoveryDate == "" {
		f.DiscoveryDate = now
	}
	if f.LastSeen == "" {
		f.LastSeen = now
	}
}

// ApplyDefaultsAll applies defaults to every finding in the list.
func ApplyDefaultsAll(findings []Finding) {
	for i := range findings {
		findings[i].ApplyDefaults()
	}
}

// SortBySeverity returns findings ordered from most to least severe.
// The sort is stable: findings of equal severity keep their original
// (parse) order, and sorting twice yields the same order. The input
// slice is not modified.
func SortBySeverity(findings []Finding) []Finding {
	sorted := make([]Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Score() > sorted[j].Severity.Score()
	})
	return sorted
}
