// Package report generates HTML and PDF assessment reports.
//
// The HTML report is self-contained (inline CSS, no external assets) so
// it can be mailed or archived as a single file. PDF generation renders
// the HTML through headless Chrome when available, falls back to a
// native PDF writer, and as a last resort emits the HTML alongside
// conversion instructions.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/enrich"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

// Theme selects the report layout emphasis.
type Theme string

const (
	ThemeExecutive  Theme = "executive"
	ThemeTechnical  Theme = "technical"
	ThemeCompliance Theme = "compliance"
)

// Config controls report content and presentation.
type Config struct {
	Title            string
	Company          string
	AssessmentPeriod string
	Scope            string
	Methodology      string
	Version          string
	Classification   string
	GeneratedBy      string
	Theme            Theme

	// ExecutiveSummary overrides the generated summary when set
	// (e.g. with AI-produced text).
	ExecutiveSummary string
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Title:            "Cybersecurity Assessment Report",
		Company:          "Organization",
		AssessmentPeriod: "Not specified",
		Scope:            "Automated Security Assessment",
		Methodology:      "Vulnerability Scanning and Analysis",
		Version:          "1.0",
		Classification:   "CONFIDENTIAL",
		GeneratedBy:      defaults.ToolNameDisplay + " v" + defaults.Version,
		Theme:            ThemeExecutive,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Company == "" {
		c.Company = def.Company
	}
	if c.AssessmentPeriod == "" {
		c.AssessmentPeriod = def.AssessmentPeriod
	}
	if c.Scope == "" {
		c.Scope = def.Scope
	}
	if c.Methodology == "" {
		c.Methodology = def.Methodology
	}
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.Classification == "" {
		c.Classification = def.Classification
	}
	if c.GeneratedBy == "" {
		c.GeneratedBy = def.GeneratedBy
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	return c
}

// Recommendation is a strategic remediation recommendation.
type Recommendation struct {
	Priority    string
	Category    string
	Description string
	Timeline    string
	Effort      string
	Impact      string
}

// NextStep is one entry of the report's action plan.
type NextStep struct {
	Step        int
	Action      string
	Description string
	Owner       string
	Deadline    string
}

// Data is everything the report template renders.
type Data struct {
	ReportID         string
	Config           Config
	GeneratedDate    string
	GeneratedTime    string
	Findings         []finding.Finding
	Statistics       stats.Stats
	Summary          stats.Summary
	ExecutiveSummary string
	Recommendations  []Recommendation
	NextSteps        []NextStep
	TotalFindings    int
}

// BuildData assembles the template data for a finding set.
func BuildData(findings []finding.Finding, cfg Config) Data {
	cfg = cfg.withDefaults()
	findings = finding.SortBySeverity(findings)
	st := stats.Compute(findings)

	summary := cfg.ExecutiveSummary
	if summary == "" {
		summary = enrich.FallbackExecutiveSummary(findings)
	}

	now := time.Now().UTC()
	return Data{
		ReportID:         uuid.NewString(),
		Config:           cfg,
		GeneratedDate:    now.Format("January 2, 2006"),
		GeneratedTime:    now.Format("15:04:05 UTC"),
		Findings:         findings,
		Statistics:       st,
		Summary:          stats.SummaryOf(findings),
		ExecutiveSummary: summary,
		Recommendations:  Recommendations(findings),
		NextSteps:        NextSteps(st),
		TotalFindings:    len(findings),
	}
}

// Recommendations derives strategic recommendations from the severity
// mix, always ending with the standing process recommendations.
func Recommendations(findings []finding.Finding) []Recommendation {
	sum := stats.SummaryOf(findings)
	var recs []Recommendation

	if sum.CriticalFindings > 0 {
		recs = append(recs, Recommendation{
			Priority:    "Immediate",
			Category:    "Critical Vulnerabilities",
			Description: fmt.Sprintf("Address %d critical vulnerabilities immediately", sum.CriticalFindings),
			Timeline:    "24-48 hours",
			Effort:      "High",
			Impact:      "High",
		})
	}
	if sum.HighFindings > 0 {
		recs = append(recs, Recommendation{
			Priority:    "High",
			Category:    "High-Risk Vulnerabilities",
			Description: fmt.Sprintf("Remediate %d high-severity vulnerabilities", sum.HighFindings),
			Timeline:    "1-2 weeks",
			Effort:      "Medium",
			Impact:      "High",
		})
	}

	recs = append(recs,
		Recommendation{
			Priority:    "Medium",
			Category:    "Security Controls",
			Description: "Implement comprehensive security monitoring and alerting",
			Timeline:    "2-4 weeks",
			Effort:      "Medium",
			Impact:      "Medium",
		},
		Recommendation{
			Priority:    "Medium",
			Category:    "Process Improvement",
			Description: "Establish regular security assessments and vulnerability management",
			Timeline:    "1-3 months",
			Effort:      "Medium",
			Impact:      "Medium",
		},
		Recommendation{
			Priority:    "Low",
			Category:    "Training & Awareness",
			Description: "Conduct security awareness training for all personnel",
			Timeline:    "3-6 months",
			Effort:      "Low",
			Impact:      "Medium",
		},
	)
	return recs
}

// NextSteps builds the action plan. Critical findings prepend an
// emergency-response step and shift the rest down.
func NextSteps(st stats.Stats) []NextStep {
	var steps []NextStep
	if st.BySeverity[string(finding.Critical)] > 0 {
		steps = append(steps, NextStep{
			Step:        1,
			Action:      "Emergency Response",
			Description: "Initiate incident response procedures for critical vulnerabilities",
			Owner:       "Security Team",
			Deadline:    "24 hours",
		})
	}

	base := []NextStep{
		{Action: "Vulnerability Prioritization", Description: "Prioritize vulnerabilities based on risk matrix and business impact", Owner: "Security Team", Deadline: "48 hours"},
		{Action: "Remediation Planning", Description: "Create detailed remediation plans for each vulnerability", Owner: "IT/Security Teams", Deadline: "1 week"},
		{Action: "Implementation", Description: "Execute remediation plans according to priority", Owner: "IT Teams", Deadline: "4 weeks"},
		{Action: "Validation", Description: "Verify that vulnerabilities have been properly addressed", Owner: "Security Team", Deadline: "6 weeks"},
	}
	for _, s := range base {
		s.Step = len(steps) + 1
		steps = append(steps, s)
	}
	return steps
}
