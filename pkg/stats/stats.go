// Package stats computes severity, category, host, CVSS, risk-matrix, and
// compliance distributions from a finding list. Everything here is a pure
// function of the list; exporters and the report generator share one
// computation instead of re-deriving counts per format.
package stats

import (
	"strings"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

// CVSS histogram bucket labels, half-open ranges [0,4) [4,7) [7,9) and the
// closed top bucket [9,10].
const (
	BucketLowCVSS      = "0-4"
	BucketMediumCVSS   = "4-7"
	BucketHighCVSS     = "7-9"
	BucketCriticalCVSS = "9-10"
)

// Risk matrix axis labels.
const (
	LikelihoodHigh   = "high_likelihood"
	LikelihoodMedium = "medium_likelihood"
	LikelihoodLow    = "low_likelihood"

	ImpactHigh   = "high_impact"
	ImpactMedium = "medium_impact"
	ImpactLow    = "low_impact"
)

// Stats is the aggregate view of a finding list.
type Stats struct {
	Total int `json:"total"`

	// BySeverity always carries all five canonical keys, so consumers
	// never key-miss on a severity that happens to be absent.
	BySeverity map[string]int `json:"by_severity"`

	ByCategory       map[string]int `json:"by_category"`
	ByHost           map[string]int `json:"by_host"`
	ByService        map[string]int `json:"by_service"`
	BySource         map[string]int `json:"by_source"`
	ByConfidence     map[string]int `json:"by_confidence"`
	ByExploitability map[string]int `json:"by_exploitability"`

	CVSSDistribution map[string]int `json:"cvss_distribution"`

	// RiskMatrix is the 3x3 likelihood x impact bucketing.
	RiskMatrix map[string]map[string]int `json:"risk_matrix"`

	// Compliance tallies findings per framework over the fixed set in
	// defaults.ComplianceFrameworks; one increment per finding per
	// framework listed in its compliance_impact.
	Compliance map[string]int `json:"compliance_summary"`
}

// Summary is the executive severity roll-up embedded in JSON/YAML exports.
type Summary struct {
	TotalFindings    int `json:"total_findings"`
	CriticalFindings int `json:"critical_findings"`
	HighFindings     int `json:"high_findings"`
	MediumFindings   int `json:"medium_findings"`
	LowFindings      int `json:"low_findings"`
	InfoFindings     int `json:"info_findings"`
}

// Compute aggregates the finding list. It never errors and never mutates
// the input.
func Compute(findings []finding.Finding) Stats {
	s := Stats{
		Total:            len(findings),
		BySeverity:       make(map[string]int, 5),
		ByCategory:       make(map[string]int),
		ByHost:           make(map[string]int),
		ByService:        make(map[string]int),
		BySource:         make(map[string]int),
		ByConfidence:     make(map[string]int),
		ByExploitability: make(map[string]int),
		CVSSDistribution: map[string]int{
			BucketLowCVSS:      0,
			BucketMediumCVSS:   0,
			BucketHighCVSS:     0,
			BucketCriticalCVSS: 0,
		},
		RiskMatrix: map[string]map[string]int{
			LikelihoodHigh:   {ImpactHigh: 0, ImpactMedium: 0, ImpactLow: 0},
			LikelihoodMedium: {ImpactHigh: 0, ImpactMedium: 0, ImpactLow: 0},
			LikelihoodLow:    {ImpactHigh: 0, ImpactMedium: 0, ImpactLow: 0},
		},
		Compliance: make(map[string]int, len(defaults.ComplianceFrameworks)),
	}

	for _, sev := range finding.Ordered() {
		s.BySeverity[string(sev)] = 0
	}
	for _, framework := range defaults.ComplianceFrameworks {
		s.Compliance[framework] = 0
	}

	for i := range findings {
		f := &findings[i]

		severity := strings.ToLower(string(f.Severity))
		s.BySeverity[severity]++

		s.ByCategory[orUnknown(f.Category)]++
		s.ByHost[orUnknown(f.Host)]++
		s.ByService[orUnknown(f.Service)]++
		s.BySource[orUnknown(f.Source)]++
		s.ByConfidence[orUnknown(f.Confidence)]++
		s.ByExploitability[orUnknown(f.Exploitability)]++

		s.CVSSDistribution[cvssBucket(f.CVSSScore)]++
		s.RiskMatrix[likelihood(f.Exploitability)][impact(f.BusinessImpact)]++

		for _, framework := range f.ComplianceImpact {
			if _, ok := s.Compliance[framework]; ok {
				s.Compliance[framework]++
			}
		}
	}

	return s
}

// SummaryOf rolls the finding list up into the severity summary.
// Severity strings are case-normalized before counting.
func SummaryOf(findings []finding.Finding) Summary {
	sum := Summary{TotalFindings: len(findings)}
	for i := range findings {
		switch finding.Severity(strings.ToLower(string(findings[i].Severity))) {
		case finding.Critical:
			sum.CriticalFindings++
		case finding.High:
			sum.HighFindings++
		case finding.Medium:
			sum.MediumFindings++
		case finding.Low:
			sum.LowFindings++
		case finding.Info:
			sum.InfoFindings++
		}
	}
	return sum
}

func cvssBucket(score float64) string {
	switch {
	case score < 4:
		return BucketLowCVSS
	case score < 7:
		return BucketMediumCVSS
	case score < 9:
		return BucketHighCVSS
	default:
		return BucketCriticalCVSS
	}
}

// likelihood derives the risk-matrix row from the exploitability qualifier.
func likelihood(exploitability string) string {
	switch strings.ToLower(exploitability) {
	case "easy", "high":
		return LikelihoodHigh
	case "difficult", "low":
		return LikelihoodLow
	default:
		return LikelihoodMedium
	}
}

// impact derives the risk-matrix column from the business-impact qualifier.
func impact(businessImpact string) string {
	switch strings.ToLower(businessImpact) {
	case "high", "critical":
		return ImpactHigh
	case "low", "minimal":
		return ImpactLow
	default:
		return ImpactMedium
	}
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
