package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

func sampleFindings() []finding.Finding {
	return []finding.Finding{
		{
			Severity: finding.Critical, CVSSScore: 9.5, Category: "web_vulnerability",
			Host: "a.example.com", Service: "http", Source: "burp",
			Confidence: "High", Exploitability: "easy", BusinessImpact: "critical",
			ComplianceImpact: []string{"OWASP", "PCI-DSS"},
		},
		{
			Severity: finding.High, CVSSScore: 7.5, Category: "web_vulnerability",
			Host: "a.example.com", Service: "http", Source: "burp",
			Confidence: "Medium", Exploitability: "difficult", BusinessImpact: "low",
			ComplianceImpact: []string{"OWASP", "NotAFramework"},
		},
		{
			Severity: finding.Medium, CVSSScore: 5.0, Category: "network_scan",
			Host: "b.example.com", Service: "ssh", Source: "nmap",
		},
		{
			Severity: finding.Low, CVSSScore: 2.5, Category: "information_disclosure",
			Host: "b.example.com", Service: "http", Source: "nuclei",
		},
		{
			Severity: finding.Info, CVSSScore: 0.0, Category: "network_scan",
			Host: "c.example.com", Service: "ssh", Source: "nmap",
		},
	}
}

func TestComputeTotalsAndSeverityConsistency(t *testing.T) {
	t.Parallel()

	findings := sampleFindings()
	s := Compute(findings)

	assert.Equal(t, len(findings), s.Total)

	sum := 0
	for _, count := range s.BySeverity {
		sum += count
	}
	assert.Equal(t, s.Total, sum, "severity counts must sum to total")

	// All five canonical keys present even with zero counts.
	s2 := Compute(nil)
	require.Len(t, s2.BySeverity, 5)
	for _, sev := range finding.Ordered() {
		_, ok := s2.BySeverity[string(sev)]
		assert.True(t, ok, "missing severity key %s", sev)
	}
}

func TestComputeGroupings(t *testing.T) {
	t.Parallel()

	s := Compute(sampleFindings())

	assert.Equal(t, 2, s.ByCategory["web_vulnerability"])
	assert.Equal(t, 2, s.ByCategory["network_scan"])
	assert.Equal(t, 2, s.ByHost["a.example.com"])
	assert.Equal(t, 2, s.BySource["nmap"])
	assert.Equal(t, 3, s.ByService["http"])
	assert.Equal(t, 1, s.ByConfidence["High"])
	assert.Equal(t, 3, s.ByConfidence["unknown"])
}

func TestComputeCVSSBuckets(t *testing.T) {
	t.Parallel()

	s := Compute(sampleFindings())

	assert.Equal(t, 2, s.CVSSDistribution[BucketLowCVSS])      // 2.5, 0.0
	assert.Equal(t, 1, s.CVSSDistribution[BucketMediumCVSS])   // 5.0
	assert.Equal(t, 1, s.CVSSDistribution[BucketHighCVSS])     // 7.5
	assert.Equal(t, 1, s.CVSSDistribution[BucketCriticalCVSS]) // 9.5
}

func TestCVSSBucketBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{0, BucketLowCVSS},
		{3.9, BucketLowCVSS},
		{4.0, BucketMediumCVSS},
		{6.9, BucketMediumCVSS},
		{7.0, BucketHighCVSS},
		{8.9, BucketHighCVSS},
		{9.0, BucketCriticalCVSS},
		{10.0, BucketCriticalCVSS},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cvssBucket(tt.score), "score %v", tt.score)
	}
}

func TestComputeRiskMatrix(t *testing.T) {
	t.Parallel()

	s := Compute(sampleFindings())

	assert.Equal(t, 1, s.RiskMatrix[LikelihoodHigh][ImpactHigh], "easy/critical")
	assert.Equal(t, 1, s.RiskMatrix[LikelihoodLow][ImpactLow], "difficult/low")
	assert.Equal(t, 3, s.RiskMatrix[LikelihoodMedium][ImpactMedium], "unqualified findings land in the center")

	total := 0
	for _, row := range s.RiskMatrix {
		for _, count := range row {
			total += count
		}
	}
	assert.Equal(t, s.Total, total, "every finding lands in exactly one cell")
}

func TestComputeComplianceTally(t *testing.T) {
	t.Parallel()

	s := Compute(sampleFindings())

	assert.Equal(t, 2, s.Compliance["OWASP"])
	assert.Equal(t, 1, s.Compliance["PCI-DSS"])
	assert.Equal(t, 0, s.Compliance["HIPAA"])
	_, ok := s.Compliance["NotAFramework"]
	assert.False(t, ok, "frameworks outside the fixed set are ignored")
}

func TestSummaryOf(t *testing.T) {
	t.Parallel()

	findings := sampleFindings()
	// Mixed-case severity must still be counted.
	findings = append(findings, finding.Finding{Severity: "CRITICAL"})

	sum := SummaryOf(findings)
	assert.Equal(t, 6, sum.TotalFindings)
	assert.Equal(t, 2, sum.CriticalFindings)
	assert.Equal(t, 1, sum.HighFindings)
	assert.Equal(t, 1, sum.MediumFindings)
	assert.Equal(t, 1, sum.LowFindings)
	assert.Equal(t, 1, sum.InfoFindings)
}
