package nuclei

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

const sampleJSONL = `{"template-id":"cve-2021-44228","info":{"name":"Apache Log4j RCE","description":"Log4Shell remote code execution","severity":"critical","tags":["rce","log4j","network"],"reference":["https://nvd.nist.gov/vuln/detail/CVE-2021-44228"],"classification":{"cve-id":"CVE-2021-44228","cwe-id":["CWE-502"]}},"host":"https://api.example.com","matched-at":"https://api.example.com/login","matcher-name":"dns-callback"}
{"template-id":"wordpress-version","info":{"name":"WordPress Version Detection","severity":"info","tags":"wordpress,cms"},"host":"https://blog.example.com","extracted-results":["6.4.2","6.4","stable","extra"]}
not valid json at all
{"template-id":"ssl-weak-cipher","info":{"name":"Weak SSL Cipher","severity":"unknown","tags":["ssl"]},"target":"example.com:443"}
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nuclei.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseJSONLines(t *testing.T) {
	t.Parallel()

	findings := Parse(writeFixture(t, sampleJSONL))
	require.Len(t, findings, 3, "malformed line is skipped, not fatal")

	log4j := findings[0]
	assert.Equal(t, "Apache Log4j RCE", log4j.Title)
	assert.Equal(t, finding.Critical, log4j.Severity)
	assert.Equal(t, "https://api.example.com", log4j.Host)
	assert.Equal(t, "https://api.example.com/login", log4j.MatchedAt)
	assert.Equal(t, "cve-2021-44228", log4j.TemplateID)
	assert.Equal(t, "CVE-2021-44228", log4j.CVE)
	assert.Equal(t, "CWE-502", log4j.CWE)
	assert.Equal(t, "Network Service", log4j.TechStack, "network tag wins")
	assert.Equal(t, "network_vulnerability", log4j.Category)
	assert.Contains(t, log4j.Evidence, "Nuclei template 'cve-2021-44228' matched")
	assert.Contains(t, log4j.Evidence, "Matcher: dns-callback")
	assert.Equal(t, []string{"https://nvd.nist.gov/vuln/detail/CVE-2021-44228"}, log4j.References)
	assert.Equal(t, Source, log4j.Source)

	wp := findings[1]
	assert.Equal(t, finding.Low, wp.Severity, "info maps to Low")
	assert.Equal(t, "CMS", wp.TechStack, "comma-separated tag string is split")
	assert.Contains(t, wp.Evidence, "Extracted: 6.4.2, 6.4, stable", "at most three extracted values")
	assert.NotContains(t, wp.Evidence, "extra")

	ssl := findings[2]
	assert.Equal(t, finding.Medium, ssl.Severity, "unknown maps to Medium")
	assert.Equal(t, "example.com:443", ssl.Host, "host falls back to target")
	assert.Equal(t, "SSL/TLS", ssl.TechStack)
	assert.Equal(t, "ssl_vulnerability", ssl.Category)
}

func TestParseEmptyFileFallsBackToMock(t *testing.T) {
	t.Parallel()

	findings := Parse(writeFixture(t, "\n\n"))
	require.NotEmpty(t, findings)
	for _, f := range findings {
		assert.Equal(t, Source, f.Source)
		assert.NotEmpty(t, f.Title)
		assert.True(t, f.Severity.IsValid())
	}
}

func TestParseAllMalformedFallsBackToMock(t *testing.T) {
	t.Parallel()

	findings := Parse(writeFixture(t, "garbage\nmore garbage\n"))
	require.NotEmpty(t, findings)
	assert.Equal(t, Source, findings[0].Source)
}

func TestParseUnreadableFile(t *testing.T) {
	t.Parallel()

	findings := Parse(filepath.Join(t.TempDir(), "missing.jsonl"))
	require.Len(t, findings, 1)
	assert.Equal(t, "Nuclei Parsing Error", findings[0].Title)
	assert.Equal(t, "parsing_error", findings[0].Category)
}

func TestParseMissingTemplateNameUsesTemplateID(t *testing.T) {
	t.Parallel()

	findings := Parse(writeFixture(t, `{"template-id":"tech-detect","info":{"severity":"low"},"host":"https://example.com"}`+"\n"))
	require.Len(t, findings, 1)
	assert.Equal(t, "tech-detect", findings[0].Title)
}

func TestCategorizeDefaults(t *testing.T) {
	t.Parallel()

	tech, category := categorize([]string{"misc", "fuzz"})
	assert.Equal(t, "Web Application", tech)
	assert.Equal(t, "vulnerability_scan", category)
}
