package burp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const issuesJSON = `{
  "issues": [
    {
      "issueName": "SQL injection",
      "issueDetail": "SQL injection in the username parameter",
      "severity": "High",
      "confidence": "Certain",
      "url": "https://example.com/login.php",
      "host": "example.com",
      "issueBackground": "Error-based injection confirmed",
      "remediationDetail": "Use parameterized queries"
    },
    {
      "name": "Verbose server banner",
      "description": "Server discloses version",
      "severity": "Information",
      "url": "https://example.com/"
    },
    42
  ]
}`

func TestParseJSONObjectWithIssuesKey(t *testing.T) {
	t.Parallel()

	findings := Parse(writeFixture(t, "export.json", issuesJSON))
	require.Len(t, findings, 2, "non-object entries are skipped")

	sqli := findings[0]
	assert.Equal(t, "SQL injection", sqli.Title)
	assert.Equal(t, finding.High, sqli.Severity)
	assert.Equal(t, "example.com", sqli.Host)
	assert.Equal(t, "https://example.com/login.php", sqli.URL)
	assert.Equal(t, "Error-based injection confirmed", sqli.Evidence)
	assert.Equal(t, "Use parameterized queries", sqli.Remediation)
	assert.Equal(t, "Certain", sqli.Confidence)
	assert.Equal(t, Source, sqli.Source)

	banner := findings[1]
	assert.Equal(t, "Verbose server banner", banner.Title)
	assert.Equal(t, finding.Low, banner.Severity, "Information collapses to Low")
	assert.Equal(t, "https://example.com/", banner.Host, "host falls back to url")
}

func TestParseJSONTopLevelArray(t *testing.T) {
	t.Parallel()

	content := `[{"issueName":"CSRF","severity":"Medium","url":"https://example.com/form"}]`
	findings := Parse(writeFixture(t, "list.json", content))
	require.Len(t, findings, 1)
	assert.Equal(t, "CSRF", findings[0].Title)
	assert.Equal(t, finding.Medium, findings[0].Severity)
}

func TestParseXML(t *testing.T) {
	t.Parallel()

	content := `<?xml version="1.0"?>
<issues burpVersion="2024.1">
  <issue>
    <name>Cross-site scripting (reflected)</name>
    <host>example.com</host>
    <url>https://example.com/search</url>
    <severity>High</severity>
    <confidence>Firm</confidence>
    <issueDetail>The q parameter is echoed unencoded.</issueDetail>
    <issueBackground>Reflected XSS arises when...</issueBackground>
    <remediationDetail>Encode output.</remediationDetail>
  </issue>
  <issue>
    <name>Cookie without HttpOnly</name>
    <severity>Low</severity>
    <url>https://example.com/</url>
  </issue>
</issues>`

	findings := Parse(writeFixture(t, "export.xml", content))
	require.Len(t, findings, 2)

	xss := findings[0]
	assert.Equal(t, "Cross-site scripting (reflected)", xss.Title)
	assert.Equal(t, finding.High, xss.Severity)
	assert.Equal(t, "Firm", xss.Confidence)
	assert.Equal(t, "web_vulnerability", xss.Category)
}

func TestParseSniffsContentWithoutExtension(t *testing.T) {
	t.Parallel()

	jsonPath := writeFixture(t, "export.dat", `[{"issueName":"IDOR","severity":"Medium"}]`)
	findings := Parse(jsonPath)
	require.Len(t, findings, 1)
	assert.Equal(t, "IDOR", findings[0].Title)

	xmlPath := writeFixture(t, "export2.dat", `<issues><issue><name>Open redirect</name><severity>Low</severity></issue></issues>`)
	findings = Parse(xmlPath)
	require.Len(t, findings, 1)
	assert.Equal(t, "Open redirect", findings[0].Title)
}

func TestParseUnknownSeverityDefaultsMedium(t *testing.T) {
	t.Parallel()

	findings := Parse(writeFixture(t, "sev.json", `[{"issueName":"Odd","severity":"Tentative"}]`))
	require.Len(t, findings, 1)
	assert.Equal(t, finding.Medium, findings[0].Severity)
}

func TestParseTotalFailureYieldsErrorFinding(t *testing.T) {
	t.Parallel()

	findings := Parse(writeFixture(t, "broken.json", `{"issues": [`))
	require.Len(t, findings, 1)
	assert.Equal(t, "Burp Suite Parsing Error", findings[0].Title)
	assert.Equal(t, "parsing_error", findings[0].Category)
}

func TestParseEmptyExportFallsBackToMock(t *testing.T) {
	t.Parallel()

	findings := Parse(writeFixture(t, "empty.json", `{"issues": []}`))
	require.NotEmpty(t, findings)
	for _, f := range findings {
		assert.Equal(t, Source, f.Source)
		assert.True(t, f.Severity.IsValid())
	}
}

func TestParseUnreadableFile(t *testing.T) {
	t.Parallel()

	findings := Parse(filepath.Join(t.TempDir(), "missing.json"))
	require.Len(t, findings, 1)
	assert.Equal(t, "Burp Suite Parsing Error", findings[0].Title)
}
