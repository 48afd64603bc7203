package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/export"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/pipeline"
)

func TestCollectInputs(t *testing.T) {
	inputs := collectInputs("scan.xml", "", "", false)
	require.Len(t, inputs, 1)
	assert.Equal(t, pipeline.SourceNmap, inputs[0].Source)
	assert.Equal(t, "scan.xml", inputs[0].Path)

	inputs = collectInputs("", "", "", true)
	require.Len(t, inputs, 3)
	for _, in := range inputs {
		assert.Empty(t, in.Path)
	}

	assert.Empty(t, collectInputs("", "", "", false))
}

func TestParseFormats(t *testing.T) {
	formats, err := parseFormats("json, csv ,xlsx")
	require.NoError(t, err)
	assert.Equal(t, []export.Format{export.FormatJSON, export.FormatCSV, export.FormatExcel}, formats)

	_, err = parseFormats("json,bogus")
	require.Error(t, err)

	_, err = parseFormats(" , ")
	require.Error(t, err)
}

func TestFindingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "findings.json")
	findings := []finding.Finding{
		{Title: "SQLi", Severity: finding.High, Description: "d", Source: "burp"},
	}
	finding.ApplyDefaultsAll(findings)

	require.NoError(t, saveFindings(findings, path))

	loaded, err := loadFindings(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "SQLi", loaded[0].Title)
	assert.Equal(t, finding.High, loaded[0].Severity)
}

func TestLoadFindingsFromExportedReport(t *testing.T) {
	dir := t.TempDir()
	findings := []finding.Finding{{Title: "XSS", Severity: finding.Medium, Source: "nuclei"}}
	finding.ApplyDefaultsAll(findings)

	path := filepath.Join(dir, "report.json")
	require.NoError(t, export.Export(findings, path, export.FormatJSON, export.DefaultMetadata()))

	loaded, err := loadFindings(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "XSS", loaded[0].Title)
}

func TestLoadFindingsRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"metadata": {}}`), 0o644))

	_, err := loadFindings(path)
	require.Error(t, err)
}
