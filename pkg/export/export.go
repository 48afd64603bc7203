// Package export writes findings to industry-standard report formats.
//
// Twelve formats are supported: JSON, CSV, XML, SARIF, STIX, MITRE
// ATT&CK, NIST CSF, Excel, Markdown, plain text, YAML, and JUnit XML.
// Each format has an io.Writer-based Write function; Export wraps one
// with atomic file output.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/iohelper"
)

// ErrUnsupportedFormat is returned for format names outside Supported.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Format identifies an export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatXML      Format = "xml"
	FormatSARIF    Format = "sarif"
	FormatSTIX     Format = "stix"
	FormatMITRE    Format = "mitre"
	FormatNIST     Format = "nist"
	FormatExcel    Format = "excel"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "txt"
	FormatYAML     Format = "yaml"
	FormatJUnit    Format = "junit"
)

// Supported lists every export format in presentation order.
func Supported() []Format {
	return []Format{
		FormatJSON, FormatCSV, FormatXML, FormatSARIF, FormatSTIX,
		FormatMITRE, FormatNIST, FormatExcel, FormatMarkdown,
		FormatText, FormatYAML, FormatJUnit,
	}
}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "xlsx":
		return FormatExcel, nil
	case "text":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	}
	for _, known := range Supported() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Ext returns the file extension for a format, without the dot.
func (f Format) Ext() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return string(f)
}

// Metadata describes the assessment an export belongs to. Zero-value
// fields are filled with defaults before writing.
type Metadata struct {
	Title          string `json:"title" yaml:"title"`
	Organization   string `json:"organization" yaml:"organization"`
	AssessmentDate string `json:"assessment_date" yaml:"assessment_date"`
	GeneratedBy    string `json:"generated_by" yaml:"generated_by"`
	Version        string `json:"version" yaml:"version"`
	AssessmentType string `json:"assessment_type" yaml:"assessment_type"`
	Scope          string `json:"scope" yaml:"scope"`
	Methodology    string `json:"methodology" yaml:"methodology"`
}

// DefaultMetadata returns the metadata used when none is supplied.
func DefaultMetadata() Metadata {
	return Metadata{
		Title:          "Cybersecurity Assessment Report",
		Organization:   "Organization",
		AssessmentDate: time.Now().Format("2006-01-02"),
		GeneratedBy:    defaults.ToolNameDisplay,
		Version:        defaults.Version,
		AssessmentType: "Automated Security Assessment",
		Scope:          "Network and Application Security",
		Methodology:    "Vulnerability Scanning and Analysis",
	}
}

func (m Metadata) withDefaults() Metadata {
	def := DefaultMetadata()
	if m.Title == "" {
		m.Title = def.Title
	}
	if m.Organization == "" {
		m.Organization = def.Organization
	}
	if m.AssessmentDate == "" {
		m.AssessmentDate = def.AssessmentDate
	}
	if m.GeneratedBy == "" {
		m.GeneratedBy = def.GeneratedBy
	}
	if m.Version == "" {
		m.Version = def.Version
	}
	if m.AssessmentType == "" {
		m.AssessmentType = def.AssessmentType
	}
	if m.Scope == "" {
		m.Scope = def.Scope
	}
	if m.Methodology == "" {
		m.Methodology = def.Methodology
	}
	return m
}

// Write emits findings in the given format. All formats write a
// complete document in one pass.
func Write(w io.Writer, findings []finding.Finding, format Format, meta Metadata) error {
	meta = meta.withDefaults()

	switch format {
	case FormatJSON:
		return WriteJSON(w, findings, meta)
	case FormatCSV:
		return WriteCSV(w, findings)
	case FormatXML:
		return WriteXML(w, findings, meta)
	case FormatSARIF:
		return WriteSARIF(w, findings, meta)
	case FormatSTIX:
		return WriteSTIX(w, findings, meta)
	case FormatMITRE:
		return WriteMITRE(w, findings, meta)
	case FormatNIST:
		return WriteNIST(w, findings, meta)
	case FormatExcel:
		return WriteExcel(w, findings)
	case FormatMarkdown:
		return WriteMarkdown(w, findings, meta)
	case FormatText:
		return WriteText(w, findings, meta)
	case FormatYAML:
		return WriteYAML(w, findings, meta)
	case FormatJUnit:
		return WriteJUnit(w, findings)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Export writes findings to path in the given format. The parent
// directory is created if needed and the file is written atomically.
func Export(findings []finding.Finding, path string, format Format, meta Metadata) error {
	var buf bytes.Buffer
	if err := Write(&buf, findings, format, meta); err != nil {
		return err
	}
	if err := iohelper.EnsureDir(path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := iohelper.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// ExportAll writes findings to one file per format under dir, named
// base.<ext>. It returns the path per format; a failing format is
// recorded in errs and does not stop the others.
func ExportAll(findings []finding.Finding, dir, base string, formats []Format, meta Metadata) (map[Format]string, error) {
	paths := make(map[Format]string, len(formats))
	var errs []error
	for _, format := range formats {
		path := filepath.Join(dir, base+"."+format.Ext())
		if err := Export(findings, path, format, meta); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", format, err))
			continue
		}
		paths[format] = path
	}
	return paths, errors.Join(errs...)
}
