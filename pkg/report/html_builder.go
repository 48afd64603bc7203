package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/Masterminds/sprig/v3"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

// severityColors matches the palette used across the tool's outputs.
var severityColors = map[string]string{
	"critical": "#dc3545",
	"high":     "#fd7e14",
	"medium":   "#ffc107",
	"low":      "#28a745",
	"info":     "#17a2b8",
}

// SeverityColor returns the display color for a severity name.
func SeverityColor(severity string) string {
	if c, ok := severityColors[strings.ToLower(severity)]; ok {
		return c
	}
	return "#6c757d"
}

// truncateSmart shortens text at a word boundary.
func truncateSmart(length int, text string) string {
	if len(text) <= length {
		return text
	}
	cut := text[:length]
	if i := strings.LastIndex(cut, " "); i > 0 {
		return cut[:i] + "..."
	}
	return cut + "..."
}

// HTMLBuilder renders report data to a self-contained HTML document.
type HTMLBuilder struct {
	tmpl *template.Template
}

// NewHTMLBuilder parses the report template.
func NewHTMLBuilder() (*HTMLBuilder, error) {
	funcMap := sprig.FuncMap()
	funcMap["severityColor"] = SeverityColor
	funcMap["truncateSmart"] = truncateSmart
	funcMap["ordered"] = finding.Ordered
	funcMap["pct"] = func(part, total int) int {
		if total == 0 {
			return 0
		}
		return part * 100 / total
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("report: parse template: %w", err)
	}
	return &HTMLBuilder{tmpl: tmpl}, nil
}

// Render executes the template over the data.
func (b *HTMLBuilder) Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("report: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateHTML builds the report for a finding set in one call.
func GenerateHTML(findings []finding.Finding, cfg Config) ([]byte, error) {
	builder, err := NewHTMLBuilder()
	if err != nil {
		return nil, err
	}
	return builder.Render(BuildData(findings, cfg))
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{ .Config.Title }}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Segoe UI', Arial, sans-serif; color: #212529; background: #f8f9fa; line-height: 1.6; }
  .container { max-width: 1100px; margin: 0 auto; padding: 30px; }
  .classification { background: #dc3545; color: #fff; text-align: center; padding: 6px; font-weight: 600; letter-spacing: 2px; }
  header.report-header { background: linear-gradient(135deg, #1a2942 0%, #2c4a7c 100%); color: #fff; padding: 50px 30px; }
  header.report-header h1 { font-size: 2.2em; margin-bottom: 10px; }
  header.report-header .meta { opacity: 0.85; font-size: 0.95em; }
  h2 { color: #1a2942; border-bottom: 3px solid #2c4a7c; padding-bottom: 8px; margin: 40px 0 20px; }
  h3 { color: #2c4a7c; margin: 25px 0 10px; }
  .dashboard { display: grid; grid-template-columns: repeat(5, 1fr); gap: 15px; margin: 25px 0; }
  .card { background: #fff; border-radius: 8px; padding: 20px; text-align: center; box-shadow: 0 1px 4px rgba(0,0,0,0.1); border-top: 4px solid #6c757d; }
  .card .count { font-size: 2.2em; font-weight: 700; }
  .card .label { text-transform: uppercase; font-size: 0.8em; color: #6c757d; letter-spacing: 1px; }
  .summary-box { background: #fff; border-left: 5px solid #2c4a7c; border-radius: 4px; padding: 25px; box-shadow: 0 1px 4px rgba(0,0,0,0.1); white-space: pre-line; }
  table { width: 100%; border-collapse: collapse; background: #fff; box-shadow: 0 1px 4px rgba(0,0,0,0.1); margin: 15px 0; }
  th { background: #1a2942; color: #fff; padding: 10px 14px; text-align: left; font-size: 0.9em; }
  td { padding: 10px 14px; border-bottom: 1px solid #e9ecef; font-size: 0.92em; }
  tr:last-child td { border-bottom: none; }
  .bar-track { background: #e9ecef; border-radius: 4px; height: 18px; width: 100%; }
  .bar-fill { height: 18px; border-radius: 4px; }
  .badge { display: inline-block; color: #fff; border-radius: 4px; padding: 2px 10px; font-size: 0.8em; font-weight: 600; text-transform: uppercase; }
  .finding { background: #fff; border-radius: 8px; margin: 20px 0; box-shadow: 0 1px 4px rgba(0,0,0,0.1); overflow: hidden; }
  .finding-header { padding: 16px 20px; display: flex; justify-content: space-between; align-items: center; border-left: 6px solid #6c757d; }
  .finding-body { padding: 0 20px 20px; }
  .finding-body dt { font-weight: 600; color: #2c4a7c; margin-top: 12px; }
  .finding-body dd { margin-left: 0; }
  .evidence { background: #f1f3f5; border-radius: 4px; padding: 12px; font-family: 'Courier New', monospace; font-size: 0.85em; white-space: pre-wrap; overflow-x: auto; }
  .risk-matrix td { text-align: center; font-weight: 700; }
  .risk-high { background: #f8d7da; }
  .risk-medium { background: #fff3cd; }
  .risk-low { background: #d4edda; }
  footer { text-align: center; color: #6c757d; font-size: 0.85em; margin-top: 50px; padding: 20px; border-top: 1px solid #dee2e6; }
  @media print { body { background: #fff; } .finding { break-inside: avoid; } }
</style>
</head>
<body>
<div class="classification">{{ .Config.Classification }}</div>
<header class="report-header">
  <div class="container">
    <h1>{{ .Config.Title }}</h1>
    <div class="meta">
      <div><strong>{{ .Config.Company }}</strong> &middot; {{ .Config.AssessmentPeriod }}</div>
      <div>Scope: {{ .Config.Scope }} &middot; Methodology: {{ .Config.Methodology }}</div>
      <div>Generated {{ .GeneratedDate }} at {{ .GeneratedTime }} by {{ .Config.GeneratedBy }}</div>
      <div>Report ID: {{ .ReportID }} &middot; Version {{ .Config.Version }}</div>
    </div>
  </div>
</header>
<div class="container">

<h2>Findings Overview</h2>
<div class="dashboard">
{{- $stats := .Statistics }}
{{- range ordered }}
  <div class="card" style="border-top-color: {{ severityColor (printf "%s" .) }}">
    <div class="count" style="color: {{ severityColor (printf "%s" .) }}">{{ index $stats.BySeverity (printf "%s" .) }}</div>
    <div class="label">{{ .Title }}</div>
  </div>
{{- end }}
</div>

<h2>Executive Summary</h2>
<div class="summary-box">{{ .ExecutiveSummary }}</div>

<h2>Severity Distribution</h2>
<table>
  <tr><th>Severity</th><th>Count</th><th style="width:50%">Share</th></tr>
{{- $total := .TotalFindings }}
{{- range ordered }}
  {{- $count := index $stats.BySeverity (printf "%s" .) }}
  <tr>
    <td><span class="badge" style="background: {{ severityColor (printf "%s" .) }}">{{ .Title }}</span></td>
    <td>{{ $count }}</td>
    <td><div class="bar-track"><div class="bar-fill" style="width: {{ pct $count $total }}%; background: {{ severityColor (printf "%s" .) }}"></div></div></td>
  </tr>
{{- end }}
</table>

<h2>Risk Matrix</h2>
<table class="risk-matrix">
  <tr><th></th><th>High Impact</th><th>Medium Impact</th><th>Low Impact</th></tr>
{{- $matrix := .Statistics.RiskMatrix }}
  <tr>
    <th>High Likelihood</th>
    <td class="risk-high">{{ index (index $matrix "high_likelihood") "high_impact" }}</td>
    <td class="risk-high">{{ index (index $matrix "high_likelihood") "medium_impact" }}</td>
    <td class="risk-medium">{{ index (index $matrix "high_likelihood") "low_impact" }}</td>
  </tr>
  <tr>
    <th>Medium Likelihood</th>
    <td class="risk-high">{{ index (index $matrix "medium_likelihood") "high_impact" }}</td>
    <td class="risk-medium">{{ index (index $matrix "medium_likelihood") "medium_impact" }}</td>
    <td class="risk-low">{{ index (index $matrix "medium_likelihood") "low_impact" }}</td>
  </tr>
  <tr>
    <th>Low Likelihood</th>
    <td class="risk-medium">{{ index (index $matrix "low_likelihood") "high_impact" }}</td>
    <td class="risk-low">{{ index (index $matrix "low_likelihood") "medium_impact" }}</td>
    <td class="risk-low">{{ index (index $matrix "low_likelihood") "low_impact" }}</td>
  </tr>
</table>

{{- if eq .Config.Theme "compliance" }}
<h2>Compliance Impact</h2>
<table>
  <tr><th>Framework</th><th>Affected Findings</th></tr>
{{- range $framework, $count := .Statistics.Compliance }}
  <tr><td>{{ $framework }}</td><td>{{ $count }}</td></tr>
{{- end }}
</table>
{{- end }}

<h2>Detailed Findings</h2>
{{- range $i, $f := .Findings }}
<div class="finding">
  <div class="finding-header" style="border-left-color: {{ severityColor (printf "%s" $f.Severity) }}">
    <h3 style="margin:0">{{ add $i 1 }}. {{ $f.Title }}</h3>
    <span class="badge" style="background: {{ severityColor (printf "%s" $f.Severity) }}">{{ $f.Severity }}</span>
  </div>
  <div class="finding-body">
    <dl>
      <dt>Target</dt><dd>{{ with $f.Host }}{{ . }}{{ else }}N/A{{ end }}{{ if and $f.Port (ne $f.Port "N/A") }}:{{ $f.Port }}{{ end }}{{ with $f.Service }} ({{ . }}){{ end }}</dd>
      <dt>Category</dt><dd>{{ $f.Category }} &middot; CVSS {{ printf "%.1f" $f.CVSSScore }}</dd>
      <dt>Description</dt>
      <dd>{{ if eq $.Config.Theme "executive" }}{{ truncateSmart 300 $f.Description }}{{ else }}{{ $f.Description }}{{ end }}</dd>
      {{- with $f.AISummary }}
      <dt>Summary</dt><dd>{{ . }}</dd>
      {{- end }}
      {{- with $f.Impact }}
      <dt>Impact</dt><dd>{{ . }}</dd>
      {{- end }}
      {{- if and $f.Evidence (ne $.Config.Theme "executive") }}
      <dt>Evidence</dt><dd><div class="evidence">{{ $f.Evidence }}</div></dd>
      {{- end }}
      {{- with $f.Remediation }}
      <dt>Remediation</dt><dd style="white-space: pre-line">{{ . }}</dd>
      {{- end }}
      <dt>Source</dt><dd>{{ $f.Source }}{{ with $f.DiscoveryDate }} &middot; discovered {{ . }}{{ end }}</dd>
    </dl>
  </div>
</div>
{{- end }}

<h2>Recommendations</h2>
<table>
  <tr><th>Priority</th><th>Category</th><th>Recommendation</th><th>Timeline</th><th>Effort</th><th>Impact</th></tr>
{{- range .Recommendations }}
  <tr><td>{{ .Priority }}</td><td>{{ .Category }}</td><td>{{ .Description }}</td><td>{{ .Timeline }}</td><td>{{ .Effort }}</td><td>{{ .Impact }}</td></tr>
{{- end }}
</table>

<h2>Next Steps</h2>
<table>
  <tr><th>#</th><th>Action</th><th>Description</th><th>Owner</th><th>Deadline</th></tr>
{{- range .NextSteps }}
  <tr><td>{{ .Step }}</td><td>{{ .Action }}</td><td>{{ .Description }}</td><td>{{ .Owner }}</td><td>{{ .Deadline }}</td></tr>
{{- end }}
</table>

</div>
<footer>
  {{ .Config.Classification }} &middot; {{ .Config.Title }} &middot; Generated by {{ .Config.GeneratedBy }}
</footer>
</body>
</html>
`
