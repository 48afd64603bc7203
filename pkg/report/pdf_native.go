package report

import (
	"bytes"
	"fmt"
	"strings"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

// severityRGB maps severities to the PDF palette. Kept in sync with
// severityColors in the HTML template.
var severityRGB = map[string][3]int{
	"critical": {220, 53, 69},
	"high":     {253, 126, 20},
	"medium":   {255, 193, 7},
	"low":      {40, 167, 69},
	"info":     {23, 162, 184},
}

func severityFill(severity string) (int, int, int) {
	if rgb, ok := severityRGB[strings.ToLower(severity)]; ok {
		return rgb[0], rgb[1], rgb[2]
	}
	return 108, 117, 125
}

// nativePDF renders the report directly with fpdf. It is the fallback
// when no HTML-to-PDF renderer is available, so layout is simpler than
// the browser-rendered report but the content is the same.
type nativePDF struct {
	data Data
}

// RenderNativePDF builds the PDF document for the report data.
func RenderNativePDF(data Data) ([]byte, error) {
	n := &nativePDF{data: data}

	pdf := gofpdf.New("P", "mm", string(StyleFor(data.Config.Theme).PageSize), "")
	pdf.SetAutoPageBreak(true, 20)

	n.addCoverPage(pdf)
	n.addSummaryPage(pdf)
	n.addFindings(pdf)
	n.addRecommendations(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: native pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (n *nativePDF) addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(26, 41, 66)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(44, 74, 124)
	pdf.SetLineWidth(0.8)
	x, y := pdf.GetXY()
	pdf.Line(x, y, x+180, y)
	pdf.Ln(6)
}

func (n *nativePDF) addCoverPage(pdf *gofpdf.Fpdf) {
	pdf.AddPage()

	pdf.SetFillColor(220, 53, 69)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 8, n.data.Config.Classification, "", 1, "C", true, 0, "")

	pdf.Ln(50)
	pdf.SetTextColor(26, 41, 66)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.MultiCell(0, 12, n.data.Config.Title, "", "C", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 8, n.data.Config.Company, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, "Assessment Period: "+n.data.Config.AssessmentPeriod, "", 1, "C", false, 0, "")
	pdf.Ln(20)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated "+n.data.GeneratedDate+" at "+n.data.GeneratedTime, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "by "+n.data.Config.GeneratedBy, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Report ID: "+n.data.ReportID, "", 1, "C", false, 0, "")
}

func (n *nativePDF) addSummaryPage(pdf *gofpdf.Fpdf) {
	pdf.AddPage()
	n.addSectionHeader(pdf, "Executive Summary")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(0, 5, n.data.ExecutiveSummary, "", "L", false)
	pdf.Ln(8)

	n.addSectionHeader(pdf, "Severity Distribution")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(26, 41, 66)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(60, 8, "Severity", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Count", "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, 8, "Share", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	total := n.data.TotalFindings
	for _, sev := range finding.Ordered() {
		count := n.data.Statistics.BySeverity[string(sev)]
		share := 0
		if total > 0 {
			share = count * 100 / total
		}

		r, g, b := severityFill(string(sev))
		pdf.SetFillColor(r, g, b)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 7, sev.Title(), "1", 0, "L", true, 0, "")

		pdf.SetFillColor(255, 255, 255)
		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", count), "1", 0, "C", true, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("%d%%", share), "1", 1, "C", true, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d findings in total.", total), "", 1, "L", false, 0, "")
}

func (n *nativePDF) addFindings(pdf *gofpdf.Fpdf) {
	pdf.AddPage()
	n.addSectionHeader(pdf, "Detailed Findings")

	for i := range n.data.Findings {
		f := &n.data.Findings[i]

		// Keep each finding's header block on one page.
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		r, g, b := severityFill(string(f.Severity))
		pdf.SetFillColor(r, g, b)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, fmt.Sprintf("  %d. %s  [%s]", i+1, f.Title, strings.ToUpper(string(f.Severity))), "", 1, "L", true, 0, "")
		pdf.Ln(2)

		pdf.SetTextColor(60, 60, 60)
		pdf.SetFont("Helvetica", "", 9)
		target := f.Host
		if target == "" {
			target = "N/A"
		}
		if f.Port != "" && f.Port != "N/A" {
			target += ":" + f.Port
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("Target: %s    Category: %s    CVSS: %.1f    Source: %s",
			target, f.Category, f.CVSSScore, f.Source), "", 1, "L", false, 0, "")
		pdf.Ln(1)

		n.addLabeledText(pdf, "Description", f.Description)
		if f.AISummary != "" {
			n.addLabeledText(pdf, "Summary", f.AISummary)
		}
		if f.Impact != "" {
			n.addLabeledText(pdf, "Impact", f.Impact)
		}
		if f.Evidence != "" && n.data.Config.Theme != ThemeExecutive {
			n.addLabeledText(pdf, "Evidence", f.Evidence)
		}
		if f.Remediation != "" {
			n.addLabeledText(pdf, "Remediation", f.Remediation)
		}
		pdf.Ln(4)
	}
}

func (n *nativePDF) addLabeledText(pdf *gofpdf.Fpdf, label, text string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(44, 74, 124)
	pdf.CellFormat(0, 5, label, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(0, 4.5, text, "", "L", false)
	pdf.Ln(1)
}

func (n *nativePDF) addRecommendations(pdf *gofpdf.Fpdf) {
	pdf.AddPage()
	n.addSectionHeader(pdf, "Recommendations")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(26, 41, 66)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(25, 8, "Priority", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(85, 8, "Recommendation", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 8, "Timeline", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for i, rec := range n.data.Recommendations {
		if i%2 == 0 {
			pdf.SetFillColor(245, 247, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(25, 7, rec.Priority, "1", 0, "L", true, 0, "")
		pdf.CellFormat(45, 7, rec.Category, "1", 0, "L", true, 0, "")
		pdf.CellFormat(85, 7, n.shorten(rec.Description, 60), "1", 0, "L", true, 0, "")
		pdf.CellFormat(0, 7, rec.Timeline, "1", 1, "L", true, 0, "")
	}

	pdf.Ln(8)
	n.addSectionHeader(pdf, "Next Steps")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	for _, step := range n.data.NextSteps {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s - %s (%s, due %s)",
			step.Step, step.Action, step.Description, step.Owner, step.Deadline), "", "L", false)
		pdf.Ln(1)
	}
}

func (n *nativePDF) shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
