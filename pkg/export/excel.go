package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/stats"
)

const (
	excelSummarySheet  = "Executive Summary"
	excelFindingsSheet = "Detailed Findings"
	excelHeaderFill    = "366092"
)

var excelHeaders = []string{
	"ID", "Title", "Description", "Severity", "CVSS Score",
	"Category", "Host", "Port", "Service", "Impact",
	"Evidence", "Remediation", "Source", "Discovery Date",
}

// WriteExcel emits an XLSX workbook with a summary sheet and a
// findings sheet.
func WriteExcel(w io.Writer, findings []finding.Finding) error {
	wb := excelize.NewFile()
	defer wb.Close()

	// The default sheet becomes the summary sheet.
	if err := wb.SetSheetName("Sheet1", excelSummarySheet); err != nil {
		return fmt.Errorf("excel: %w", err)
	}

	titleCase := cases.Title(language.English)
	sum := stats.SummaryOf(findings)
	summaryRows := []struct {
		label string
		value int
	}{
		{"total findings", sum.TotalFindings},
		{"critical findings", sum.CriticalFindings},
		{"high findings", sum.HighFindings},
		{"medium findings", sum.MediumFindings},
		{"low findings", sum.LowFindings},
		{"info findings", sum.InfoFindings},
	}
	for i, row := range summaryRows {
		if err := wb.SetCellValue(excelSummarySheet, fmt.Sprintf("A%d", i+1), titleCase.String(row.label)); err != nil {
			return fmt.Errorf("excel: %w", err)
		}
		if err := wb.SetCellValue(excelSummarySheet, fmt.Sprintf("B%d", i+1), row.value); err != nil {
			return fmt.Errorf("excel: %w", err)
		}
	}

	if _, err := wb.NewSheet(excelFindingsSheet); err != nil {
		return fmt.Errorf("excel: %w", err)
	}

	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{excelHeaderFill}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("excel: %w", err)
	}
	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("excel: %w", err)
		}
		if err := wb.SetCellValue(excelFindingsSheet, cell, header); err != nil {
			return fmt.Errorf("excel: %w", err)
		}
		if err := wb.SetCellStyle(excelFindingsSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("excel: %w", err)
		}
	}

	for i := range findings {
		f := &findings[i]
		values := []any{
			f.ID, f.Title, f.Description, string(f.Severity), f.CVSSScore,
			f.Category, f.Host, f.Port, f.Service, f.Impact,
			f.Evidence, f.Remediation, f.Source, f.DiscoveryDate,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("excel: %w", err)
			}
			if err := wb.SetCellValue(excelFindingsSheet, cell, v); err != nil {
				return fmt.Errorf("excel: %w", err)
			}
		}
	}

	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("excel: %w", err)
	}
	return nil
}
