// Package export builds downloadable spreadsheet versions of budget reports.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "alcancia/internal/errors"
	"alcancia/internal/models"
)

const sheetName = "Reporte"

// ReportWorkbook renders a generated report into an xlsx workbook with one
// deviation row per label and a closing summary block.
func ReportWorkbook(b *models.Budget) (*excelize.File, error) {
	if b.Report == nil {
		return nil, apperrors.ErrReportNotFound
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrExportFailed, err)
	}

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Reporte de presupuesto %s (%s)", b.Report.TemplateName, b.Report.Period))

	headers := []string{"Etiqueta", "Recomendado", "Real", "Desviación", "Estado"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 4
	for _, d := range b.Report.Deviations {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), d.Label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), d.Recommended)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), d.Actual)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), d.Deviation)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), d.Status)
		row++
	}

	row++
	summary := [][2]interface{}{
		{"Total recomendado", b.Report.Analysis.TotalRecommended},
		{"Total real", b.Report.Analysis.TotalActual},
		{"Diferencia", b.Report.Analysis.Difference},
		{"Estado", b.Report.Analysis.Status},
	}
	for _, pair := range summary {
		cellA := fmt.Sprintf("A%d", row)
		cellB := fmt.Sprintf("B%d", row)
		f.SetCellValue(sheetName, cellA, pair[0])
		f.SetCellValue(sheetName, cellB, pair[1])
		f.SetCellStyle(sheetName, cellA, cellB, summaryStyle)
		row++
	}

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Recomendaciones")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), summaryStyle)
	row++
	for _, line := range b.Report.Recommendations {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line)
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "E", 18)

	return f, nil
}
