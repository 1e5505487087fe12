package manpower

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ledgerSheetName = "Manpower Ledger"

// LedgerExportFilename is the attachment name the browser receives.
const LedgerExportFilename = "Manpower_Report.xlsx"

// Header labels are consumed by downstream spreadsheet tooling that
// matches on them; do not rename.
var ledgerHeaders = []string{
	"Date",
	"Site",
	"Dept",
	"Designation",
	"Skill",
	"Scope",
	"P",
	"A",
	"Abs%",
	"W/O",
	"OT",
	"FFR%",
	"Remarks",
}

// BuildLedgerWorkbook renders the attendance ledger as an xlsx
// workbook. Ratio columns carry the derived values, matching what the
// dashboard shows.
func BuildLedgerWorkbook(entries []ManpowerResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(ledgerSheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ledgerSheetName, cell, h)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(ledgerHeaders), 1)
	f.SetCellStyle(ledgerSheetName, "A1", endHeader, headerStyle)

	for i, e := range entries {
		row := i + 2
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("A%d", row), e.Date)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("B%d", row), e.Site)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("C%d", row), e.Department)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("D%d", row), e.Designation)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("E%d", row), e.SkillLevel)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("F%d", row), e.Scope)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("G%d", row), e.Present)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("H%d", row), e.Absent)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("I%d", row), e.AbsenceRatio)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("J%d", row), e.WeeklyOff)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("K%d", row), e.Overtime)
		f.SetCellValue(ledgerSheetName, fmt.Sprintf("L%d", row), e.FillRatio)
		if e.Remarks != nil {
			f.SetCellValue(ledgerSheetName, fmt.Sprintf("M%d", row), *e.Remarks)
		}
	}

	f.SetColWidth(ledgerSheetName, "A", "M", 16)
	f.DeleteSheet("Sheet1")

	return f, nil
}
