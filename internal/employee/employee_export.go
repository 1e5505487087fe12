package employee

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const rosterSheetName = "Employee List"

// RosterExportFilename is the attachment name the browser receives.
const RosterExportFilename = "RMS_Database.xlsx"

var rosterHeaders = []string{
	"REF_ID",
	"CREATED_AT",
	"NAME",
	"AGE",
	"CONTACT_NUMBER",
	"DESIGNATION",
	"SITE",
	"STATUS",
	"RESUME",
	"UPDATED_AT",
}

// BuildRosterWorkbook renders the employee roster as an xlsx workbook.
// The RESUME cell links to the stored blob when one exists, otherwise
// it carries the literal "No File" marker.
func BuildRosterWorkbook(employees []EmployeeResponse) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(rosterSheetName)
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

	for i, h := range rosterHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(rosterSheetName, cell, h)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(rosterHeaders), 1)
	f.SetCellStyle(rosterSheetName, "A1", endHeader, headerStyle)

	for i, e := range employees {
		row := i + 2
		f.SetCellValue(rosterSheetName, fmt.Sprintf("A%d", row), e.RefID)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("B%d", row), e.CreatedAt)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("C%d", row), e.Name)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("D%d", row), e.Age)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("E%d", row), e.ContactNumber)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("F%d", row), e.Role)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("G%d", row), e.Company)
		f.SetCellValue(rosterSheetName, fmt.Sprintf("H%d", row), e.Status)

		resumeCell := fmt.Sprintf("I%d", row)
		if e.ResumeURL != nil {
			f.SetCellValue(rosterSheetName, resumeCell, "View Resume")
			if err := f.SetCellHyperLink(rosterSheetName, resumeCell, *e.ResumeURL, "External"); err != nil {
				return nil, err
			}
		} else {
			f.SetCellValue(rosterSheetName, resumeCell, "No File")
		}

		f.SetCellValue(rosterSheetName, fmt.Sprintf("J%d", row), e.UpdatedAt)
	}

	f.SetColWidth(rosterSheetName, "A", "J", 18)
	f.DeleteSheet("Sheet1")

	return f, nil
}
