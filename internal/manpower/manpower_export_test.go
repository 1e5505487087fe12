package manpower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestBuildLedgerWorkbook_HeaderRow(t *testing.T) {
	f, err := BuildLedgerWorkbook(nil)
	assert.NoError(t, err)
	defer f.Close()

	want := []string{"Date", "Site", "Dept", "Designation", "Skill", "Scope", "P", "A", "Abs%", "W/O", "OT", "FFR%", "Remarks"}
	for i, label := range want {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		got, err := f.GetCellValue(ledgerSheetName, cell)
		assert.NoError(t, err)
		assert.Equal(t, label, got, cell)
	}
}

func TestBuildLedgerWorkbook_RatioColumnsCarryDerivedValues(t *testing.T) {
	remarks := "night shift"
	entries := []ManpowerResponse{
		{
			Date:         "2026-02-10",
			Site:         "Site A",
			Department:   "Mechanical",
			Designation:  "Fitter",
			SkillLevel:   "SK",
			Scope:        50,
			Present:      45,
			Absent:       3,
			WeeklyOff:    2,
			Overtime:     12.5,
			FillRatio:    90.0,
			AbsenceRatio: 6.0,
			Remarks:      &remarks,
		},
	}

	f, err := BuildLedgerWorkbook(entries)
	assert.NoError(t, err)
	defer f.Close()

	got := func(cell string) string {
		v, err := f.GetCellValue(ledgerSheetName, cell)
		assert.NoError(t, err)
		return v
	}

	assert.Equal(t, "2026-02-10", got("A2"))
	assert.Equal(t, "Site A", got("B2"))
	assert.Equal(t, "6", got("I2"))
	assert.Equal(t, "90", got("L2"))
	assert.Equal(t, "night shift", got("M2"))
}
