package manpower

// RawRow is one attendance line as it arrives from the form, fields
// still unparsed. Rows are correlated by a shared numeric suffix on
// the field names (p_3, a_3, dept_3, ...).
type RawRow struct {
	SrNo        string
	Department  string
	Designation string
	SkillLevel  string
	Scope       string
	Present     string
	Absent      string
	WeeklyOff   string
	Overtime    string
	Remarks     string
}

type SkippedRow struct {
	SrNo   string `json:"sr_no"`
	Reason string `json:"reason"`
}

// BatchResult reports the best-effort outcome of a batch submission:
// which rows landed and which were skipped, with the parse failure
// that caused each skip.
type BatchResult struct {
	Saved   []string     `json:"saved"`
	Skipped []SkippedRow `json:"skipped"`
}

type ManpowerResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Site         string  `json:"site"`
	Department   string  `json:"department"`
	Designation  string  `json:"designation"`
	SkillLevel   string  `json:"skill_level"`
	Scope        int     `json:"scope"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	WeeklyOff    int     `json:"weekly_off"`
	Overtime     float64 `json:"overtime"`
	FillRatio    float64 `json:"fill_ratio"`
	AbsenceRatio float64 `json:"absence_ratio"`
	Remarks      *string `json:"remarks,omitempty"`
}
