package manpower

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ManpowerEntry is one day's attendance line for a site, department and
// designation. The natural key (date, site, department, designation)
// carries a unique index: writes are idempotent upserts, never
// duplicate rows.
type ManpowerEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uq_manpower_natural_key,priority:1"`
	Site        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_manpower_natural_key,priority:2"`
	Department  string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_manpower_natural_key,priority:3"`
	Designation string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_manpower_natural_key,priority:4"`
	SkillLevel  string    `gorm:"column:skill_level;type:varchar(10)"`
	Scope       int       `gorm:"not null"`
	Present     int       `gorm:"not null;default:0"`
	Absent      int       `gorm:"not null;default:0"`
	WeeklyOff   int       `gorm:"column:weekly_off;not null;default:0"`
	Overtime    float64   `gorm:"not null;default:0"`
	Remarks     *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ManpowerEntry) TableName() string {
	return "manpower_entries"
}

// FillRatio is (present / scope) * 100 rounded to two decimals, the
// FFR% column of the ledger. Derived on read, never stored; a scope of
// zero or less yields 0 rather than an error.
func (e ManpowerEntry) FillRatio() float64 {
	if e.Scope <= 0 {
		return 0
	}
	return round2(float64(e.Present) / float64(e.Scope) * 100)
}

// AbsenceRatio is (absent / scope) * 100 rounded to two decimals.
func (e ManpowerEntry) AbsenceRatio() float64 {
	if e.Scope <= 0 {
		return 0
	}
	return round2(float64(e.Absent) / float64(e.Scope) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
