package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusSelected = "selected"
	StatusOffered  = "offered"
	StatusJoined   = "joined"
	StatusRejected = "rejected"
	StatusLeft     = "left"
)

// SummaryStatuses are the six buckets the dashboard renders. Records
// carrying any other status value are excluded from summary counts.
var SummaryStatuses = []string{
	StatusSelected,
	StatusOffered,
	StatusRejected,
	StatusJoined,
	StatusPending,
	StatusLeft,
}

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RefID          string    `gorm:"column:ref_id;type:varchar(20);uniqueIndex:uq_employee_ref_id;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Age            int       `gorm:"not null"`
	Company        string    `gorm:"type:varchar(50);not null;index"`
	Role           string    `gorm:"type:varchar(150);not null"`
	Status         string    `gorm:"type:varchar(10);not null;default:'pending'"`
	ContactNumber  string    `gorm:"column:contact_number;type:varchar(15);uniqueIndex:uq_employee_contact_number;not null"`
	ResumeKey      *string   `gorm:"column:resume_key;type:varchar(255)"`
	OfferLetterKey *string   `gorm:"column:offer_letter_key;type:varchar(255)"`
	Remarks        *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func IsKnownStatus(status string) bool {
	switch status {
	case StatusPending, StatusSelected, StatusOffered, StatusJoined, StatusRejected, StatusLeft:
		return true
	default:
		return false
	}
}
