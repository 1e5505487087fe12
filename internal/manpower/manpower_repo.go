package manpower

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=manpower_repo.go -destination=mock/manpower_repo_mock.go -package=mock
type Repository interface {
	// Upsert writes one entry keyed on (date, site, department,
	// designation): an existing row for that key is overwritten in
	// place, otherwise a new row is inserted.
	Upsert(ctx context.Context, entry *ManpowerEntry) error

	FindAll(ctx context.Context, site string, date *time.Time) ([]ManpowerEntry, error)

	// DeleteAll wipes the ledger. Irreversible; gated behind the
	// manpower:reset policy upstream.
	DeleteAll(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, entry *ManpowerEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "date"},
				{Name: "site"},
				{Name: "department"},
				{Name: "designation"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"skill_level",
				"scope",
				"present",
				"absent",
				"weekly_off",
				"overtime",
				"remarks",
				"updated_at",
			}),
		}).
		Create(entry).Error
}

func (r *repository) FindAll(ctx context.Context, site string, date *time.Time) ([]ManpowerEntry, error) {
	q := r.db.WithContext(ctx).Model(&ManpowerEntry{})
	if site != "" {
		q = q.Where("site = ?", site)
	}
	if date != nil {
		q = q.Where("date = ?", date.Format("2006-01-02"))
	}

	var entries []ManpowerEntry
	err := q.Order("date DESC, site ASC, department ASC, designation ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&ManpowerEntry{}).Error
}
