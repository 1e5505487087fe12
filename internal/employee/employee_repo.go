package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

// StatusCount is one row of the status aggregation query.
type StatusCount struct {
	Status string
	Count  int64
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	ExistsByContactNumber(ctx context.Context, contactNumber string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error

	// MaxRefID returns the highest assigned reference id, or "" when no
	// records exist. Ordering by length first keeps numeric order once
	// the suffix widens past four digits.
	MaxRefID(ctx context.Context) (string, error)

	// CountByStatus groups records by status for one site over an
	// inclusive creation-date range (timestamps truncated to the day).
	CountByStatus(ctx context.Context, site string, from, to time.Time) ([]StatusCount, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) ExistsByContactNumber(ctx context.Context, contactNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("contact_number = ?", contactNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) MaxRefID(ctx context.Context) (string, error) {
	var refID string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("ref_id").
		Order("length(ref_id) DESC, ref_id DESC").
		Limit(1).
		Scan(&refID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return refID, err
}

func (r *repository) CountByStatus(ctx context.Context, site string, from, to time.Time) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("status, COUNT(*) AS count").
		Where("company = ?", site).
		Where("created_at::date >= ?", from.Format("2006-01-02")).
		Where("created_at::date <= ?", to.Format("2006-01-02")).
		Group("status").
		Scan(&counts).Error
	return counts, err
}
