package sequence

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/sequence_repo_mock.go -package=mock . Repository
type Repository interface {
	// NextValue atomically increments and returns the counter, creating it
	// at 1 on first use. Safe against concurrent allocators.
	NextValue(ctx context.Context, name string) (int64, error)
	// Seed raises the counter to at least floor. Existing higher values win,
	// so re-seeding on every startup is harmless.
	Seed(ctx context.Context, name string, floor int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) NextValue(ctx context.Context, name string) (int64, error) {
	var nextValue int64

	// Raw SQL for an atomic UPSERT-and-increment; the database serializes
	// concurrent allocations so two creations can never share a value
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO ref_counters (name, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (name) DO UPDATE
		SET last_value = ref_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, name).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

func (r *repository) Seed(ctx context.Context, name string, floor int64) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO ref_counters (name, last_value, updated_at)
		VALUES (?, ?, now())
		ON CONFLICT (name) DO UPDATE
		SET last_value = GREATEST(ref_counters.last_value, EXCLUDED.last_value), updated_at = now()
	`, name, floor).Error
}
