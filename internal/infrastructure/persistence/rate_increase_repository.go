package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/rental"
	"github.com/rentfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRateIncreaseRepository implements RateIncreaseRepository using GORM
type GormRateIncreaseRepository struct {
	db *gorm.DB
}

// NewGormRateIncreaseRepository creates a new GormRateIncreaseRepository
func NewGormRateIncreaseRepository(db *gorm.DB) *GormRateIncreaseRepository {
	return &GormRateIncreaseRepository{db: db}
}

// FindByAddress finds the snapshot for a property
func (r *GormRateIncreaseRepository) FindByAddress(ctx context.Context, propertyAddress string) (*rental.RateIncrease, error) {
	var snapshot rental.RateIncrease
	if err := r.db.WithContext(ctx).First(&snapshot, "property_address = ?", propertyAddress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// FindAll returns every property's snapshot
func (r *GormRateIncreaseRepository) FindAll(ctx context.Context) ([]rental.RateIncrease, error) {
	var snapshots []rental.RateIncrease
	if err := r.db.WithContext(ctx).
		Order("property_address ASC").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// ExistsByAddress checks whether a snapshot exists for the address
func (r *GormRateIncreaseRepository) ExistsByAddress(ctx context.Context, propertyAddress string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&rental.RateIncrease{}).
		Where("property_address = ?", propertyAddress).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates the snapshot. The table holds at most one row per
// property address, so a concurrent insert for the same address collapses
// into an update of that row.
func (r *GormRateIncreaseRepository) Save(ctx context.Context, snapshot *rental.RateIncrease) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "property_address"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"latest_rate_increase_date",
				"latest_rental_rate",
				"next_allowable_rental_increase_date",
				"next_allowable_rental_rate",
				"reminder_date",
				"version",
				"updated_at",
			}),
		}).
		Save(snapshot).Error
}

// Delete deletes the snapshot
func (r *GormRateIncreaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&rental.RateIncrease{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormRateIncreaseRepository implements RateIncreaseRepository
var _ rental.RateIncreaseRepository = (*GormRateIncreaseRepository)(nil)
