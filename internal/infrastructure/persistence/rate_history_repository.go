package persistence

import (
	"context"
	"errors"

	"github.com/rentfolio/backend/internal/domain/rental"
	"github.com/rentfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRateHistoryRepository implements RateHistoryRepository using GORM.
// The log is append-only; no update or delete is exposed.
type GormRateHistoryRepository struct {
	db *gorm.DB
}

// NewGormRateHistoryRepository creates a new GormRateHistoryRepository
func NewGormRateHistoryRepository(db *gorm.DB) *GormRateHistoryRepository {
	return &GormRateHistoryRepository{db: db}
}

// Append writes a new history entry
func (r *GormRateHistoryRepository) Append(ctx context.Context, h *rental.RateHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// FindByAddress returns the property's history, newest first
func (r *GormRateHistoryRepository) FindByAddress(ctx context.Context, propertyAddress string) ([]rental.RateHistory, error) {
	var entries []rental.RateHistory
	if err := r.db.WithContext(ctx).
		Where("property_address = ?", propertyAddress).
		Order("increase_date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindLatestByAddress returns the most recent entry
func (r *GormRateHistoryRepository) FindLatestByAddress(ctx context.Context, propertyAddress string) (*rental.RateHistory, error) {
	var entry rental.RateHistory
	if err := r.db.WithContext(ctx).
		Where("property_address = ?", propertyAddress).
		Order("increase_date DESC, created_at DESC").
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Ensure GormRateHistoryRepository implements RateHistoryRepository
var _ rental.RateHistoryRepository = (*GormRateHistoryRepository)(nil)
