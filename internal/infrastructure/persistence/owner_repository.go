package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/property"
	"github.com/rentfolio/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOwnerRepository implements OwnerRepository using GORM
type GormOwnerRepository struct {
	db *gorm.DB
}

// NewGormOwnerRepository creates a new GormOwnerRepository
func NewGormOwnerRepository(db *gorm.DB) *GormOwnerRepository {
	return &GormOwnerRepository{db: db}
}

// FindByID finds an owner by its ID
func (r *GormOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Owner, error) {
	var o property.Owner
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByProperty finds all owners of a property
func (r *GormOwnerRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.Owner, error) {
	var owners []property.Owner
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("name ASC").
		Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

// FindWithBirthdayInMonth finds owners whose recorded birthday falls in the
// given month, regardless of year
func (r *GormOwnerRepository) FindWithBirthdayInMonth(ctx context.Context, month int) ([]property.Owner, error) {
	var owners []property.Owner
	if err := r.db.WithContext(ctx).
		Where("birthday IS NOT NULL AND EXTRACT(MONTH FROM birthday) = ?", month).
		Order("EXTRACT(DAY FROM birthday) ASC").
		Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

// Save creates or updates an owner
func (r *GormOwnerRepository) Save(ctx context.Context, o *property.Owner) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// Delete deletes an owner
func (r *GormOwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&property.Owner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormOwnerRepository implements OwnerRepository
var _ property.OwnerRepository = (*GormOwnerRepository)(nil)
