package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/rentfolio/backend/internal/domain/tenancy"
	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	var t tenancy.Tenant
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByProperty finds all tenants ever recorded for the address, ordered by
// move-in date descending
func (r *GormTenantRepository) FindByProperty(ctx context.Context, propertyAddress string) ([]tenancy.Tenant, error) {
	var tenants []tenancy.Tenant
	if err := r.db.WithContext(ctx).
		Where("property_address = ?", propertyAddress).
		Order("move_in_date DESC").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// FindActiveByProperty finds tenants with no move-out date for the address,
// ordered by move-in date descending
func (r *GormTenantRepository) FindActiveByProperty(ctx context.Context, propertyAddress string) ([]tenancy.Tenant, error) {
	var tenants []tenancy.Tenant
	if err := r.db.WithContext(ctx).
		Where("property_address = ? AND move_out_date IS NULL", propertyAddress).
		Order("move_in_date DESC").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// FindActiveAsOf finds tenants who occupied the address on the given date
func (r *GormTenantRepository) FindActiveAsOf(ctx context.Context, propertyAddress string, asOf valueobject.CalendarDate) ([]tenancy.Tenant, error) {
	var tenants []tenancy.Tenant
	if err := r.db.WithContext(ctx).
		Where("property_address = ? AND move_in_date <= ? AND (move_out_date IS NULL OR move_out_date > ?)",
			propertyAddress, asOf, asOf).
		Order("move_in_date DESC").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// FindActiveWithBirthdayInMonth finds active tenants across all properties
// whose birthday falls in the given month, regardless of year
func (r *GormTenantRepository) FindActiveWithBirthdayInMonth(ctx context.Context, month int) ([]tenancy.Tenant, error) {
	var tenants []tenancy.Tenant
	if err := r.db.WithContext(ctx).
		Where("move_out_date IS NULL AND birthday IS NOT NULL AND EXTRACT(MONTH FROM birthday) = ?", month).
		Order("EXTRACT(DAY FROM birthday) ASC").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, t *tenancy.Tenant) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete deletes a tenant
func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&tenancy.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTenantRepository implements TenantRepository
var _ tenancy.TenantRepository = (*GormTenantRepository)(nil)
