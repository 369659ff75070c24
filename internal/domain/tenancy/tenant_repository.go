package tenancy

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindByProperty finds all tenants ever recorded for the address,
	// ordered by move-in date descending
	FindByProperty(ctx context.Context, propertyAddress string) ([]Tenant, error)

	// FindActiveByProperty finds tenants with no move-out date for the
	// address, ordered by move-in date descending
	FindActiveByProperty(ctx context.Context, propertyAddress string) ([]Tenant, error)

	// FindActiveAsOf finds tenants who occupied the address on the given
	// date: moveIn <= asOf and (no moveOut or moveOut > asOf)
	FindActiveAsOf(ctx context.Context, propertyAddress string, asOf valueobject.CalendarDate) ([]Tenant, error)

	// FindActiveWithBirthdayInMonth finds active tenants across all
	// properties whose birthday falls in the given month, regardless of year
	FindActiveWithBirthdayInMonth(ctx context.Context, month int) ([]Tenant, error)

	// Save creates or updates a tenant
	Save(ctx context.Context, t *Tenant) error

	// Delete deletes a tenant
	Delete(ctx context.Context, id uuid.UUID) error
}
