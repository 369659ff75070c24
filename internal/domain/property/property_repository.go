package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/shared"
)

// PropertyRepository defines the interface for property persistence
type PropertyRepository interface {
	// FindByID finds a property by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)

	// FindByAddress finds a property by its unique street address
	FindByAddress(ctx context.Context, address string) (*Property, error)

	// FindAll finds all properties matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Property, error)

	// Save creates or updates a property
	Save(ctx context.Context, p *Property) error

	// Delete deletes a property
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts properties matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByAddress checks whether a property with the given address exists
	ExistsByAddress(ctx context.Context, address string) (bool, error)
}

// OwnerRepository defines the interface for owner persistence
type OwnerRepository interface {
	// FindByID finds an owner by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Owner, error)

	// FindByProperty finds all owners of a property
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]Owner, error)

	// FindWithBirthdayInMonth finds owners whose recorded birthday falls in
	// the given month, regardless of year
	FindWithBirthdayInMonth(ctx context.Context, month int) ([]Owner, error)

	// Save creates or updates an owner
	Save(ctx context.Context, o *Owner) error

	// Delete deletes an owner
	Delete(ctx context.Context, id uuid.UUID) error
}
