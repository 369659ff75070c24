package rental

import (
	"context"

	"github.com/google/uuid"
)

// RateIncreaseRepository defines the interface for the current-rate snapshot.
// The table holds at most one row per property address; Save has upsert
// semantics on that key.
type RateIncreaseRepository interface {
	// FindByAddress finds the snapshot for a property, or shared.ErrNotFound
	FindByAddress(ctx context.Context, propertyAddress string) (*RateIncrease, error)

	// FindAll returns every property's snapshot
	FindAll(ctx context.Context) ([]RateIncrease, error)

	// ExistsByAddress checks whether a snapshot exists for the address
	ExistsByAddress(ctx context.Context, propertyAddress string) (bool, error)

	// Save creates or updates the snapshot for its property address
	Save(ctx context.Context, r *RateIncrease) error

	// Delete deletes the snapshot
	Delete(ctx context.Context, id uuid.UUID) error
}

// RateHistoryRepository defines the interface for the append-only rate log.
// Entries are never updated or deleted.
type RateHistoryRepository interface {
	// Append writes a new history entry
	Append(ctx context.Context, h *RateHistory) error

	// FindByAddress returns the property's history, newest first
	FindByAddress(ctx context.Context, propertyAddress string) ([]RateHistory, error)

	// FindLatestByAddress returns the most recent entry, or shared.ErrNotFound
	FindLatestByAddress(ctx context.Context, propertyAddress string) (*RateHistory, error)
}
