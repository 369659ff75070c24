package tenancy

import (
	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/shared"
)

// AggregateTypeTenant is the aggregate type for tenancy events
const AggregateTypeTenant = "Tenant"

// Event type constants
const (
	EventTypeTenantMovedIn  = "TenantMovedIn"
	EventTypeTenantMovedOut = "TenantMovedOut"
)

// TenantMovedInEvent is published when a tenancy begins
type TenantMovedInEvent struct {
	shared.BaseDomainEvent
	TenantID        uuid.UUID `json:"tenant_id"`
	PropertyAddress string    `json:"property_address"`
	Name            string    `json:"name"`
	MoveInDate      string    `json:"move_in_date"`
}

// NewTenantMovedInEvent creates a new TenantMovedInEvent
func NewTenantMovedInEvent(t *Tenant) *TenantMovedInEvent {
	return &TenantMovedInEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantMovedIn, t.ID, AggregateTypeTenant),
		TenantID:        t.ID,
		PropertyAddress: t.PropertyAddress,
		Name:            t.Name,
		MoveInDate:      t.MoveInDate.String(),
	}
}

// TenantMovedOutEvent is published when a tenancy ends
type TenantMovedOutEvent struct {
	shared.BaseDomainEvent
	TenantID        uuid.UUID `json:"tenant_id"`
	PropertyAddress string    `json:"property_address"`
	Name            string    `json:"name"`
	MoveOutDate     string    `json:"move_out_date"`
}

// NewTenantMovedOutEvent creates a new TenantMovedOutEvent
func NewTenantMovedOutEvent(t *Tenant) *TenantMovedOutEvent {
	return &TenantMovedOutEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTenantMovedOut, t.ID, AggregateTypeTenant),
		TenantID:        t.ID,
		PropertyAddress: t.PropertyAddress,
		Name:            t.Name,
		MoveOutDate:     t.MoveOutDate.String(),
	}
}
