package property

import (
	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeProperty = "Property"
	AggregateTypeOwner    = "Owner"
)

// Event type constants
const (
	EventTypePropertyCreated = "PropertyCreated"
	EventTypePropertyUpdated = "PropertyUpdated"
	EventTypeOwnerAdded      = "OwnerAdded"
	EventTypeOwnerUpdated    = "OwnerUpdated"
)

// PropertyCreatedEvent is published when a new property is registered
type PropertyCreatedEvent struct {
	shared.BaseDomainEvent
	PropertyID  uuid.UUID   `json:"property_id"`
	Address     string      `json:"address"`
	ServiceType ServiceType `json:"service_type"`
}

// NewPropertyCreatedEvent creates a new PropertyCreatedEvent
func NewPropertyCreatedEvent(p *Property) *PropertyCreatedEvent {
	return &PropertyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyCreated, p.ID, AggregateTypeProperty),
		PropertyID:      p.ID,
		Address:         p.Address,
		ServiceType:     p.ServiceType,
	}
}

// PropertyUpdatedEvent is published when a property is updated
type PropertyUpdatedEvent struct {
	shared.BaseDomainEvent
	PropertyID  uuid.UUID   `json:"property_id"`
	Address     string      `json:"address"`
	ServiceType ServiceType `json:"service_type"`
}

// NewPropertyUpdatedEvent creates a new PropertyUpdatedEvent
func NewPropertyUpdatedEvent(p *Property) *PropertyUpdatedEvent {
	return &PropertyUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePropertyUpdated, p.ID, AggregateTypeProperty),
		PropertyID:      p.ID,
		Address:         p.Address,
		ServiceType:     p.ServiceType,
	}
}

// OwnerAddedEvent is published when an owner is attached to a property
type OwnerAddedEvent struct {
	shared.BaseDomainEvent
	OwnerID    uuid.UUID `json:"owner_id"`
	PropertyID uuid.UUID `json:"property_id"`
	Name       string    `json:"name"`
}

// NewOwnerAddedEvent creates a new OwnerAddedEvent
func NewOwnerAddedEvent(o *Owner) *OwnerAddedEvent {
	return &OwnerAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOwnerAdded, o.ID, AggregateTypeOwner),
		OwnerID:         o.ID,
		PropertyID:      o.PropertyID,
		Name:            o.Name,
	}
}
