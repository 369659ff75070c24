package rental

import (
	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AggregateTypeRateIncrease is the aggregate type for rental rate events
const AggregateTypeRateIncrease = "RateIncrease"

// EventTypeRateRecorded is published for both initial rates and increases
const EventTypeRateRecorded = "RateRecorded"

// RateRecordedEvent is published when a rate is recorded for a property
type RateRecordedEvent struct {
	shared.BaseDomainEvent
	RecordID        uuid.UUID       `json:"record_id"`
	PropertyAddress string          `json:"property_address"`
	PreviousRate    decimal.Decimal `json:"previous_rate"`
	NewRate         decimal.Decimal `json:"new_rate"`
	EffectiveDate   string          `json:"effective_date"`
}

// NewRateRecordedEvent creates a new RateRecordedEvent
func NewRateRecordedEvent(r *RateIncrease, previousRate decimal.Decimal) *RateRecordedEvent {
	return &RateRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRateRecorded, r.ID, AggregateTypeRateIncrease),
		RecordID:        r.ID,
		PropertyAddress: r.PropertyAddress,
		PreviousRate:    previousRate,
		NewRate:         r.LatestRentalRate,
		EffectiveDate:   r.LatestRateIncreaseDate.String(),
	}
}
