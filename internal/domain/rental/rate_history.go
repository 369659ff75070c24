package rental

import (
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// RateHistory is one entry in the append-only rate change log for a
// property. Entries are immutable once written; a previous rate of zero is
// the sentinel for the initial entry.
type RateHistory struct {
	shared.BaseEntity
	PropertyAddress string                   `gorm:"type:varchar(300);not null;index"`
	IncreaseDate    valueobject.CalendarDate `gorm:"type:date;not null"`
	PreviousRate    decimal.Decimal          `gorm:"type:decimal(12,2);not null"`
	NewRate         decimal.Decimal          `gorm:"type:decimal(12,2);not null"`
	Notes           string                   `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (RateHistory) TableName() string {
	return "rate_histories"
}

// NewRateHistory creates a history entry for a recorded rate change.
func NewRateHistory(propertyAddress string, increaseDate valueobject.CalendarDate, previousRate, newRate decimal.Decimal, notes string) (*RateHistory, error) {
	if propertyAddress == "" {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property address is required")
	}
	if increaseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Increase date is required")
	}
	if err := ValidateRate(newRate); err != nil {
		return nil, err
	}
	if previousRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Previous rate cannot be negative")
	}

	return &RateHistory{
		BaseEntity:      shared.NewBaseEntity(),
		PropertyAddress: propertyAddress,
		IncreaseDate:    increaseDate,
		PreviousRate:    previousRate,
		NewRate:         newRate,
		Notes:           notes,
	}, nil
}

// IsInitial reports whether the entry recorded the first rate for the
// property (no prior rate to compare against).
func (h *RateHistory) IsInitial() bool {
	return h.PreviousRate.IsZero()
}

// PercentChangeDisplay formats the increase as a percentage, or "N/A" for
// the initial entry.
func (h *RateHistory) PercentChangeDisplay() string {
	return PercentChange(h.PreviousRate, h.NewRate)
}
