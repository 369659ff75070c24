package rental

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/rental"
)

// Write modes for SetInitialRate. Create refuses to touch an existing
// record; Overwrite replaces the snapshot, which is the new-tenancy path.
const (
	ModeCreate    = "create"
	ModeOverwrite = "overwrite"
)

// SetInitialRateRequest represents a request to establish the rental rate
// baseline for a property.
type SetInitialRateRequest struct {
	PropertyAddress string          `json:"property_address" binding:"required,min=1,max=500"`
	RentalRate      decimal.Decimal `json:"rental_rate" binding:"required"`
	EffectiveDate   string          `json:"effective_date" binding:"required,calendardate"`
	Mode            string          `json:"mode" binding:"omitempty,oneof=create overwrite"`
	Notes           string          `json:"notes"`
}

// RecordIncreaseRequest represents a request to record a rental rate increase
// against an existing rate record.
type RecordIncreaseRequest struct {
	PropertyAddress string          `json:"property_address" binding:"required,min=1,max=500"`
	NewRate         decimal.Decimal `json:"new_rate" binding:"required"`
	IncreaseDate    string          `json:"increase_date" binding:"required,calendardate"`
	Notes           string          `json:"notes"`
}

// RateIncreaseResponse represents the rate snapshot for a property.
type RateIncreaseResponse struct {
	PropertyAddress                 string          `json:"property_address"`
	LatestRateIncreaseDate          string          `json:"latest_rate_increase_date"`
	LatestRentalRate                decimal.Decimal `json:"latest_rental_rate"`
	NextAllowableRentalIncreaseDate string          `json:"next_allowable_rental_increase_date"`
	NextAllowableRentalRate         decimal.Decimal `json:"next_allowable_rental_rate"`
	ReminderDate                    string          `json:"reminder_date"`
	UpdatedAt                       time.Time       `json:"updated_at"`
}

// RateHistoryEntryResponse represents one immutable history row.
type RateHistoryEntryResponse struct {
	ID              string          `json:"id"`
	PropertyAddress string          `json:"property_address"`
	IncreaseDate    string          `json:"increase_date"`
	PreviousRate    decimal.Decimal `json:"previous_rate"`
	NewRate         decimal.Decimal `json:"new_rate"`
	PercentChange   string          `json:"percent_change"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToRateIncreaseResponse converts a snapshot aggregate to its response form.
func ToRateIncreaseResponse(r *rental.RateIncrease) *RateIncreaseResponse {
	return &RateIncreaseResponse{
		PropertyAddress:                 r.PropertyAddress,
		LatestRateIncreaseDate:          r.LatestRateIncreaseDate.String(),
		LatestRentalRate:                r.LatestRentalRate,
		NextAllowableRentalIncreaseDate: r.NextAllowableRentalIncreaseDate.String(),
		NextAllowableRentalRate:         r.NextAllowableRentalRate,
		ReminderDate:                    r.ReminderDate.String(),
		UpdatedAt:                       r.UpdatedAt,
	}
}

// ToRateHistoryEntryResponse converts a history entity to its response form.
func ToRateHistoryEntryResponse(h *rental.RateHistory) *RateHistoryEntryResponse {
	return &RateHistoryEntryResponse{
		ID:              h.ID.String(),
		PropertyAddress: h.PropertyAddress,
		IncreaseDate:    h.IncreaseDate.String(),
		PreviousRate:    h.PreviousRate,
		NewRate:         h.NewRate,
		PercentChange:   h.PercentChangeDisplay(),
		Notes:           h.Notes,
		CreatedAt:       h.CreatedAt,
	}
}
