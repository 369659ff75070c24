package rental

import (
	"time"

	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// RateIncrease is the current-rate snapshot for a property: the latest
// recorded rate plus the schedule derived from it. Exactly one row exists
// per property address and every recorded increase overwrites it in place;
// the append-only RateHistory log is the authoritative record of changes.
type RateIncrease struct {
	shared.BaseAggregateRoot
	PropertyAddress                 string                   `gorm:"type:varchar(300);not null;uniqueIndex"`
	LatestRateIncreaseDate          valueobject.CalendarDate `gorm:"type:date;not null"`
	LatestRentalRate                decimal.Decimal          `gorm:"type:decimal(12,2);not null"`
	NextAllowableRentalIncreaseDate valueobject.CalendarDate `gorm:"type:date;not null"`
	NextAllowableRentalRate         decimal.Decimal          `gorm:"type:decimal(12,2);not null"`
	ReminderDate                    valueobject.CalendarDate `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (RateIncrease) TableName() string {
	return "rate_increases"
}

// NewRateIncrease creates the snapshot for a property's initial rate.
func NewRateIncrease(propertyAddress string, rate decimal.Decimal, startDate valueobject.CalendarDate) (*RateIncrease, error) {
	if propertyAddress == "" {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Property address is required")
	}
	schedule, err := ComputeSchedule(startDate, rate)
	if err != nil {
		return nil, err
	}

	r := &RateIncrease{
		BaseAggregateRoot:               shared.NewBaseAggregateRoot(),
		PropertyAddress:                 propertyAddress,
		LatestRateIncreaseDate:          startDate,
		LatestRentalRate:                rate,
		NextAllowableRentalIncreaseDate: schedule.NextAllowableDate,
		NextAllowableRentalRate:         schedule.NextAllowableRate,
		ReminderDate:                    schedule.ReminderDate,
	}

	r.AddDomainEvent(NewRateRecordedEvent(r, decimal.Zero))

	return r, nil
}

// ApplyIncrease overwrites the snapshot with a newly recorded increase and
// recomputes the schedule. The previous rate is returned for the paired
// history entry.
func (r *RateIncrease) ApplyIncrease(increaseDate valueobject.CalendarDate, newRate decimal.Decimal) (previousRate decimal.Decimal, err error) {
	schedule, err := ComputeSchedule(increaseDate, newRate)
	if err != nil {
		return decimal.Zero, err
	}

	previousRate = r.LatestRentalRate
	r.LatestRateIncreaseDate = increaseDate
	r.LatestRentalRate = newRate
	r.NextAllowableRentalIncreaseDate = schedule.NextAllowableDate
	r.NextAllowableRentalRate = schedule.NextAllowableRate
	r.ReminderDate = schedule.ReminderDate
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRateRecordedEvent(r, previousRate))

	return previousRate, nil
}

// Reset overwrites the snapshot with a fresh initial rate, used when a new
// tenancy starts over at a new base rate.
func (r *RateIncrease) Reset(rate decimal.Decimal, startDate valueobject.CalendarDate) error {
	schedule, err := ComputeSchedule(startDate, rate)
	if err != nil {
		return err
	}

	r.LatestRateIncreaseDate = startDate
	r.LatestRentalRate = rate
	r.NextAllowableRentalIncreaseDate = schedule.NextAllowableDate
	r.NextAllowableRentalRate = schedule.NextAllowableRate
	r.ReminderDate = schedule.ReminderDate
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRateRecordedEvent(r, decimal.Zero))

	return nil
}

// ValidateAgainstHistory checks the snapshot against the most recent history
// entry. The snapshot is derived state; when the two writes diverge (a crash
// between them, manual edits) the log wins and the snapshot must not be
// trusted.
func (r *RateIncrease) ValidateAgainstHistory(latest *RateHistory) error {
	if latest == nil {
		return shared.ErrInconsistentState
	}
	if !latest.IncreaseDate.Equal(r.LatestRateIncreaseDate) || !latest.NewRate.Equal(r.LatestRentalRate) {
		return shared.ErrInconsistentState
	}
	return nil
}
