package rental

import (
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Schedule rules for rental rate increases. An increase is allowed at most
// once every twelve calendar months, capped at 3% of the current rate, and
// the reminder to prepare the notice fires eight months in.
const (
	MonthsBetweenIncreases = 12
	MonthsUntilReminder    = 8
)

// maxAnnualIncreaseFactor is 1 + the 3% annual cap.
var maxAnnualIncreaseFactor = decimal.NewFromFloat(1.03)

// RateSchedule holds the values derived from one recorded rate: when the
// next increase becomes allowable, what it may rise to, and when to remind.
type RateSchedule struct {
	NextAllowableDate valueobject.CalendarDate
	NextAllowableRate decimal.Decimal
	ReminderDate      valueobject.CalendarDate
}

// ComputeSchedule derives the schedule from an effective date and rate.
// Month arithmetic clamps at month end (a Jan 31 increase becomes allowable
// again on the following Jan 31, with the Sep 30 reminder).
func ComputeSchedule(effectiveDate valueobject.CalendarDate, rate decimal.Decimal) (RateSchedule, error) {
	if effectiveDate.IsZero() {
		return RateSchedule{}, shared.NewDomainError("INVALID_DATE", "Effective date is required")
	}
	if err := ValidateRate(rate); err != nil {
		return RateSchedule{}, err
	}
	return RateSchedule{
		NextAllowableDate: effectiveDate.AddMonths(MonthsBetweenIncreases),
		NextAllowableRate: NextAllowableRate(rate),
		ReminderDate:      effectiveDate.AddMonths(MonthsUntilReminder),
	}, nil
}

// NextAllowableRate returns the rate after the maximum annual increase,
// rounded to cents.
func NextAllowableRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(maxAnnualIncreaseFactor).Round(2)
}

// ValidateRate rejects zero and negative rental rates.
func ValidateRate(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_RATE", "Rental rate must be positive")
	}
	return nil
}

// PercentChange formats the percentage change from previous to next as a
// display string with one decimal place. A zero previous rate has no
// meaningful baseline and yields "N/A" rather than a division by zero.
func PercentChange(previous, next decimal.Decimal) string {
	if previous.IsZero() {
		return "N/A"
	}
	pct := next.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1)
	return pct.String() + "%"
}
