package reminder

import "github.com/shopspring/decimal"

// RateReminderQuery filters the rate-increase reminder list
type RateReminderQuery struct {
	// Month keeps only snapshots whose reminder date falls in this month
	// (1-12); zero disables the filter
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	// MinMonths keeps only properties whose last increase is at least this
	// many whole calendar months old
	MinMonths int `form:"min_months" binding:"omitempty,min=0"`
}

// RateReminder is one row in the rate-increase reminder list
type RateReminder struct {
	PropertyAddress                 string          `json:"property_address"`
	LatestRateIncreaseDate          string          `json:"latest_rate_increase_date"`
	LatestRentalRate                decimal.Decimal `json:"latest_rental_rate"`
	NextAllowableRentalIncreaseDate string          `json:"next_allowable_rental_increase_date"`
	NextAllowableRentalRate         decimal.Decimal `json:"next_allowable_rental_rate"`
	ReminderDate                    string          `json:"reminder_date"`
	MonthsSinceIncrease             int             `json:"months_since_increase"`
	IncreaseAllowed                 bool            `json:"increase_allowed"`
}

// BirthdayReminderQuery filters the birthday reminder list
type BirthdayReminderQuery struct {
	// Month selects the birthday month (1-12); zero means the current month
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// BirthdayReminder is one row in the birthday reminder list
type BirthdayReminder struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	PropertyAddress string `json:"property_address"`
	Birthday        string `json:"birthday"`
	DayOfMonth      int    `json:"day_of_month"`
	ContactNumber   string `json:"contact_number,omitempty"`
	Email           string `json:"email,omitempty"`
}

// Roles used in birthday reminder rows
const (
	RoleOwner  = "owner"
	RoleTenant = "tenant"
)
