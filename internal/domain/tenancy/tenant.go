package tenancy

import (
	"regexp"
	"time"

	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
)

// Tenant represents one tenancy at a property: a person and the period they
// occupy (or occupied) it. A property accumulates many tenants over time;
// the ones without a move-out date are the active set.
type Tenant struct {
	shared.BaseAggregateRoot
	PropertyAddress string                   `gorm:"type:varchar(300);not null;index"`
	Name            string                   `gorm:"type:varchar(200);not null"`
	MoveInDate      valueobject.CalendarDate `gorm:"type:date;not null"`
	MoveOutDate     valueobject.CalendarDate `gorm:"type:date"`
	ContactNumber   string                   `gorm:"type:varchar(50)"`
	Email           string                   `gorm:"type:varchar(200)"`
	Birthday        valueobject.CalendarDate `gorm:"type:date"`
	IsPrimary       bool                     `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new tenant. The move-in date is required; a move-out
// date, when supplied, must not precede it.
func NewTenant(propertyAddress, name string, moveIn, moveOut valueobject.CalendarDate, isPrimary bool) (*Tenant, error) {
	if propertyAddress == "" {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Tenant must belong to a property address")
	}
	if err := validateTenantName(name); err != nil {
		return nil, err
	}
	if moveIn.IsZero() {
		return nil, shared.NewDomainError("INVALID_TENANCY_PERIOD", "Move-in date is required")
	}
	if err := validatePeriod(moveIn, moveOut); err != nil {
		return nil, err
	}

	t := &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PropertyAddress:   propertyAddress,
		Name:              name,
		MoveInDate:        moveIn,
		MoveOutDate:       moveOut,
		IsPrimary:         isPrimary,
	}

	t.AddDomainEvent(NewTenantMovedInEvent(t))

	return t, nil
}

// Update updates the tenant's personal details
func (t *Tenant) Update(name, contactNumber, email string, birthday valueobject.CalendarDate) error {
	if err := validateTenantName(name); err != nil {
		return err
	}
	if contactNumber != "" {
		if len(contactNumber) > 50 || !phonePattern.MatchString(contactNumber) {
			return shared.NewDomainError("INVALID_PHONE", "Invalid contact number")
		}
	}
	if email != "" {
		if len(email) > 200 || !emailPattern.MatchString(email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
	}

	t.Name = name
	t.ContactNumber = contactNumber
	t.Email = email
	t.Birthday = birthday
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// RecordMoveOut records the end of the tenancy. The move-out date must not
// precede the move-in date.
func (t *Tenant) RecordMoveOut(moveOut valueobject.CalendarDate) error {
	if moveOut.IsZero() {
		return shared.NewDomainError("INVALID_TENANCY_PERIOD", "Move-out date is required")
	}
	if err := validatePeriod(t.MoveInDate, moveOut); err != nil {
		return err
	}
	if !t.MoveOutDate.IsZero() {
		return shared.NewDomainError("INVALID_STATE", "Tenant has already moved out")
	}

	t.MoveOutDate = moveOut
	t.IsPrimary = false
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTenantMovedOutEvent(t))

	return nil
}

// SetPrimary marks or unmarks this tenant as the primary one for
// single-tenant display contexts. Only active tenants can be primary.
func (t *Tenant) SetPrimary(primary bool) error {
	if primary && !t.IsActive() {
		return shared.NewDomainError("INVALID_STATE", "A moved-out tenant cannot be primary")
	}
	t.IsPrimary = primary
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// IsActive reports whether the tenant currently occupies the property
func (t *Tenant) IsActive() bool {
	return t.MoveOutDate.IsZero()
}

// IsActiveAsOf reports whether the tenant occupied the property on the given
// date: moved in on or before it and, if moved out, only strictly after it.
func (t *Tenant) IsActiveAsOf(date valueobject.CalendarDate) bool {
	if t.MoveInDate.After(date) {
		return false
	}
	return t.MoveOutDate.IsZero() || t.MoveOutDate.After(date)
}

// HasBirthday reports whether a birthday is recorded
func (t *Tenant) HasBirthday() bool {
	return !t.Birthday.IsZero()
}

var (
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validateTenantName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot exceed 200 characters")
	}
	return nil
}

func validatePeriod(moveIn, moveOut valueobject.CalendarDate) error {
	if !moveOut.IsZero() && moveOut.Before(moveIn) {
		return shared.NewDomainError("INVALID_TENANCY_PERIOD", "Move-out date cannot precede move-in date")
	}
	return nil
}
