package property

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
)

// Owner represents a landlord attached to exactly one property.
type Owner struct {
	shared.BaseAggregateRoot
	PropertyID         uuid.UUID                `gorm:"type:uuid;not null;index"`
	Name               string                   `gorm:"type:varchar(200);not null"`
	ContactNumber      string                   `gorm:"type:varchar(50)"`
	Email              string                   `gorm:"type:varchar(200)"`
	Birthday           valueobject.CalendarDate `gorm:"type:date"`
	ResidentialAddress string                   `gorm:"type:varchar(300)"`
}

// TableName returns the table name for GORM
func (Owner) TableName() string {
	return "owners"
}

// NewOwner creates a new owner for the given property
func NewOwner(propertyID uuid.UUID, name string) (*Owner, error) {
	if err := validateOwnerName(name); err != nil {
		return nil, err
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROPERTY", "Owner must belong to a property")
	}

	o := &Owner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PropertyID:        propertyID,
		Name:              name,
	}

	o.AddDomainEvent(NewOwnerAddedEvent(o))

	return o, nil
}

// Update updates the owner's details
func (o *Owner) Update(name, contactNumber, email, residentialAddress string, birthday valueobject.CalendarDate) error {
	if err := validateOwnerName(name); err != nil {
		return err
	}
	if contactNumber != "" {
		if err := validateContactNumber(contactNumber); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateOwnerEmail(email); err != nil {
			return err
		}
	}
	if residentialAddress != "" && len(residentialAddress) > 300 {
		return shared.NewDomainError("INVALID_RESIDENTIAL_ADDRESS", "Residential address cannot exceed 300 characters")
	}

	o.Name = name
	o.ContactNumber = contactNumber
	o.Email = email
	o.ResidentialAddress = residentialAddress
	o.Birthday = birthday
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// HasBirthday reports whether a birthday is recorded
func (o *Owner) HasBirthday() bool {
	return !o.Birthday.IsZero()
}

func validateOwnerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Owner name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Owner name cannot exceed 200 characters")
	}
	return nil
}

func validateContactNumber(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Contact number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid contact number format")
	}
	return nil
}

func validateOwnerEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
