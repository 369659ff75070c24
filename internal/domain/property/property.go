package property

import (
	"strings"
	"time"

	"github.com/rentfolio/backend/internal/domain/shared"
)

// ServiceType represents the management service level for a property
type ServiceType string

const (
	ServiceTypeFullService       ServiceType = "full_service"       // Full-Service Management
	ServiceTypeTenantReplacement ServiceType = "tenant_replacement" // Tenant Replacement Service
)

// Property represents a managed rental property.
// It is the aggregate root for property-related operations; the street
// address is the immutable business identity shared with the rental and
// tenancy contexts.
type Property struct {
	shared.BaseAggregateRoot
	Address           string      `gorm:"type:varchar(300);not null;uniqueIndex"`
	KeyNumber         string      `gorm:"type:varchar(50)"`
	ServiceType       ServiceType `gorm:"type:varchar(30);not null;default:'full_service'"`
	StrataCompany     string      `gorm:"type:varchar(200)"`
	StrataContactName string      `gorm:"type:varchar(100)"`
	StrataPhone       string      `gorm:"type:varchar(50)"`
	StrataEmail       string      `gorm:"type:varchar(200)"`
	Notes             string      `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Property) TableName() string {
	return "properties"
}

// NewProperty creates a new property with required fields
func NewProperty(address, keyNumber string, serviceType ServiceType) (*Property, error) {
	address = strings.TrimSpace(address)
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	if err := validateServiceType(serviceType); err != nil {
		return nil, err
	}

	p := &Property{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Address:           address,
		KeyNumber:         keyNumber,
		ServiceType:       serviceType,
	}

	p.AddDomainEvent(NewPropertyCreatedEvent(p))

	return p, nil
}

// UpdateDetails updates the mutable property fields. The address is the
// property's identity and cannot be changed here.
func (p *Property) UpdateDetails(keyNumber string, serviceType ServiceType) error {
	if err := validateServiceType(serviceType); err != nil {
		return err
	}

	p.KeyNumber = keyNumber
	p.ServiceType = serviceType
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPropertyUpdatedEvent(p))

	return nil
}

// SetStrataContact sets the optional strata contact fields
func (p *Property) SetStrataContact(company, contactName, phone, email string) error {
	if company != "" && len(company) > 200 {
		return shared.NewDomainError("INVALID_STRATA_COMPANY", "Strata company cannot exceed 200 characters")
	}
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_STRATA_CONTACT", "Strata contact name cannot exceed 100 characters")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_STRATA_PHONE", "Strata phone cannot exceed 50 characters")
	}
	if email != "" && len(email) > 200 {
		return shared.NewDomainError("INVALID_STRATA_EMAIL", "Strata email cannot exceed 200 characters")
	}

	p.StrataCompany = company
	p.StrataContactName = contactName
	p.StrataPhone = phone
	p.StrataEmail = email
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetNotes sets free-form notes
func (p *Property) SetNotes(notes string) {
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsFullService returns true for fully managed properties
func (p *Property) IsFullService() bool {
	return p.ServiceType == ServiceTypeFullService
}

func validateAddress(address string) error {
	if address == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Property address cannot be empty")
	}
	if len(address) > 300 {
		return shared.NewDomainError("INVALID_ADDRESS", "Property address cannot exceed 300 characters")
	}
	return nil
}

func validateServiceType(t ServiceType) error {
	switch t {
	case ServiceTypeFullService, ServiceTypeTenantReplacement:
		return nil
	default:
		return shared.NewDomainError("INVALID_SERVICE_TYPE", "Service type must be 'full_service' or 'tenant_replacement'")
	}
}
