package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/property"
	"github.com/rentfolio/backend/internal/domain/tenancy"
)

// CreatePropertyRequest represents a request to register a new property
type CreatePropertyRequest struct {
	Address     string `json:"address" binding:"required,min=1,max=300"`
	KeyNumber   string `json:"key_number" binding:"max=50"`
	ServiceType string `json:"service_type" binding:"required,oneof=full_service tenant_replacement"`
	Notes       string `json:"notes"`
}

// UpdatePropertyRequest represents a request to update a property's details.
// The address is immutable and cannot be changed here.
type UpdatePropertyRequest struct {
	KeyNumber   *string `json:"key_number" binding:"omitempty,max=50"`
	ServiceType *string `json:"service_type" binding:"omitempty,oneof=full_service tenant_replacement"`
	Notes       *string `json:"notes"`
}

// SetStrataContactRequest represents a request to record the strata
// management contact for a property
type SetStrataContactRequest struct {
	Company     string `json:"company" binding:"max=200"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
}

// AddOwnerRequest represents a request to attach an owner to a property
type AddOwnerRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=200"`
	ContactNumber      string `json:"contact_number" binding:"max=50"`
	Email              string `json:"email" binding:"omitempty,email,max=200"`
	Birthday           string `json:"birthday" binding:"omitempty,calendardate"`
	ResidentialAddress string `json:"residential_address" binding:"max=300"`
}

// UpdateOwnerRequest represents a request to update an owner's details
type UpdateOwnerRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=200"`
	ContactNumber      string `json:"contact_number" binding:"max=50"`
	Email              string `json:"email" binding:"omitempty,email,max=200"`
	Birthday           string `json:"birthday" binding:"omitempty,calendardate"`
	ResidentialAddress string `json:"residential_address" binding:"max=300"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID                uuid.UUID `json:"id"`
	Address           string    `json:"address"`
	KeyNumber         string    `json:"key_number"`
	ServiceType       string    `json:"service_type"`
	StrataCompany     string    `json:"strata_company"`
	StrataContactName string    `json:"strata_contact_name"`
	StrataPhone       string    `json:"strata_phone"`
	StrataEmail       string    `json:"strata_email"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// OwnerResponse represents an owner in API responses
type OwnerResponse struct {
	ID                 uuid.UUID `json:"id"`
	PropertyID         uuid.UUID `json:"property_id"`
	Name               string    `json:"name"`
	ContactNumber      string    `json:"contact_number"`
	Email              string    `json:"email"`
	Birthday           string    `json:"birthday,omitempty"`
	ResidentialAddress string    `json:"residential_address"`
}

// TenantSummary represents a tenant row inside a property detail response
type TenantSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	MoveInDate    string    `json:"move_in_date"`
	MoveOutDate   string    `json:"move_out_date,omitempty"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	IsPrimary     bool      `json:"is_primary"`
	IsActive      bool      `json:"is_active"`
}

// RentalInfo carries the rate snapshot inside a property detail response.
// It is present only when the snapshot belongs to the current tenancy.
type RentalInfo struct {
	LatestRateIncreaseDate          string          `json:"latest_rate_increase_date"`
	LatestRentalRate                decimal.Decimal `json:"latest_rental_rate"`
	NextAllowableRentalIncreaseDate string          `json:"next_allowable_rental_increase_date"`
	NextAllowableRentalRate         decimal.Decimal `json:"next_allowable_rental_rate"`
	ReminderDate                    string          `json:"reminder_date"`
}

// PropertyDetailResponse is the assembled view of a property: the property
// itself, its owners, the full tenant history, the current tenant and the
// rental info when it applies to the current tenancy.
type PropertyDetailResponse struct {
	Property      PropertyResponse `json:"property"`
	Owners        []OwnerResponse  `json:"owners"`
	Tenants       []TenantSummary  `json:"tenants"`
	CurrentTenant *TenantSummary   `json:"current_tenant,omitempty"`
	Rental        *RentalInfo      `json:"rental,omitempty"`
}

// ToPropertyResponse converts a property aggregate to its response form
func ToPropertyResponse(p *property.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:                p.ID,
		Address:           p.Address,
		KeyNumber:         p.KeyNumber,
		ServiceType:       string(p.ServiceType),
		StrataCompany:     p.StrataCompany,
		StrataContactName: p.StrataContactName,
		StrataPhone:       p.StrataPhone,
		StrataEmail:       p.StrataEmail,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToOwnerResponse converts an owner to its response form
func ToOwnerResponse(o *property.Owner) *OwnerResponse {
	resp := &OwnerResponse{
		ID:                 o.ID,
		PropertyID:         o.PropertyID,
		Name:               o.Name,
		ContactNumber:      o.ContactNumber,
		Email:              o.Email,
		ResidentialAddress: o.ResidentialAddress,
	}
	if o.HasBirthday() {
		resp.Birthday = o.Birthday.String()
	}
	return resp
}

// ToTenantSummary converts a tenant to the summary row used in property
// detail responses
func ToTenantSummary(t *tenancy.Tenant) *TenantSummary {
	summary := &TenantSummary{
		ID:            t.ID,
		Name:          t.Name,
		MoveInDate:    t.MoveInDate.String(),
		ContactNumber: t.ContactNumber,
		Email:         t.Email,
		IsPrimary:     t.IsPrimary,
		IsActive:      t.IsActive(),
	}
	if !t.MoveOutDate.IsZero() {
		summary.MoveOutDate = t.MoveOutDate.String()
	}
	return summary
}
