package tenancy

import (
	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/tenancy"
)

// MoveInRequest represents a request to record a tenant moving into a
// property
type MoveInRequest struct {
	PropertyAddress string `json:"property_address" binding:"required,min=1,max=300"`
	Name            string `json:"name" binding:"required,min=1,max=200"`
	MoveInDate      string `json:"move_in_date" binding:"required,calendardate"`
	ContactNumber   string `json:"contact_number" binding:"max=50"`
	Email           string `json:"email" binding:"omitempty,email,max=200"`
	Birthday        string `json:"birthday" binding:"omitempty,calendardate"`
	IsPrimary       bool   `json:"is_primary"`
}

// UpdateTenantRequest represents a request to update a tenant's details
type UpdateTenantRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactNumber string `json:"contact_number" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Birthday      string `json:"birthday" binding:"omitempty,calendardate"`
}

// MoveOutRequest represents a request to record a tenant's move-out
type MoveOutRequest struct {
	MoveOutDate string `json:"move_out_date" binding:"required,calendardate"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyAddress string    `json:"property_address"`
	Name            string    `json:"name"`
	MoveInDate      string    `json:"move_in_date"`
	MoveOutDate     string    `json:"move_out_date,omitempty"`
	ContactNumber   string    `json:"contact_number"`
	Email           string    `json:"email"`
	Birthday        string    `json:"birthday,omitempty"`
	IsPrimary       bool      `json:"is_primary"`
	IsActive        bool      `json:"is_active"`
}

// ToTenantResponse converts a tenant to its response form
func ToTenantResponse(t *tenancy.Tenant) *TenantResponse {
	resp := &TenantResponse{
		ID:              t.ID,
		PropertyAddress: t.PropertyAddress,
		Name:            t.Name,
		MoveInDate:      t.MoveInDate.String(),
		ContactNumber:   t.ContactNumber,
		Email:           t.Email,
		IsPrimary:       t.IsPrimary,
		IsActive:        t.IsActive(),
	}
	if !t.MoveOutDate.IsZero() {
		resp.MoveOutDate = t.MoveOutDate.String()
	}
	if t.HasBirthday() {
		resp.Birthday = t.Birthday.String()
	}
	return resp
}
