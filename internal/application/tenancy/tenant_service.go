package tenancy

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/property"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/rentfolio/backend/internal/domain/tenancy"
)

// TenantService handles tenancy lifecycle operations
type TenantService struct {
	tenantRepo   tenancy.TenantRepository
	propertyRepo property.PropertyRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo tenancy.TenantRepository, propertyRepo property.PropertyRepository) *TenantService {
	return &TenantService{
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
	}
}

// MoveIn records a tenant moving into a property. The property must exist;
// when the new tenant is flagged primary, any previously primary active
// tenant loses the flag.
func (s *TenantService) MoveIn(ctx context.Context, req MoveInRequest) (*TenantResponse, error) {
	p, err := s.propertyRepo.FindByAddress(ctx, req.PropertyAddress)
	if err != nil {
		return nil, err
	}

	moveIn, err := valueobject.ParseCalendarDate(req.MoveInDate)
	if err != nil {
		return nil, err
	}

	t, err := tenancy.NewTenant(p.Address, req.Name, moveIn, valueobject.CalendarDate{}, req.IsPrimary)
	if err != nil {
		return nil, err
	}

	if req.ContactNumber != "" || req.Email != "" || req.Birthday != "" {
		birthday, err := valueobject.ParseCalendarDate(req.Birthday)
		if err != nil {
			return nil, err
		}
		if err := t.Update(req.Name, req.ContactNumber, req.Email, birthday); err != nil {
			return nil, err
		}
	}

	if req.IsPrimary {
		if err := s.demoteCurrentPrimary(ctx, p.Address); err != nil {
			return nil, err
		}
	}

	if err := s.tenantRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return ToTenantResponse(t), nil
}

// GetByID returns a tenant by ID
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	t, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTenantResponse(t), nil
}

// ListByProperty returns all tenants ever recorded for a property, most
// recent move-in first
func (s *TenantService) ListByProperty(ctx context.Context, propertyAddress string) ([]TenantResponse, error) {
	tenants, err := s.tenantRepo.FindByProperty(ctx, propertyAddress)
	if err != nil {
		return nil, err
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *ToTenantResponse(&tenants[i])
	}
	return responses, nil
}

// Update updates a tenant's personal details
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	t, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	birthday, err := valueobject.ParseCalendarDate(req.Birthday)
	if err != nil {
		return nil, err
	}
	if err := t.Update(req.Name, req.ContactNumber, req.Email, birthday); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return ToTenantResponse(t), nil
}

// MoveOut records the end of a tenancy
func (s *TenantService) MoveOut(ctx context.Context, id uuid.UUID, req MoveOutRequest) (*TenantResponse, error) {
	t, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	moveOut, err := valueobject.ParseCalendarDate(req.MoveOutDate)
	if err != nil {
		return nil, err
	}
	if err := t.RecordMoveOut(moveOut); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return ToTenantResponse(t), nil
}

// SetPrimary marks a tenant as primary for their property, demoting any
// other primary active tenant there
func (s *TenantService) SetPrimary(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	t, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.demoteCurrentPrimary(ctx, t.PropertyAddress); err != nil {
		return nil, err
	}
	if err := t.SetPrimary(true); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return ToTenantResponse(t), nil
}

// Delete removes a tenant record
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tenantRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tenantRepo.Delete(ctx, id)
}

func (s *TenantService) demoteCurrentPrimary(ctx context.Context, propertyAddress string) error {
	active, err := s.tenantRepo.FindActiveByProperty(ctx, propertyAddress)
	if err != nil {
		return err
	}
	for i := range active {
		if !active[i].IsPrimary {
			continue
		}
		if err := active[i].SetPrimary(false); err != nil {
			return err
		}
		if err := s.tenantRepo.Save(ctx, &active[i]); err != nil {
			return err
		}
	}
	return nil
}
