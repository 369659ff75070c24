package property

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/property"
	"github.com/rentfolio/backend/internal/domain/rental"
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/rentfolio/backend/internal/domain/tenancy"
)

// PropertyService handles property management operations and assembles the
// property detail view from the property, tenancy and rental contexts.
type PropertyService struct {
	propertyRepo property.PropertyRepository
	ownerRepo    property.OwnerRepository
	tenantRepo   tenancy.TenantRepository
	rateRepo     rental.RateIncreaseRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(
	propertyRepo property.PropertyRepository,
	ownerRepo property.OwnerRepository,
	tenantRepo tenancy.TenantRepository,
	rateRepo rental.RateIncreaseRepository,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		ownerRepo:    ownerRepo,
		tenantRepo:   tenantRepo,
		rateRepo:     rateRepo,
	}
}

// Create registers a new property
func (s *PropertyService) Create(ctx context.Context, req CreatePropertyRequest) (*PropertyResponse, error) {
	exists, err := s.propertyRepo.ExistsByAddress(ctx, req.Address)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A property with this address already exists")
	}

	p, err := property.NewProperty(req.Address, req.KeyNumber, property.ServiceType(req.ServiceType))
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		p.SetNotes(req.Notes)
	}

	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToPropertyResponse(p), nil
}

// GetByID returns a property by ID
func (s *PropertyService) GetByID(ctx context.Context, id uuid.UUID) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponse(p), nil
}

// List returns properties matching the filter together with the total count
func (s *PropertyService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[PropertyResponse], error) {
	properties, err := s.propertyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.propertyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]PropertyResponse, len(properties))
	for i := range properties {
		items[i] = *ToPropertyResponse(&properties[i])
	}
	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &paginated, nil
}

// Update updates a property's mutable details
func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, req UpdatePropertyRequest) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	keyNumber := p.KeyNumber
	if req.KeyNumber != nil {
		keyNumber = *req.KeyNumber
	}
	serviceType := p.ServiceType
	if req.ServiceType != nil {
		serviceType = property.ServiceType(*req.ServiceType)
	}
	if err := p.UpdateDetails(keyNumber, serviceType); err != nil {
		return nil, err
	}
	if req.Notes != nil {
		p.SetNotes(*req.Notes)
	}

	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToPropertyResponse(p), nil
}

// SetStrataContact records the strata management contact for a property
func (s *PropertyService) SetStrataContact(ctx context.Context, id uuid.UUID, req SetStrataContactRequest) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.SetStrataContact(req.Company, req.ContactName, req.Phone, req.Email); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToPropertyResponse(p), nil
}

// Delete removes a property
func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.propertyRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.propertyRepo.Delete(ctx, id)
}

// AddOwner attaches an owner to a property
func (s *PropertyService) AddOwner(ctx context.Context, propertyID uuid.UUID, req AddOwnerRequest) (*OwnerResponse, error) {
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}

	o, err := property.NewOwner(propertyID, req.Name)
	if err != nil {
		return nil, err
	}

	birthday, err := valueobject.ParseCalendarDate(req.Birthday)
	if err != nil {
		return nil, err
	}
	if err := o.Update(req.Name, req.ContactNumber, req.Email, req.ResidentialAddress, birthday); err != nil {
		return nil, err
	}

	if err := s.ownerRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return ToOwnerResponse(o), nil
}

// UpdateOwner updates an owner's details
func (s *PropertyService) UpdateOwner(ctx context.Context, ownerID uuid.UUID, req UpdateOwnerRequest) (*OwnerResponse, error) {
	o, err := s.ownerRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	birthday, err := valueobject.ParseCalendarDate(req.Birthday)
	if err != nil {
		return nil, err
	}
	if err := o.Update(req.Name, req.ContactNumber, req.Email, req.ResidentialAddress, birthday); err != nil {
		return nil, err
	}

	if err := s.ownerRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return ToOwnerResponse(o), nil
}

// RemoveOwner detaches an owner from its property
func (s *PropertyService) RemoveOwner(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := s.ownerRepo.FindByID(ctx, ownerID); err != nil {
		return err
	}
	return s.ownerRepo.Delete(ctx, ownerID)
}

// GetDetail assembles the full property view: owners, tenant history, the
// current tenant and the rate snapshot. The rental info is attached only
// when a current tenant exists and the snapshot's latest increase date is
// on or after that tenant's move-in date; a snapshot left over from a
// previous tenancy stays hidden until the rate is re-established.
func (s *PropertyService) GetDetail(ctx context.Context, id uuid.UUID) (*PropertyDetailResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owners, err := s.ownerRepo.FindByProperty(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	tenants, err := s.tenantRepo.FindByProperty(ctx, p.Address)
	if err != nil {
		return nil, err
	}

	detail := &PropertyDetailResponse{
		Property: *ToPropertyResponse(p),
		Owners:   make([]OwnerResponse, len(owners)),
		Tenants:  make([]TenantSummary, len(tenants)),
	}
	for i := range owners {
		detail.Owners[i] = *ToOwnerResponse(&owners[i])
	}
	for i := range tenants {
		detail.Tenants[i] = *ToTenantSummary(&tenants[i])
	}

	current := tenancy.CurrentTenant(tenants)
	if current == nil {
		return detail, nil
	}
	detail.CurrentTenant = ToTenantSummary(current)

	snapshot, err := s.rateRepo.FindByAddress(ctx, p.Address)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return detail, nil
		}
		return nil, err
	}
	if snapshot.LatestRateIncreaseDate.Before(current.MoveInDate) {
		return detail, nil
	}

	detail.Rental = &RentalInfo{
		LatestRateIncreaseDate:          snapshot.LatestRateIncreaseDate.String(),
		LatestRentalRate:                snapshot.LatestRentalRate,
		NextAllowableRentalIncreaseDate: snapshot.NextAllowableRentalIncreaseDate.String(),
		NextAllowableRentalRate:         snapshot.NextAllowableRentalRate,
		ReminderDate:                    snapshot.ReminderDate.String(),
	}
	return detail, nil
}
