package property

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/backend/internal/domain/property"
	"github.com/rentfolio/backend/internal/domain/rental"
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/rentfolio/backend/internal/domain/tenancy"
)

// Mock implementations

type mockPropertyRepository struct {
	mock.Mock
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *mockPropertyRepository) FindByAddress(ctx context.Context, address string) (*property.Property, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *mockPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *mockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyRepository) ExistsByAddress(ctx context.Context, address string) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

type mockOwnerRepository struct {
	mock.Mock
}

func (m *mockOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Owner), args.Error(1)
}

func (m *mockOwnerRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.Owner, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Owner), args.Error(1)
}

func (m *mockOwnerRepository) FindWithBirthdayInMonth(ctx context.Context, month int) ([]property.Owner, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Owner), args.Error(1)
}

func (m *mockOwnerRepository) Save(ctx context.Context, o *property.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTenantRepository struct {
	mock.Mock
}

func (m *mockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*tenancy.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenancy.Tenant), args.Error(1)
}

func (m *mockTenantRepository) FindByProperty(ctx context.Context, propertyAddress string) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, propertyAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *mockTenantRepository) FindActiveByProperty(ctx context.Context, propertyAddress string) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, propertyAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *mockTenantRepository) FindActiveAsOf(ctx context.Context, propertyAddress string, asOf valueobject.CalendarDate) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, propertyAddress, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *mockTenantRepository) FindActiveWithBirthdayInMonth(ctx context.Context, month int) ([]tenancy.Tenant, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tenancy.Tenant), args.Error(1)
}

func (m *mockTenantRepository) Save(ctx context.Context, t *tenancy.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRateIncreaseRepository struct {
	mock.Mock
}

func (m *mockRateIncreaseRepository) FindByAddress(ctx context.Context, propertyAddress string) (*rental.RateIncrease, error) {
	args := m.Called(ctx, propertyAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.RateIncrease), args.Error(1)
}

func (m *mockRateIncreaseRepository) FindAll(ctx context.Context) ([]rental.RateIncrease, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rental.RateIncrease), args.Error(1)
}

func (m *mockRateIncreaseRepository) ExistsByAddress(ctx context.Context, propertyAddress string) (bool, error) {
	args := m.Called(ctx, propertyAddress)
	return args.Bool(0), args.Error(1)
}

func (m *mockRateIncreaseRepository) Save(ctx context.Context, r *rental.RateIncrease) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRateIncreaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type serviceMocks struct {
	propertyRepo *mockPropertyRepository
	ownerRepo    *mockOwnerRepository
	tenantRepo   *mockTenantRepository
	rateRepo     *mockRateIncreaseRepository
}

func newServiceWithMocks() (*PropertyService, serviceMocks) {
	m := serviceMocks{
		propertyRepo: new(mockPropertyRepository),
		ownerRepo:    new(mockOwnerRepository),
		tenantRepo:   new(mockTenantRepository),
		rateRepo:     new(mockRateIncreaseRepository),
	}
	return NewPropertyService(m.propertyRepo, m.ownerRepo, m.tenantRepo, m.rateRepo), m
}

const testAddress = "7 Beach Grove"

func testProperty(t *testing.T) *property.Property {
	t.Helper()
	p, err := property.NewProperty(testAddress, "K-204", property.ServiceTypeFullService)
	require.NoError(t, err)
	return p
}

func testTenant(t *testing.T, name, moveIn, moveOut string, primary bool) tenancy.Tenant {
	t.Helper()
	var out valueobject.CalendarDate
	if moveOut != "" {
		out = valueobject.MustParseCalendarDate(moveOut)
	}
	tenant, err := tenancy.NewTenant(testAddress, name, valueobject.MustParseCalendarDate(moveIn), out, primary)
	require.NoError(t, err)
	return *tenant
}

func testSnapshot(t *testing.T, rate int64, effective string) *rental.RateIncrease {
	t.Helper()
	snapshot, err := rental.NewRateIncrease(testAddress, decimal.NewFromInt(rate), valueobject.MustParseCalendarDate(effective))
	require.NoError(t, err)
	return snapshot
}

func TestPropertyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a duplicate address", func(t *testing.T) {
		service, m := newServiceWithMocks()
		m.propertyRepo.On("ExistsByAddress", ctx, testAddress).Return(true, nil)

		_, err := service.Create(ctx, CreatePropertyRequest{
			Address:     testAddress,
			ServiceType: "full_service",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("saves a valid property", func(t *testing.T) {
		service, m := newServiceWithMocks()
		m.propertyRepo.On("ExistsByAddress", ctx, testAddress).Return(false, nil)
		m.propertyRepo.On("Save", ctx, mock.AnythingOfType("*property.Property")).Return(nil)

		resp, err := service.Create(ctx, CreatePropertyRequest{
			Address:     testAddress,
			KeyNumber:   "K-204",
			ServiceType: "tenant_replacement",
			Notes:       "Corner unit",
		})
		require.NoError(t, err)
		assert.Equal(t, testAddress, resp.Address)
		assert.Equal(t, "tenant_replacement", resp.ServiceType)
		assert.Equal(t, "Corner unit", resp.Notes)
	})
}

func TestPropertyService_GetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches rental info for the current tenancy", func(t *testing.T) {
		service, m := newServiceWithMocks()
		p := testProperty(t)

		tenants := []tenancy.Tenant{
			testTenant(t, "Maia Ropata", "2023-02-01", "", true),
			testTenant(t, "Old Tenant", "2020-01-01", "2023-01-15", false),
		}

		m.propertyRepo.On("FindByID", ctx, p.ID).Return(p, nil)
		m.ownerRepo.On("FindByProperty", ctx, p.ID).Return([]property.Owner(nil), nil)
		m.tenantRepo.On("FindByProperty", ctx, testAddress).Return(tenants, nil)
		m.rateRepo.On("FindByAddress", ctx, testAddress).Return(testSnapshot(t, 2500, "2023-02-01"), nil)

		detail, err := service.GetDetail(ctx, p.ID)
		require.NoError(t, err)

		require.NotNil(t, detail.CurrentTenant)
		assert.Equal(t, "Maia Ropata", detail.CurrentTenant.Name)
		require.NotNil(t, detail.Rental)
		assert.Equal(t, "2023-02-01", detail.Rental.LatestRateIncreaseDate)
		assert.Equal(t, "2024-02-01", detail.Rental.NextAllowableRentalIncreaseDate)
		assert.Len(t, detail.Tenants, 2)
	})

	t.Run("hides rental info left over from a previous tenancy", func(t *testing.T) {
		service, m := newServiceWithMocks()
		p := testProperty(t)

		tenants := []tenancy.Tenant{
			testTenant(t, "New Tenant", "2024-03-01", "", true),
		}

		m.propertyRepo.On("FindByID", ctx, p.ID).Return(p, nil)
		m.ownerRepo.On("FindByProperty", ctx, p.ID).Return([]property.Owner(nil), nil)
		m.tenantRepo.On("FindByProperty", ctx, testAddress).Return(tenants, nil)
		// Snapshot predates the new tenant's move-in.
		m.rateRepo.On("FindByAddress", ctx, testAddress).Return(testSnapshot(t, 2100, "2023-06-01"), nil)

		detail, err := service.GetDetail(ctx, p.ID)
		require.NoError(t, err)

		require.NotNil(t, detail.CurrentTenant)
		assert.Nil(t, detail.Rental)
	})

	t.Run("omits rental info when nobody is active", func(t *testing.T) {
		service, m := newServiceWithMocks()
		p := testProperty(t)

		tenants := []tenancy.Tenant{
			testTenant(t, "Old Tenant", "2020-01-01", "2023-01-15", false),
		}

		m.propertyRepo.On("FindByID", ctx, p.ID).Return(p, nil)
		m.ownerRepo.On("FindByProperty", ctx, p.ID).Return([]property.Owner(nil), nil)
		m.tenantRepo.On("FindByProperty", ctx, testAddress).Return(tenants, nil)

		detail, err := service.GetDetail(ctx, p.ID)
		require.NoError(t, err)

		assert.Nil(t, detail.CurrentTenant)
		assert.Nil(t, detail.Rental)
		m.rateRepo.AssertNotCalled(t, "FindByAddress", mock.Anything, mock.Anything)
	})

	t.Run("tolerates a property with no rate record", func(t *testing.T) {
		service, m := newServiceWithMocks()
		p := testProperty(t)

		tenants := []tenancy.Tenant{
			testTenant(t, "Maia Ropata", "2023-02-01", "", true),
		}

		m.propertyRepo.On("FindByID", ctx, p.ID).Return(p, nil)
		m.ownerRepo.On("FindByProperty", ctx, p.ID).Return([]property.Owner(nil), nil)
		m.tenantRepo.On("FindByProperty", ctx, testAddress).Return(tenants, nil)
		m.rateRepo.On("FindByAddress", ctx, testAddress).Return(nil, shared.ErrNotFound)

		detail, err := service.GetDetail(ctx, p.ID)
		require.NoError(t, err)

		require.NotNil(t, detail.CurrentTenant)
		assert.Nil(t, detail.Rental)
	})
}

func TestPropertyService_AddOwner(t *testing.T) {
	ctx := context.Background()
	service, m := newServiceWithMocks()
	p := testProperty(t)

	m.propertyRepo.On("FindByID", ctx, p.ID).Return(p, nil)
	m.ownerRepo.On("Save", ctx, mock.AnythingOfType("*property.Owner")).Return(nil)

	resp, err := service.AddOwner(ctx, p.ID, AddOwnerRequest{
		Name:          "Priya Sharma",
		ContactNumber: "021 555 0101",
		Birthday:      "1975-07-14",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", resp.Name)
	assert.Equal(t, "1975-07-14", resp.Birthday)
}
