package tenancy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/backend/internal/domain/property"
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/rentfolio/backend/internal/domain/tenancy"
)

// Mock implementations

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

const testAddress = "18 Rimu Lane"

func testProperty(t *testing.T) *property.Property {
	t.Helper()
	p, err := property.NewProperty(testAddress, "", property.ServiceTypeFullService)
	require.NoError(t, err)
	return p
}

func TestTenantService_MoveIn(t *testing.T) {
	ctx := context.Background()

	t.Run("requires the property to exist", func(t *testing.T) {
		tenantRepo := new(mockTenantRepository)
		propertyRepo := new(mockPropertyRepository)
		service := NewTenantService(tenantRepo, propertyRepo)

		propertyRepo.On("FindByAddress", ctx, testAddress).Return(nil, shared.ErrNotFound)

		_, err := service.MoveIn(ctx, MoveInRequest{
			PropertyAddress: testAddress,
			Name:            "Sam Kereama",
			MoveInDate:      "2024-04-01",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("demotes the previous primary tenant", func(t *testing.T) {
		tenantRepo := new(mockTenantRepository)
		propertyRepo := new(mockPropertyRepository)
		service := NewTenantService(tenantRepo, propertyRepo)

		existing, err := tenancy.NewTenant(testAddress, "Rose Tan", valueobject.MustParseCalendarDate("2022-01-01"), valueobject.CalendarDate{}, true)
		require.NoError(t, err)

		propertyRepo.On("FindByAddress", ctx, testAddress).Return(testProperty(t), nil)
		tenantRepo.On("FindActiveByProperty", ctx, testAddress).Return([]tenancy.Tenant{*existing}, nil)
		tenantRepo.On("Save", ctx, mock.AnythingOfType("*tenancy.Tenant")).Return(nil)

		resp, err := service.MoveIn(ctx, MoveInRequest{
			PropertyAddress: testAddress,
			Name:            "Sam Kereama",
			MoveInDate:      "2024-04-01",
			IsPrimary:       true,
		})
		require.NoError(t, err)
		assert.True(t, resp.IsPrimary)

		// First save demotes the old primary, second saves the new tenant.
		var saved []*tenancy.Tenant
		for _, call := range tenantRepo.Calls {
			if call.Method == "Save" {
				saved = append(saved, call.Arguments.Get(1).(*tenancy.Tenant))
			}
		}
		require.Len(t, saved, 2)
		assert.Equal(t, "Rose Tan", saved[0].Name)
		assert.False(t, saved[0].IsPrimary)
	})

	t.Run("records optional contact details and birthday", func(t *testing.T) {
		tenantRepo := new(mockTenantRepository)
		propertyRepo := new(mockPropertyRepository)
		service := NewTenantService(tenantRepo, propertyRepo)

		propertyRepo.On("FindByAddress", ctx, testAddress).Return(testProperty(t), nil)
		tenantRepo.On("Save", ctx, mock.AnythingOfType("*tenancy.Tenant")).Return(nil)

		resp, err := service.MoveIn(ctx, MoveInRequest{
			PropertyAddress: testAddress,
			Name:            "Sam Kereama",
			MoveInDate:      "2024-04-01",
			ContactNumber:   "022 555 0134",
			Birthday:        "1990-11-03",
		})
		require.NoError(t, err)
		assert.Equal(t, "1990-11-03", resp.Birthday)
		assert.True(t, resp.IsActive)
	})
}

func TestTenantService_MoveOut(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(mockTenantRepository)
	propertyRepo := new(mockPropertyRepository)
	service := NewTenantService(tenantRepo, propertyRepo)

	tenant, err := tenancy.NewTenant(testAddress, "Rose Tan", valueobject.MustParseCalendarDate("2022-01-01"), valueobject.CalendarDate{}, true)
	require.NoError(t, err)

	tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
	tenantRepo.On("Save", ctx, tenant).Return(nil)

	resp, err := service.MoveOut(ctx, tenant.ID, MoveOutRequest{MoveOutDate: "2024-06-30"})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-30", resp.MoveOutDate)
	assert.False(t, resp.IsActive)
	assert.False(t, resp.IsPrimary)

	// A second move-out is refused.
	_, err = service.MoveOut(ctx, tenant.ID, MoveOutRequest{MoveOutDate: "2024-07-31"})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestTenantService_MoveOut_BeforeMoveIn(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(mockTenantRepository)
	propertyRepo := new(mockPropertyRepository)
	service := NewTenantService(tenantRepo, propertyRepo)

	tenant, err := tenancy.NewTenant(testAddress, "Rose Tan", valueobject.MustParseCalendarDate("2022-01-01"), valueobject.CalendarDate{}, false)
	require.NoError(t, err)

	tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)

	_, err = service.MoveOut(ctx, tenant.ID, MoveOutRequest{MoveOutDate: "2021-12-31"})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TENANCY_PERIOD", domainErr.Code)
}
