package reminder

import (
	"context"
	"testing"
	"time"

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

func fixedClock(s string) func() time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func snapshot(t *testing.T, address string, rate int64, effective string) rental.RateIncrease {
	t.Helper()
	snap, err := rental.NewRateIncrease(address, decimal.NewFromInt(rate), valueobject.MustParseCalendarDate(effective))
	require.NoError(t, err)
	return *snap
}

func newReminderService(rateRepo *mockRateIncreaseRepository, ownerRepo *mockOwnerRepository, tenantRepo *mockTenantRepository, propertyRepo *mockPropertyRepository, today string) *ReminderService {
	return NewReminderService(rateRepo, ownerRepo, tenantRepo, propertyRepo).WithClock(fixedClock(today))
}

func TestReminderService_RateReminders(t *testing.T) {
	ctx := context.Background()

	t.Run("sorts longest-overdue first and computes months", func(t *testing.T) {
		rateRepo := new(mockRateIncreaseRepository)
		service := newReminderService(rateRepo, new(mockOwnerRepository), new(mockTenantRepository), new(mockPropertyRepository), "2024-06-15")

		rateRepo.On("FindAll", ctx).Return([]rental.RateIncrease{
			snapshot(t, "1 Short St", 2500, "2024-01-10"),
			snapshot(t, "2 Long Ave", 1850, "2022-03-01"),
			snapshot(t, "3 Mid Way", 2100, "2023-06-20"),
		}, nil)

		reminders, err := service.RateReminders(ctx, RateReminderQuery{})
		require.NoError(t, err)
		require.Len(t, reminders, 3)

		assert.Equal(t, "2 Long Ave", reminders[0].PropertyAddress)
		assert.Equal(t, 27, reminders[0].MonthsSinceIncrease)
		assert.True(t, reminders[0].IncreaseAllowed)

		assert.Equal(t, "3 Mid Way", reminders[1].PropertyAddress)
		assert.Equal(t, 11, reminders[1].MonthsSinceIncrease)
		assert.False(t, reminders[1].IncreaseAllowed)

		assert.Equal(t, "1 Short St", reminders[2].PropertyAddress)
		assert.Equal(t, 5, reminders[2].MonthsSinceIncrease)
	})

	t.Run("applies the min-months threshold", func(t *testing.T) {
		rateRepo := new(mockRateIncreaseRepository)
		service := newReminderService(rateRepo, new(mockOwnerRepository), new(mockTenantRepository), new(mockPropertyRepository), "2024-06-15")

		rateRepo.On("FindAll", ctx).Return([]rental.RateIncrease{
			snapshot(t, "1 Short St", 2500, "2024-01-10"),
			snapshot(t, "2 Long Ave", 1850, "2022-03-01"),
		}, nil)

		reminders, err := service.RateReminders(ctx, RateReminderQuery{MinMonths: 8})
		require.NoError(t, err)
		require.Len(t, reminders, 1)
		assert.Equal(t, "2 Long Ave", reminders[0].PropertyAddress)
	})

	t.Run("filters by reminder month", func(t *testing.T) {
		rateRepo := new(mockRateIncreaseRepository)
		service := newReminderService(rateRepo, new(mockOwnerRepository), new(mockTenantRepository), new(mockPropertyRepository), "2024-06-15")

		// Reminder dates land 8 months after the increase: September and
		// November respectively.
		rateRepo.On("FindAll", ctx).Return([]rental.RateIncrease{
			snapshot(t, "1 Short St", 2500, "2024-01-10"),
			snapshot(t, "2 Long Ave", 1850, "2022-03-01"),
		}, nil)

		reminders, err := service.RateReminders(ctx, RateReminderQuery{Month: 9})
		require.NoError(t, err)
		require.Len(t, reminders, 1)
		assert.Equal(t, "1 Short St", reminders[0].PropertyAddress)
	})
}

func TestReminderService_BirthdayReminders(t *testing.T) {
	ctx := context.Background()

	t.Run("merges owners and tenants sorted by day", func(t *testing.T) {
		ownerRepo := new(mockOwnerRepository)
		tenantRepo := new(mockTenantRepository)
		propertyRepo := new(mockPropertyRepository)
		service := newReminderService(new(mockRateIncreaseRepository), ownerRepo, tenantRepo, propertyRepo, "2024-07-01")

		prop, err := property.NewProperty("5 Kauri Cres", "", property.ServiceTypeFullService)
		require.NoError(t, err)

		owner, err := property.NewOwner(prop.ID, "Priya Sharma")
		require.NoError(t, err)
		require.NoError(t, owner.Update("Priya Sharma", "", "", "", valueobject.MustParseCalendarDate("1975-07-14")))

		tenant, err := tenancy.NewTenant("9 Fern Rd", "Sam Kereama", valueobject.MustParseCalendarDate("2023-01-01"), valueobject.CalendarDate{}, true)
		require.NoError(t, err)
		require.NoError(t, tenant.Update("Sam Kereama", "", "", valueobject.MustParseCalendarDate("1990-07-03")))

		ownerRepo.On("FindWithBirthdayInMonth", ctx, 7).Return([]property.Owner{*owner}, nil)
		tenantRepo.On("FindActiveWithBirthdayInMonth", ctx, 7).Return([]tenancy.Tenant{*tenant}, nil)
		propertyRepo.On("FindByID", ctx, prop.ID).Return(prop, nil)

		reminders, err := service.BirthdayReminders(ctx, BirthdayReminderQuery{Month: 7})
		require.NoError(t, err)
		require.Len(t, reminders, 2)

		assert.Equal(t, "Sam Kereama", reminders[0].Name)
		assert.Equal(t, RoleTenant, reminders[0].Role)
		assert.Equal(t, 3, reminders[0].DayOfMonth)

		assert.Equal(t, "Priya Sharma", reminders[1].Name)
		assert.Equal(t, RoleOwner, reminders[1].Role)
		assert.Equal(t, "5 Kauri Cres", reminders[1].PropertyAddress)
		assert.Equal(t, 14, reminders[1].DayOfMonth)
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		ownerRepo := new(mockOwnerRepository)
		tenantRepo := new(mockTenantRepository)
		service := newReminderService(new(mockRateIncreaseRepository), ownerRepo, tenantRepo, new(mockPropertyRepository), "2024-02-10")

		ownerRepo.On("FindWithBirthdayInMonth", ctx, 2).Return([]property.Owner(nil), nil)
		tenantRepo.On("FindActiveWithBirthdayInMonth", ctx, 2).Return([]tenancy.Tenant(nil), nil)

		reminders, err := service.BirthdayReminders(ctx, BirthdayReminderQuery{})
		require.NoError(t, err)
		assert.Empty(t, reminders)
	})
}
