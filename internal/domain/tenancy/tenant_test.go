package tenancy

import (
	"testing"

	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) valueobject.CalendarDate {
	return valueobject.MustParseCalendarDate(s)
}

func TestNewTenant(t *testing.T) {
	t.Run("creates active tenant", func(t *testing.T) {
		tenant, err := NewTenant("100 Test St", "Alice Wong", date("2023-06-01"), valueobject.CalendarDate{}, true)

		require.NoError(t, err)
		assert.Equal(t, "100 Test St", tenant.PropertyAddress)
		assert.True(t, tenant.IsActive())
		assert.True(t, tenant.IsPrimary)
		assert.Len(t, tenant.GetDomainEvents(), 1)
	})

	t.Run("accepts an already-closed tenancy period", func(t *testing.T) {
		tenant, err := NewTenant("100 Test St", "Bob Lee", date("2020-01-01"), date("2022-12-31"), false)

		require.NoError(t, err)
		assert.False(t, tenant.IsActive())
	})

	t.Run("refuses move-out before move-in", func(t *testing.T) {
		tenant, err := NewTenant("100 Test St", "Bob Lee", date("2023-06-01"), date("2023-05-01"), false)

		assert.Error(t, err)
		assert.Nil(t, tenant)
		assert.Contains(t, err.Error(), "precede")
	})

	t.Run("requires a move-in date", func(t *testing.T) {
		_, err := NewTenant("100 Test St", "Bob Lee", valueobject.CalendarDate{}, valueobject.CalendarDate{}, false)

		assert.Error(t, err)
	})

	t.Run("requires name and property", func(t *testing.T) {
		_, err := NewTenant("", "Bob Lee", date("2023-06-01"), valueobject.CalendarDate{}, false)
		assert.Error(t, err)

		_, err = NewTenant("100 Test St", "", date("2023-06-01"), valueobject.CalendarDate{}, false)
		assert.Error(t, err)
	})
}

func TestTenantRecordMoveOut(t *testing.T) {
	t.Run("closes the tenancy and clears primary flag", func(t *testing.T) {
		tenant, err := NewTenant("100 Test St", "Alice Wong", date("2023-06-01"), valueobject.CalendarDate{}, true)
		require.NoError(t, err)

		err = tenant.RecordMoveOut(date("2024-05-31"))

		require.NoError(t, err)
		assert.False(t, tenant.IsActive())
		assert.False(t, tenant.IsPrimary)
		assert.Equal(t, "2024-05-31", tenant.MoveOutDate.String())
	})

	t.Run("refuses a date before move-in", func(t *testing.T) {
		tenant, err := NewTenant("100 Test St", "Alice Wong", date("2023-06-01"), valueobject.CalendarDate{}, false)
		require.NoError(t, err)

		assert.Error(t, tenant.RecordMoveOut(date("2023-05-01")))
		assert.True(t, tenant.IsActive())
	})

	t.Run("refuses a second move-out", func(t *testing.T) {
		tenant, err := NewTenant("100 Test St", "Alice Wong", date("2023-06-01"), valueobject.CalendarDate{}, false)
		require.NoError(t, err)
		require.NoError(t, tenant.RecordMoveOut(date("2024-01-01")))

		assert.Error(t, tenant.RecordMoveOut(date("2024-02-01")))
	})
}

func TestTenantIsActiveAsOf(t *testing.T) {
	tenant, err := NewTenant("100 Test St", "Alice Wong", date("2023-06-01"), date("2024-06-01"), false)
	require.NoError(t, err)

	assert.False(t, tenant.IsActiveAsOf(date("2023-05-31")), "before move-in")
	assert.True(t, tenant.IsActiveAsOf(date("2023-06-01")), "move-in day counts")
	assert.True(t, tenant.IsActiveAsOf(date("2024-05-31")), "day before move-out")
	assert.False(t, tenant.IsActiveAsOf(date("2024-06-01")), "move-out day does not count")

	open, err := NewTenant("100 Test St", "Bob Lee", date("2023-06-01"), valueobject.CalendarDate{}, false)
	require.NoError(t, err)
	assert.True(t, open.IsActiveAsOf(date("2030-01-01")), "open tenancy stays active")
}

func TestTenantSetPrimary(t *testing.T) {
	tenant, err := NewTenant("100 Test St", "Alice Wong", date("2023-06-01"), valueobject.CalendarDate{}, false)
	require.NoError(t, err)

	require.NoError(t, tenant.SetPrimary(true))
	assert.True(t, tenant.IsPrimary)

	require.NoError(t, tenant.RecordMoveOut(date("2024-01-01")))
	assert.Error(t, tenant.SetPrimary(true))
}
