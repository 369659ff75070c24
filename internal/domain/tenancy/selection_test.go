package tenancy

import (
	"testing"

	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTenant(t *testing.T, name, moveIn, moveOut string, primary bool) Tenant {
	t.Helper()
	var out valueobject.CalendarDate
	if moveOut != "" {
		out = date(moveOut)
	}
	tenant, err := NewTenant("100 Test St", name, date(moveIn), out, primary)
	require.NoError(t, err)
	return *tenant
}

func TestCurrentTenant(t *testing.T) {
	t.Run("primary active tenant wins", func(t *testing.T) {
		tenants := []Tenant{
			mustTenant(t, "Older", "2020-01-01", "", false),
			mustTenant(t, "Primary", "2019-01-01", "", true),
			mustTenant(t, "Gone", "2015-01-01", "2018-12-31", false),
		}

		current := CurrentTenant(tenants)

		require.NotNil(t, current)
		assert.Equal(t, "Primary", current.Name)
	})

	t.Run("falls back to most recent move-in", func(t *testing.T) {
		tenants := []Tenant{
			mustTenant(t, "Older", "2020-01-01", "", false),
			mustTenant(t, "Newer", "2023-01-01", "", false),
		}

		current := CurrentTenant(tenants)

		require.NotNil(t, current)
		assert.Equal(t, "Newer", current.Name)
	})

	t.Run("nil when nobody is active", func(t *testing.T) {
		tenants := []Tenant{
			mustTenant(t, "Gone", "2015-01-01", "2018-12-31", false),
		}

		assert.Nil(t, CurrentTenant(tenants))
	})

	t.Run("nil for empty input", func(t *testing.T) {
		assert.Nil(t, CurrentTenant(nil))
	})
}

func TestOrderPrimaryFirst(t *testing.T) {
	tenants := []Tenant{
		mustTenant(t, "Second", "2020-01-01", "", false),
		mustTenant(t, "First", "2021-01-01", "", true),
		mustTenant(t, "Third", "2022-01-01", "", false),
	}

	ordered := OrderPrimaryFirst(tenants)

	assert.Equal(t, []string{"First", "Second", "Third"}, Names(ordered))
	assert.Equal(t, "Second", tenants[0].Name, "input order untouched")
}
