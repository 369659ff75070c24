package tenancy

import "sort"

// CurrentTenant picks the tenant used for single-tenant display contexts
// from a property's tenants: among the active set, the primary one wins;
// with no primary flagged, the most recently moved-in active tenant is used.
// Returns nil when nobody is active.
func CurrentTenant(tenants []Tenant) *Tenant {
	var active []Tenant
	for _, t := range tenants {
		if t.IsActive() {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil
	}
	for i := range active {
		if active[i].IsPrimary {
			return &active[i]
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].MoveInDate.After(active[j].MoveInDate)
	})
	return &active[0]
}

// OrderPrimaryFirst returns the tenants with any primary tenant moved to the
// front, preserving the incoming order otherwise.
func OrderPrimaryFirst(tenants []Tenant) []Tenant {
	ordered := make([]Tenant, len(tenants))
	copy(ordered, tenants)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].IsPrimary && !ordered[j].IsPrimary
	})
	return ordered
}

// Names returns the tenants' names in order.
func Names(tenants []Tenant) []string {
	names := make([]string, len(tenants))
	for i, t := range tenants {
		names[i] = t.Name
	}
	return names
}
