package reminder

import (
	"context"
	"sort"
	"time"

	"github.com/rentfolio/backend/internal/domain/property"
	"github.com/rentfolio/backend/internal/domain/rental"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/rentfolio/backend/internal/domain/tenancy"
)

// ReminderService builds the rate-increase and birthday reminder lists.
// The clock is injected so list contents are deterministic in tests.
type ReminderService struct {
	rateRepo     rental.RateIncreaseRepository
	ownerRepo    property.OwnerRepository
	tenantRepo   tenancy.TenantRepository
	propertyRepo property.PropertyRepository
	now          func() time.Time
}

// NewReminderService creates a new ReminderService using the wall clock
func NewReminderService(
	rateRepo rental.RateIncreaseRepository,
	ownerRepo property.OwnerRepository,
	tenantRepo tenancy.TenantRepository,
	propertyRepo property.PropertyRepository,
) *ReminderService {
	return &ReminderService{
		rateRepo:     rateRepo,
		ownerRepo:    ownerRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		now:          time.Now,
	}
}

// WithClock replaces the service clock, for tests
func (s *ReminderService) WithClock(now func() time.Time) *ReminderService {
	s.now = now
	return s
}

// RateReminders lists every property's rate snapshot annotated with how many
// whole calendar months have passed since the last increase, longest-overdue
// first. The optional month filter keeps only snapshots whose reminder date
// falls in that month, and minMonths drops recently adjusted properties.
func (s *ReminderService) RateReminders(ctx context.Context, query RateReminderQuery) ([]RateReminder, error) {
	snapshots, err := s.rateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := valueobject.CalendarDateOf(s.now())
	reminders := make([]RateReminder, 0, len(snapshots))
	for i := range snapshots {
		snap := &snapshots[i]
		if query.Month != 0 && int(snap.ReminderDate.Month()) != query.Month {
			continue
		}
		months := today.WholeMonthsSince(snap.LatestRateIncreaseDate)
		if months < query.MinMonths {
			continue
		}
		reminders = append(reminders, RateReminder{
			PropertyAddress:                 snap.PropertyAddress,
			LatestRateIncreaseDate:          snap.LatestRateIncreaseDate.String(),
			LatestRentalRate:                snap.LatestRentalRate,
			NextAllowableRentalIncreaseDate: snap.NextAllowableRentalIncreaseDate.String(),
			NextAllowableRentalRate:         snap.NextAllowableRentalRate,
			ReminderDate:                    snap.ReminderDate.String(),
			MonthsSinceIncrease:             months,
			IncreaseAllowed:                 !today.Before(snap.NextAllowableRentalIncreaseDate),
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].MonthsSinceIncrease > reminders[j].MonthsSinceIncrease
	})
	return reminders, nil
}

// BirthdayReminders lists owners and active tenants whose birthday falls in
// the requested month (the current month when unset), earliest day first.
func (s *ReminderService) BirthdayReminders(ctx context.Context, query BirthdayReminderQuery) ([]BirthdayReminder, error) {
	month := query.Month
	if month == 0 {
		month = int(s.now().Month())
	}

	owners, err := s.ownerRepo.FindWithBirthdayInMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	tenants, err := s.tenantRepo.FindActiveWithBirthdayInMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	reminders := make([]BirthdayReminder, 0, len(owners)+len(tenants))
	for i := range owners {
		o := &owners[i]
		address := ""
		if p, err := s.propertyRepo.FindByID(ctx, o.PropertyID); err == nil {
			address = p.Address
		}
		reminders = append(reminders, BirthdayReminder{
			Name:            o.Name,
			Role:            RoleOwner,
			PropertyAddress: address,
			Birthday:        o.Birthday.String(),
			DayOfMonth:      o.Birthday.Day(),
			ContactNumber:   o.ContactNumber,
			Email:           o.Email,
		})
	}
	for i := range tenants {
		t := &tenants[i]
		reminders = append(reminders, BirthdayReminder{
			Name:            t.Name,
			Role:            RoleTenant,
			PropertyAddress: t.PropertyAddress,
			Birthday:        t.Birthday.String(),
			DayOfMonth:      t.Birthday.Day(),
			ContactNumber:   t.ContactNumber,
			Email:           t.Email,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DayOfMonth < reminders[j].DayOfMonth
	})
	return reminders, nil
}
