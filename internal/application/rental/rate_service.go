package rental

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/rental"
	"github.com/rentfolio/backend/internal/domain/shared"
	"github.com/rentfolio/backend/internal/domain/shared/valueobject"
	"github.com/rentfolio/backend/internal/domain/tenancy"
)

// RateService handles rental rate recording and the derived increase
// schedule for properties.
type RateService struct {
	txScope     TransactionScope
	rateRepo    rental.RateIncreaseRepository
	historyRepo rental.RateHistoryRepository
	tenantRepo  tenancy.TenantRepository
}

// NewRateService creates a new RateService
func NewRateService(
	txScope TransactionScope,
	rateRepo rental.RateIncreaseRepository,
	historyRepo rental.RateHistoryRepository,
	tenantRepo tenancy.TenantRepository,
) *RateService {
	return &RateService{
		txScope:     txScope,
		rateRepo:    rateRepo,
		historyRepo: historyRepo,
		tenantRepo:  tenantRepo,
	}
}

// SetInitialRate establishes the rate baseline for a property. In create
// mode an existing record is an error; in overwrite mode the snapshot is
// reset to the new base rate, which is the path taken when a new tenancy
// starts over.
func (s *RateService) SetInitialRate(ctx context.Context, req SetInitialRateRequest) (*RateIncreaseResponse, error) {
	effectiveDate, err := valueobject.ParseCalendarDate(req.EffectiveDate)
	if err != nil {
		return nil, err
	}
	if effectiveDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Effective date is required")
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeCreate
	}

	note := s.initialNote(ctx, req.PropertyAddress, req.Notes)

	var snapshot *rental.RateIncrease
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.RateRepo().FindByAddress(ctx, req.PropertyAddress)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		switch {
		case existing == nil || errors.Is(err, shared.ErrNotFound):
			snapshot, err = rental.NewRateIncrease(req.PropertyAddress, req.RentalRate, effectiveDate)
			if err != nil {
				return err
			}
		case mode == ModeCreate:
			return shared.ErrDuplicateRateRecord
		default:
			if err := existing.Reset(req.RentalRate, effectiveDate); err != nil {
				return err
			}
			snapshot = existing
		}

		if err := repos.RateRepo().Save(ctx, snapshot); err != nil {
			return err
		}

		entry, err := rental.NewRateHistory(req.PropertyAddress, effectiveDate, decimal.Zero, req.RentalRate, note)
		if err != nil {
			return err
		}
		return repos.HistoryRepo().Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return ToRateIncreaseResponse(snapshot), nil
}

// RecordIncrease records a rental rate increase for a property and
// recomputes the snapshot schedule. The snapshot must already exist.
func (s *RateService) RecordIncrease(ctx context.Context, req RecordIncreaseRequest) (*RateIncreaseResponse, error) {
	increaseDate, err := valueobject.ParseCalendarDate(req.IncreaseDate)
	if err != nil {
		return nil, err
	}
	if increaseDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Increase date is required")
	}

	note := composeNotes(req.Notes, s.occupantNote(ctx, req.PropertyAddress, increaseDate))

	var snapshot *rental.RateIncrease
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.RateRepo().FindByAddress(ctx, req.PropertyAddress)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNoRateRecord
			}
			return err
		}

		previousRate, err := existing.ApplyIncrease(increaseDate, req.NewRate)
		if err != nil {
			return err
		}
		snapshot = existing

		if err := repos.RateRepo().Save(ctx, snapshot); err != nil {
			return err
		}

		entry, err := rental.NewRateHistory(req.PropertyAddress, increaseDate, previousRate, req.NewRate, note)
		if err != nil {
			return err
		}
		return repos.HistoryRepo().Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return ToRateIncreaseResponse(snapshot), nil
}

// GetByAddress returns the rate snapshot for a property after checking it
// against the latest history entry.
func (s *RateService) GetByAddress(ctx context.Context, propertyAddress string) (*RateIncreaseResponse, error) {
	snapshot, err := s.rateRepo.FindByAddress(ctx, propertyAddress)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoRateRecord
		}
		return nil, err
	}

	latest, err := s.historyRepo.FindLatestByAddress(ctx, propertyAddress)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if err := snapshot.ValidateAgainstHistory(latest); err != nil {
		return nil, err
	}

	return ToRateIncreaseResponse(snapshot), nil
}

// GetAll returns every property's rate snapshot.
func (s *RateService) GetAll(ctx context.Context) ([]RateIncreaseResponse, error) {
	snapshots, err := s.rateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]RateIncreaseResponse, len(snapshots))
	for i := range snapshots {
		responses[i] = *ToRateIncreaseResponse(&snapshots[i])
	}
	return responses, nil
}

// GetHistory returns a property's rate change log, newest first.
func (s *RateService) GetHistory(ctx context.Context, propertyAddress string) ([]RateHistoryEntryResponse, error) {
	entries, err := s.historyRepo.FindByAddress(ctx, propertyAddress)
	if err != nil {
		return nil, err
	}

	responses := make([]RateHistoryEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *ToRateHistoryEntryResponse(&entries[i])
	}
	return responses, nil
}

// initialNote builds the history note for an initial rate entry, naming the
// current tenant when one exists.
func (s *RateService) initialNote(ctx context.Context, propertyAddress, userNote string) string {
	base := "Initial rental rate"
	tenants, err := s.tenantRepo.FindActiveByProperty(ctx, propertyAddress)
	if err == nil {
		if current := tenancy.CurrentTenant(tenants); current != nil {
			base = fmt.Sprintf("Initial rental rate for %s", current.Name)
		}
	}
	return composeNotes(userNote, base)
}

// occupantNote names the tenants who occupied the property on the given
// date, primary tenant first.
func (s *RateService) occupantNote(ctx context.Context, propertyAddress string, asOf valueobject.CalendarDate) string {
	tenants, err := s.tenantRepo.FindActiveAsOf(ctx, propertyAddress, asOf)
	if err != nil || len(tenants) == 0 {
		return "No active tenants"
	}
	ordered := tenancy.OrderPrimaryFirst(tenants)
	return "Tenants: " + strings.Join(tenancy.Names(ordered), ", ")
}

func composeNotes(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "; ")
}
