package persistence

import (
	"context"

	apprental "github.com/rentfolio/backend/internal/application/rental"
	"github.com/rentfolio/backend/internal/domain/rental"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of the snapshot upsert and the paired history
// append.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apprental.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to the rental repositories
// within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// RateRepo returns the snapshot repository scoped to the current transaction.
func (r *gormTransactionalRepositories) RateRepo() rental.RateIncreaseRepository {
	return NewGormRateIncreaseRepository(r.tx)
}

// HistoryRepo returns the history repository scoped to the current transaction.
func (r *gormTransactionalRepositories) HistoryRepo() rental.RateHistoryRepository {
	return NewGormRateHistoryRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ apprental.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ apprental.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
