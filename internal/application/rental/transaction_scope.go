package rental

import (
	"context"

	"github.com/rentfolio/backend/internal/domain/rental"
)

// TransactionScope provides transactional access to the rental repositories.
// The snapshot upsert and the paired history append must commit or roll back
// together; a crash between two independent writes would leave the log ahead
// of (or behind) the snapshot.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the rental repositories
// within a transaction. Both repositories share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// RateRepo returns the snapshot repository scoped to the transaction
	RateRepo() rental.RateIncreaseRepository
	// HistoryRepo returns the history repository scoped to the transaction
	HistoryRepo() rental.RateHistoryRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	rateRepo    rental.RateIncreaseRepository
	historyRepo rental.RateHistoryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given
// repositories.
func NewNoOpTransactionScope(rateRepo rental.RateIncreaseRepository, historyRepo rental.RateHistoryRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{rateRepo: rateRepo, historyRepo: historyRepo}
}

// Execute runs the function directly.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// RateRepo returns the snapshot repository.
func (s *NoOpTransactionScope) RateRepo() rental.RateIncreaseRepository {
	return s.rateRepo
}

// HistoryRepo returns the history repository.
func (s *NoOpTransactionScope) HistoryRepo() rental.RateHistoryRepository {
	return s.historyRepo
}
