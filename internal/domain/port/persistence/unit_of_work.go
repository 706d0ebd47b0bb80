package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across repositories inside one database
// transaction. Repositories obtained with a context returned by Begin take
// part in that transaction; with any other context they run standalone.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a ledger repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetBudgetRepository returns a budget repository bound to the current transaction
	GetBudgetRepository(ctx context.Context) BudgetRepository

	// GetGoalRepository returns a goal repository bound to the current transaction
	GetGoalRepository(ctx context.Context) GoalRepository
}
