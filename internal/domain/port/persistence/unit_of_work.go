package persistence

import (
	"context"
	"fmt"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetHoldingRepository returns a holding repository bound to the current transaction
	GetHoldingRepository(ctx context.Context) HoldingRepository

	// GetHistoryRepository returns a history repository bound to the current transaction
	GetHistoryRepository(ctx context.Context) HistoryRepository
}

// WithinTransaction runs fn inside a transaction. The transaction commits when
// fn returns nil and rolls back on error or panic.
func WithinTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
		if err != nil {
			if rbErr := uow.Rollback(txCtx); rbErr != nil {
				err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}

	return uow.Commit(txCtx)
}
