// Package memory provides an in-process implementation of the persistence
// ports. A transaction holds the store lock from Begin until Commit or
// Rollback and works on a private snapshot, so concurrent transactions are
// serialized and a rollback discards every change.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
)

var (
	errNoTransaction   = errors.New("no transaction found in context")
	errTransactionDone = errors.New("transaction has already been committed or rolled back")
)

type txKey struct{}

type transaction struct {
	snapshot *state
	done     bool
}

type state struct {
	users         map[uint64]*entity.User
	usernames     map[string]uint64
	holdings      []entity.Holding
	history       []entity.HistoryEntry
	nextUserID    uint64
	nextHoldingID uint64
	nextHistoryID uint64
}

func newState() *state {
	return &state{
		users:         make(map[uint64]*entity.User),
		usernames:     make(map[string]uint64),
		nextUserID:    1,
		nextHoldingID: 1,
		nextHistoryID: 1,
	}
}

func (s *state) clone() *state {
	c := &state{
		users:         make(map[uint64]*entity.User, len(s.users)),
		usernames:     make(map[string]uint64, len(s.usernames)),
		holdings:      append([]entity.Holding(nil), s.holdings...),
		history:       append([]entity.HistoryEntry(nil), s.history...),
		nextUserID:    s.nextUserID,
		nextHoldingID: s.nextHoldingID,
		nextHistoryID: s.nextHistoryID,
	}
	for id, u := range s.users {
		copied := *u
		c.users[id] = &copied
	}
	for name, id := range s.usernames {
		c.usernames[name] = id
	}
	return c
}

// Store is an in-memory UnitOfWork
type Store struct {
	mu           sync.Mutex
	committed    *state
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ persistence.UnitOfWork = (*Store)(nil)

// NewStore creates an empty store
func NewStore(timeProvider coreport.TimeProvider, logger coreport.Logger) *Store {
	return &Store{
		committed:    newState(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Begin locks the store and starts working on a snapshot
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, err
	}

	s.mu.Lock()
	tx := &transaction{snapshot: s.committed.clone()}
	s.logger.Debug("Beginning in-memory transaction", nil)
	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit publishes the snapshot and releases the lock
func (s *Store) Commit(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return errNoTransaction
	}
	if tx.done {
		return errTransactionDone
	}

	s.committed = tx.snapshot
	tx.done = true
	s.mu.Unlock()
	return nil
}

// Rollback discards the snapshot and releases the lock
func (s *Store) Rollback(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return errNoTransaction
	}
	if tx.done {
		return nil
	}

	tx.done = true
	s.mu.Unlock()
	s.logger.Debug("Rolled back in-memory transaction", nil)
	return nil
}

// GetUserRepository returns a user repository bound to the current transaction
func (s *Store) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return &UserRepository{store: s, tx: txFromContext(ctx)}
}

// GetHoldingRepository returns a holding repository bound to the current transaction
func (s *Store) GetHoldingRepository(ctx context.Context) persistence.HoldingRepository {
	return &HoldingRepository{store: s, tx: txFromContext(ctx)}
}

// GetHistoryRepository returns a history repository bound to the current transaction
func (s *Store) GetHistoryRepository(ctx context.Context) persistence.HistoryRepository {
	return &HistoryRepository{store: s, tx: txFromContext(ctx)}
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// view runs fn against the transaction snapshot, or against committed state under the lock
func (s *Store) view(ctx context.Context, tx *transaction, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx != nil {
		if tx.done {
			return errTransactionDone
		}
		return fn(tx.snapshot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.committed)
}

func txFromContext(ctx context.Context) *transaction {
	tx, _ := ctx.Value(txKey{}).(*transaction)
	return tx
}
