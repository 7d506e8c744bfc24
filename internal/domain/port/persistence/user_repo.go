package persistence

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UserRepository defines the account and cash operations of the ledger
type UserRepository interface {
	// Create persists a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateKey: If the username is already registered
	// - ErrConstraintViolation: If the row violates a check constraint
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by login name
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetByIDForUpdate retrieves a user and locks the row until the surrounding
	// transaction ends. Must be called inside a unit of work.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrConcurrentUpdate: If the lock cannot be acquired
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// UpdateCash stores a new cash balance for the user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrConstraintViolation: If cash would become negative
	// - ErrDatabaseConnection: If database connection fails
	UpdateCash(ctx context.Context, userID uint64, cash decimal.Decimal) error
}
