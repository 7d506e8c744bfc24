package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
)

// ErrorMapper maps database errors raised outside the repositories
// (begin, commit, ping) to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Already translated
	if domainErr.KindOf(err) != domainErr.KindInternal || errors.Is(err, domainErr.ErrDatabaseConnection) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return fmt.Errorf("%w: %s: %s", domainErr.ErrConcurrentUpdate, operation, pgErr.Message)
		case "23505":
			return domainErr.ErrDuplicateKey
		case "23503", "23514", "23502":
			return domainErr.ErrConstraintViolation
		}
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Transaction and locking errors
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock timeout"):
		return fmt.Errorf("%w: %s", domainErr.ErrConcurrentUpdate, operation)

	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrDuplicateKey

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrConstraintViolation

	// Timeout errors
	case errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s: %v", domainErr.ErrDatabaseConnection, operation, err)
	}
}

// MapCommitError maps a failed COMMIT. Only a conflict guarantees the server
// rolled the transaction back; anything else (a dropped connection, a timeout)
// leaves the outcome unknown and is reported as ErrCommitOutcomeUnknown.
func (m *ErrorMapper) MapCommitError(err error) error {
	if err == nil {
		return nil
	}

	mapped := m.MapError(err, "commit transaction")
	if errors.Is(mapped, domainErr.ErrConcurrentUpdate) {
		return mapped
	}

	return fmt.Errorf("%w: %w", domainErr.ErrCommitOutcomeUnknown, mapped)
}
