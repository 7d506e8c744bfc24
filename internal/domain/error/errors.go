package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized apology responses
const (
	// 40xx - Validation errors
	CodeMissingField     = 4001
	CodeInvalidShares    = 4002
	CodePasswordMismatch = 4003

	// 41xx - Business rule violations
	CodeInsufficientFunds  = 4101
	CodeInsufficientShares = 4102
	CodeSymbolNotOwned     = 4103
	CodeUnknownSymbol      = 4104

	// 42xx - Authentication errors
	CodeInvalidCredentials = 4201
	CodeUsernameTaken      = 4202
	CodeUnauthenticated    = 4203

	CodeUserNotFound        = 4040
	CodeConcurrentUpdate    = 4090
	CodeConstraintViolation = 4091

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeQuoteUnavailable = 5030
)

// Kind groups errors by how they are surfaced to the user
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindBusinessRule
	KindAuth
	KindUnauthenticated
	KindNotFound
	KindConflict
	KindUnavailable
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBusinessRule:
		return "business_rule"
	case KindAuth:
		return "auth"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Validation errors
var (
	// ErrMissingField is returned when a required form field is empty
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidShares is returned when a share count is not a positive integer
	ErrInvalidShares = errors.New("shares must be a positive integer")

	// ErrPasswordMismatch is returned when password and confirmation differ
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Business rule errors
var (
	// ErrInsufficientFunds is returned when the user cannot afford a purchase
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares is returned when a sale exceeds the owned aggregate
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrSymbolNotOwned is returned when selling a symbol the user does not hold
	ErrSymbolNotOwned = errors.New("symbol not owned")

	// ErrUnknownSymbol is returned when a quote lookup resolves to nothing
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Authentication errors
var (
	// ErrInvalidCredentials is returned for an unknown user or a wrong password
	ErrInvalidCredentials = errors.New("invalid username and/or password")

	// ErrUsernameTaken is returned when registration collides with an existing account
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUnauthenticated is returned when a request carries no valid session
	ErrUnauthenticated = errors.New("authentication required")

	// ErrSessionNotFound is returned when a session id is unknown or expired
	ErrSessionNotFound = errors.New("session not found")
)

// Infrastructure errors
var (
	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrConcurrentUpdate is returned when a row lock or serialization conflict persists after retries
	ErrConcurrentUpdate = errors.New("concurrent update conflict")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDuplicateKey is returned when a unique index rejects an insert
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrCommitOutcomeUnknown is returned when COMMIT failed without the server confirming a rollback.
	// The transaction may have been applied, so callers must not replay it.
	ErrCommitOutcomeUnknown = errors.New("transaction commit outcome unknown")

	// ErrQuoteUnavailable is returned when the quote provider cannot be reached
	ErrQuoteUnavailable = errors.New("quote service unavailable")

	// ErrShuttingDown is returned when work is submitted after shutdown started
	ErrShuttingDown = errors.New("service is shutting down")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrInvalidShares):
		return CodeInvalidShares
	case errors.Is(err, ErrPasswordMismatch):
		return CodePasswordMismatch
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInsufficientShares):
		return CodeInsufficientShares
	case errors.Is(err, ErrSymbolNotOwned):
		return CodeSymbolNotOwned
	case errors.Is(err, ErrUnknownSymbol):
		return CodeUnknownSymbol
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUsernameTaken):
		return CodeUsernameTaken
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrSessionNotFound):
		return CodeUnauthenticated
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrDuplicateKey):
		return CodeConstraintViolation
	case errors.Is(err, ErrQuoteUnavailable):
		return CodeQuoteUnavailable
	default:
		return CodeInternalServer
	}
}

// KindOf classifies an error into the apology taxonomy
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidShares),
		errors.Is(err, ErrPasswordMismatch):
		return KindValidation
	case errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrInsufficientShares),
		errors.Is(err, ErrSymbolNotOwned),
		errors.Is(err, ErrUnknownSymbol):
		return KindBusinessRule
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUsernameTaken):
		return KindAuth
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrSessionNotFound):
		return KindUnauthenticated
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConcurrentUpdate):
		return KindConflict
	case errors.Is(err, ErrQuoteUnavailable),
		errors.Is(err, ErrShuttingDown):
		return KindUnavailable
	default:
		return KindInternal
	}
}

// PublicMessage returns the short apology text that is safe to show a user.
// Storage and internal errors never leak their details.
func PublicMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) && validationErr.Field != "" && errors.Is(err, ErrMissingField) {
		return "must provide " + validationErr.Field
	}

	switch KindOf(err) {
	case KindValidation, KindBusinessRule, KindAuth:
		for _, sentinel := range publicSentinels {
			if errors.Is(err, sentinel) {
				return sentinel.Error()
			}
		}
		return "invalid request"
	case KindUnauthenticated:
		return "please log in"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "please try again"
	case KindUnavailable:
		return "service temporarily unavailable"
	default:
		return "something went wrong"
	}
}

var publicSentinels = []error{
	ErrMissingField,
	ErrInvalidShares,
	ErrPasswordMismatch,
	ErrInsufficientFunds,
	ErrInsufficientShares,
	ErrSymbolNotOwned,
	ErrUnknownSymbol,
	ErrInvalidCredentials,
	ErrUsernameTaken,
}

// ValidationError names the form field that failed validation
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error for a named field
func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// MissingField is shorthand for a ValidationError wrapping ErrMissingField
func MissingField(field string) error {
	return NewValidationError(field, ErrMissingField)
}

// InsufficientFundsError provides detailed error information for a rejected purchase
type InsufficientFundsError struct {
	UserID    uint64
	Symbol    string
	Required  string
	Available string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d buying %s: required %s, available %s",
		e.UserID, e.Symbol, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"symbol":     e.Symbol,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, symbol, required, available string) error {
	return &InsufficientFundsError{
		UserID:    userID,
		Symbol:    symbol,
		Required:  required,
		Available: available,
	}
}

// InsufficientSharesError provides detailed error information for a rejected sale
type InsufficientSharesError struct {
	UserID    uint64
	Symbol    string
	Requested int64
	Owned     int64
}

// Error implements the error interface
func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares for user %d selling %s: requested %d, owned %d",
		e.UserID, e.Symbol, e.Requested, e.Owned)
}

// Is checks if the target error is an ErrInsufficientShares
func (e *InsufficientSharesError) Is(target error) bool {
	return target == ErrInsufficientShares
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientSharesError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_shares",
		"user_id":    e.UserID,
		"symbol":     e.Symbol,
		"requested":  e.Requested,
		"owned":      e.Owned,
		"error_code": CodeInsufficientShares,
	}
}

// NewInsufficientSharesError creates a new detailed insufficient shares error
func NewInsufficientSharesError(userID uint64, symbol string, requested, owned int64) error {
	return &InsufficientSharesError{
		UserID:    userID,
		Symbol:    symbol,
		Requested: requested,
		Owned:     owned,
	}
}

// LogFields extracts structured fields from err when it carries them
func LogFields(err error) map[string]any {
	var fielder interface{ LogFields() map[string]any }
	if errors.As(err, &fielder) {
		return fielder.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
