package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// User represents an account holder with a simulated cash balance
type User struct {
	ID           uint64          // Unique identifier for the user
	Username     string          // Unique login name
	PasswordHash string          // bcrypt hash, never the plain password
	cash         decimal.Decimal // Cash balance, never negative (private)
	CreatedAt    time.Time       // When the user registered
	UpdatedAt    time.Time       // When the cash balance last changed
}

// NewUser creates a user that has not been persisted yet
func NewUser(username, passwordHash string, startingCash decimal.Decimal, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.MissingField("username")
	}
	if passwordHash == "" {
		return nil, errs.MissingField("password")
	}
	if startingCash.IsNegative() {
		return nil, errs.ErrConstraintViolation
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		cash:         startingCash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// RestoreUser rebuilds a persisted user (for repositories)
func RestoreUser(id uint64, username, passwordHash string, cash decimal.Decimal, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		cash:         cash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Cash returns the current cash balance
func (u *User) Cash() decimal.Decimal {
	return u.cash
}

// CanAfford reports whether cost can be debited without going negative
func (u *User) CanAfford(cost decimal.Decimal) bool {
	return u.cash.GreaterThanOrEqual(cost)
}

// Debit subtracts amount from cash.
// Returns ErrInsufficientFunds and leaves the balance untouched when cash is short.
func (u *User) Debit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if amount.IsNegative() {
		return errs.ErrConstraintViolation
	}
	if !u.CanAfford(amount) {
		return errs.ErrInsufficientFunds
	}

	u.cash = u.cash.Sub(amount)
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds amount to cash
func (u *User) Credit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if amount.IsNegative() {
		return errs.ErrConstraintViolation
	}

	u.cash = u.cash.Add(amount)
	u.UpdatedAt = timeProvider.Now()
	return nil
}
