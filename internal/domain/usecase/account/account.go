package account

import (
	"github.com/shopspring/decimal"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/usecase"
)

// DefaultStartingCash is granted to every new account
var DefaultStartingCash = decimal.NewFromInt(10000)

// Service handles account business logic
type Service struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	startingCash decimal.Decimal
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AccountUseCase = (*Service)(nil)

// NewService creates a new account service
func NewService(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	startingCash decimal.Decimal,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	if !startingCash.IsPositive() {
		startingCash = DefaultStartingCash
	}

	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		startingCash: startingCash,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
