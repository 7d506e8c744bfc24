package usecase

import (
	"context"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
)

// RegisterRequest carries the registration form
type RegisterRequest struct {
	Username     string
	Password     string
	Confirmation string
}

// AccountUseCase handles registration and credential checks
type AccountUseCase interface {
	// Register creates an account with the starting cash balance
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// Authenticate verifies credentials and returns the matching user.
	// Unknown users and wrong passwords fail identically.
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
}
