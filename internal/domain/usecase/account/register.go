package account

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/usecase"
)

// Register creates a user with the starting cash balance
func (s *Service) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	username := strings.TrimSpace(req.Username)
	switch {
	case username == "":
		return nil, errs.MissingField("username")
	case req.Password == "":
		return nil, errs.MissingField("password")
	case req.Confirmation == "":
		return nil, errs.MissingField("confirmation")
	case req.Password != req.Confirmation:
		return nil, errs.NewValidationError("confirmation", errs.ErrPasswordMismatch)
	}

	// Check if username is already taken
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, errs.ErrUsernameTaken
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	user, err := entity.NewUser(username, hash, s.startingCash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// a concurrent registration can still win the unique index
		if errors.Is(err, errs.ErrDuplicateKey) || errors.Is(err, errs.ErrConstraintViolation) {
			s.logger.Warn("Username collision on insert", map[string]any{
				"username": username,
				"error":    err.Error(),
			})
			return nil, errs.ErrUsernameTaken
		}

		s.logger.Error("Failed to create user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":       user.ID,
		"username":      username,
		"starting_cash": entity.FormatAmount(user.Cash()),
	})

	return user, nil
}
