package account

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
)

// Authenticate checks credentials. Unknown usernames and wrong passwords
// return the same error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.MissingField("username")
	}
	if password == "" {
		return nil, errs.MissingField("password")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			s.logger.Warn("Login failed", map[string]any{
				"username": username,
				"reason":   "unknown user",
			})
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("Login failed", map[string]any{
			"username": username,
			"reason":   "wrong password",
		})
		return nil, errs.ErrInvalidCredentials
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})
	return user, nil
}
