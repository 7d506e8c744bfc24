package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/security"
)

type accountMocks struct {
	repo   *persistencemocks.MockUserRepository
	hasher *securitymocks.MockPasswordHasher
	time   *coremocks.MockTimeProvider
	logger *coremocks.MockLogger
}

func newAccountMocks(t *testing.T) *accountMocks {
	m := &accountMocks{
		repo:   persistencemocks.NewMockUserRepository(t),
		hasher: securitymocks.NewMockPasswordHasher(t),
		time:   coremocks.NewMockTimeProvider(t),
		logger: coremocks.NewMockLogger(t),
	}
	m.time.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *accountMocks) service() *Service {
	return NewService(m.repo, m.hasher, decimal.Zero, m.time, m.logger)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	valid := usecase.RegisterRequest{Username: "alice", Password: "secret", Confirmation: "secret"}

	t.Run("Successful registration", func(t *testing.T) {
		// Setup mocks
		m := newAccountMocks(t)
		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("secret").Return("$2a$hash", nil).Once()
		m.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "alice" && user.PasswordHash == "$2a$hash" && user.Cash().Equal(decimal.NewFromInt(10000))
		})).RunAndReturn(func(ctx context.Context, user *entity.User) error {
			user.ID = 1
			return nil
		}).Once()

		// Execute
		user, err := m.service().Register(ctx, valid)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "10000.00", entity.FormatAmount(user.Cash()))
	})

	t.Run("Missing fields", func(t *testing.T) {
		cases := []struct {
			req   usecase.RegisterRequest
			field string
		}{
			{usecase.RegisterRequest{Password: "a", Confirmation: "a"}, "username"},
			{usecase.RegisterRequest{Username: "bob", Confirmation: "a"}, "password"},
			{usecase.RegisterRequest{Username: "bob", Password: "a"}, "confirmation"},
		}

		for _, tc := range cases {
			m := newAccountMocks(t)
			_, err := m.service().Register(ctx, tc.req)

			assert.ErrorIs(t, err, errs.ErrMissingField)
			assert.Equal(t, "must provide "+tc.field, errs.PublicMessage(err))
		}
	})

	t.Run("Password mismatch", func(t *testing.T) {
		m := newAccountMocks(t)

		_, err := m.service().Register(ctx, usecase.RegisterRequest{Username: "bob", Password: "a", Confirmation: "b"})

		assert.ErrorIs(t, err, errs.ErrPasswordMismatch)
	})

	t.Run("Username already taken", func(t *testing.T) {
		m := newAccountMocks(t)
		existing := entity.RestoreUser(1, "alice", "x", decimal.NewFromInt(10000), time.Now(), time.Now())
		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(existing, nil).Once()

		_, err := m.service().Register(ctx, valid)

		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
	})

	t.Run("Unique index collision does not leak storage errors", func(t *testing.T) {
		m := newAccountMocks(t)
		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("secret").Return("$2a$hash", nil).Once()
		m.repo.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errors.Join(errs.ErrDuplicateKey, errors.New("users_username_key"))).Once()

		_, err := m.service().Register(ctx, valid)

		assert.Equal(t, errs.ErrUsernameTaken, err)
		assert.Equal(t, "username already exists", errs.PublicMessage(err))
	})

	t.Run("Hashing failure", func(t *testing.T) {
		m := newAccountMocks(t)
		m.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("secret").Return("", errs.ErrInternalServer).Once()

		_, err := m.service().Register(ctx, valid)

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	stored := entity.RestoreUser(3, "carol", "$2a$hash", decimal.NewFromInt(10000), time.Now(), time.Now())

	t.Run("Valid credentials", func(t *testing.T) {
		m := newAccountMocks(t)
		m.repo.EXPECT().GetByUsername(mock.Anything, "carol").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("$2a$hash", "pw").Return(nil).Once()

		user, err := m.service().Authenticate(ctx, "carol", "pw")

		require.NoError(t, err)
		assert.Equal(t, uint64(3), user.ID)
	})

	t.Run("Unknown user and wrong password fail the same way", func(t *testing.T) {
		m := newAccountMocks(t)
		m.repo.EXPECT().GetByUsername(mock.Anything, "nobody").Return(nil, errs.ErrUserNotFound).Once()
		m.repo.EXPECT().GetByUsername(mock.Anything, "carol").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("$2a$hash", "wrong").Return(errs.ErrInvalidCredentials).Once()

		_, unknownErr := m.service().Authenticate(ctx, "nobody", "pw")
		_, wrongErr := m.service().Authenticate(ctx, "carol", "wrong")

		assert.Equal(t, errs.ErrInvalidCredentials, unknownErr)
		assert.Equal(t, errs.ErrInvalidCredentials, wrongErr)
		assert.Equal(t, "invalid username and/or password", errs.PublicMessage(wrongErr))
	})

	t.Run("Missing fields", func(t *testing.T) {
		m := newAccountMocks(t)

		_, err := m.service().Authenticate(ctx, "", "pw")
		assert.ErrorIs(t, err, errs.ErrMissingField)

		_, err = m.service().Authenticate(ctx, "carol", "")
		assert.ErrorIs(t, err, errs.ErrMissingField)
	})
}
