package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
	coremocks "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/core"
	securitymocks "github.com/amirhossein-jamali/portfolio-tracker/mocks/port/security"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time                  { return c.now }
func (c *clock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *clock) WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

func newManager(t *testing.T, c *clock) (*JWTManager, *MemoryStore) {
	t.Helper()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	store := NewMemoryStore(c)
	m, err := NewJWTManager("test-secret", time.Hour, store, c, logger)
	require.NoError(t, err)
	return m, store
}

func TestJWTManager_IssueAndResolve(t *testing.T) {
	c := &clock{now: time.Now().UTC().Truncate(time.Second)}
	m, _ := newManager(t, c)
	ctx := context.Background()

	token, err := m.Issue(ctx, 42)
	require.NoError(t, err)

	sess, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), sess.UserID)
	assert.Equal(t, c.now.Add(time.Hour), sess.ExpiresAt)
}

func TestJWTManager_RejectsBadTokens(t *testing.T) {
	c := &clock{now: time.Now().UTC().Truncate(time.Second)}
	m, _ := newManager(t, c)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		_, err := m.Resolve(ctx, "")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Resolve(ctx, "not.a.token")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("wrong secret", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
			UserID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "abc",
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(c.now.Add(time.Hour)),
			},
		})
		signed, err := forged.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = m.Resolve(ctx, signed)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := m.Issue(ctx, 7)
		require.NoError(t, err)

		c.now = c.now.Add(2 * time.Hour)
		defer func() { c.now = c.now.Add(-2 * time.Hour) }()

		_, err = m.Resolve(ctx, token)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestJWTManager_Revoke(t *testing.T) {
	c := &clock{now: time.Now().UTC().Truncate(time.Second)}
	m, _ := newManager(t, c)
	ctx := context.Background()

	token, err := m.Issue(ctx, 42)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, token))

	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)

	// revoking garbage is harmless
	assert.NoError(t, m.Revoke(ctx, "garbage"))
}

func TestJWTManager_StoreFailure(t *testing.T) {
	c := &clock{now: time.Now().UTC()}
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

	store := securitymocks.NewMockSessionStore(t)
	store.EXPECT().Save(mock.Anything, mock.AnythingOfType("security.Session")).Return(errs.ErrInternalServer).Once()

	m, err := NewJWTManager("secret", time.Hour, store, c, logger)
	require.NoError(t, err)

	_, err = m.Issue(context.Background(), 1)
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager("", time.Hour, NewMemoryStore(&clock{}), &clock{}, nil)
	assert.Error(t, err)
}

func TestMemoryStore_Expiry(t *testing.T) {
	c := &clock{now: time.Now()}
	store := NewMemoryStore(c)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, security.Session{ID: "a", UserID: 1, ExpiresAt: c.now.Add(time.Minute)}))

	sess, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sess.UserID)

	c.now = c.now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, errs.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "a"))
}
