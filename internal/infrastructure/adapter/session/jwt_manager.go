package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
)

const issuer = "portfolio-tracker"

// claims is the payload of the session cookie. The session id travels as
// the token id so a token can be revoked server side.
type claims struct {
	UserID uint64 `json:"uid"`
	jwt.RegisteredClaims
}

// JWTManager signs session tokens with HS256 and keeps the session itself in a store
type JWTManager struct {
	secret       []byte
	ttl          time.Duration
	store        security.SessionStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ security.SessionManager = (*JWTManager)(nil)

// NewJWTManager creates a session manager
func NewJWTManager(
	secret string,
	ttl time.Duration,
	store security.SessionStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &JWTManager{
		secret:       []byte(secret),
		ttl:          ttl,
		store:        store,
		timeProvider: timeProvider,
		logger:       logger,
	}, nil
}

// Issue creates a session for userID and returns its signed token
func (m *JWTManager) Issue(ctx context.Context, userID uint64) (string, error) {
	if userID == 0 {
		return "", errs.ErrUnauthenticated
	}

	now := m.timeProvider.Now()
	sess := security.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, sess); err != nil {
		m.logger.Error("Failed to save session", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Issuer:    issuer,
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%w: signing session token: %v", errs.ErrInternalServer, err)
	}

	m.logger.Debug("Session issued", map[string]any{
		"user_id":    userID,
		"session_id": sess.ID,
	})
	return signed, nil
}

// Resolve verifies a token and returns the live session behind it
func (m *JWTManager) Resolve(ctx context.Context, token string) (*security.Session, error) {
	c, err := m.parse(token, true)
	if err != nil {
		return nil, err
	}

	sess, err := m.store.Get(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if sess.UserID != c.UserID {
		m.logger.Warn("Session token does not match stored session", map[string]any{
			"session_id": c.ID,
		})
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

// Revoke deletes the session behind token; expired tokens are still revoked
func (m *JWTManager) Revoke(ctx context.Context, token string) error {
	c, err := m.parse(token, false)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, c.ID)
}

func (m *JWTManager) parse(token string, validateClaims bool) (*claims, error) {
	if token == "" {
		return nil, errs.ErrSessionNotFound
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.timeProvider.Now),
	}
	if !validateClaims {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	c := &claims{}
	_, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrSessionNotFound, err)
	}
	if c.ID == "" || c.UserID == 0 {
		return nil, errs.ErrSessionNotFound
	}
	return c, nil
}
