package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	errs "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL matching their expiry
type RedisStore struct {
	redis        *redis.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ security.SessionStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, timeProvider coreport.TimeProvider, logger coreport.Logger) *RedisStore {
	return &RedisStore{
		redis:        client,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Save stores the session until it expires
func (s *RedisStore) Save(ctx context.Context, session security.Session) error {
	ttl := session.ExpiresAt.Sub(s.timeProvider.Now())
	if ttl <= 0 {
		return fmt.Errorf("%w: session already expired", errs.ErrConstraintViolation)
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, keyPrefix+session.ID, payload, ttl).Err(); err != nil {
		s.logger.Error("failed on redis.Set", map[string]any{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
	return nil
}

// Get loads a live session
func (s *RedisStore) Get(ctx context.Context, id string) (*security.Session, error) {
	raw, err := s.redis.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error("failed on redis.Get", map[string]any{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	var sess security.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.logger.Warn("Discarding unreadable session", map[string]any{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, errs.ErrSessionNotFound
	}
	return &sess, nil
}

// Delete removes the session
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
	return nil
}
