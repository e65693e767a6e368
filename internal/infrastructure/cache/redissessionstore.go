package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"preparos/internal/domain/user"
	"preparos/internal/shared/biztime"
	apperrors "preparos/internal/shared/errors"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis. Each key expires together
// with its session.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

func NewRedisSessionStore(client *redis.Client) user.SessionRepository {
	return &RedisSessionStore{
		client: client,
		prefix: sessionKeyPrefix,
	}
}

func (s *RedisSessionStore) Create(ctx context.Context, session *user.Session) error {
	if session == nil || session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	ttl := session.ExpiresAt.Sub(biztime.NowUTC())
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.buildKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*user.Session, error) {
	if sessionID == "" {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	data, err := s.client.Get(ctx, s.buildKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var session user.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if session.IsExpired() {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.buildKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) buildKey(sessionID string) string {
	return s.prefix + sessionID
}

// TTL reports how long the session key has left, for diagnostics.
func (s *RedisSessionStore) TTL(ctx context.Context, sessionID string) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, s.buildKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get session ttl: %w", err)
	}
	return ttl, nil
}
