// Package session provides the Redis-backed session store. It owns the
// token-to-account mapping and nothing else: no policy, no account data.
package session

import (
	"context"
	"time"

	"fittrack/internal/domain/service"
	"fittrack/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// redisManager implements service.SessionManager on a Redis client.
// Tokens are opaque random identifiers; the value under each key is the
// account id the token authenticates.
type redisManager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisManager builds a SessionManager on the given client. A zero
// ttl stores sessions without expiry; lifetime is then bounded only by
// explicit logout.
func NewRedisManager(client *redis.Client, ttl time.Duration) service.SessionManager {
	return &redisManager{client: client, ttl: ttl}
}

// Create issues a fresh token and associates it with accountID.
func (m *redisManager) Create(ctx context.Context, accountID uuid.UUID) (string, error) {
	token := uuid.NewString()

	if err := m.client.Set(ctx, sessionKeyPrefix+token, accountID.String(), m.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "failed to store session")
	}

	return token, nil
}

// Resolve returns the account id behind token, or ErrSessionNotFound.
func (m *redisManager) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	value, err := m.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, service.ErrSessionNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to load session")
	}

	accountID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "corrupt session value")
	}

	return accountID, nil
}

// Destroy removes the session. Deleting an absent token is not an
// error; only a store failure is.
func (m *redisManager) Destroy(ctx context.Context, token string) error {
	if err := m.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
