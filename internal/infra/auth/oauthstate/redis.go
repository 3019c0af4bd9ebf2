package oauthstate

import (
	"context"
	"encoding/json"
	"time"

	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/service"
	"vidshare/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "vidshare:oauth-state:"

// RedisStore shares state across replicas. Expiry is left to Redis TTLs.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Redis-backed state store. An empty prefix uses the default one.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) Save(ctx context.Context, state string, value service.OAuthState, ttl time.Duration) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshal oauth state")
	}

	if err := s.client.Set(ctx, s.prefix+state, data, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set oauth state")
	}

	return nil
}

// Consume reads and deletes the key atomically with GETDEL.
func (s *RedisStore) Consume(ctx context.Context, state string) (*service.OAuthState, error) {
	if state == "" {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	data, err := s.client.GetDel(ctx, s.prefix+state).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerrors.ErrOAuthStateInvalid
		}

		return nil, errors.Wrap(err, "redis getdel oauth state")
	}

	var value service.OAuthState
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, err.Error())
	}

	return &value, nil
}
