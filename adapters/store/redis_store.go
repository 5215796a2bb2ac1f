package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ShubhanginiSharma627/e-sign-app/core"
	"github.com/ShubhanginiSharma627/e-sign-app/ports"
)

// RedisStore is a Redis implementation of the TokenStore interface,
// for deployments where the service runs on more than one host and the
// token cache should be shared.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a new Redis store
func NewRedisStore(client *redis.Client) ports.TokenStore {
	return &RedisStore{
		client: client,
		key:    "esign:zoho:token",
	}
}

// Load fetches the token record from Redis.
func (s *RedisStore) Load(ctx context.Context) (*core.CachedToken, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, ErrNoToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	var token core.CachedToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token record: %w", err)
	}

	return &token, nil
}

// Save overwrites the token record in Redis. No TTL is set; validity is
// judged from the stored expiry timestamp, matching the file store.
func (s *RedisStore) Save(ctx context.Context, token *core.CachedToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}
