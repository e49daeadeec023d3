// adapters/redis/redis.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
)

const tokenPrefix = "bearer:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(addr, username, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// TokenStore keeps the API bearer token of each operator session.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) GetToken(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, tokenPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	return token, err
}

func (s *TokenStore) SetToken(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenPrefix+sessionID, token, ttl).Err()
}

func (s *TokenStore) DeleteToken(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, tokenPrefix+sessionID).Err()
}
