// File: utils/credentials.go
package utils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const credentialTokenKey = "pms:bearerToken"

// TokenStore is the process-wide credential store for the upstream bearer token.
// An empty token from Get means the gateway proceeds unauthenticated.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// RedisTokenStore persists the bearer token in Redis so it survives restarts
// and is shared across gateway replicas.
type RedisTokenStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{Client: client}
}

func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.Client.Get(ctx, credentialTokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read bearer token: %w", err)
	}
	return token, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	if err := s.Client.Set(ctx, credentialTokenKey, token, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store bearer token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.Client.Del(ctx, credentialTokenKey).Err(); err != nil {
		return fmt.Errorf("failed to clear bearer token: %w", err)
	}
	return nil
}

// MemoryTokenStore is an in-process TokenStore used in tests and single-node setups.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
