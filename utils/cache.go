// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"premierlodge/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CredentialsCacheClient holds the upstream bearer token.
	CredentialsCacheClient *redis.Client
	// SessionCacheClient holds pending payment sessions.
	SessionCacheClient *redis.Client
)

// InitCredentialsCache initializes the Redis client backing the credential store.
func InitCredentialsCache() {
	CredentialsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCredentialsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CredentialsCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Credentials): %v", err)
	}
}

// GetCredentialsCacheClient returns the Redis client backing the credential store.
func GetCredentialsCacheClient() *redis.Client {
	if CredentialsCacheClient == nil {
		InitCredentialsCache()
	}
	return CredentialsCacheClient
}

// InitSessionCache initializes the Redis client for payment session caching.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for payment session caching.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
