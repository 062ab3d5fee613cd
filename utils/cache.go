// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"therewecome/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds browser sessions (token and role).
	SessionCacheClient *redis.Client
	// WizardCacheClient holds booking wizard state per browser session.
	WizardCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// GetSessionCacheClient returns the Redis client for browser sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetWizardCacheClient returns the Redis client for booking wizard state.
func GetWizardCacheClient() *redis.Client {
	if WizardCacheClient == nil {
		WizardCacheClient = newRedisClient(config.AppConfig.RedisWizardDB)
	}
	return WizardCacheClient
}
