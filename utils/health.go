package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     map[string]bool `json:"redis"`
	API       bool            `json:"api"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every redis store answered. The API is reported
// but does not fail the check.
func (h HealthStatus) Healthy() bool {
	for _, up := range h.Redis {
		if !up {
			return false
		}
	}
	return true
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings every redis client and the API probe once and stores the
// snapshot.
func CheckHealth(ctx context.Context, redisClients map[string]*redis.Client, apiProbe func(context.Context) error) HealthStatus {
	status := HealthStatus{
		Redis:     make(map[string]bool, len(redisClients)),
		CheckedAt: time.Now(),
	}
	for name, client := range redisClients {
		status.Redis[name] = client.Ping(ctx).Err() == nil
	}
	if apiProbe != nil {
		status.API = apiProbe(ctx) == nil
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, redisClients map[string]*redis.Client, apiProbe func(context.Context) error) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		CheckHealth(ctx, redisClients, apiProbe)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, redisClients, apiProbe)
			}
		}
	}()
}
