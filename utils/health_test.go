package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealthRecordsSnapshot(t *testing.T) {
	status := CheckHealth(context.Background(), map[string]*redis.Client{}, func(context.Context) error { return nil })
	assert.True(t, status.API)
	assert.Equal(t, status, GetHealthStatus())

	status = CheckHealth(context.Background(), nil, func(context.Context) error { return errors.New("down") })
	assert.False(t, status.API)
	assert.False(t, GetHealthStatus().API)
}

func TestHealthyRequiresEveryRedisStore(t *testing.T) {
	assert.True(t, HealthStatus{}.Healthy())
	assert.True(t, HealthStatus{Redis: map[string]bool{"session": true}, API: false}.Healthy())
	assert.False(t, HealthStatus{Redis: map[string]bool{"session": true, "wizard": false}}.Healthy())
}
