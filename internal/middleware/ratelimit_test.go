package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit_DisabledInTestEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	allowed, err := CheckRateLimit(context.Background(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_EnforcesLimit(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(context.Background(), rdb, "login", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := CheckRateLimit(context.Background(), rdb, "login", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// a different caller is unaffected
	allowed, err = CheckRateLimit(context.Background(), rdb, "login", "ip:5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimit_WindowExpires(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	for i := 0; i < 2; i++ {
		_, err := CheckRateLimit(context.Background(), rdb, "login", "ip:1.2.3.4", 1, time.Second)
		require.NoError(t, err)
	}

	mr.FastForward(2 * time.Second)

	allowed, err := CheckRateLimit(context.Background(), rdb, "login", "ip:1.2.3.4", 1, time.Second)
	require.NoError(t, err)
	assert.True(t, allowed)
}
