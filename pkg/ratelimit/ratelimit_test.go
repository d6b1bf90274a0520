package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter(3, time.Minute)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i)
	}

	ok, _ := l.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "keys are independent")

	now = now.Add(20 * time.Second)
	ok, _ = l.Allow(ctx, "1.2.3.4")
	assert.True(t, ok, "token refilled after window/limit")
}

func TestMemoryLimiterCleanup(t *testing.T) {
	l := NewMemoryLimiter(5, time.Minute)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(context.Background(), "a")
	now = now.Add(30 * time.Second)
	_, _ = l.Allow(context.Background(), "b")
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, l.Cleanup())
	assert.Len(t, l.buckets, 1)
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	l := NewRedisLimiter(rdb, 2, time.Minute, "test")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, mr.Exists("test:client"))

	mr.FastForward(time.Minute + time.Second)
	ok, err = l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, ok, "window expired")
}

func TestRedisLimiterUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	_, err := NewRedisLimiter(rdb, 2, time.Minute, "").Allow(context.Background(), "client")
	assert.Error(t, err)
}
