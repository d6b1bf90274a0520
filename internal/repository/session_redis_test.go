package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbershop/internal/domain"
)

func newTestSessionStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSessionStore(client), mr
}

func testSession(userID, hash string, ttl time.Duration) domain.Session {
	now := time.Now()
	return domain.Session{
		UserID:    userID,
		TokenHash: hash,
		UserAgent: "test-agent",
		IP:        "127.0.0.1",
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

func TestRedisSessionStoreCreateAndGet(t *testing.T) {
	store, _ := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("user-1", "hash-1", time.Hour)))

	got, err := store.GetByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "hash-1", got.TokenHash)
	assert.Equal(t, "test-agent", got.UserAgent)
	assert.NotEmpty(t, got.ID)
}

func TestRedisSessionStoreMissingSession(t *testing.T) {
	store, _ := newTestSessionStore(t)

	_, err := store.GetByTokenHash(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisSessionStoreExpiry(t *testing.T) {
	store, mr := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("user-1", "hash-1", time.Minute)))
	mr.FastForward(2 * time.Minute)

	_, err := store.GetByTokenHash(ctx, "hash-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisSessionStoreRejectsExpiredSession(t *testing.T) {
	store, _ := newTestSessionStore(t)

	err := store.Create(context.Background(), testSession("user-1", "hash-1", -time.Minute))
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestRedisSessionStoreDelete(t *testing.T) {
	store, mr := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("user-1", "hash-1", time.Hour)))
	require.NoError(t, store.Delete(ctx, "hash-1"))
	require.NoError(t, store.Delete(ctx, "hash-1"))

	_, err := store.GetByTokenHash(ctx, "hash-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	members, err := mr.SMembers(userSessionsKey("user-1"))
	if err == nil {
		assert.Empty(t, members)
	}
}

func TestRedisSessionStoreDeleteByUserID(t *testing.T) {
	store, _ := newTestSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("user-1", "hash-1", time.Hour)))
	require.NoError(t, store.Create(ctx, testSession("user-1", "hash-2", time.Hour)))
	require.NoError(t, store.Create(ctx, testSession("user-2", "hash-3", time.Hour)))

	require.NoError(t, store.DeleteByUserID(ctx, "user-1"))

	for _, h := range []string{"hash-1", "hash-2"} {
		_, err := store.GetByTokenHash(ctx, h)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}

	got, err := store.GetByTokenHash(ctx, "hash-3")
	require.NoError(t, err)
	assert.Equal(t, "user-2", got.UserID)
}
