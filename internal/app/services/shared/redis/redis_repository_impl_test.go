package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, &redisRepository{client: client}
}

func TestRedisRepositorySetGet(t *testing.T) {
	ctx := context.Background()
	server, repo := newTestRepository(t)

	require.NoError(t, repo.Set(ctx, "key", map[string]int{"interval": 30}, time.Minute))

	value, err := repo.Get(ctx, "key")
	require.NoError(t, err)
	assert.JSONEq(t, `{"interval":30}`, value)
	assert.Equal(t, time.Minute, server.TTL("key"))

	missing, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestRedisRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	server, repo := newTestRepository(t)

	server.Set("openhours:schedule:a:2024-03-01", "{}")
	server.Set("openhours:schedule:a:2024-03-02", "{}")
	server.Set("openhours:schedule:b:2024-03-01", "{}")

	deleted, err := repo.DeleteByPattern(ctx, "openhours:schedule:a:*")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.False(t, server.Exists("openhours:schedule:a:2024-03-01"))
	assert.True(t, server.Exists("openhours:schedule:b:2024-03-01"))

	require.NoError(t, repo.Delete(ctx, "openhours:schedule:b:2024-03-01"))
	assert.False(t, server.Exists("openhours:schedule:b:2024-03-01"))
}

func TestRedisRepositoryTrySetNX(t *testing.T) {
	ctx := context.Background()
	server, repo := newTestRepository(t)

	acquired, err := repo.TrySetNX(ctx, "lock", "token-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock", "token-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, repo.Expire(ctx, "lock", 2*time.Minute))
	assert.Equal(t, 2*time.Minute, server.TTL("lock"))
}

func TestRedisRepositoryIncrement(t *testing.T) {
	ctx := context.Background()
	server, repo := newTestRepository(t)

	value, err := repo.Increment(ctx, "openhours:schedule-version:a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), value)

	value, err = repo.Increment(ctx, "openhours:schedule-version:a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), value)

	stored, err := server.Get("openhours:schedule-version:a")
	require.NoError(t, err)
	assert.Equal(t, "2", stored)
}
