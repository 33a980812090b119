package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, opts Options) (*RedisSolutionCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSolutionCache(client, opts), server
}

func TestRedisSolutionCache_Keys(t *testing.T) {
	id := uuid.MustParse("6f1c1f9e-8d1e-4c53-9a55-07f3b4a6a0d2")

	t.Run("default prefix", func(t *testing.T) {
		c, _ := newTestCache(t, Options{})
		assert.Equal(t, "pathfinder:solution:6f1c1f9e-8d1e-4c53-9a55-07f3b4a6a0d2", c.solutionKey(id))
		assert.Equal(t, "pathfinder:solve_lock:6f1c1f9e-8d1e-4c53-9a55-07f3b4a6a0d2", c.lockKey(id))
	})

	t.Run("custom prefix", func(t *testing.T) {
		c, _ := newTestCache(t, Options{Prefix: "test"})
		assert.Equal(t, "test:solution:6f1c1f9e-8d1e-4c53-9a55-07f3b4a6a0d2", c.solutionKey(id))
	})
}

func TestRedisSolutionCache_GetPut(t *testing.T) {
	ctx := context.Background()
	c, server := newTestCache(t, Options{})
	id := uuid.New()

	t.Run("miss", func(t *testing.T) {
		data, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, data)
	})

	t.Run("hit", func(t *testing.T) {
		require.NoError(t, c.Put(ctx, id, []byte{0x08, 0x01}, time.Minute))

		data, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte{0x08, 0x01}, data)
		assert.Equal(t, time.Minute, server.TTL(c.solutionKey(id)))
	})

	t.Run("expired entry is a miss", func(t *testing.T) {
		server.FastForward(2 * time.Minute)

		_, ok, err := c.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("server errors are reported", func(t *testing.T) {
		broken, server := newTestCache(t, Options{})
		server.Close()

		_, ok, err := broken.Get(ctx, id)
		assert.Error(t, err)
		assert.False(t, ok)
		assert.Error(t, broken.Put(ctx, id, []byte{1}, time.Minute))
	})
}

func TestRedisSolutionCache_Lock(t *testing.T) {
	ctx := context.Background()
	c, server := newTestCache(t, Options{LockTTL: 5 * time.Second})
	id := uuid.New()

	unlock, err := c.Lock(ctx, id)
	require.NoError(t, err)
	assert.True(t, server.Exists(c.lockKey(id)))

	t.Run("held lock blocks other callers", func(t *testing.T) {
		waitCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()

		_, err := c.Lock(waitCtx, id)
		assert.Error(t, err)
	})

	t.Run("other mazes are not blocked", func(t *testing.T) {
		other, err := c.Lock(ctx, uuid.New())
		require.NoError(t, err)
		assert.NoError(t, other(ctx))
	})

	require.NoError(t, unlock(ctx))
	assert.False(t, server.Exists(c.lockKey(id)))

	again, err := c.Lock(ctx, id)
	require.NoError(t, err)
	assert.NoError(t, again(ctx))
}
