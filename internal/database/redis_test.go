package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &Redis{client}, mr
}

func TestIncrWithTTL(t *testing.T) {
	r, mr := setupTestRedis(t)

	count, err := r.IncrWithTTL("ratelimit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Greater(t, mr.TTL("ratelimit:10.0.0.1"), time.Duration(0), "first increment must set a TTL")

	count, err = r.IncrWithTTL("ratelimit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestIncrWithTTL_RestoresLostTTL(t *testing.T) {
	r, mr := setupTestRedis(t)

	_, err := r.IncrWithTTL("ratelimit:10.0.0.1", time.Minute)
	require.NoError(t, err)

	// Simular un Expire perdido: la clave queda sin expiración
	require.NoError(t, r.Client.Persist(context.Background(), "ratelimit:10.0.0.1").Err())
	require.Equal(t, time.Duration(0), mr.TTL("ratelimit:10.0.0.1"))

	count, err := r.IncrWithTTL("ratelimit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Greater(t, mr.TTL("ratelimit:10.0.0.1"), time.Duration(0), "increment must re-arm a missing TTL")
}

func TestIncrWithTTL_WindowExpires(t *testing.T) {
	r, mr := setupTestRedis(t)

	_, err := r.IncrWithTTL("ratelimit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	_, err = r.IncrWithTTL("ratelimit:10.0.0.1", time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	count, err := r.IncrWithTTL("ratelimit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "a new window starts after the TTL elapses")
}
