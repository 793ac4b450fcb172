package cache

import (
	"context"
	"testing"
	"time"

	"farmportal.app/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	c.Set(ctx, "eco:abc", []byte(`{"advice":"neem"}`), time.Minute)

	data, found := c.Get(ctx, "eco:abc")
	assert.True(t, found)
	assert.Equal(t, []byte(`{"advice":"neem"}`), data)
}

func TestMemoryCache_MissAndExpiry(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	c.Set(ctx, "short", []byte("x"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, found = c.Get(ctx, "short")
	assert.False(t, found)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	c.Set(ctx, "a", []byte("1"), time.Minute)
	c.Set(ctx, "b", []byte("2"), time.Minute)

	c.Delete(ctx, "a")
	_, found := c.Get(ctx, "a")
	assert.False(t, found)

	c.Clear(ctx)
	_, found = c.Get(ctx, "b")
	assert.False(t, found)
}

func TestMemoryCache_NilValueIgnored(t *testing.T) {
	c := NewMemoryCache()
	defer c.Stop()
	ctx := context.Background()

	c.Set(ctx, "nil", nil, time.Minute)
	_, found := c.Get(ctx, "nil")
	assert.False(t, found)
}

func setupMockRedis(t *testing.T) *config.CacheConfig {
	t.Helper()

	mockRedis := miniredis.RunT(t)
	return &config.CacheConfig{
		Type:       "redis",
		TTLMinutes: 60,
		RedisAddr:  mockRedis.Addr(),
	}
}

func TestRedisCache_SetGet(t *testing.T) {
	cfg := setupMockRedis(t)

	c, err := NewRedisCache(cfg)
	require.NoError(t, err)
	ctx := context.Background()

	c.Set(ctx, "eco:abc", []byte(`{"advice":"neem"}`), time.Minute)

	data, found := c.Get(ctx, "eco:abc")
	assert.True(t, found)
	assert.Equal(t, []byte(`{"advice":"neem"}`), data)
}

func TestRedisCache_Miss(t *testing.T) {
	cfg := setupMockRedis(t)

	c, err := NewRedisCache(cfg)
	require.NoError(t, err)

	_, found := c.Get(context.Background(), "missing")
	assert.False(t, found)
}

func TestRedisCache_BadAddress(t *testing.T) {
	cfg := &config.CacheConfig{Type: "redis", TTLMinutes: 60, RedisAddr: "127.0.0.1:1"}

	c, err := NewRedisCache(cfg)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestInstrumentedCache_CountsHitsAndMisses(t *testing.T) {
	inner := NewMemoryCache()
	defer inner.Stop()

	c := NewInstrumentedCache(inner, "test-instrumented")
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)

	_, found := c.Get(ctx, "k")
	assert.True(t, found)

	_, found = c.Get(ctx, "absent")
	assert.False(t, found)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}
