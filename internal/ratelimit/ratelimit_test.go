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

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestCheckAndSetTakesSlot(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	allowed, err := CheckAndSet(ctx, client, "10.0.0.1", "login", time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = CheckAndSet(ctx, client, "10.0.0.1", "login", time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "second attempt inside the window must be blocked")
}

func TestSlotsAreIndependentPerKeyAndAction(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	allowed, err := CheckAndSet(ctx, client, "10.0.0.1", "login", time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = CheckAndSet(ctx, client, "10.0.0.2", "login", time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "different key must not be blocked")

	allowed, err = CheckAndSet(ctx, client, "10.0.0.1", "upload", time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "different action must not be blocked")
}

func TestSlotExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	ctx := context.Background()

	allowed, err := CheckAndSet(ctx, client, "10.0.0.1", "login", time.Second)
	require.NoError(t, err)
	require.True(t, allowed)

	mr.FastForward(2 * time.Second)

	allowed, err = CheckAndSet(ctx, client, "10.0.0.1", "login", time.Second)
	require.NoError(t, err)
	assert.True(t, allowed, "slot must free up after the TTL")
}

func TestClearReleasesSlot(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	_, err := CheckAndSet(ctx, client, "10.0.0.1", "login", time.Minute)
	require.NoError(t, err)

	require.NoError(t, Clear(ctx, client, "10.0.0.1", "login"))

	allowed, err := CheckAndSet(ctx, client, "10.0.0.1", "login", time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestTTLReported(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	_, err := CheckAndSet(ctx, client, "10.0.0.1", "login", time.Minute)
	require.NoError(t, err)

	ttl, err := TTL(ctx, client, "10.0.0.1", "login")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestNilClientDisablesLimiting(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := CheckAndSet(ctx, nil, "10.0.0.1", "login", time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	require.NoError(t, Clear(ctx, nil, "10.0.0.1", "login"))
}
