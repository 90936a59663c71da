package itinerary

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()
	plan := Plan{ID: "p1", Markdown: "## Overview", HTML: "<h2>Overview</h2>"}

	require.NoError(t, s.Put(ctx, plan))

	got, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	// Readable until expiry so a results page refresh still works.
	_, err = s.Get(ctx, "p1")
	assert.NoError(t, err)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	_, err := NewMemoryStore(time.Minute).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Plan{ID: "old"}))

	now = now.Add(time.Minute)
	_, err := s.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStorePurgesOnPut(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Plan{ID: "a"}))
	require.NoError(t, s.Put(ctx, Plan{ID: "b"}))
	now = now.Add(2 * time.Minute)
	require.NoError(t, s.Put(ctx, Plan{ID: "c"}))

	assert.Equal(t, 1, s.Len())
}

// TestRedisStoreRoundTrip needs a reachable Redis. It skips when TRIPPLANNER_TEST_REDIS is not set.
func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("TRIPPLANNER_TEST_REDIS")
	if addr == "" {
		t.Skip("TRIPPLANNER_TEST_REDIS not set; skipping Redis-backed tests")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	s := NewRedisStore(client, time.Minute)
	plan := Plan{
		ID:        uuid.NewString(),
		Markdown:  "## Overview\nTrip summary...",
		HTML:      "<h2>Overview</h2>\n<p>Trip summary...</p>\n",
		Model:     "gemini-2.0-flash",
		CreatedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Put(ctx, plan))
	t.Cleanup(func() { client.Del(ctx, redisKeyPrefix+plan.ID) })

	got, err := s.Get(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	ttl, err := client.TTL(ctx, redisKeyPrefix+plan.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	_, err = s.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
