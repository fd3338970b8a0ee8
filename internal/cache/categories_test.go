package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Categories, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCategories(client, ttl), mr
}

func TestCategories_MissThenHit(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Minute)

	_, err := c.GetCategories(ctx)
	assert.ErrorIs(t, err, ErrMiss)

	want := map[int]string{1: "Science", 2: "Art"}
	require.NoError(t, c.StoreCategories(ctx, want))

	got, err := c.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCategories_Expires(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.StoreCategories(ctx, map[int]string{1: "Science"}))
	assert.Equal(t, time.Minute, mr.TTL(categoriesKey))

	mr.FastForward(2 * time.Minute)
	_, err := c.GetCategories(ctx)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCategories_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Minute)

	require.NoError(t, c.StoreCategories(ctx, map[int]string{1: "Science"}))
	require.NoError(t, c.Invalidate(ctx))

	_, err := c.GetCategories(ctx)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCategories_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, mr.Set(categoriesKey, "not json"))
	_, err := c.GetCategories(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}
