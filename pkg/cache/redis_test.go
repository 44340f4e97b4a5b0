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

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "test:key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", val)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	_ = client.Set(ctx, "test:key2", "value2", 1*time.Hour)

	err := client.Delete(ctx, "test:key1")
	require.NoError(t, err)

	_, err = client.Get(ctx, "test:key1")
	assert.Error(t, err) // redis.Nil

	val, err := client.Get(ctx, "test:key2")
	require.NoError(t, err)
	assert.Equal(t, "value2", val)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "crm:1:board", "a", 1*time.Hour)
	_ = client.Set(ctx, "crm:1:dashboard", "b", 1*time.Hour)
	_ = client.Set(ctx, "crm:2:board", "c", 1*time.Hour)

	err := client.DeletePattern(ctx, "crm:1:*")
	require.NoError(t, err)

	_, err = client.Get(ctx, "crm:1:board")
	assert.Error(t, err)
	_, err = client.Get(ctx, "crm:1:dashboard")
	assert.Error(t, err)

	// Other tenant untouched
	val, err := client.Get(ctx, "crm:2:board")
	require.NoError(t, err)
	assert.Equal(t, "c", val)
}

func TestClient_InvalidateTenantViews(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, TenantKey(7, "board"), "x", 1*time.Hour)
	_ = client.Set(ctx, TenantKey(7, "leads", "p1"), "y", 1*time.Hour)
	_ = client.Set(ctx, TenantKey(8, "board"), "z", 1*time.Hour)

	require.NoError(t, client.InvalidateTenantViews(ctx, 7))

	_, err := client.Get(ctx, TenantKey(7, "board"))
	assert.Error(t, err)
	_, err = client.Get(ctx, TenantKey(7, "leads", "p1"))
	assert.Error(t, err)

	val, err := client.Get(ctx, TenantKey(8, "board"))
	require.NoError(t, err)
	assert.Equal(t, "z", val)
}

func TestTenantKey(t *testing.T) {
	assert.Equal(t, "crm:3", TenantKey(3))
	assert.Equal(t, "crm:3:board", TenantKey(3, "board"))
	assert.Equal(t, "crm:3:leads:page:1", TenantKey(3, "leads", "page", "1"))
}
