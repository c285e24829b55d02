package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient(&RedisConfig{Mode: "standalone", Addr: mr.Addr()}, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestNewClient_Standalone_Success(t *testing.T) {
	_, client := newTestClient(t)
	assert.NoError(t, client.GetUnderlyingClient().Ping(context.Background()).Err())
}

func TestNewClient_Standalone_ConnectionFailed(t *testing.T) {
	cfg := &RedisConfig{
		Mode: "standalone",
		Addr: "localhost:99999", // Invalid port
	}

	client, err := NewClient(cfg, logging.NewNopLogger())
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClient_Operations(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	// Get/Set
	err := client.Set(ctx, "foo", "bar", 0).Err()
	assert.NoError(t, err)
	val, err := client.Get(ctx, "foo").Result()
	assert.NoError(t, err)
	assert.Equal(t, "bar", val)

	// Del
	deleted, err := client.Del(ctx, "foo").Result()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Exists
	exists, err := client.Exists(ctx, "foo").Result()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), exists)
}

func TestClient_Scan(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "chat:history:u1:100", "[]", 0).Err())
	require.NoError(t, client.Set(ctx, "chat:history:u1:200", "[]", 0).Err())
	require.NoError(t, client.Set(ctx, "chat:history:u2:300", "[]", 0).Err())

	keys, _, err := client.Scan(ctx, 0, "chat:history:u1:*", 100).Result()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"chat:history:u1:100", "chat:history:u1:200"}, keys)
}

func TestClient_Close(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := &RedisConfig{Mode: "standalone", Addr: mr.Addr()}
	client, err := NewClient(cfg, logging.NewNopLogger())
	require.NoError(t, err)

	assert.NoError(t, client.Close())

	// Should fail after close
	err = client.Get(context.Background(), "foo").Err()
	assert.Equal(t, ErrClientClosed, err)
}

//Personal.AI order the ending
