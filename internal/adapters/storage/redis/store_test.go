package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/results/internal/tenant"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tenant:user:12", userKey(12))
	assert.Equal(t, "tenant:address:1234AB:3a", addressKey("1234AB", "3a"))
}

func TestConnect_ParsesURL(t *testing.T) {
	t.Parallel()

	client, err := Connect(context.Background(), "redis://localhost:6379/2")
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, 2, client.Options().DB)

	_, err = Connect(context.Background(), "redis://%zz")
	assert.Error(t, err)
}

func TestStore_Integration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()

	client, err := Connect(ctx, url)
	require.NoError(t, err)
	defer client.Close()
	require.NoError(t, client.FlushDB(ctx).Err())

	s := NewStore(client)
	require.NoError(t, s.Seed(ctx, tenant.SeedUsers()))

	name, found, err := s.User(ctx, 0)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "John", name)

	_, found, err = s.User(ctx, 2)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = s.SetUser(ctx, 2, "Nobody")
	require.NoError(t, err)
	assert.False(t, found)

	ids, err := s.UsersAtAddress(ctx, "1234AB", "1")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ids)

	found, err = s.SetUser(ctx, 0, "Renamed")
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, s.Seed(ctx, tenant.SeedUsers()))
	name, _, err = s.User(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", name)
}
