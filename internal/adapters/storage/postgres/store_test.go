package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/results/internal/tenant"
)

func TestStore_Integration(t *testing.T) {
	url := os.Getenv("DB_URL")
	if url == "" {
		t.Skip("DB_URL not set")
	}
	ctx := context.Background()

	db, err := Connect(ctx, url)
	require.NoError(t, err)

	s := NewStore(db)
	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, db.Exec("DELETE FROM tenant_users").Error)
	require.NoError(t, s.Seed(ctx, tenant.SeedUsers()))

	name, found, err := s.User(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Vincent", name)

	found, err = s.SetUser(ctx, 5, "Nobody")
	require.NoError(t, err)
	assert.False(t, found)

	ids, err := s.UsersAtAddress(ctx, "1234AB", "3")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)

	found, err = s.SetUser(ctx, 1, "Renamed")
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, s.Seed(ctx, tenant.SeedUsers()))
	name, _, err = s.User(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", name)
}

func TestUserRecord_TableName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "tenant_users", userRecord{}.TableName())
}
