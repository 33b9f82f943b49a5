package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc", filepath.Join(t.TempDir(), "test.db"))
	s, err := NewStore(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestStore_SaveLoad(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "domains", []byte(`["paypal.com"]`)))

	got, err := s.Load(ctx, "domains")
	require.NoError(t, err)
	assert.Equal(t, `["paypal.com"]`, string(got))
}

func TestStore_LoadMissingKey(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.Load(context.Background(), "never-written")
	require.NoError(t, err)
	assert.Nil(t, got, "missing key loads as nil, not error")
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "settings", []byte(`{"a":1}`)))
	require.NoError(t, s.Save(ctx, "settings", []byte(`{"a":2}`)))

	got, err := s.Load(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got), "last write wins")
}

func TestStore_Delete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "usage", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "usage"))
	require.NoError(t, s.Delete(ctx, "usage"), "deleting a missing key is not an error")

	got, err := s.Load(ctx, "usage")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_DeleteAll(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a", []byte("1")))
	require.NoError(t, s.Save(ctx, "b", []byte("2")))
	require.NoError(t, s.DeleteAll(ctx))

	for _, key := range []string{"a", "b"} {
		got, err := s.Load(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestStore_Ping(t *testing.T) {
	s := setupTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.True(t, isLockError(errors.New("SQLITE_BUSY: database is busy")))
	assert.True(t, isLockError(errors.New("database is locked")))
	assert.False(t, isLockError(errors.New("syntax error")))
}
