package blobstore

import (
	"context"
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Missing blob.
	_, err := s.Open(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	// Write, then read back.
	w, err := s.Create(ctx, "run1/masks-rank0000.snap")
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := s.Open(ctx, "run1/masks-rank0000.snap")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, []byte("hello"), data)

	// List by prefix.
	w, err = s.Create(ctx, "run1/masks-rank0001.snap")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w, err = s.Create(ctx, "run2/masks-rank0000.snap")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	names, err := s.List(ctx, "run1/")
	require.NoError(t, err)
	sort.Strings(names)
	assert.Equal(t, []string{"run1/masks-rank0000.snap", "run1/masks-rank0001.snap"}, names)

	// Delete is idempotent.
	require.NoError(t, s.Delete(ctx, "run1/masks-rank0000.snap"))
	require.NoError(t, s.Delete(ctx, "run1/masks-rank0000.snap"))

	_, err = s.Open(ctx, "run1/masks-rank0000.snap")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	testStore(t, NewLocalStore(t.TempDir()))
}

func TestLocalStore_ListEmptyRoot(t *testing.T) {
	s := NewLocalStore(t.TempDir() + "/missing")

	names, err := s.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"run1/a", "run1/b", "run2/c"} {
		w, err := s.Create(ctx, name)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}

	require.NoError(t, Purge(ctx, s, "run1/"))

	names, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"run2/c"}, names)

	_, err = s.Open(ctx, "run1/a")
	assert.True(t, errors.Is(err, ErrNotFound))
}
