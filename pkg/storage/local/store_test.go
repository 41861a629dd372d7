package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saracafe/saracafe-backend/pkg/config"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(config.MediaConfig{RootDir: t.TempDir()}, nil)
	require.NoError(t, err)
	return store
}

func TestSaveAcceptsAllowedExtensions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"latte.png", "mocha.JPG", "cake.webp"} {
		rel, err := store.Save(ctx, strings.NewReader("image-bytes"), name)
		require.NoError(t, err, name)
		require.True(t, strings.HasPrefix(rel, "/uploads/images/"), "expected public path, got %s", rel)

		data, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(strings.TrimPrefix(rel, "/"))))
		require.NoError(t, err)
		require.Equal(t, "image-bytes", string(data))
	}
}

func TestSaveRejectsDisallowedExtensions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"payload.exe", "notes.txt", "noext"} {
		_, err := store.Save(ctx, strings.NewReader("x"), name)
		require.Error(t, err, name)
		require.True(t, errors.Is(err, ErrUnsupportedExtension), "expected allow-list rejection for %s", name)
	}
}

func TestSaveNeverReusesPaths(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, strings.NewReader("one"), "menu.png")
	require.NoError(t, err)
	second, err := store.Save(ctx, strings.NewReader("two"), "menu.png")
	require.NoError(t, err)

	require.NotEqual(t, first, second, "same original filename must not overwrite")
}

func TestDeleteIsBestEffort(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rel, err := store.Save(ctx, strings.NewReader("bytes"), "pic.jpg")
	require.NoError(t, err)

	require.True(t, store.Delete(ctx, rel))
	require.False(t, store.Delete(ctx, rel), "second delete should report false")
	require.False(t, store.Delete(ctx, "/uploads/images/never-existed.png"))
	require.False(t, store.Delete(ctx, ""))
}

func TestDeleteRefusesPathTraversal(t *testing.T) {
	store := newTestStore(t)

	outside := filepath.Join(store.Root(), "..", "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	require.False(t, store.Delete(context.Background(), "../victim.txt"))
	_, err := os.Stat(outside)
	require.NoError(t, err, "file outside the root must survive")
}
