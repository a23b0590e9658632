package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreUpload(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads/")
	require.NoError(t, err)

	url, err := store.Upload("7/cover.jpg", strings.NewReader("bricks"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/7/cover.jpg", url)

	data, err := os.ReadFile(filepath.Join(store.Root(), "7", "cover.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "bricks", string(data))
}

func TestDiskStoreRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = store.Upload("7/gone.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove("7/gone.jpg"))
	_, err = os.Stat(filepath.Join(store.Root(), "7", "gone.jpg"))
	assert.True(t, os.IsNotExist(err))

	// Removing a missing object is not an error.
	assert.NoError(t, store.Remove("7/gone.jpg"))
}

func TestDiskStoreUsage(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	used, err := store.Usage()
	require.NoError(t, err)
	assert.Zero(t, used)

	_, err = store.Upload("1/a.jpg", strings.NewReader("12345"))
	require.NoError(t, err)
	_, err = store.Upload("2/b.jpg", strings.NewReader("123"))
	require.NoError(t, err)

	used, err = store.Usage()
	require.NoError(t, err)
	assert.Equal(t, int64(8), used)
}

func TestObjectPath(t *testing.T) {
	assert.Equal(t, "12/abc.jpg", ObjectPath("/uploads/12/abc.jpg"))
	assert.Equal(t, "7/cover.webp", ObjectPath("https://cdn.example.com/uploads/7/cover.webp"))
	assert.Equal(t, "lonely.jpg", ObjectPath("lonely.jpg"))
}
