package draft

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_GetAbsent(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	_, ok, err := storage.Get("missing")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStorage_SetGetRemove(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	err := storage.Set("slot", `{"a":1}`)
	require.NoError(t, err)

	value, ok, err := storage.Get("slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, value)

	err = storage.Remove("slot")
	require.NoError(t, err)

	_, ok, err = storage.Get("slot")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStorage_SetOverwrites(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	require.NoError(t, storage.Set("slot", "old"))
	require.NoError(t, storage.Set("slot", "new"))

	value, ok, err := storage.Get("slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestFileStorage_RemoveAbsentIsNoop(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	assert.NoError(t, storage.Remove("missing"))
}

func TestFileStorage_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	storage := NewFileStorage(dir)

	require.NoError(t, storage.Set("slot", "v"))

	_, err := os.Stat(filepath.Join(dir, "slot.json"))
	assert.NoError(t, err)
}

func TestFileStorage_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)

	require.NoError(t, storage.Set("slot", "v"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "slot.json", entries[0].Name())
}
