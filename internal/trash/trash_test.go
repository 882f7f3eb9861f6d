package trash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirTrasher_MovesFileAndWritesInfo(t *testing.T) {
	dir := t.TempDir()
	victim := filepath.Join(dir, "debug.log")
	require.NoError(t, os.WriteFile(victim, []byte("payload"), 0o644))

	tr := NewDirTrasher(filepath.Join(dir, "Trash"))
	tr.now = func() time.Time { return time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC) }

	require.NoError(t, tr.Trash(victim))

	_, err := os.Lstat(victim)
	assert.True(t, os.IsNotExist(err))

	moved, err := os.ReadFile(filepath.Join(dir, "Trash", "files", "debug.log"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(moved))

	info, err := os.ReadFile(filepath.Join(dir, "Trash", "info", "debug.log.trashinfo"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "[Trash Info]")
	assert.Contains(t, string(info), "Path="+victim)
	assert.Contains(t, string(info), "DeletionDate=2026-08-28T12:30:00")
}

func TestDirTrasher_MovesDirectoryTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "build", "obj"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build", "obj", "a.o"), []byte("x"), 0o644))

	tr := NewDirTrasher(filepath.Join(dir, "Trash"))
	require.NoError(t, tr.Trash(filepath.Join(dir, "build")))

	_, err := os.Lstat(filepath.Join(dir, "build"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Lstat(filepath.Join(dir, "Trash", "files", "build", "obj", "a.o"))
	assert.NoError(t, err)
}

func TestDirTrasher_CollidingNamesGetSuffixes(t *testing.T) {
	dir := t.TempDir()
	tr := NewDirTrasher(filepath.Join(dir, "Trash"))

	for i := 0; i < 3; i++ {
		victim := filepath.Join(dir, "tmp")
		require.NoError(t, os.MkdirAll(victim, 0o755))
		require.NoError(t, tr.Trash(victim))
	}

	names, err := os.ReadDir(filepath.Join(dir, "Trash", "files"))
	require.NoError(t, err)
	got := make([]string, len(names))
	for i, n := range names {
		got[i] = n.Name()
	}
	assert.ElementsMatch(t, []string{"tmp", "tmp.2", "tmp.3"}, got)
}

func TestDirTrasher_MissingSourceFailsWithoutOrphanInfo(t *testing.T) {
	dir := t.TempDir()
	tr := NewDirTrasher(filepath.Join(dir, "Trash"))

	err := tr.Trash(filepath.Join(dir, "never-existed"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "move to trash"))

	entries, err := os.ReadDir(filepath.Join(dir, "Trash", "info"))
	require.NoError(t, err)
	assert.Empty(t, entries, "failed move leaves no info record behind")
}
