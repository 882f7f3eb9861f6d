package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebaiyuan/buildsweep/internal/engine"
)

func seed(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	seed(t, filepath.Join(dir, "proj", "build", "a.o"), 128)
	seed(t, filepath.Join(dir, "proj", "src", "main.c"), 16)

	entries, err := Scan(Config{Root: dir})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "proj/build", entries[0].Rel)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(Config{Root: filepath.Join(t.TempDir(), "nope")})
	require.ErrorIs(t, err, engine.ErrPathNotFound)
}

func TestClean_DryRun(t *testing.T) {
	dir := t.TempDir()
	seed(t, filepath.Join(dir, "proj", "build", "a.o"), 512)
	seed(t, filepath.Join(dir, "proj", "node_modules", "p", "i.js"), 256)
	seed(t, filepath.Join(dir, "proj", "src", "main.c"), 16)

	res, err := Clean(Config{Root: dir, DryRun: true})
	require.NoError(t, err)

	assert.Len(t, res.Entries, 2)
	assert.Equal(t, 2, res.Tally.Succeeded)
	assert.Equal(t, int64(768), res.TotalBytes)
	assert.Equal(t, int64(768), res.BytesReclaimed)

	_, err = os.Lstat(filepath.Join(dir, "proj", "build", "a.o"))
	assert.NoError(t, err, "dry run removes nothing")
	_, err = os.Lstat(filepath.Join(dir, "proj", "node_modules", "p", "i.js"))
	assert.NoError(t, err)
}

func TestClean_NothingToDo(t *testing.T) {
	dir := t.TempDir()
	seed(t, filepath.Join(dir, "proj", "src", "main.c"), 16)

	res, err := Clean(Config{Root: dir, DryRun: true})
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Zero(t, res.Tally.Succeeded)
	assert.Zero(t, res.TotalBytes)
}
