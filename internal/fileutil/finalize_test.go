package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/goshift/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "ciphers.txt")

	require.NoError(t, fileutil.WriteAtomic(out, []byte("def"), fileutil.Perm(false)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "def", string(data))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteAtomicLeavesNoPartialFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// The destination is an existing directory, so the final rename fails.
	out := filepath.Join(dir, "taken")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "child"), 0o750))

	err := fileutil.WriteAtomic(out, []byte("def"), fileutil.Perm(false))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "taken", entries[0].Name())
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "missing", "out.txt")

	require.Error(t, fileutil.WriteAtomic(out, []byte("x"), fileutil.Perm(false)))
	assert.NoFileExists(t, out)
}

func TestRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "run.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o700))

	src, err := fileutil.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(src.Data))
	assert.True(t, src.IsExec)

	_, err = fileutil.Read(filepath.Join(dir, "missing"))
	require.Error(t, err)

	_, err = fileutil.Read(dir)
	require.Error(t, err)
}

func TestFinalizeOutputPreservesTimestamps(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	modTime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	size, err := fileutil.FinalizeOutput(path, true, modTime)
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(modTime))
}

func TestPerm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, os.FileMode(0o600), fileutil.Perm(false))
	assert.Equal(t, os.FileMode(0o711), fileutil.Perm(true))
}
