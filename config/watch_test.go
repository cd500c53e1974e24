package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spell:\n  damage: 8\n"), 0o600))

	w, err := WatchFile(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("spell:\n  damage: 4\n"), 0o600))

	select {
	case got := <-w.Events:
		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchFileMissingDirectory(t *testing.T) {
	_, err := WatchFile(filepath.Join(t.TempDir(), "missing", "tuning.yaml"))
	assert.Error(t, err)
}
