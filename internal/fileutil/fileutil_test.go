package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "new.yaml")))
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(dir, "regular.yaml")
		require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), ReadableByAll))
		assert.NoError(t, RejectSymlinkOutput(path))
	})

	t.Run("symlink", func(t *testing.T) {
		target := filepath.Join(dir, "target.yaml")
		require.NoError(t, os.WriteFile(target, nil, ReadableByAll))
		link := filepath.Join(dir, "link.yaml")
		if err := os.Symlink(target, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		err := RejectSymlinkOutput(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refusing to write to symlink")
	})
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("spec", "openapi.yaml"), filepath.FromSlash(DefaultOutputPath))
}
