package fileutil

import (
	"fmt"
	"os"
)

// DefaultOutputPath is where the patched specification is written when no
// output path is given. It is relative to the working directory.
const DefaultOutputPath = "spec/openapi.yaml"

// ReadableByAll is the file permission mode for the written specification.
// The file is committed and read by client generators.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for directories created on the
// way to the output file.
const DirReadableByAll os.FileMode = 0o755

// RejectSymlinkOutput returns an error if cleanedPath is an existing symlink.
// A path that does not exist yet is accepted.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}
