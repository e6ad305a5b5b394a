// Package fileutil writes generator output to disk.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// WriteGenerated replaces path with data. The content is written to a
// temporary file in the same directory and renamed into place, so readers
// never observe a partially written file.
func WriteGenerated(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("fileutil: creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("fileutil: writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fileutil: closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, ReadableByAll); err != nil {
		return fmt.Errorf("fileutil: chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("fileutil: renaming into %s: %w", path, err)
	}
	return nil
}
