// Package atomicfile replaces files without exposing partially written
// content to readers.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultPerm os.FileMode = 0o644

// WriteFile writes data to a temporary sibling of path and renames it over
// path. A crash mid-write leaves the previous content in place.
//
// With perm 0 the mode of an existing file is kept, else 0644 is used.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	if perm == 0 {
		perm = existingMode(path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	// Not every filesystem supports chmod on an open handle.
	_ = tmp.Chmod(perm)

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func existingMode(path string) os.FileMode {
	if st, err := os.Stat(path); err == nil {
		return st.Mode().Perm()
	}
	return defaultPerm
}

// rename moves src over dst. Windows refuses to rename onto an existing
// file, so a failed rename is retried once after removing dst.
func rename(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	_ = os.Remove(dst)
	if retryErr := os.Rename(src, dst); retryErr != nil {
		return err
	}
	return nil
}
