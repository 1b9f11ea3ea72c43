package convert

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents. Pre-existence is success,
// and so is a concurrent create by another worker.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCreateDirFailed, dir, err)
	}
	return nil
}

// WriteFileAtomic materializes dest in one step: content goes to a
// uniquely named temporary file in the destination directory which is
// renamed over dest only after the write completes and syncs. On any
// failure the temporary is removed and dest is untouched, so no partial
// file is ever visible at the final path. Temporary names come from
// os.CreateTemp and cannot collide across concurrent workers.
func WriteFileAtomic(dest string, write func(f *os.File) error) error {
	if err := EnsureDir(filepath.Dir(dest)); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temporary: %v", ErrWriteFailed, err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %v", ErrWriteFailed, dest, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrWriteFailed, dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("%w: rename into place: %v", ErrWriteFailed, err)
	}
	return nil
}
