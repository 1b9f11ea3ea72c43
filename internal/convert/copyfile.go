package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst byte-for-byte, overwriting any existing file
// and creating the destination directory if missing. Returns the number
// of bytes copied. A partial destination is removed on copy failure.
func CopyFile(src, dst string) (int64, error) {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return 0, err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w: open source: %v", ErrCopyFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("%w: create destination: %v", ErrCopyFailed, err)
	}
	defer func() { _ = dstFile.Close() }()

	written, err := io.Copy(dstFile, srcFile)
	if err != nil {
		// don't leave a partial copy behind
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	if err := dstFile.Sync(); err != nil {
		return written, fmt.Errorf("%w: sync: %v", ErrCopyFailed, err)
	}

	return written, nil
}
