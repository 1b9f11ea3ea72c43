// internal/convert/errors.go
package convert

import "errors"

var (
	// ErrDecodeFailed indicates the source file could not be read or parsed.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrEncodeFailed indicates re-encoding to the canonical form failed.
	ErrEncodeFailed = errors.New("encode failed")

	// ErrWriteFailed indicates the destination artifact could not be written.
	ErrWriteFailed = errors.New("write failed")

	// ErrCopyFailed indicates a byte copy could not be completed.
	ErrCopyFailed = errors.New("copy failed")

	// ErrCreateDirFailed indicates a destination directory could not be created.
	ErrCreateDirFailed = errors.New("create directory failed")

	// ErrPathMapping indicates no destination path could be derived for a source.
	ErrPathMapping = errors.New("path mapping failed")
)
