// Package runlock serializes whole runs against one destination tree with
// an advisory file lock, so two processes cannot interleave writes into
// the same destination.
package runlock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the zero-length lock file kept at the destination root.
// No extension set ever matches it, so it never enters the pipeline.
const LockFileName = ".assetmirror.lock"

// ErrHeld indicates another run holds the destination lock.
var ErrHeld = errors.New("another assetmirror run is writing to this destination")

// Lock is a held destination-root lock.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock for destRoot without blocking. A held lock is an
// immediate ErrHeld; the caller treats it as a hard pre-run failure.
func Acquire(destRoot string) (*Lock, error) {
	fl := flock.New(filepath.Join(destRoot, LockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire destination lock: %w", err)
	}
	if !ok {
		return nil, ErrHeld
	}
	return &Lock{fl: fl}, nil
}

// Release lets the next run proceed.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}

// Path returns the lock file's location.
func (l *Lock) Path() string {
	return l.fl.Path()
}
