// internal/runlock/runlock_test.go
package runlock

import (
	"errors"
	"testing"
)

func TestAcquireRelease(t *testing.T) {
	dest := t.TempDir()

	lock, err := Acquire(dest)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	// released lock can be taken again
	again, err := Acquire(dest)
	if err != nil {
		t.Fatalf("re-Acquire: %v", err)
	}
	_ = again.Release()
}

func TestAcquire_Held(t *testing.T) {
	dest := t.TempDir()

	lock, err := Acquire(dest)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer func() { _ = lock.Release() }()

	if _, err := Acquire(dest); !errors.Is(err, ErrHeld) {
		t.Fatalf("second Acquire err = %v, want ErrHeld", err)
	}
}

func TestAcquire_IndependentDestinations(t *testing.T) {
	a, err := Acquire(t.TempDir())
	if err != nil {
		t.Fatalf("Acquire a: %v", err)
	}
	defer func() { _ = a.Release() }()

	b, err := Acquire(t.TempDir())
	if err != nil {
		t.Fatalf("Acquire b: %v", err)
	}
	_ = b.Release()
}
