package server

import (
	"os"
	"path/filepath"
	"testing"
)

func TestControlCounterStartsAtOne(t *testing.T) {
	counter := NewControlCounter(filepath.Join(t.TempDir(), "ctrl.dat"))
	n, err := counter.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}

func TestControlCounterPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctrl.dat")

	first := NewControlCounter(path)
	for i := 1; i <= 3; i++ {
		if n, err := first.Next(); err != nil || n != i {
			t.Fatalf("expected %d, got %d (%v)", i, n, err)
		}
	}

	// A fresh counter over the same file continues the sequence.
	second := NewControlCounter(path)
	if n, err := second.Next(); err != nil || n != 4 {
		t.Fatalf("expected 4, got %d (%v)", n, err)
	}
}

func TestControlCounterIgnoresCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctrl.dat")
	if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	counter := NewControlCounter(path)
	if n, err := counter.Next(); err != nil || n != 1 {
		t.Fatalf("expected restart at 1, got %d (%v)", n, err)
	}
}
