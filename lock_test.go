package astock

import (
	"errors"
	"testing"
	"time"
)

func TestLockDocuments_Exclusive(t *testing.T) {
	dir := t.TempDir()

	unlock, err := LockDocuments(dir, time.Second)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}

	// a second writer times out while the first holds the lock
	start := time.Now()
	_, err = LockDocuments(dir, 200*time.Millisecond)
	if !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("second lock = %v; want ErrLockTimeout", err)
	}
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("second lock gave up after %s; want a bounded wait near 200ms", elapsed)
	}

	unlock()

	// after release the lock is available again
	unlock2, err := LockDocuments(dir, time.Second)
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	unlock2()
}
