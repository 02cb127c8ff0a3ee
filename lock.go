package astock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockRetryDelay is the polling interval while waiting for a document lock.
const lockRetryDelay = 50 * time.Millisecond

// LockDocuments serializes writers on a data directory with an advisory file
// lock. The wait is bounded: when the lock cannot be acquired within wait, it
// returns ErrLockTimeout. Readers take lock-free snapshot reads and never call
// this.
func LockDocuments(dir string, wait time.Duration) (unlock func(), err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create data dir %q: %w", dir, err)
	}
	fl := flock.New(filepath.Join(dir, ".lock"))

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	ok, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("cannot lock %q: %w", fl.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("lock on %q not acquired within %s: %w", fl.Path(), wait, ErrLockTimeout)
	}
	return func() { fl.Unlock() }, nil
}
