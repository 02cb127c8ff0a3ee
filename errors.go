package astock

import "errors"

// Sentinel errors for the store and decoder. Callers match them with errors.Is
// and map them to exit codes in cmd.
var (
	// ErrNotFound is returned when a code has no matching entry.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when adding a code that is already tracked.
	ErrDuplicate = errors.New("already exists")
	// ErrEmptyResult is returned when a whole quote batch yields no usable record.
	ErrEmptyResult = errors.New("no usable quote in response")
	// ErrLockTimeout is returned when the document lock could not be acquired in time.
	ErrLockTimeout = errors.New("lock wait timed out")
	// ErrTimeout is returned when the quote provider call exceeded its deadline.
	ErrTimeout = errors.New("provider call timed out")
)
