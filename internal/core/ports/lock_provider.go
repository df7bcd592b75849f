package ports

import (
	"context"
	"errors"
)

// ErrLockAlreadyHeld is returned by Acquire when the named lock is currently
// held by another instance. Callers are expected to skip their run and retry
// on the next scheduled tick; this is not a failure condition.
var ErrLockAlreadyHeld = errors.New("lock is already held by another instance")

// LockProvider hands out lease-based named locks coordinating periodic work
// across service instances. A lease has a bounded maximum hold: even if the
// holder crashes mid-run, the lock frees itself once the lease expires.
type LockProvider interface {
	// Acquire attempts to obtain the lock identified by name.
	// Returns ErrLockAlreadyHeld when another instance holds a live lease.
	Acquire(ctx context.Context, name string) (Lock, error)
}

// Lock is a held lease. Release shortens the lease to the configured
// minimum hold; it never frees the lock before that minimum has elapsed.
type Lock interface {
	Release(ctx context.Context) error
}
