// Package flock provides cross-platform advisory file locks.
//
// The game save is guarded by a sibling lock file so that two tenets
// processes never interleave a read-modify-write of the same save.
//
// Usage:
//
//	lock, err := flock.Acquire(ctx, savePath+".lock", flock.Options{})
//	if err != nil {
//	    // errors.Is(err, tenetserrors.ErrLockTimeout) if another process holds it
//	}
//	defer func() { _ = lock.Release() }()
//
// Exclusive and Unlock are the raw, non-blocking primitives Acquire is built on.
package flock
