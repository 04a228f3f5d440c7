//go:build unix

package flock

import "syscall"

// Exclusive tries once to take an exclusive lock on fd.
// It fails immediately if another descriptor holds the lock.
func Exclusive(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_EX|syscall.LOCK_NB)
}

// Unlock drops the lock held on fd.
func Unlock(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_UN)
}
