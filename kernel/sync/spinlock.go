// Package sync provides spin-wait synchronization primitives. Nothing can
// put a waiter to sleep before a scheduler exists, so every wait in this
// package is a busy-wait.
package sync

import (
	"sync/atomic"

	"gopherboot/kernel/cpu"
)

// spinsBeforeYield is the number of failed acquisition attempts after which
// a waiter calls yieldFn (if set).
const spinsBeforeYield = 64

var (
	// TODO: replace with real yield function when context-switching is implemented.
	yieldFn func()

	pauseFn = cpu.Pause
)

// Spinlock implements a lock where each task trying to acquire it busy-waits
// till the lock becomes available.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired by the currently active task.
// Any attempt to re-acquire a lock already held by the current task will cause
// a deadlock.
func (l *Spinlock) Acquire() {
	var spins uint32
	for !atomic.CompareAndSwapUint32(&l.state, 0, 1) {
		spins++
		if spins >= spinsBeforeYield && yieldFn != nil {
			spins = 0
			yieldFn()
			continue
		}

		pauseFn()
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock could
// be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.CompareAndSwapUint32(&l.state, 0, 1)
}

// Release relinquishes a held lock allowing other tasks to acquire it. Calling
// Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
