package sync

import "sync/atomic"

// Once runs an initializer exactly once. Callers that race with the first
// invocation spin until the initializer has completed, so once Do returns the
// initializer's effects are visible to the caller.
type Once struct {
	done uint32
	lock Spinlock
}

// Do invokes fn if and only if Do is being called for the first time for
// this instance of Once. fn must not call Do on the same Once.
func (o *Once) Do(fn func()) {
	if atomic.LoadUint32(&o.done) == 1 {
		return
	}

	o.lock.Acquire()
	if o.done == 0 {
		fn()
		atomic.StoreUint32(&o.done, 1)
	}
	o.lock.Release()
}
