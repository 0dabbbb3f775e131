// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ssq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// spinLock is a minimal busy-wait mutual exclusion primitive.
//
// It serializes the overwrite path against the locked branch of Dequeue/Peek.
// The critical sections it protects are a single value copy plus two flag
// stores, so the worst-case wait is bounded by that cost. It never
// sleeps, parks, or registers a wakeup; no OS support is required.
//
// Every lock() call site must pair with exactly one deferred unlock() in the
// same scope, so the lock is released on all exit paths.
type spinLock struct {
	locked atomix.Bool
}

// tryLock attempts to acquire the lock without blocking.
// Returns false if the lock is already held; no side effects on failure.
// Acquisition synchronizes with the previous holder's unlock.
func (l *spinLock) tryLock() bool {
	return l.locked.CompareAndSwapAcqRel(false, true)
}

// lock busy-waits until the lock is acquired.
// Appropriate for short critical sections only; does not yield to the
// scheduler beyond the CPU pause issued by spin.Wait.
func (l *spinLock) lock() {
	sw := spin.Wait{}
	for !l.tryLock() {
		sw.Once()
	}
}

// unlock releases the lock, publishing all writes made while holding it.
func (l *spinLock) unlock() {
	l.locked.StoreRelease(false)
}
