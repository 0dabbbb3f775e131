// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ssq

import "code.hybscloud.com/atomix"

// Queue is a single-producer single-consumer, single-slot queue.
//
// The queue holds at most one value of type T. The full flag carries the
// acquire/release edge that makes the cell's contents visible and safe to
// read: a release-store of full=true publishes the value written before it,
// and an acquire-load observing true licenses reading the cell. The cell is
// never read without that license.
//
// The writing lock exists only for EnqueueOverwrite: a consumer that has
// already observed full==true may be mid-read when an overwrite starts, so
// the overwrite path and the observed-full read path exclude each other.
// The empty fast path of Dequeue/Peek and all of Enqueue never touch the
// lock.
//
// Memory: one cell of T, no heap traffic on any transfer path.
type Queue[T any] struct {
	_       pad
	full    atomix.Bool // Cell holds a live value
	_       pad
	writing spinLock // Excludes overwrite from in-progress reads
	_       pad
	cell  T
	split atomix.Bool // Split already called
}

// New creates an empty single-slot queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Split hands out the queue's two endpoints: exactly one Consumer and one
// Producer. Each endpoint may be moved to a different goroutine (or any
// execution context the caller arranges); the full-flag protocol gates every
// cell access, so no further synchronization is needed between the two sides.
//
// Split panics if called a second time on the same queue. The one-pair rule
// is the structural safety argument: Enqueue assumes no concurrent
// producer-side caller, and that holds because only one Producer exists.
func (q *Queue[T]) Split() (*Consumer[T], *Producer[T]) {
	if !q.split.CompareAndSwapAcqRel(false, true) {
		panic("ssq: queue already split")
	}
	return &Consumer[T]{q: q}, &Producer[T]{q: q}
}

// Consumer is the read endpoint of a single-slot queue.
//
// At most one goroutine may use a Consumer at a time. Using it from multiple
// goroutines concurrently causes undefined behavior including data corruption.
type Consumer[T any] struct {
	q *Queue[T]
}

// Dequeue removes and returns the value in the slot (non-blocking when the
// slot is empty).
// Returns (zero-value, ErrWouldBlock) if the slot is empty.
//
// When the slot is occupied, Dequeue takes the writing lock and therefore
// busy-waits if the corresponding [Producer] is mid-EnqueueOverwrite. The
// empty case takes no lock at all.
func (c *Consumer[T]) Dequeue() (T, error) {
	q := c.q
	if !q.full.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}

	// full was observed true, so an overwrite may be about to replace the
	// cell underneath us. Holding the lock for the whole read makes the two
	// operations mutually exclusive.
	q.writing.lock()
	defer q.writing.unlock()

	elem := q.cell
	var zero T
	q.cell = zero // Release references held by the consumed value
	q.full.StoreRelease(false)
	return elem, nil
}

// Peek returns a copy of the value in the slot without removing it.
// Returns (zero-value, ErrWouldBlock) if the slot is empty.
//
// The copy is shallow. Peek is intended for plain-data T; for types whose
// copies alias shared state (slices, maps, pointers), use Dequeue, or the
// Indirect/Ptr queue flavors whose elements are exactly copyable.
//
// Like Dequeue, Peek busy-waits if the corresponding [Producer] is
// mid-EnqueueOverwrite.
func (c *Consumer[T]) Peek() (T, error) {
	q := c.q
	if !q.full.LoadAcquire() {
		var zero T
		return zero, ErrWouldBlock
	}

	q.writing.lock()
	defer q.writing.unlock()

	return q.cell, nil
}

// IsEmpty reports whether the slot currently holds no value.
// Advisory only: the answer may be stale by the time it returns, and it
// establishes no ordering; never use it to gate a read of shared data.
func (c *Consumer[T]) IsEmpty() bool {
	return !c.q.full.LoadRelaxed()
}

// Producer is the write endpoint of a single-slot queue.
//
// At most one goroutine may use a Producer at a time. Using it from multiple
// goroutines concurrently causes undefined behavior including data corruption.
type Producer[T any] struct {
	q *Queue[T]
}

// Enqueue writes a value into the slot (non-blocking).
// Returns ErrWouldBlock if the slot is already occupied; the rejected value
// is untouched and the slot keeps its current contents.
//
// Enqueue never takes the writing lock: observing full==false means no
// consumer can be mid-read (the consumer only reads after observing true),
// so the plain cell write cannot race with it.
func (p *Producer[T]) Enqueue(elem *T) error {
	q := p.q
	if q.full.LoadAcquire() {
		return ErrWouldBlock
	}

	q.cell = *elem
	q.full.StoreRelease(true)
	return nil
}

// EnqueueOverwrite writes a value into the slot, replacing the old value if
// one is present. It always succeeds.
//
// The whole operation holds the writing lock, so it busy-waits if the
// corresponding [Consumer] is mid-Dequeue or mid-Peek. Dropping full before
// the write invalidates the slot for any reader that arrives next; raising
// it after republishes. Readers excluded by the lock never observe the
// intermediate empty state; relaxed IsEmpty loads may.
func (p *Producer[T]) EnqueueOverwrite(elem *T) {
	q := p.q
	q.writing.lock()
	defer q.writing.unlock()

	q.full.StoreRelease(false)
	q.cell = *elem
	q.full.StoreRelease(true)
}

// IsEmpty reports whether the slot currently holds no value.
// Advisory only: the answer may be stale by the time it returns, and it
// establishes no ordering; never use it to gate a read of shared data.
func (p *Producer[T]) IsEmpty() bool {
	return !p.q.full.LoadRelaxed()
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
