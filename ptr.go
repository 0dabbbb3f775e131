// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ssq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// QueuePtr is a single-slot queue for unsafe.Pointer values.
//
// Enables zero-copy transfer of one in-flight object between goroutines.
// Ownership semantics: the producer transfers ownership to the consumer.
// After enqueueing, the producer should not access the object; after an
// overwrite, the replaced object is gone without being observed.
type QueuePtr struct {
	_       pad
	full    atomix.Bool
	_       pad
	writing spinLock
	_       pad
	cell  unsafe.Pointer
	split atomix.Bool
}

// NewPtr creates an empty single-slot queue for unsafe.Pointer values.
func NewPtr() *QueuePtr {
	return &QueuePtr{}
}

// Split hands out exactly one ConsumerPtr and one ProducerPtr.
// Panics if called a second time on the same queue.
func (q *QueuePtr) Split() (*ConsumerPtr, *ProducerPtr) {
	if !q.split.CompareAndSwapAcqRel(false, true) {
		panic("ssq: queue already split")
	}
	return &ConsumerPtr{q: q}, &ProducerPtr{q: q}
}

// ConsumerPtr is the read endpoint of a QueuePtr.
// At most one goroutine may use it at a time.
type ConsumerPtr struct {
	q *QueuePtr
}

// Dequeue removes and returns the pointer in the slot.
// Returns (nil, ErrWouldBlock) if the slot is empty.
// Busy-waits if the producer is mid-EnqueueOverwrite.
func (c *ConsumerPtr) Dequeue() (unsafe.Pointer, error) {
	q := c.q
	if !q.full.LoadAcquire() {
		return nil, ErrWouldBlock
	}

	q.writing.lock()
	defer q.writing.unlock()

	elem := q.cell
	q.cell = nil // Do not retain the consumer's object
	q.full.StoreRelease(false)
	return elem, nil
}

// Peek returns the pointer in the slot without removing it.
// Returns (nil, ErrWouldBlock) if the slot is empty.
//
// The consumer and the slot then reference the same object; the producer
// side must not recycle it until it is dequeued.
func (c *ConsumerPtr) Peek() (unsafe.Pointer, error) {
	q := c.q
	if !q.full.LoadAcquire() {
		return nil, ErrWouldBlock
	}

	q.writing.lock()
	defer q.writing.unlock()

	return q.cell, nil
}

// IsEmpty reports whether the slot currently holds no value.
// Advisory only; establishes no ordering.
func (c *ConsumerPtr) IsEmpty() bool {
	return !c.q.full.LoadRelaxed()
}

// ProducerPtr is the write endpoint of a QueuePtr.
// At most one goroutine may use it at a time.
type ProducerPtr struct {
	q *QueuePtr
}

// Enqueue writes a pointer into the slot (non-blocking).
// Returns ErrWouldBlock if the slot is already occupied; ownership of the
// rejected object stays with the caller.
func (p *ProducerPtr) Enqueue(elem unsafe.Pointer) error {
	q := p.q
	if q.full.LoadAcquire() {
		return ErrWouldBlock
	}

	q.cell = elem
	q.full.StoreRelease(true)
	return nil
}

// EnqueueOverwrite writes a pointer into the slot, replacing the old pointer
// if one is present. Always succeeds. Busy-waits if the consumer is
// mid-Dequeue or mid-Peek. The replaced object is dropped unobserved.
func (p *ProducerPtr) EnqueueOverwrite(elem unsafe.Pointer) {
	q := p.q
	q.writing.lock()
	defer q.writing.unlock()

	q.full.StoreRelease(false)
	q.cell = elem
	q.full.StoreRelease(true)
}

// IsEmpty reports whether the slot currently holds no value.
// Advisory only; establishes no ordering.
func (p *ProducerPtr) IsEmpty() bool {
	return !p.q.full.LoadRelaxed()
}
