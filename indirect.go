// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ssq

import "code.hybscloud.com/atomix"

// QueueIndirect is a single-slot queue for uintptr values.
//
// Useful for passing pool indices or handles instead of full objects.
// Same protocol as [Queue]; uintptr is exactly copyable, so Peek carries
// no aliasing caveat.
type QueueIndirect struct {
	_       pad
	full    atomix.Bool
	_       pad
	writing spinLock
	_       pad
	cell  uintptr
	split atomix.Bool
}

// NewIndirect creates an empty single-slot queue for uintptr values.
func NewIndirect() *QueueIndirect {
	return &QueueIndirect{}
}

// Split hands out exactly one ConsumerIndirect and one ProducerIndirect.
// Panics if called a second time on the same queue.
func (q *QueueIndirect) Split() (*ConsumerIndirect, *ProducerIndirect) {
	if !q.split.CompareAndSwapAcqRel(false, true) {
		panic("ssq: queue already split")
	}
	return &ConsumerIndirect{q: q}, &ProducerIndirect{q: q}
}

// ConsumerIndirect is the read endpoint of a QueueIndirect.
// At most one goroutine may use it at a time.
type ConsumerIndirect struct {
	q *QueueIndirect
}

// Dequeue removes and returns the value in the slot.
// Returns (0, ErrWouldBlock) if the slot is empty.
// Busy-waits if the producer is mid-EnqueueOverwrite.
func (c *ConsumerIndirect) Dequeue() (uintptr, error) {
	q := c.q
	if !q.full.LoadAcquire() {
		return 0, ErrWouldBlock
	}

	q.writing.lock()
	defer q.writing.unlock()

	elem := q.cell
	q.full.StoreRelease(false)
	return elem, nil
}

// Peek returns the value in the slot without removing it.
// Returns (0, ErrWouldBlock) if the slot is empty.
// Busy-waits if the producer is mid-EnqueueOverwrite.
func (c *ConsumerIndirect) Peek() (uintptr, error) {
	q := c.q
	if !q.full.LoadAcquire() {
		return 0, ErrWouldBlock
	}

	q.writing.lock()
	defer q.writing.unlock()

	return q.cell, nil
}

// IsEmpty reports whether the slot currently holds no value.
// Advisory only; establishes no ordering.
func (c *ConsumerIndirect) IsEmpty() bool {
	return !c.q.full.LoadRelaxed()
}

// ProducerIndirect is the write endpoint of a QueueIndirect.
// At most one goroutine may use it at a time.
type ProducerIndirect struct {
	q *QueueIndirect
}

// Enqueue writes a value into the slot (non-blocking).
// Returns ErrWouldBlock if the slot is already occupied; the slot keeps its
// current contents.
func (p *ProducerIndirect) Enqueue(elem uintptr) error {
	q := p.q
	if q.full.LoadAcquire() {
		return ErrWouldBlock
	}

	q.cell = elem
	q.full.StoreRelease(true)
	return nil
}

// EnqueueOverwrite writes a value into the slot, replacing the old value if
// one is present. Always succeeds. Busy-waits if the consumer is mid-Dequeue
// or mid-Peek.
func (p *ProducerIndirect) EnqueueOverwrite(elem uintptr) {
	q := p.q
	q.writing.lock()
	defer q.writing.unlock()

	q.full.StoreRelease(false)
	q.cell = elem
	q.full.StoreRelease(true)
}

// IsEmpty reports whether the slot currently holds no value.
// Advisory only; establishes no ordering.
func (p *ProducerIndirect) IsEmpty() bool {
	return !p.q.full.LoadRelaxed()
}
