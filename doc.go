// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ssq provides a single-producer single-consumer, single-slot queue.
//
// The queue holds at most one value at a time. One side stores a value, the
// other retrieves it, with memory-safe access even when the two sides run on
// different execution contexts simultaneously. All transfer paths are
// allocation-free and never sleep, park, or touch OS synchronization, which
// makes the queue suitable for contexts where blocking primitives are
// unavailable, such as interrupt-style callbacks and bare-metal control
// loops.
//
// # Quick Start
//
//	queue := ssq.New[uint32]()
//	cons, prod := queue.Split()
//
//	// Enqueue returns nil when the slot was empty.
//	err := prod.Enqueue(&v)
//
//	// Enqueue returns ErrWouldBlock when the slot is occupied;
//	// the rejected value is untouched.
//	err = prod.Enqueue(&w)
//
//	// EnqueueOverwrite replaces the old value, at the cost of taking
//	// a spin lock.
//	prod.EnqueueOverwrite(&u)
//
//	// Dequeue returns ErrWouldBlock if the slot is empty.
//	elem, err := cons.Dequeue()
//
// # Operations
//
// The producer endpoint offers two write paths:
//
//   - Enqueue: non-blocking. Fails with [ErrWouldBlock] when the slot is
//     occupied, leaving both the slot and the caller's value untouched.
//   - EnqueueOverwrite: always succeeds, last write wins. Takes an internal
//     spin lock so a reader that is mid-Dequeue or mid-Peek can never observe
//     a half-replaced value.
//
// The consumer endpoint offers Dequeue (consume) and Peek (copy without
// consuming). Both return [ErrWouldBlock] on an empty slot without taking the
// lock; on an occupied slot they hold the lock for the duration of the read.
// Peek copies shallowly and is intended for plain-data element types; for
// aliasing types use Dequeue or the Ptr flavor.
//
// Both endpoints offer IsEmpty, a relaxed advisory load that establishes no
// ordering.
//
// # Queue Flavors
//
// Three flavors are available, mirroring the element kinds callers pass:
//
//	New[T]()      - Generic type-safe queue for any type
//	NewIndirect() - Queue for uintptr values (pool indices, handles)
//	NewPtr()      - Queue for unsafe.Pointer (zero-copy pointer passing)
//
// # Blocking
//
// Enqueue and the empty case of Dequeue/Peek never block. EnqueueOverwrite,
// and Dequeue/Peek after observing an occupied slot, busy-wait on the
// internal spin lock. The holder's critical section is a single value copy
// plus two flag stores, so the worst-case wait is bounded by that cost, not
// by caller-controlled delays. There is no cancellation or timeout.
//
// # Thread Safety
//
// Split hands out exactly one Consumer and one Producer per queue and panics
// if called twice. Each endpoint may be moved to a different goroutine, but
// at most one goroutine may use a given endpoint at a time. Violating this
// contract (for example two goroutines sharing one Producer) causes undefined
// behavior including data corruption; it is prevented by construction, not
// detected at runtime.
//
// # Race Detection
//
// The slot cell is a plain field protected by acquire/release operations on a
// separate atomic flag. Go's race detector cannot observe happens-before
// edges established through atomic orderings on separate variables and
// reports false positives on this pattern. Concurrent tests are excluded via
// //go:build !race; see [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package ssq
