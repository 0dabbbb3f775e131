// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package ssq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ssq"
)

// ExampleNew demonstrates the single-slot queue contract.
func ExampleNew() {
	queue := ssq.New[uint32]()
	cons, prod := queue.Split()

	// Enqueue succeeds while the slot is empty.
	v := uint32(50)
	fmt.Println("enqueue 50:", prod.Enqueue(&v) == nil)

	// A second enqueue is rejected; the slot keeps 50.
	w := uint32(2)
	fmt.Println("enqueue 2 rejected:", ssq.IsWouldBlock(prod.Enqueue(&w)))

	// EnqueueOverwrite replaces the old value, at the cost of taking a lock.
	u := uint32(25)
	prod.EnqueueOverwrite(&u)

	elem, _ := cons.Dequeue()
	fmt.Println("dequeue:", elem)

	// Dequeue reports an empty slot.
	_, err := cons.Dequeue()
	fmt.Println("empty:", ssq.IsWouldBlock(err))

	// Output:
	// enqueue 50: true
	// enqueue 2 rejected: true
	// dequeue: 25
	// empty: true
}

// ExampleProducer_EnqueueOverwrite demonstrates last-write-wins delivery of
// a freshest-value feed: the consumer only ever cares about the most recent
// sample, so the producer never waits for it to catch up.
func ExampleProducer_EnqueueOverwrite() {
	type sample struct {
		seq   int
		value float64
	}

	queue := ssq.New[sample]()
	cons, prod := queue.Split()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 100; i++ {
			s := sample{seq: i, value: float64(i) * 0.5}
			prod.EnqueueOverwrite(&s)
		}
	}()
	wg.Wait()

	// Only the freshest sample remains.
	s, _ := cons.Dequeue()
	fmt.Println("seq:", s.seq)
	fmt.Println("value:", s.value)

	// Output:
	// seq: 100
	// value: 50
}

// ExampleConsumer_Peek demonstrates non-destructive reads.
func ExampleConsumer_Peek() {
	queue := ssq.New[int]()
	cons, prod := queue.Split()

	v := 7
	prod.Enqueue(&v)

	first, _ := cons.Peek()
	second, _ := cons.Peek()
	consumed, _ := cons.Dequeue()
	fmt.Println(first, second, consumed)

	_, err := cons.Dequeue()
	fmt.Println("empty:", ssq.IsWouldBlock(err))

	// Output:
	// 7 7 7
	// empty: true
}

// ExampleQueue_Split demonstrates moving the two endpoints to separate
// goroutines with backoff-driven retry.
func ExampleQueue_Split() {
	queue := ssq.New[int]()
	cons, prod := queue.Split()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := 1; i <= 3; i++ {
			v := i * 10
			for prod.Enqueue(&v) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	backoff := iox.Backoff{}
	for received := 0; received < 3; {
		v, err := cons.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		fmt.Println(v)
		received++
	}
	wg.Wait()

	// Output:
	// 10
	// 20
	// 30
}

// ExampleNewIndirect demonstrates handing a pool index across the queue.
func ExampleNewIndirect() {
	bufferPool := make([][]byte, 4)
	for i := range bufferPool {
		bufferPool[i] = make([]byte, 1024)
	}

	queue := ssq.NewIndirect()
	cons, prod := queue.Split()

	// The producer hands over an index, not the buffer itself.
	prod.Enqueue(uintptr(2))

	idx, _ := cons.Dequeue()
	fmt.Println("index:", idx)
	fmt.Println("buffer size:", len(bufferPool[idx]))

	// Output:
	// index: 2
	// buffer size: 1024
}
