/**
 * Copyright (c) 2026, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package concurrent

import (
	"sync"

	"github.com/botobag/selene/concurrent/future"
)

// workQueueItem links one entry into the workQueue. An entry with a nil future is a shutdown
// sentinel: the worker that dequeues it drains its local executor and terminates.
type workQueueItem struct {
	fut  future.Future
	next *workQueueItem
}

// workQueue is the channel through which a MultiThreadExecutor feeds its workers. It is an
// unbounded FIFO of spawned futures with many producers (Spawn may be called from any goroutine)
// and many consumers (the pool's workers), delivering each entry to exactly one consumer. Pop
// legitimately blocks until an entry is available; this is the only place in the runtime where a
// poll-side call sleeps.
type workQueue struct {
	// Lock that guards head, tail, closed and popCond.
	mutex sync.Mutex

	// Condition variable for Pop to wait for Push.
	popCond *sync.Cond

	// Head and tail of the singly linked entry list.
	head *workQueueItem
	tail *workQueueItem

	// Set by Shutdown. No new entries are accepted once set.
	closed bool
}

func newWorkQueue() *workQueue {
	queue := &workQueue{}
	queue.popCond = sync.NewCond(&queue.mutex)
	return queue
}

// Push appends fut to the queue. fut must not be nil (nil entries are reserved for the shutdown
// sentinels enqueued by Shutdown). Pushing to a queue that has been shut down is a fatal misuse
// of the pool's one-shot drain protocol.
func (queue *workQueue) Push(fut future.Future) {
	mutex := &queue.mutex
	mutex.Lock()

	if queue.closed {
		mutex.Unlock()
		panic("concurrent: Spawn called on an executor that has been shut down by Wait")
	}

	queue.pushLocked(&workQueueItem{fut: fut})

	mutex.Unlock()
}

// Pop blocks until an entry is available, removes it and returns its future. A nil return value
// is the shutdown sentinel.
func (queue *workQueue) Pop() future.Future {
	mutex := &queue.mutex
	mutex.Lock()

	for queue.head == nil {
		queue.popCond.Wait()
	}

	item := queue.head
	queue.head = item.next
	if queue.head == nil {
		queue.tail = nil
	}
	// Help GC.
	item.next = nil

	mutex.Unlock()

	return item.fut
}

// Shutdown enqueues one shutdown sentinel per worker and closes the queue against further pushes.
// It is a one-shot operation; calling it twice is a fatal misuse.
func (queue *workQueue) Shutdown(numWorkers int) {
	mutex := &queue.mutex
	mutex.Lock()

	if queue.closed {
		mutex.Unlock()
		panic("concurrent: Wait called twice on a MultiThreadExecutor")
	}
	queue.closed = true

	for i := 0; i < numWorkers; i++ {
		queue.pushLocked(&workQueueItem{})
	}

	mutex.Unlock()
}

// pushLocked appends item and wakes one blocked Pop. Caller must hold mutex.
func (queue *workQueue) pushLocked(item *workQueueItem) {
	if queue.tail == nil {
		queue.head = item
	} else {
		queue.tail.next = item
	}
	queue.tail = item
	queue.popCond.Signal()
}
