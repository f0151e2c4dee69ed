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
	"errors"
	"sync"

	"github.com/botobag/selene/concurrent/future"
)

// MultiThreadExecutor drives spawned futures on a fixed-size pool of worker goroutines fed by a
// shared unbounded work queue.
//
// Each worker owns a private SingleThreadExecutor and loops dequeuing: a future is handed to the
// local executor's Spawn; a shutdown sentinel makes the worker drain the local executor (Wait)
// and terminate. A spawned future is therefore picked up by some arbitrary worker -- there is no
// affinity and no load balancing beyond FIFO consumption -- and is polled by that worker alone
// for the rest of its lifetime.
//
// Wait is a one-shot drain-and-stop operation, not a reusable barrier: it enqueues exactly one
// shutdown sentinel per worker, joins every worker, and leaves the pool unable to accept new
// work. Spawning after Wait panics.
type MultiThreadExecutor struct {
	// Shared queue of spawned futures and shutdown sentinels.
	queue *workQueue

	// Number of workers started at construction.
	numWorkers int

	// Joined by Wait once the sentinels are out.
	workers sync.WaitGroup
}

// MultiThreadExecutor implements Executor.
var _ Executor = (*MultiThreadExecutor)(nil)

// NewMultiThreadExecutor creates a pool with numWorkers worker goroutines, all started
// immediately and blocked on the empty work queue.
func NewMultiThreadExecutor(numWorkers int) (*MultiThreadExecutor, error) {
	if numWorkers <= 0 {
		return nil, errors.New(`MultiThreadExecutor: numWorkers must be a positive value which ` +
			`specifies the number of workers to be created by the executor. If you have no idea, try ` +
			`to set the value to runtime.GOMAXPROCS(-1).`)
	}

	executor := &MultiThreadExecutor{
		queue:      newWorkQueue(),
		numWorkers: numWorkers,
	}

	executor.workers.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go executor.runWorker()
	}

	return executor, nil
}

// runWorker implements the run loop for one pool worker.
func (executor *MultiThreadExecutor) runWorker() {
	local := NewSingleThreadExecutor()

	for {
		fut := executor.queue.Pop()
		if fut == nil {
			// Shutdown sentinel: drain the futures accepted so far, then terminate.
			local.Wait()
			break
		}
		local.Spawn(fut)
	}

	executor.workers.Done()
}

// Spawn implements Executor. It pushes fut onto the shared queue for some worker to pick up.
// Spawning after Wait panics: the pool's drain protocol is one-shot.
func (executor *MultiThreadExecutor) Spawn(fut future.Future) {
	if fut == nil {
		panic("concurrent: Spawn called with nil future")
	}
	executor.queue.Push(fut)
}

// Wait implements Executor. It enqueues one shutdown sentinel per worker, then joins every worker
// goroutine; when it returns, every spawned future has completed and the pool is stopped.
func (executor *MultiThreadExecutor) Wait() {
	executor.queue.Shutdown(executor.numWorkers)
	executor.workers.Wait()
}
