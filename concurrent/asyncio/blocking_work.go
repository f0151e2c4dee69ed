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

// Package asyncio provides leaf futures for blocking I/O operations. Since a Poll implementation
// must never block for an unbounded time, the blocking call runs on a dedicated worker goroutine
// spawned lazily on the first poll; completion is signaled back to the polling side through a
// shared atomic flag.
package asyncio

import (
	"sync/atomic"

	"github.com/botobag/selene/concurrent/future"
)

// blockingWork implements the spawn-on-first-poll protocol shared by the futures in this package.
//
// It moves through three states, encoded by the run and worker fields:
//
//	run != nil, worker == nil: not started; the next poll spawns the worker.
//	run == nil, worker != nil: worker running (or finished but not yet collected).
//	run == nil, worker == nil: result collected; polling again is a contract violation.
//
// The worker stores its result first and sets done last; the polling side reads done first and
// collects the result only after observing it set. This store/load pair on done is the only
// cross-goroutine handoff: once the poller sees done, everything the worker wrote before setting
// it is visible.
type blockingWork struct {
	run    func() future.PollResult
	worker chan future.PollResult
	done   uint32
}

// Poll implements future.Future.
func (w *blockingWork) Poll() future.PollResult {
	if run := w.run; run != nil {
		// First poll: hand the blocking call to a worker goroutine.
		w.run = nil
		worker := make(chan future.PollResult, 1)
		w.worker = worker
		go func() {
			result := run()
			worker <- result
			atomic.StoreUint32(&w.done, 1)
		}()
		return future.PollResultPending
	}

	if atomic.LoadUint32(&w.done) == 0 {
		return future.PollResultPending
	}

	// done was observed set, so the result is already sitting in the channel and the receive
	// returns immediately. Collect it exactly once.
	worker := w.worker
	if worker == nil {
		panic("asyncio: poll called after future completed")
	}
	w.worker = nil
	return <-worker
}
