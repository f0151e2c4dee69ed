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
	"runtime"

	"github.com/botobag/selene/concurrent/future"
)

// SingleThreadExecutor drives futures cooperatively on whichever goroutine calls Wait. It is not
// safe for concurrent use; every MultiThreadExecutor worker owns a private instance, which is
// also how the original design intends it to be used standalone.
type SingleThreadExecutor struct {
	// Futures that were spawned but have not completed yet. Slots are nil'ed as they complete
	// during Wait so that a finished future is never polled again.
	pending []future.Future
}

// SingleThreadExecutor implements Executor.
var _ Executor = (*SingleThreadExecutor)(nil)

// NewSingleThreadExecutor creates a SingleThreadExecutor with an empty pending set.
func NewSingleThreadExecutor() *SingleThreadExecutor {
	return &SingleThreadExecutor{}
}

// Spawn implements Executor. The future is polled once immediately; it is retained in the pending
// set only if that poll does not complete it.
func (executor *SingleThreadExecutor) Spawn(fut future.Future) {
	if !future.IsReady(fut.Poll()) {
		executor.pending = append(executor.pending, fut)
	}
}

// Wait implements Executor. It repeatedly sweeps the pending set in round-robin order, polling
// each not-yet-finished future once per pass, until all of them have completed. Each pending
// future is polled at least once per full pass; no further fairness is guaranteed.
func (executor *SingleThreadExecutor) Wait() {
	var (
		pending      = executor.pending
		numCompleted = 0
	)

	for numCompleted < len(pending) {
		for i, fut := range pending {
			if fut == nil {
				// Completed on an earlier pass.
				continue
			}
			if future.IsReady(fut.Poll()) {
				pending[i] = nil
				numCompleted++
			}
		}
		runtime.Gosched()
	}

	executor.pending = nil
}
