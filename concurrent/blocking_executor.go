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

// BlockingExecutor is the trivial baseline executor: zero concurrency, fully synchronous. Spawn
// itself busy-polls the future to completion in the caller's goroutine.
type BlockingExecutor struct{}

// BlockingExecutor implements Executor.
var _ Executor = (*BlockingExecutor)(nil)

// NewBlockingExecutor creates a BlockingExecutor.
func NewBlockingExecutor() *BlockingExecutor {
	return &BlockingExecutor{}
}

// Spawn implements Executor. It polls fut until it completes before returning.
func (*BlockingExecutor) Spawn(fut future.Future) {
	for !future.IsReady(fut.Poll()) {
		runtime.Gosched()
	}
}

// Wait implements Executor. There is never anything outstanding by construction, so it is a
// no-op.
func (*BlockingExecutor) Wait() {}
