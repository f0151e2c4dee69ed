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

// Package concurrent provides executors that drive futures (see the future subpackage) to
// completion under different concurrency policies: fully synchronous (BlockingExecutor),
// cooperative single-goroutine round-robin (SingleThreadExecutor), and a fixed-size pool of
// workers fed by a shared work queue (MultiThreadExecutor).
package concurrent

import "github.com/botobag/selene/concurrent/future"

// Executor drives spawned futures to completion.
//
// Futures handed to an executor yield no meaningful item: their final poll value is discarded.
// Computations that produce values are composed with the combinators in the future package and
// folded into a no-item future (typically via future.Map) before spawning.
type Executor interface {
	// Spawn takes ownership of fut and schedules it for execution. Depending on the executor, fut
	// may run to completion synchronously inside the call or be queued for later. Once spawned, fut
	// belongs to exactly one polling loop and must not be polled by the caller again.
	Spawn(fut future.Future)

	// Wait blocks the calling goroutine until every future accepted via Spawn has reached
	// completion, then returns. With nothing outstanding it returns immediately.
	Wait()
}
