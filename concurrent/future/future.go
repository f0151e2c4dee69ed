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

package future

// A Future represents an asynchronous computation.
//
// The design is borrowed from Rust's Future [0][1][2], reduced to the poll-driven core: there is
// no waker or notification registry here. Callers that receive PollResultPending are expected to
// simply poll again later (busy-polling).
//
// A Future is a value that may not have finished computing yet. This kind of "asynchronous value"
// makes it possible for a thread to continue doing useful work while it waits for the value to
// become available.
//
// Futures alone are inert; they must be actively polled to make progress. The work to drive a
// future to its completion is performed by an Executor (see the concurrent package), or directly
// by BlockOn for the degenerate single-future case.
//
// Every future is single-owner. Once handed to a combinator or spawned into an executor, it is
// driven by exactly one polling loop for the rest of its lifetime and must not be polled from
// anywhere else.
//
// [0]: https://doc.rust-lang.org/std/future/index.html
// [1]: http://aturon.github.io/blog/2016/08/11/futures/
// [2]: https://aturon.github.io/blog/2016/09/07/futures-design/
type Future interface {
	// Poll attempts to resolve the future to a final value.
	//
	// It returns PollResultPending if the future is not ready yet, and the final value otherwise.
	// Poll never fails; operations that can fail (such as the file reads in the asyncio package)
	// carry the failure inside the yielded value.
	//
	// An implementation of Poll should strive to return quickly, and must *never* block for an
	// unbounded time. If it is known ahead of time that a call to Poll may end up taking awhile, the
	// work should be offloaded to a separate goroutine (see asyncio) to ensure that Poll can return
	// quickly.
	//
	// Once a future has yielded its value, clients must not poll it again. Doing so is a programmer
	// error, not a recoverable condition; implementations in this package panic on it.
	Poll() PollResult
}

// The FutureFunc type is an adapter to allow the use of ordinary functions as Future.
type FutureFunc func() PollResult

// FutureFunc implements Future.
var _ Future = (FutureFunc)(nil)

// Poll implements Future. It calls f().
func (f FutureFunc) Poll() PollResult {
	return f()
}
