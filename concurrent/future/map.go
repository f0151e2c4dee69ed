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

// mapFuture implements Future returned by Map. fun is a one-shot slot: it is set to nil right
// after invocation so a second application can be caught.
type mapFuture struct {
	fut Future
	fun func(interface{}) interface{}
}

// Poll implements Future.
func (f *mapFuture) Poll() PollResult {
	fun := f.fun
	if fun == nil {
		panic("future: poll called after future completed")
	}

	result := f.fut.Poll()
	if !IsReady(result) {
		return PollResultPending
	}

	// Consume the one-shot transform before applying it.
	f.fun = nil
	f.fut = nil

	return fun(result)
}

// Map creates a Future which yields fun applied to the value of fut.
//
// fun is invoked exactly once, on the poll that observes fut completing; it is never invoked
// before fut is ready.
func Map(fut Future, fun func(interface{}) interface{}) Future {
	return &mapFuture{
		fut: fut,
		fun: fun,
	}
}
