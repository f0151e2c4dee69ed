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

// andThenState tracks which future an AndThen is currently driving.
type andThenState int

const (
	andThenStateFirst andThenState = iota
	andThenStateSecond
	andThenStateDone
)

// andThen implements Future returned by AndThen. fun is a one-shot slot consumed on the
// transition out of andThenStateFirst.
type andThen struct {
	state  andThenState
	first  Future
	fun    func(interface{}) Future
	second Future
}

// Poll implements Future.
func (f *andThen) Poll() PollResult {
	switch f.state {
	case andThenStateFirst:
		result := f.first.Poll()
		if !IsReady(result) {
			return PollResultPending
		}

		// Consume the continuation to build the second future, then poll it right away so progress
		// can be made within this very call.
		fun := f.fun
		f.fun = nil
		f.first = nil

		second := fun(result)
		secondResult := second.Poll()
		if IsReady(secondResult) {
			f.state = andThenStateDone
			return secondResult
		}
		f.state = andThenStateSecond
		f.second = second
		return PollResultPending

	case andThenStateSecond:
		secondResult := f.second.Poll()
		if IsReady(secondResult) {
			f.state = andThenStateDone
			f.second = nil
			return secondResult
		}
		return PollResultPending

	default:
		panic("future: poll called after future completed")
	}
}

// AndThen creates a Future which chains two asynchronous computations: it drives fut to
// completion, feeds its value to fun to obtain a second future, and yields that second future's
// value.
//
// fun is invoked exactly once, on the poll that observes fut completing. The future it returns is
// polled for the first time within the same call, so no extra poll round-trip is needed to make
// progress.
func AndThen(fut Future, fun func(interface{}) Future) Future {
	return &andThen{
		state: andThenStateFirst,
		first: fut,
		fun:   fun,
	}
}
