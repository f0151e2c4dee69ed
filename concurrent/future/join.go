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

// A Pair carries the two values yielded by a Join.
type Pair struct {
	First  interface{}
	Second interface{}
}

// joinState tracks which of the two child futures have completed.
type joinState int

const (
	joinStateBothRunning joinState = iota
	joinStateFirstDone
	joinStateSecondDone
	joinStateDone
)

// join implements Future returned by Join. It is a state machine over its children's completion:
// a child that has yielded its value has its slot nil'ed and is never polled again; the value is
// retained in firstValue/secondValue until the other child catches up.
type join struct {
	state       joinState
	first       Future
	second      Future
	firstValue  interface{}
	secondValue interface{}
}

// Poll implements Future. Children are polled in a fixed order (first before second) to keep
// side-effect ordering deterministic.
func (f *join) Poll() PollResult {
	switch f.state {
	case joinStateBothRunning:
		firstResult := f.first.Poll()
		secondResult := f.second.Poll()
		switch {
		case IsReady(firstResult) && IsReady(secondResult):
			f.state = joinStateDone
			f.first = nil
			f.second = nil
			return Pair{First: firstResult, Second: secondResult}

		case IsReady(firstResult):
			f.state = joinStateFirstDone
			f.firstValue = firstResult
			f.first = nil

		case IsReady(secondResult):
			f.state = joinStateSecondDone
			f.secondValue = secondResult
			f.second = nil
		}
		return PollResultPending

	case joinStateFirstDone:
		secondResult := f.second.Poll()
		if IsReady(secondResult) {
			f.state = joinStateDone
			f.second = nil
			firstValue := f.firstValue
			f.firstValue = nil
			return Pair{First: firstValue, Second: secondResult}
		}
		return PollResultPending

	case joinStateSecondDone:
		firstResult := f.first.Poll()
		if IsReady(firstResult) {
			f.state = joinStateDone
			f.first = nil
			secondValue := f.secondValue
			f.secondValue = nil
			return Pair{First: firstResult, Second: secondValue}
		}
		return PollResultPending

	default:
		panic("future: poll called after future completed")
	}
}

// Join creates a Future which drives two futures and yields a Pair of their values once both have
// completed.
//
// While both children are running, each poll polls both of them; once either child has yielded,
// its value is retained and only the remaining child is polled on subsequent calls.
func Join(first, second Future) Future {
	return &join{
		state:  joinStateBothRunning,
		first:  first,
		second: second,
	}
}
