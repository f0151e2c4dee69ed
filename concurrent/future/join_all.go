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

// joinAll implements Future returned by JoinAll. results doubles as the completion bookkeeping:
// a slot still holding PollResultPending marks a child that has not yielded yet.
type joinAll struct {
	inputs  []Future
	results []interface{}
}

// Poll implements Future.
func (f *joinAll) Poll() PollResult {
	inputs := f.inputs
	if inputs == nil {
		panic("future: poll called after future completed")
	}

	var (
		done    = true
		results = f.results
	)

	for i, input := range inputs {
		if results[i] != interface{}(PollResultPending) {
			// This child already yielded; never poll it again.
			continue
		}

		result := input.Poll()
		if !IsReady(result) {
			done = false
		} else {
			results[i] = interface{}(result)
			inputs[i] = nil
		}
	}

	if done {
		f.inputs = nil
		return results
	}

	return PollResultPending
}

// JoinAll creates a Future which aggregates values from a collection of Futures.
//
// The returned Future drives execution of the input futures and collects the results into an
// []interface{} in the same order as they're given. Joining no futures yields an empty slice on
// the first poll.
func JoinAll(f ...Future) Future {
	if f == nil {
		// Keep the "already completed" nil marker unambiguous when called with no arguments.
		f = []Future{}
	}

	// Initialize storage for result values.
	results := make([]interface{}, len(f))
	for i := range results {
		results[i] = PollResultPending
	}

	return &joinAll{
		inputs:  f,
		results: results,
	}
}
