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

// A PollResult is the outcome of one poll attempt on a Future. The special value
// PollResultPending indicates the future has not finished computing yet. Any other value -- nil
// included -- is the final value yielded by the future. Consequently, a future must never yield
// PollResultPending itself as its value.
type PollResult interface{}

// pollPendingResult serves as type for PollResultPending.
type pollPendingResult int

// pollResult implements PollResult.
func (pollPendingResult) pollResult() {}

// PollResultPending is a special value which will be recognized by executors and combinators to
// indicate that value of the future is not ready yet.
const PollResultPending = pollPendingResult(0)

// IsReady returns true if result carries the final value of a future, that is, if it is anything
// other than PollResultPending.
func IsReady(result PollResult) bool {
	return result != PollResult(PollResultPending)
}
