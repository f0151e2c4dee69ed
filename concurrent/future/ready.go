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

// ready implements Future returned by Ready.
type ready struct {
	value interface{}
	done  bool
}

// Poll implements Future. The first poll moves the value out; the future holds nothing
// afterwards.
func (f *ready) Poll() PollResult {
	if f.done {
		panic("future: poll called after future completed")
	}
	f.done = true
	value := f.value
	f.value = nil
	return value
}

// Ready creates a leaf Future that is immediately ready with the given value on its first poll.
func Ready(value interface{}) Future {
	return &ready{value: value}
}
