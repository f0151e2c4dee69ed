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

package asyncio

import (
	"io/ioutil"

	"github.com/botobag/selene/concurrent/future"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// A JSONResult is the value yielded by a JSONFileReader: the decoded document on success, or the
// read/decode error.
type JSONResult struct {
	// Value holds the decoded document.
	Value interface{}

	// Err is the error reported by the underlying read or by the decoder, if any.
	Err error
}

// Ok returns true if the file was read and decoded without error.
func (r JSONResult) Ok() bool {
	return r.Err == nil
}

// A JSONFileReader is a leaf future that reads the file at a given path and decodes it as a JSON
// document, both on the worker goroutine so neither the read nor the decode ever runs inside
// Poll.
type JSONFileReader struct {
	blockingWork
}

// JSONFileReader implements future.Future.
var _ future.Future = (*JSONFileReader)(nil)

// ReadJSONFile creates a JSONFileReader for the file at path. No work happens until the returned
// future is first polled.
func ReadJSONFile(path string) *JSONFileReader {
	reader := &JSONFileReader{}
	reader.run = func() future.PollResult {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return JSONResult{Err: err}
		}

		var value interface{}
		if err := json.Unmarshal(data, &value); err != nil {
			return JSONResult{Err: err}
		}
		return JSONResult{Value: value}
	}
	return reader
}
