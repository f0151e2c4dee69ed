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
)

// A ReadResult is the value yielded by a FileReader. Failure to read the file travels here, inside
// the completed value; the poll that delivers it always succeeds.
type ReadResult struct {
	// Contents of the file as text. Empty when Err is set.
	Contents string

	// Err is the error reported by the underlying read, if any.
	Err error
}

// Ok returns true if the read completed without error.
func (r ReadResult) Ok() bool {
	return r.Err == nil
}

// A FileReader is a leaf future that reads the file at a given path. The first poll spawns a
// worker goroutine to perform the blocking read; each later poll checks the completion flag and,
// once it is set, collects the worker's ReadResult.
type FileReader struct {
	blockingWork
}

// FileReader implements future.Future.
var _ future.Future = (*FileReader)(nil)

// ReadFile creates a FileReader for the file at path. No work happens until the returned future
// is first polled.
func ReadFile(path string) *FileReader {
	reader := &FileReader{}
	reader.run = func() future.PollResult {
		contents, err := ioutil.ReadFile(path)
		if err != nil {
			return ReadResult{Err: err}
		}
		return ReadResult{Contents: string(contents)}
	}
	return reader
}
