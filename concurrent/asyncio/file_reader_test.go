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

package asyncio_test

import (
	"github.com/botobag/selene/concurrent/asyncio"
	"github.com/botobag/selene/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileReader: future that reads a file on a worker goroutine", func() {
	It("yields the exact file contents as a successful result", func() {
		path, cleanup := writeTempFile("greeting.txt", "hello, futures\n")
		defer cleanup()

		f := asyncio.ReadFile(path)

		// The first poll only spawns the worker.
		Expect(f.Poll()).Should(Equal(future.PollResultPending))

		result := future.BlockOn(f).(asyncio.ReadResult)
		Expect(result.Ok()).Should(BeTrue())
		Expect(result.Contents).Should(Equal("hello, futures\n"))
	})

	It("carries a read failure inside the yielded value", func() {
		f := asyncio.ReadFile("/no/such/file/anywhere")

		result := future.BlockOn(f).(asyncio.ReadResult)
		Expect(result.Ok()).Should(BeFalse())
		Expect(result.Err).Should(HaveOccurred())
		Expect(result.Contents).Should(BeEmpty())
	})

	It("panics when polled after the result was collected", func() {
		path, cleanup := writeTempFile("once.txt", "once")
		defer cleanup()

		f := asyncio.ReadFile(path)
		Expect(future.BlockOn(f)).Should(Equal(asyncio.ReadResult{Contents: "once"}))
		Expect(func() { f.Poll() }).Should(Panic())
	})
})
