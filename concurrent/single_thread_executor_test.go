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

package concurrent_test

import (
	"github.com/botobag/selene/concurrent"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SingleThreadExecutor", func() {
	It("discards a future that completes on the immediate Spawn poll", func() {
		var completions int64
		executor := concurrent.NewSingleThreadExecutor()

		f := newTick(1, &completions)
		executor.Spawn(f)
		Expect(f.numPolls).Should(Equal(1))
		Expect(completions).Should(Equal(int64(1)))

		// Nothing pending; Wait returns right away without touching the finished future.
		executor.Wait()
		Expect(f.numPolls).Should(Equal(1))
	})

	It("drives several pending futures round-robin until all complete", func() {
		var completions int64
		executor := concurrent.NewSingleThreadExecutor()

		futures := []*tick{
			newTick(2, &completions),
			newTick(5, &completions),
			newTick(3, &completions),
		}
		for _, f := range futures {
			executor.Spawn(f)
		}

		executor.Wait()
		Expect(completions).Should(Equal(int64(3)))

		// Every future was polled exactly as many times as it needed: once by Spawn plus one poll
		// per pass until its completion, and never again afterwards. The number of full passes is
		// bounded by the slowest future.
		Expect(futures[0].numPolls).Should(Equal(2))
		Expect(futures[1].numPolls).Should(Equal(5))
		Expect(futures[2].numPolls).Should(Equal(3))
	})

	It("returns immediately from Wait when nothing was spawned", func() {
		executor := concurrent.NewSingleThreadExecutor()
		executor.Wait()
	})

	It("can be reused for a new batch after Wait", func() {
		var completions int64
		executor := concurrent.NewSingleThreadExecutor()

		executor.Spawn(newTick(4, &completions))
		executor.Wait()
		Expect(completions).Should(Equal(int64(1)))

		executor.Spawn(newTick(2, &completions))
		executor.Wait()
		Expect(completions).Should(Equal(int64(2)))
	})
})
