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
	"sync/atomic"

	"github.com/botobag/selene/concurrent"
	"github.com/botobag/selene/concurrent/future"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("MultiThreadExecutor", func() {
	It("cannot be created with an invalid worker count", func() {
		_, err := concurrent.NewMultiThreadExecutor(0)
		Expect(err.Error()).Should(ContainSubstring("numWorkers must be a positive value"))

		_, err = concurrent.NewMultiThreadExecutor(-3)
		Expect(err).Should(HaveOccurred())
	})

	It("drains 100 trivial futures across 4 workers, each completing exactly once", func() {
		executor, err := concurrent.NewMultiThreadExecutor(4)
		Expect(err).ShouldNot(HaveOccurred())

		// A tick panics when polled after completion, so a future executed twice (or picked up by
		// two workers) would blow up the run rather than pass silently.
		var completions int64
		const numFutures = 100
		for i := 0; i < numFutures; i++ {
			executor.Spawn(newTick(1, &completions))
		}

		executor.Wait()
		Expect(atomic.LoadInt64(&completions)).Should(Equal(int64(numFutures)))
	})

	It("drains slow futures that need many polls", func() {
		executor, err := concurrent.NewMultiThreadExecutor(2)
		Expect(err).ShouldNot(HaveOccurred())

		var completions int64
		for i := 0; i < 8; i++ {
			executor.Spawn(newTick(25+i, &completions))
		}

		executor.Wait()
		Expect(atomic.LoadInt64(&completions)).Should(Equal(int64(8)))
	})

	It("accepts spawns from many goroutines", func() {
		executor, err := concurrent.NewMultiThreadExecutor(4)
		Expect(err).ShouldNot(HaveOccurred())

		var (
			completions int64
			spawned     = make(chan struct{})
		)
		const numSpawners = 8
		for i := 0; i < numSpawners; i++ {
			go func() {
				for j := 0; j < 10; j++ {
					executor.Spawn(newTick(j+1, &completions))
				}
				spawned <- struct{}{}
			}()
		}
		for i := 0; i < numSpawners; i++ {
			<-spawned
		}

		executor.Wait()
		Expect(atomic.LoadInt64(&completions)).Should(Equal(int64(numSpawners * 10)))
	})

	It("returns from Wait with nothing spawned", func() {
		executor, err := concurrent.NewMultiThreadExecutor(4)
		Expect(err).ShouldNot(HaveOccurred())
		executor.Wait()
	})

	It("rejects work after Wait", func() {
		executor, err := concurrent.NewMultiThreadExecutor(2)
		Expect(err).ShouldNot(HaveOccurred())
		executor.Wait()

		Expect(func() { executor.Spawn(future.Ready(nil)) }).Should(Panic())
	})

	It("panics when Wait is called twice", func() {
		executor, err := concurrent.NewMultiThreadExecutor(2)
		Expect(err).ShouldNot(HaveOccurred())
		executor.Wait()

		Expect(func() { executor.Wait() }).Should(Panic())
	})

	It("panics when spawning a nil future", func() {
		executor, err := concurrent.NewMultiThreadExecutor(1)
		Expect(err).ShouldNot(HaveOccurred())
		defer executor.Wait()

		Expect(func() { executor.Spawn(nil) }).Should(Panic())
	})
})
