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

var _ = Describe("JSONFileReader: future that reads and decodes a JSON file", func() {
	It("yields the decoded document", func() {
		path, cleanup := writeTempFile("config.json", `{"name": "selene", "workers": 4}`)
		defer cleanup()

		result := future.BlockOn(asyncio.ReadJSONFile(path)).(asyncio.JSONResult)
		Expect(result.Ok()).Should(BeTrue())
		Expect(result.Value).Should(Equal(map[string]interface{}{
			"name":    "selene",
			"workers": float64(4),
		}))
	})

	It("carries a decode failure inside the yielded value", func() {
		path, cleanup := writeTempFile("broken.json", `{"name": `)
		defer cleanup()

		result := future.BlockOn(asyncio.ReadJSONFile(path)).(asyncio.JSONResult)
		Expect(result.Ok()).Should(BeFalse())
		Expect(result.Err).Should(HaveOccurred())
	})

	It("carries a read failure inside the yielded value", func() {
		result := future.BlockOn(asyncio.ReadJSONFile("/no/such/file.json")).(asyncio.JSONResult)
		Expect(result.Ok()).Should(BeFalse())
		Expect(result.Err).Should(HaveOccurred())
	})
})
