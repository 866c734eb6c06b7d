package repository_test

import (
	"cartrack/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InvoiceList", func() {
	Describe("scanning stored jsonb", func() {
		It("accepts a mix of bare references and tagged entries", func() {
			var list repository.InvoiceList
			err := list.Scan([]byte(`["/api/files/old.pdf", {"url":"/api/files/new.pdf","type":"carfax"}]`))

			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(Equal(repository.InvoiceList{
				{URL: "/api/files/old.pdf", Type: "invoice"},
				{URL: "/api/files/new.pdf", Type: "carfax"},
			}))
		})

		It("rejects entries that are neither strings nor objects", func() {
			var list repository.InvoiceList
			Expect(list.Scan([]byte(`[42]`))).To(HaveOccurred())
		})
	})

	Describe("Value", func() {
		It("writes bare-scanned entries back in tagged form", func() {
			var list repository.InvoiceList
			Expect(list.Scan([]byte(`["/api/files/old.pdf"]`))).To(Succeed())

			stored, err := list.Value()
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(MatchJSON(`[{"url":"/api/files/old.pdf","type":"invoice"}]`))
		})
	})
})
