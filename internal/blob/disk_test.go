package blob_test

import (
	"context"
	"io"
	"strings"

	"cartrack/internal/blob"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DiskStore", func() {
	var (
		store *blob.DiskStore
		ctx   context.Context
	)

	BeforeEach(func() {
		var err error
		store, err = blob.NewDiskStore(GinkgoT().TempDir())
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Describe("Put", func() {
		It("stores the content under a generated reference", func() {
			ref, err := store.Put(ctx, ".jpg", strings.NewReader("photo bytes"))
			Expect(err).NotTo(HaveOccurred())
			Expect(ref).To(HavePrefix(blob.RefPrefix))
			Expect(ref).To(HaveSuffix(".jpg"))

			name := strings.TrimPrefix(ref, blob.RefPrefix)
			rc, err := store.Open(name)
			Expect(err).NotTo(HaveOccurred())
			defer rc.Close()

			content, err := io.ReadAll(rc)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("photo bytes"))
		})

		It("generates a distinct reference per blob", func() {
			first, err := store.Put(ctx, ".jpg", strings.NewReader("one"))
			Expect(err).NotTo(HaveOccurred())
			second, err := store.Put(ctx, ".jpg", strings.NewReader("two"))
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("abandons the copy when the context is done", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := store.Put(cancelled, ".jpg", strings.NewReader("photo bytes"))
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("Open", func() {
		It("reports unknown names", func() {
			_, err := store.Open("no-such-blob.jpg")
			Expect(err).To(MatchError(blob.ErrBlobNotFound))
		})

		It("rejects traversal attempts", func() {
			for _, name := range []string{"", "../secrets", "a/../../b", "sub/dir.jpg"} {
				_, err := store.Open(name)
				Expect(err).To(MatchError(blob.ErrInvalidName), "name %q", name)
			}
		})
	})

	Describe("Delete", func() {
		It("removes the blob", func() {
			ref, err := store.Put(ctx, ".pdf", strings.NewReader("doc"))
			Expect(err).NotTo(HaveOccurred())
			name := strings.TrimPrefix(ref, blob.RefPrefix)

			Expect(store.Delete(name)).To(Succeed())

			_, err = store.Open(name)
			Expect(err).To(MatchError(blob.ErrBlobNotFound))
		})

		It("reports unknown names", func() {
			err := store.Delete("no-such-blob.pdf")
			Expect(err).To(MatchError(blob.ErrBlobNotFound))
		})
	})
})
