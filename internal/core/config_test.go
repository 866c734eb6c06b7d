package core_test

import (
	"context"
	"encoding/json"
	"time"

	"cartrack/internal/core"
	"cartrack/internal/core/fake"
	"cartrack/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracker config", func() {
	var (
		fakeRepo *fake.Repository
		ctx      context.Context
		tracker  *core.Tracker
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		ctx = context.Background()

		tracker = core.NewTracker(zap.NewNop().Sugar(), fakeRepo,
			new(fake.BlobStore), new(fake.SessionStore), new(fake.TokenIssuer), new(fake.Notifier), time.Hour)
	})

	Describe("GetConfig", func() {
		It("returns the stored raw JSON value", func() {
			fakeRepo.GetConfigReturns(repository.Config{
				Key:   "vehicleMakes",
				Value: repository.JSONValue(`["Honda","Toyota"]`),
			}, nil)

			entry, err := tracker.GetConfig(ctx, "vehicleMakes")
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.Key).To(Equal("vehicleMakes"))
			Expect(string(entry.Value)).To(MatchJSON(`["Honda","Toyota"]`))
		})

		It("maps a missing key to a config not found error", func() {
			fakeRepo.GetConfigReturns(repository.Config{}, repository.ErrConfigNotFound)

			_, err := tracker.GetConfig(ctx, "nope")
			Expect(err).To(MatchError(core.ErrConfigNotFound))
		})
	})

	Describe("AllConfig", func() {
		It("flattens the rows to a key value map", func() {
			fakeRepo.GetAllConfigReturns([]repository.Config{
				{Key: "vehicleMakes", Value: repository.JSONValue(`["Honda"]`)},
				{Key: "destinations", Value: repository.JSONValue(`["Klaipeda, Lithuania"]`)},
			}, nil)

			all, err := tracker.AllConfig(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(string(all["vehicleMakes"])).To(MatchJSON(`["Honda"]`))
			Expect(string(all["destinations"])).To(MatchJSON(`["Klaipeda, Lithuania"]`))
		})
	})

	Describe("SetConfig", func() {
		It("upserts the raw value under the key", func() {
			fakeRepo.SetConfigReturns(repository.Config{
				Key:   "vehicleMakes",
				Value: repository.JSONValue(`["Honda","BMW"]`),
			}, nil)

			entry, err := tracker.SetConfig(ctx, "vehicleMakes", json.RawMessage(`["Honda","BMW"]`))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(entry.Value)).To(MatchJSON(`["Honda","BMW"]`))

			_, key, value := fakeRepo.SetConfigArgsForCall(0)
			Expect(key).To(Equal("vehicleMakes"))
			Expect(value).To(MatchJSON(`["Honda","BMW"]`))
		})
	})
})
