package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"cartrack/internal/core"
	"cartrack/internal/core/fake"
	"cartrack/internal/notify"
	"cartrack/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Tracker vehicles", func() {
	var (
		fakeRepo     *fake.Repository
		fakeBlobs    *fake.BlobStore
		fakeSessions *fake.SessionStore
		fakeTokens   *fake.TokenIssuer
		fakeNotifier *fake.Notifier
		ctx          context.Context

		tracker *core.Tracker

		fakeErr error
	)

	upload := func(name, contentType string) core.Upload {
		return core.Upload{
			Filename:    name,
			Size:        2048,
			ContentType: contentType,
			Content:     strings.NewReader("file bytes"),
		}
	}

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeBlobs = new(fake.BlobStore)
		fakeSessions = new(fake.SessionStore)
		fakeTokens = new(fake.TokenIssuer)
		fakeNotifier = new(fake.Notifier)
		ctx = context.Background()

		tracker = core.NewTracker(zap.NewNop().Sugar(), fakeRepo, fakeBlobs, fakeSessions, fakeTokens, fakeNotifier, time.Hour)

		fakeErr = errors.New("fake error")
	})

	Describe("CreateVehicle", func() {
		var (
			msg    core.CreateVehicleMessage
			record core.VehicleRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.CreateVehicleMessage{
				VIN:         "1HGBH41JXMN109186",
				Lot:         "LOT-42",
				Year:        2021,
				Make:        "Honda",
				Model:       "Civic",
				Destination: "Klaipeda, Lithuania",
			}
			fakeRepo.GetVehicleByVINReturns(repository.Vehicle{}, repository.ErrVehicleNotFound)
		})

		JustBeforeEach(func() {
			record, err = tracker.CreateVehicle(ctx, msg)
		})

		When("the VIN is unused", func() {
			It("persists the vehicle with empty attachment lists", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateVehicleCallCount()).To(Equal(1))

				_, stored := fakeRepo.CreateVehicleArgsForCall(0)
				Expect(stored.VIN).To(Equal("1HGBH41JXMN109186"))
				Expect(stored.LoadingPhotos).To(BeEmpty())
				Expect(stored.Invoices).To(BeEmpty())

				Expect(record.LoadingPhotos).NotTo(BeNil())
				Expect(record.Invoices).NotTo(BeNil())
			})

			It("checks against the requested VIN", func() {
				Expect(err).NotTo(HaveOccurred())
				_, vin := fakeRepo.GetVehicleByVINArgsForCall(0)
				Expect(vin).To(Equal("1HGBH41JXMN109186"))
			})
		})

		When("another vehicle already has the VIN", func() {
			BeforeEach(func() {
				fakeRepo.GetVehicleByVINReturns(repository.Vehicle{ID: "other"}, nil)
			})

			It("returns a duplicate VIN error without writing", func() {
				Expect(err).To(MatchError(core.ErrDuplicateVIN))
				Expect(fakeRepo.CreateVehicleCallCount()).To(Equal(0))
			})
		})
	})

	Describe("UpdateVehicle", func() {
		var (
			stored repository.Vehicle
			patch  core.VehiclePatch
			record core.VehicleRecord
			err    error
		)

		BeforeEach(func() {
			owner := "user-1"
			stored = repository.Vehicle{
				ID:               "vehicle-1",
				VIN:              "1HGBH41JXMN109186",
				Lot:              "LOT-42",
				AssignedToUserID: &owner,
			}
			patch = core.VehiclePatch{}
			fakeRepo.GetVehicleReturns(stored, nil)
		})

		JustBeforeEach(func() {
			record, err = tracker.UpdateVehicle(ctx, "vehicle-1", patch)
		})

		When("the patch reassigns the vehicle", func() {
			BeforeEach(func() {
				next := "user-2"
				patch.AssignedToUserID = &next
			})

			It("stores the new assignment", func() {
				Expect(err).NotTo(HaveOccurred())
				_, saved := fakeRepo.UpdateVehicleArgsForCall(0)
				Expect(saved.AssignedToUserID).To(HaveValue(Equal("user-2")))
			})
		})

		When("the patch clears the assignment", func() {
			BeforeEach(func() {
				patch.ClearAssignment = true
			})

			It("unassigns the vehicle", func() {
				Expect(err).NotTo(HaveOccurred())
				_, saved := fakeRepo.UpdateVehicleArgsForCall(0)
				Expect(saved.AssignedToUserID).To(BeNil())
				Expect(record.AssignedToUserID).To(BeNil())
			})
		})

		When("the patch touches nothing", func() {
			It("writes the record back unchanged", func() {
				Expect(err).NotTo(HaveOccurred())
				_, saved := fakeRepo.UpdateVehicleArgsForCall(0)
				Expect(saved.VIN).To(Equal(stored.VIN))
				Expect(saved.Lot).To(Equal(stored.Lot))
				Expect(saved.AssignedToUserID).To(HaveValue(Equal("user-1")))
			})
		})

		When("the vehicle does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetVehicleReturns(repository.Vehicle{}, repository.ErrVehicleNotFound)
			})

			It("returns vehicle not found", func() {
				Expect(err).To(MatchError(core.ErrVehicleNotFound))
			})
		})
	})

	Describe("AttachPhotos", func() {
		var (
			files    []core.Upload
			category string
			record   core.VehicleRecord
			err      error
		)

		BeforeEach(func() {
			category = "loading"
			files = []core.Upload{
				upload("one.jpg", "image/jpeg"),
				upload("two.jpg", "image/jpeg"),
			}

			fakeRepo.GetVehicleReturns(repository.Vehicle{
				ID:            "vehicle-1",
				LoadingPhotos: repository.PhotoList{"/api/files/existing.jpg"},
			}, nil)
			fakeBlobs.PutReturnsOnCall(0, "/api/files/one.jpg", nil)
			fakeBlobs.PutReturnsOnCall(1, "/api/files/two.jpg", nil)
		})

		JustBeforeEach(func() {
			record, err = tracker.AttachPhotos(ctx, "vehicle-1", category, files)
		})

		It("appends the new references preserving upload order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.LoadingPhotos).To(Equal([]string{
				"/api/files/existing.jpg",
				"/api/files/one.jpg",
				"/api/files/two.jpg",
			}))

			_, saved := fakeRepo.UpdateVehicleArgsForCall(0)
			Expect([]string(saved.LoadingPhotos)).To(HaveLen(3))
		})

		When("the category is unknown", func() {
			BeforeEach(func() {
				category = "garage"
			})

			It("is rejected before storing anything", func() {
				Expect(err).To(MatchError(core.ErrInvalidCategory))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})

		When("a file exceeds the size limit", func() {
			BeforeEach(func() {
				files[0].Size = 11 << 20
			})

			It("is rejected", func() {
				Expect(err).To(MatchError(core.ErrFileTooLarge))
				Expect(fakeRepo.UpdateVehicleCallCount()).To(Equal(0))
			})
		})

		When("a file has an unsupported content type", func() {
			BeforeEach(func() {
				files[0].ContentType = "video/mp4"
			})

			It("is rejected", func() {
				Expect(err).To(MatchError(core.ErrUnsupportedFileType))
			})
		})

		When("storing a blob fails", func() {
			BeforeEach(func() {
				fakeBlobs.PutReturnsOnCall(1, "", fakeErr)
			})

			It("does not touch the vehicle", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.UpdateVehicleCallCount()).To(Equal(0))
			})
		})

		When("the vehicle does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetVehicleReturns(repository.Vehicle{}, repository.ErrVehicleNotFound)
			})

			It("stores no blobs", func() {
				Expect(err).To(MatchError(core.ErrVehicleNotFound))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})
	})

	Describe("AttachInvoices", func() {
		var (
			docType string
			record  core.VehicleRecord
			err     error
		)

		BeforeEach(func() {
			docType = ""
			fakeRepo.GetVehicleReturns(repository.Vehicle{ID: "vehicle-1"}, nil)
			fakeBlobs.PutReturns("/api/files/doc.pdf", nil)
		})

		JustBeforeEach(func() {
			record, err = tracker.AttachInvoices(ctx, "vehicle-1", docType, []core.Upload{
				upload("doc.pdf", "application/pdf"),
			})
		})

		It("tags entries with the default document type", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Invoices).To(Equal([]core.InvoiceRecord{
				{URL: "/api/files/doc.pdf", Type: "invoice"},
			}))
		})

		When("a document type is given", func() {
			BeforeEach(func() {
				docType = "bill_of_lading"
			})

			It("tags entries with it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Invoices[0].Type).To(Equal("bill_of_lading"))
			})
		})

		When("the vehicle does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetVehicleReturns(repository.Vehicle{}, repository.ErrVehicleNotFound)
			})

			It("stores no blobs", func() {
				Expect(err).To(MatchError(core.ErrVehicleNotFound))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})
	})

	Describe("RemoveInvoice", func() {
		var (
			record core.VehicleRecord
			err    error
			ref    string
		)

		BeforeEach(func() {
			ref = "/api/files/gone.pdf"
			fakeRepo.GetVehicleReturns(repository.Vehicle{
				ID: "vehicle-1",
				Invoices: repository.InvoiceList{
					{URL: "/api/files/kept.pdf", Type: "invoice"},
					{URL: "/api/files/gone.pdf", Type: "invoice"},
				},
			}, nil)
		})

		JustBeforeEach(func() {
			record, err = tracker.RemoveInvoice(ctx, "vehicle-1", ref)
		})

		It("drops the matching entry and keeps the rest", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Invoices).To(Equal([]core.InvoiceRecord{
				{URL: "/api/files/kept.pdf", Type: "invoice"},
			}))
		})

		When("no entry matches", func() {
			BeforeEach(func() {
				ref = "/api/files/never-attached.pdf"
			})

			It("leaves the list unchanged without an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Invoices).To(HaveLen(2))
			})
		})

		When("the stored list holds a legacy bare reference", func() {
			BeforeEach(func() {
				var invoices repository.InvoiceList
				Expect(invoices.Scan([]byte(`["/api/files/gone.pdf", {"url":"/api/files/kept.pdf","type":"carfax"}]`))).To(Succeed())

				fakeRepo.GetVehicleReturns(repository.Vehicle{
					ID:       "vehicle-1",
					Invoices: invoices,
				}, nil)
			})

			It("removes it by reference like any tagged entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Invoices).To(Equal([]core.InvoiceRecord{
					{URL: "/api/files/kept.pdf", Type: "carfax"},
				}))
			})
		})
	})

	Describe("NotifyUpdate", func() {
		var err error

		BeforeEach(func() {
			owner := "user-1"
			fakeRepo.GetVehicleReturns(repository.Vehicle{
				ID:               "vehicle-1",
				VIN:              "1HGBH41JXMN109186",
				Make:             "Honda",
				Model:            "Civic",
				ContainerNumber:  "MSKU1234567",
				AssignedToUserID: &owner,
			}, nil)
			fakeRepo.GetUserReturns(repository.User{
				ID:    "user-1",
				Email: "owner@example.com",
			}, nil)
		})

		JustBeforeEach(func() {
			err = tracker.NotifyUpdate(ctx, "vehicle-1")
		})

		It("notifies the assigned user's email", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeNotifier.VehicleUpdatedCallCount()).To(Equal(1))

			_, to, update := fakeNotifier.VehicleUpdatedArgsForCall(0)
			Expect(to).To(Equal("owner@example.com"))
			Expect(update).To(Equal(notify.VehicleUpdate{
				VIN:             "1HGBH41JXMN109186",
				Make:            "Honda",
				Model:           "Civic",
				ContainerNumber: "MSKU1234567",
			}))
		})

		When("the vehicle is unassigned", func() {
			BeforeEach(func() {
				fakeRepo.GetVehicleReturns(repository.Vehicle{ID: "vehicle-1"}, nil)
			})

			It("reports there is no recipient", func() {
				Expect(err).To(MatchError(core.ErrNoRecipient))
				Expect(fakeNotifier.VehicleUpdatedCallCount()).To(Equal(0))
			})
		})

		When("the assigned user has no email", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{ID: "user-1"}, nil)
			})

			It("reports there is no recipient", func() {
				Expect(err).To(MatchError(core.ErrNoRecipient))
			})
		})

		When("delivery fails", func() {
			BeforeEach(func() {
				fakeNotifier.VehicleUpdatedReturns(fakeErr)
			})

			It("surfaces the failure", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListForUser", func() {
		It("scopes the listing to the assigned user", func() {
			fakeRepo.GetVehiclesByUserReturns([]repository.Vehicle{{ID: "vehicle-1"}}, nil)

			records, err := tracker.ListForUser(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))

			_, userID := fakeRepo.GetVehiclesByUserArgsForCall(0)
			Expect(userID).To(Equal("user-1"))
		})
	})
})
