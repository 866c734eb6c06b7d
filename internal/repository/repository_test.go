package repository_test

import (
	"context"
	"errors"

	"cartrack/internal/db"
	"cartrack/internal/repository"
	"cartrack/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TrackingRepository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.TrackingRepository
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewTrackingRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx)
		})

		It("migrates the user, vehicle and config tables", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(3))
		})

		It("seeds the admin user and the reference config", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.SeedTableCallCount()).To(Equal(2))

			_, usersArg := fakeStorage.SeedTableArgsForCall(0)
			users, ok := usersArg.(*[]repository.User)
			Expect(ok).To(BeTrue())
			Expect(*users).To(HaveLen(1))
			Expect((*users)[0].Username).To(Equal("Admin"))
			Expect((*users)[0].Role).To(Equal(repository.RoleAdmin))

			_, configsArg := fakeStorage.SeedTableArgsForCall(1)
			configs, ok := configsArg.(*[]repository.Config)
			Expect(ok).To(BeTrue())
			keys := make([]string, 0, len(*configs))
			for _, cfg := range *configs {
				keys = append(keys, cfg.Key)
			}
			Expect(keys).To(Equal([]string{"makes", "models", "destinations"}))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("stops before seeding", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.SeedTableCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		It("queries on the username column", func() {
			fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
				*(entity.(*repository.User)) = repository.User{ID: "user-1", Username: "someone"}
				return nil
			}

			user, err := repo.GetUserByUsername(ctx, "someone")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal("user-1"))

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("username"))
			Expect(value).To(Equal("someone"))
		})

		It("maps a missing row to a user not found error", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)

			_, err := repo.GetUserByUsername(ctx, "nobody")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})
	})

	Describe("DeleteUser", func() {
		var err error

		BeforeEach(func() {
			owner := "user-1"
			fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, entities any) error {
				*(entities.(*[]repository.Vehicle)) = []repository.Vehicle{
					{ID: "vehicle-1", AssignedToUserID: &owner},
					{ID: "vehicle-2", AssignedToUserID: &owner},
				}
				return nil
			}
		})

		JustBeforeEach(func() {
			err = repo.DeleteUser(ctx, "user-1")
		})

		It("clears every vehicle assignment before deleting the row", func() {
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("assigned_to_user_id"))
			Expect(value).To(Equal("user-1"))

			Expect(fakeStorage.SaveCallCount()).To(Equal(2))
			for i := 0; i < 2; i++ {
				_, record := fakeStorage.SaveArgsForCall(i)
				vehicle, ok := record.(*repository.Vehicle)
				Expect(ok).To(BeTrue())
				Expect(vehicle.AssignedToUserID).To(BeNil())
			}

			Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
			_, column, value, _ = fakeStorage.DeleteByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("user-1"))
		})

		When("the user row does not exist", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(db.ErrNotFound)
			})

			It("returns user not found", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetVehicleByVIN", func() {
		It("queries on the vin column", func() {
			fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
				*(entity.(*repository.Vehicle)) = repository.Vehicle{ID: "vehicle-1", VIN: "1HGBH41JXMN109186"}
				return nil
			}

			vehicle, err := repo.GetVehicleByVIN(ctx, "1HGBH41JXMN109186")
			Expect(err).NotTo(HaveOccurred())
			Expect(vehicle.ID).To(Equal("vehicle-1"))

			_, column, _, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("vin"))
		})

		It("maps a missing row to a vehicle not found error", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)

			_, err := repo.GetVehicleByVIN(ctx, "unknown")
			Expect(err).To(MatchError(repository.ErrVehicleNotFound))
		})
	})

	Describe("SetConfig", func() {
		When("the key does not exist yet", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("inserts a fresh row", func() {
				cfg, err := repo.SetConfig(ctx, "makes", []byte(`["Honda"]`))
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Key).To(Equal("makes"))
				Expect(cfg.ID).NotTo(BeEmpty())

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				Expect(fakeStorage.SaveCallCount()).To(Equal(0))
			})
		})

		When("the key already exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*(entity.(*repository.Config)) = repository.Config{
						ID:    "config-1",
						Key:   "makes",
						Value: repository.JSONValue(`["Honda"]`),
					}
					return nil
				}
			})

			It("updates the existing row in place", func() {
				cfg, err := repo.SetConfig(ctx, "makes", []byte(`["Honda","BMW"]`))
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.ID).To(Equal("config-1"))
				Expect(string(cfg.Value)).To(MatchJSON(`["Honda","BMW"]`))

				Expect(fakeStorage.InsertCallCount()).To(Equal(0))
				Expect(fakeStorage.SaveCallCount()).To(Equal(1))
			})
		})
	})
})
