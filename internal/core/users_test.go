package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"cartrack/internal/core"
	"cartrack/internal/core/fake"
	"cartrack/internal/repository"
	"cartrack/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Tracker users", func() {
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

	Describe("CreateUser", func() {
		var (
			msg    core.CreateUserMessage
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.CreateUserMessage{
				Username: "newuser",
				Password: "s3cret",
				Name:     "New User",
				Email:    "new@example.com",
			}
			fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
		})

		JustBeforeEach(func() {
			record, err = tracker.CreateUser(ctx, msg)
		})

		When("the username is free", func() {
			It("persists the user with a bcrypt hash of the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))

				_, stored := fakeRepo.CreateUserArgsForCall(0)
				Expect(stored.Username).To(Equal("newuser"))
				Expect(stored.PasswordHash).NotTo(Equal("s3cret"))
				Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret"))).To(Succeed())
			})

			It("defaults the role to user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Role).To(Equal(repository.RoleUser))
			})

			It("never exposes the hash on the returned record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.UserRecord{
					ID:       record.ID,
					Username: "newuser",
					Role:     repository.RoleUser,
					Name:     "New User",
					Email:    "new@example.com",
				}))
			})
		})

		When("an explicit role is given", func() {
			BeforeEach(func() {
				msg.Role = repository.RoleAdmin
			})

			It("keeps it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Role).To(Equal(repository.RoleAdmin))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{Username: "newuser"}, nil)
			})

			It("returns a duplicate username error without writing", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUsername))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the uniqueness check fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("propagates the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("UpdateUser", func() {
		var (
			stored repository.User
			patch  core.UserPatch
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			stored = repository.User{
				ID:           "user-1",
				Username:     "someone",
				PasswordHash: "$2a$10$existinghashexistinghashexistingha",
				Role:         repository.RoleUser,
				Name:         "Some One",
			}
			patch = core.UserPatch{}
			fakeRepo.GetUserReturns(stored, nil)
		})

		JustBeforeEach(func() {
			record, err = tracker.UpdateUser(ctx, "user-1", patch)
		})

		When("the patch changes the name only", func() {
			BeforeEach(func() {
				name := "Renamed"
				patch.Name = &name
			})

			It("merges it and leaves everything else alone", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Name).To(Equal("Renamed"))

				_, saved := fakeRepo.UpdateUserArgsForCall(0)
				Expect(saved.Username).To(Equal("someone"))
				Expect(saved.PasswordHash).To(Equal(stored.PasswordHash))
			})
		})

		When("the patch carries an empty password", func() {
			BeforeEach(func() {
				empty := "   "
				patch.Password = &empty
			})

			It("leaves the stored hash untouched", func() {
				Expect(err).NotTo(HaveOccurred())
				_, saved := fakeRepo.UpdateUserArgsForCall(0)
				Expect(saved.PasswordHash).To(Equal(stored.PasswordHash))
			})
		})

		When("the patch carries a new password", func() {
			BeforeEach(func() {
				pass := "newpass"
				patch.Password = &pass
			})

			It("re-hashes it", func() {
				Expect(err).NotTo(HaveOccurred())
				_, saved := fakeRepo.UpdateUserArgsForCall(0)
				Expect(saved.PasswordHash).NotTo(Equal(stored.PasswordHash))
				Expect(bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("newpass"))).To(Succeed())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("DeleteUser", func() {
		var (
			actor session.Identity
			err   error
		)

		BeforeEach(func() {
			actor = session.Identity{ID: "admin-1", Role: repository.RoleAdmin}
		})

		When("deleting another user", func() {
			JustBeforeEach(func() {
				err = tracker.DeleteUser(ctx, actor, "user-2")
			})

			It("delegates to the repository", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteUserCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteUserArgsForCall(0)
				Expect(id).To(Equal("user-2"))
			})
		})

		When("deleting the own account", func() {
			JustBeforeEach(func() {
				err = tracker.DeleteUser(ctx, actor, "admin-1")
			})

			It("is forbidden", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
				Expect(fakeRepo.DeleteUserCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(repository.ErrUserNotFound)
			})

			JustBeforeEach(func() {
				err = tracker.DeleteUser(ctx, actor, "user-2")
			})

			It("returns user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("UploadProfilePicture", func() {
		var (
			sess   session.Session
			file   core.Upload
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			sess = session.Session{
				ID:       "session-1",
				Identity: session.Identity{ID: "user-1", Username: "someone", Role: repository.RoleUser},
			}
			file = core.Upload{
				Filename:    "avatar.PNG",
				Size:        1024,
				ContentType: "image/png",
				Content:     strings.NewReader("not really a png"),
			}

			fakeRepo.GetUserReturns(repository.User{ID: "user-1", Username: "someone", Role: repository.RoleUser}, nil)
			fakeBlobs.PutReturns("/api/files/abc.png", nil)
		})

		JustBeforeEach(func() {
			record, err = tracker.UploadProfilePicture(ctx, sess, "user-1", file)
		})

		When("the user uploads their own picture", func() {
			It("stores the blob and updates the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ProfilePicture).To(Equal("/api/files/abc.png"))

				Expect(fakeBlobs.PutCallCount()).To(Equal(1))
				_, ext, _ := fakeBlobs.PutArgsForCall(0)
				Expect(ext).To(Equal(".png"))

				_, saved := fakeRepo.UpdateUserArgsForCall(0)
				Expect(saved.ProfilePicture).To(Equal("/api/files/abc.png"))
			})

			It("refreshes the session's cached identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSessions.UpdateCallCount()).To(Equal(1))
				id, identity := fakeSessions.UpdateArgsForCall(0)
				Expect(id).To(Equal("session-1"))
				Expect(identity.ProfilePicture).To(Equal("/api/files/abc.png"))
			})
		})

		When("an admin uploads for someone else", func() {
			BeforeEach(func() {
				sess.Identity = session.Identity{ID: "admin-1", Role: repository.RoleAdmin}
			})

			It("does not touch the admin's session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeSessions.UpdateCallCount()).To(Equal(0))
			})
		})

		When("a non-admin targets another user", func() {
			BeforeEach(func() {
				sess.Identity = session.Identity{ID: "user-2", Role: repository.RoleUser}
			})

			It("is forbidden", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})

		When("the file is too large", func() {
			BeforeEach(func() {
				file.Size = 6 << 20
			})

			It("is rejected before storing anything", func() {
				Expect(err).To(MatchError(core.ErrFileTooLarge))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})

		When("the content type is not an image", func() {
			BeforeEach(func() {
				file.ContentType = "application/pdf"
			})

			It("is rejected", func() {
				Expect(err).To(MatchError(core.ErrUnsupportedFileType))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})
	})
})
