package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"cartrack/internal/core"
	"cartrack/internal/http/handler"
	"cartrack/internal/http/handler/fake"
	"cartrack/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("UserHandler", func() {
	var (
		uh            *handler.UserHandler
		fakeUsers     *fake.UserService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		adminSession  session.Session
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		adminSession = session.Session{
			ID:       "session-admin",
			Identity: session.Identity{ID: "admin-1", Username: "admin", Role: "admin"},
		}

		w = httptest.NewRecorder()
		uh = handler.NewUserHandler(zap.NewNop().Sugar(), fakeValidator, fakeUsers)
	})

	Describe("HandleCreate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"newuser","password":"s3cret","name":"New User","role":"user"}`)
			req = httptest.NewRequest("POST", "/api/users", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			uh.HandleCreate(w, req)
		})

		It("creates the user", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))

			_, msg := fakeUsers.CreateUserArgsForCall(0)
			Expect(msg.Username).To(Equal("newuser"))
			Expect(msg.Password).To(Equal("s3cret"))
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserReturns(core.UserRecord{}, core.ErrDuplicateUsername)
			})

			It("responds with the duplicate username code", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))

				var response handler.ErrorResponse
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Code).To(Equal("DUPLICATE_USERNAME"))
			})
		})
	})

	Describe("HandleUpdate", func() {
		It("merges the patch", func() {
			fakeUsers.UpdateUserReturns(core.UserRecord{ID: "user-1", Name: "Renamed"}, nil)

			body := strings.NewReader(`{"name":"Renamed"}`)
			req = httptest.NewRequest("PATCH", "/api/users/user-1", body)
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("id", "user-1")

			uh.HandleUpdate(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			_, id, patch := fakeUsers.UpdateUserArgsForCall(0)
			Expect(id).To(Equal("user-1"))
			Expect(patch.Name).To(HaveValue(Equal("Renamed")))
			Expect(patch.Password).To(BeNil())
		})
	})

	Describe("HandleDelete", func() {
		BeforeEach(func() {
			req = withSession(httptest.NewRequest("DELETE", "/api/users/user-2", nil), adminSession)
			req.SetPathValue("id", "user-2")
		})

		JustBeforeEach(func() {
			uh.HandleDelete(w, req)
		})

		It("passes the acting identity along", func() {
			Expect(w.Code).To(Equal(http.StatusNoContent))

			_, actor, id := fakeUsers.DeleteUserArgsForCall(0)
			Expect(actor.ID).To(Equal("admin-1"))
			Expect(id).To(Equal("user-2"))
		})

		When("the service forbids the delete", func() {
			BeforeEach(func() {
				fakeUsers.DeleteUserReturns(core.ErrForbidden)
			})

			It("responds forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleUploadProfilePicture", func() {
		BeforeEach(func() {
			fakeUsers.UploadProfilePictureReturns(core.UserRecord{
				ID:             "user-1",
				ProfilePicture: "/api/files/avatar.png",
			}, nil)

			req = multipartUpload("/api/users/user-1/profile-picture", "profilePicture", nil, "avatar.png")
			req = withSession(req, adminSession)
			req.SetPathValue("id", "user-1")
		})

		JustBeforeEach(func() {
			uh.HandleUploadProfilePicture(w, req)
		})

		It("hands the file and the session to the service", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, sess, userID, file := fakeUsers.UploadProfilePictureArgsForCall(0)
			Expect(sess.ID).To(Equal("session-admin"))
			Expect(userID).To(Equal("user-1"))
			Expect(file.Filename).To(Equal("avatar.png"))
			Expect(file.ContentType).To(Equal("image/png"))

			var response core.UserRecord
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.ProfilePicture).To(Equal("/api/files/avatar.png"))
		})

		When("no file is attached", func() {
			BeforeEach(func() {
				req = withSession(multipartUpload("/api/users/user-1/profile-picture", "profilePicture", nil), adminSession)
				req.SetPathValue("id", "user-1")
			})

			It("responds bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))

				var response handler.ErrorResponse
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Error).To(Equal("No files uploaded"))
				Expect(fakeUsers.UploadProfilePictureCallCount()).To(Equal(0))
			})
		})

		When("the body exceeds the route's size cap", func() {
			BeforeEach(func() {
				var buf bytes.Buffer
				mw := multipart.NewWriter(&buf)
				part, err := mw.CreateFormFile("profilePicture", "huge.png")
				Expect(err).NotTo(HaveOccurred())
				_, err = part.Write(bytes.Repeat([]byte("x"), 7<<20))
				Expect(err).NotTo(HaveOccurred())
				Expect(mw.Close()).To(Succeed())

				req = httptest.NewRequest("POST", "/api/users/user-1/profile-picture", &buf)
				req.Header.Set("Content-Type", mw.FormDataContentType())
				req = withSession(req, adminSession)
				req.SetPathValue("id", "user-1")
			})

			It("responds entity too large before reading the file", func() {
				Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))

				var response handler.ErrorResponse
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Error).To(Equal("Request body too large"))
				Expect(fakeUsers.UploadProfilePictureCallCount()).To(Equal(0))
			})
		})

		When("the file is rejected", func() {
			BeforeEach(func() {
				fakeUsers.UploadProfilePictureReturns(core.UserRecord{}, core.ErrFileTooLarge)
			})

			It("responds bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleList", func() {
		It("returns every user", func() {
			fakeUsers.ListUsersReturns([]core.UserRecord{
				{ID: "user-1", Username: "someone"},
				{ID: "user-2", Username: "other"},
			}, nil)

			req = httptest.NewRequest("GET", "/api/users", nil)

			uh.HandleList(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response []core.UserRecord
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response).To(HaveLen(2))
		})
	})

	Describe("HandleGet", func() {
		It("maps an unknown id to 404", func() {
			fakeUsers.GetUserReturns(core.UserRecord{}, core.ErrUserNotFound)

			req = httptest.NewRequest("GET", "/api/users/nope", nil)
			req.SetPathValue("id", "nope")

			uh.HandleGet(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
