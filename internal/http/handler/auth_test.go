package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"cartrack/internal/core"
	"cartrack/internal/http/handler"
	"cartrack/internal/http/handler/fake"
	"cartrack/internal/http/handler/middleware"
	"cartrack/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

var _ = Describe("AuthHandler", func() {
	var (
		ah            *handler.AuthHandler
		fakeAuth      *fake.AuthService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		identity      session.Identity
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeAuth = new(fake.AuthService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		identity = session.Identity{
			ID:       "user-1",
			Username: "someone",
			Role:     "admin",
			Name:     "Some One",
		}
		fakeAuth.LoginReturns("signed.token", identity, nil)

		w = httptest.NewRecorder()
		ah = handler.NewAuthHandler(zap.NewNop().Sugar(), fakeValidator, fakeAuth, 24*time.Hour)
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"someone","password":"pass"}`)
			req = httptest.NewRequest("POST", "/api/auth/login", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			ah.HandleLogin(w, req)
		})

		When("the credentials check out", func() {
			It("sets the session cookie", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				cookie := sessionCookie(w)
				Expect(cookie).NotTo(BeNil())
				Expect(cookie.Value).To(Equal("signed.token"))
				Expect(cookie.HttpOnly).To(BeTrue())
				Expect(cookie.MaxAge).To(Equal(int((24 * time.Hour).Seconds())))
			})

			It("returns the identity", func() {
				var response map[string]session.Identity
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["user"]).To(Equal(identity))

				_, username, password := fakeAuth.LoginArgsForCall(0)
				Expect(username).To(Equal("someone"))
				Expect(password).To(Equal("pass"))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeAuth.LoginReturns("", session.Identity{}, core.ErrInvalidCredentials)
			})

			It("responds unauthorized without a cookie", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(sessionCookie(w)).To(BeNil())

				var response handler.ErrorResponse
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Error).To(Equal("Invalid credentials"))
			})
		})

		When("the payload does not decode", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("responds bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeAuth.LoginCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleLogout", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/auth/logout", nil)
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed.token"})
		})

		JustBeforeEach(func() {
			ah.HandleLogout(w, req)
		})

		It("destroys the session and clears the cookie", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			Expect(fakeAuth.LogoutCallCount()).To(Equal(1))
			_, token := fakeAuth.LogoutArgsForCall(0)
			Expect(token).To(Equal("signed.token"))

			cookie := sessionCookie(w)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).To(BeEmpty())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))

			var response map[string]bool
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response["success"]).To(BeTrue())
		})

		When("there is no token at all", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/api/auth/logout", nil)
			})

			It("still succeeds", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeAuth.LogoutCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleMe", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/auth/me", nil)
		})

		When("a session is on the context", func() {
			BeforeEach(func() {
				sess := session.Session{ID: "session-1", Identity: identity}
				req = req.WithContext(context.WithValue(req.Context(), middleware.SessionKey, sess))
			})

			It("returns the identity", func() {
				ah.HandleMe(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))

				var response struct {
					User          session.Identity `json:"user"`
					Authenticated bool             `json:"authenticated"`
				}
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Authenticated).To(BeTrue())
				Expect(response.User).To(Equal(identity))
			})
		})

		When("no session is on the context", func() {
			It("responds unauthorized", func() {
				ah.HandleMe(w, req)

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})
})
