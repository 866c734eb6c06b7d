package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"cartrack/internal/http/handler/middleware"
	"cartrack/internal/http/handler/middleware/fake"
	"cartrack/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthMiddleware", func() {
	var (
		am           *middleware.AuthMiddleware
		fakeResolver *fake.SessionResolver
		w            *httptest.ResponseRecorder
		req          *http.Request

		nextCalled  bool
		nextSession session.Session
		next        http.HandlerFunc
	)

	BeforeEach(func() {
		fakeResolver = new(fake.SessionResolver)
		am = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeResolver)

		nextCalled = false
		nextSession = session.Session{}
		next = func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			nextSession, _ = middleware.SessionFromContext(r.Context())
		}

		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/vehicles", nil)
	})

	Describe("RequireAuth", func() {
		When("a valid session cookie is present", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed.token"})
				fakeResolver.ResolveReturns(session.Session{
					ID:       "session-1",
					Identity: session.Identity{ID: "user-1", Role: "user"},
				}, nil)
			})

			It("admits the request with the session on the context", func() {
				am.RequireAuth(next)(w, req)

				Expect(nextCalled).To(BeTrue())
				Expect(nextSession.ID).To(Equal("session-1"))

				_, token := fakeResolver.ResolveArgsForCall(0)
				Expect(token).To(Equal("signed.token"))
			})
		})

		When("the token arrives as a bearer header", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer signed.token")
				fakeResolver.ResolveReturns(session.Session{ID: "session-1"}, nil)
			})

			It("admits the request", func() {
				am.RequireAuth(next)(w, req)

				Expect(nextCalled).To(BeTrue())
				_, token := fakeResolver.ResolveArgsForCall(0)
				Expect(token).To(Equal("signed.token"))
			})
		})

		When("no token is present", func() {
			It("responds unauthorized without consulting the resolver", func() {
				am.RequireAuth(next)(w, req)

				Expect(nextCalled).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeResolver.ResolveCallCount()).To(Equal(0))
			})
		})

		When("the session cannot be resolved", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "stale.token"})
				fakeResolver.ResolveReturns(session.Session{}, errors.New("not authenticated"))
			})

			It("responds unauthorized", func() {
				am.RequireAuth(next)(w, req)

				Expect(nextCalled).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("RequireAdmin", func() {
		BeforeEach(func() {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed.token"})
		})

		When("the session belongs to an admin", func() {
			BeforeEach(func() {
				fakeResolver.ResolveReturns(session.Session{
					ID:       "session-1",
					Identity: session.Identity{ID: "admin-1", Role: "admin"},
				}, nil)
			})

			It("admits the request", func() {
				am.RequireAdmin(next)(w, req)

				Expect(nextCalled).To(BeTrue())
				Expect(nextSession.Identity.IsAdmin()).To(BeTrue())
			})
		})

		When("the session belongs to a regular user", func() {
			BeforeEach(func() {
				fakeResolver.ResolveReturns(session.Session{
					ID:       "session-1",
					Identity: session.Identity{ID: "user-1", Role: "user"},
				}, nil)
			})

			It("responds forbidden", func() {
				am.RequireAdmin(next)(w, req)

				Expect(nextCalled).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("no token is present", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/vehicles", nil)
			})

			It("responds unauthorized", func() {
				am.RequireAdmin(next)(w, req)

				Expect(nextCalled).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})
})

var _ = Describe("RequestIDMiddleware", func() {
	It("stamps every request with a fresh id", func() {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/vehicles", nil)

		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

		Expect(seen).NotTo(BeEmpty())
		Expect(w.Header().Get("X-Request-Id")).To(Equal(seen))
	})
})
