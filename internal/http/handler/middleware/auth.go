package middleware

import (
	"context"
	"net/http"
	"strings"

	"cartrack/internal/session"

	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// SessionKey is the context key under which the resolved session is stored.
const SessionKey contextKey = "session"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionResolver . SessionResolver
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (session.Session, error)
}

// AuthMiddleware gates handlers behind a resolved server-side session.
type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	resolver SessionResolver
}

func NewAuthMiddleware(logger *zap.SugaredLogger, resolver SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		resolver: resolver,
	}
}

// RequireAuth admits any authenticated identity.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := m.resolve(r)
		if !ok {
			unauthorized(w)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), SessionKey, sess)))
	}
}

// RequireAdmin admits only identities with the admin role.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := m.resolve(r)
		if !ok {
			unauthorized(w)
			return
		}
		if !sess.Identity.IsAdmin() {
			forbidden(w)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), SessionKey, sess)))
	}
}

func (m *AuthMiddleware) resolve(r *http.Request) (session.Session, bool) {
	token := TokenFromRequest(r)
	if token == "" {
		return session.Session{}, false
	}

	sess, err := m.resolver.Resolve(r.Context(), token)
	if err != nil {
		return session.Session{}, false
	}
	return sess, true
}

// TokenFromRequest reads the session token from the session cookie, falling
// back to a bearer Authorization header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// SessionFromContext returns the session placed by RequireAuth/RequireAdmin.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(session.Session)
	return sess, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"Not authenticated"}`))
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"error":"Not authorized"}`))
}
