package handler

import (
	"net/http"
	"time"

	"cartrack/internal/http/handler/middleware"
	"cartrack/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Login  = "POST /api/auth/login"
	Logout = "POST /api/auth/logout"
	Me     = "GET /api/auth/me"
)

type AuthHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	auth             AuthService
	sessionTTL       time.Duration
}

func NewAuthHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, auth AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		logs:             logger,
		requestValidator: requestValidator,
		auth:             auth,
		sessionTTL:       sessionTTL,
	}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, ErrorResponse{Error: "Invalid request payload"}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", reqID)
		return
	}

	token, identity, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("login failed",
			"error", err,
			"username", req.Username,
			"handler", Login,
			"request_id", reqID)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond(h.logs, w, map[string]any{"user": identity}, http.StatusOK, reqID)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if token := middleware.TokenFromRequest(r); token != "" {
		if err := h.auth.Logout(r.Context(), token); err != nil {
			h.logs.Errorw("logout failed", "error", err, "handler", Logout, "request_id", reqID)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond(h.logs, w, map[string]bool{"success": true}, http.StatusOK, reqID)
}

// HandleMe reports the identity of the current session. It sits behind
// RequireAuth, so an unauthenticated request never reaches it.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respond(h.logs, w, map[string]bool{"authenticated": false}, http.StatusUnauthorized, reqID)
		return
	}

	respond(h.logs, w, map[string]any{
		"user":          sess.Identity,
		"authenticated": true,
	}, http.StatusOK, reqID)
}
