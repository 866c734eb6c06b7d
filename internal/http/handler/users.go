package handler

import (
	"errors"
	"net/http"

	"cartrack/internal/core"
	"cartrack/internal/http/handler/middleware"
	"cartrack/internal/http/payload"

	"go.uber.org/zap"
)

var (
	ListUsers            = "GET /api/users"
	GetUser              = "GET /api/users/{id}"
	CreateUser           = "POST /api/users"
	UpdateUser           = "PATCH /api/users/{id}"
	DeleteUser           = "DELETE /api/users/{id}"
	UploadProfilePicture = "POST /api/users/{id}/profile-picture"
)

// One 5 MiB image plus multipart framing.
const maxProfilePictureBody int64 = 6 << 20

type UserHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	users            UserService
}

func NewUserHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, users UserService) *UserHandler {
	return &UserHandler{
		logs:             logger,
		requestValidator: requestValidator,
		users:            users,
	}
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to list users", "error", err, "handler", ListUsers, "request_id", reqID)
		return
	}

	respond(h.logs, w, users, http.StatusOK, reqID)
}

func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	user, err := h.users.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to get user", "error", err, "handler", GetUser, "request_id", reqID)
		return
	}

	respond(h.logs, w, user, http.StatusOK, reqID)
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.CreateUserRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, ErrorResponse{Error: "Invalid request payload"}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateUser,
			"request_id", reqID)
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.ToMessage())
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to create user", "error", err, "handler", CreateUser, "request_id", reqID)
		return
	}

	respond(h.logs, w, user, http.StatusCreated, reqID)
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.UserPatchRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, ErrorResponse{Error: "Invalid request payload"}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateUser,
			"request_id", reqID)
		return
	}

	user, err := h.users.UpdateUser(r.Context(), r.PathValue("id"), req.ToPatch())
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to update user", "error", err, "handler", UpdateUser, "request_id", reqID)
		return
	}

	respond(h.logs, w, user, http.StatusOK, reqID)
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	sess, _ := middleware.SessionFromContext(r.Context())

	if err := h.users.DeleteUser(r.Context(), sess.Identity, r.PathValue("id")); err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to delete user", "error", err, "handler", DeleteUser, "request_id", reqID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) HandleUploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	sess, _ := middleware.SessionFromContext(r.Context())

	files, cleanup, err := uploadsFromRequest(w, r, "profilePicture", 1, maxProfilePictureBody)
	if err != nil {
		code, resp := uploadErrorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		return
	}
	defer cleanup()

	user, err := h.users.UploadProfilePicture(r.Context(), sess, r.PathValue("id"), files[0])
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("profile picture upload failed",
			"error", err,
			"handler", UploadProfilePicture,
			"request_id", reqID)
		return
	}

	respond(h.logs, w, user, http.StatusOK, reqID)
}

// uploadsFromRequest reads up to maxFiles multipart files from the given
// form field, with the whole request body capped at maxBytes. The returned
// cleanup closes every opened part.
func uploadsFromRequest(w http.ResponseWriter, r *http.Request, field string, maxFiles int, maxBytes int64) ([]core.Upload, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, errRequestTooLarge
		}
		return nil, nil, errBadMultipart
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, nil, errNoFiles
	}

	headers := r.MultipartForm.File[field]
	if len(headers) > maxFiles {
		return nil, nil, errTooManyFiles
	}

	uploads := make([]core.Upload, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, nil, errBadMultipart
		}
		closers = append(closers, f.Close)
		uploads = append(uploads, core.Upload{
			Filename:    fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}

	return uploads, cleanup, nil
}
