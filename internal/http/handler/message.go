package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cartrack/internal/core"
	"cartrack/internal/http/handler/middleware"

	"go.uber.org/zap"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

var errNoFiles = errors.New("No files uploaded")
var errTooManyFiles = errors.New("Too many files")
var errBadMultipart = errors.New("Invalid multipart request")
var errRequestTooLarge = errors.New("Request body too large")

// ErrorResponse is the error envelope. Code carries a machine-readable
// discriminator for errors the UI needs to branch on.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if resp == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

// errorResponse maps service errors to the HTTP taxonomy. Unexpected errors
// become an opaque 500.
func errorResponse(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"}
	case errors.Is(err, core.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"}
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Error: "Not authorized"}
	case errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "User not found"}
	case errors.Is(err, core.ErrVehicleNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "Vehicle not found"}
	case errors.Is(err, core.ErrConfigNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "Config not found"}
	case errors.Is(err, core.ErrDuplicateUsername):
		return http.StatusBadRequest, ErrorResponse{Error: "A user with this username already exists", Code: "DUPLICATE_USERNAME"}
	case errors.Is(err, core.ErrDuplicateVIN):
		return http.StatusBadRequest, ErrorResponse{Error: "A vehicle with this VIN already exists", Code: "DUPLICATE_VIN"}
	case errors.Is(err, core.ErrInvalidCategory):
		return http.StatusBadRequest, ErrorResponse{Error: "Invalid photo type"}
	case errors.Is(err, core.ErrFileTooLarge):
		return http.StatusBadRequest, ErrorResponse{Error: "File exceeds the size limit"}
	case errors.Is(err, core.ErrUnsupportedFileType):
		return http.StatusBadRequest, ErrorResponse{Error: "Invalid file type. Only JPEG, PNG, GIF, WebP, and PDF are allowed."}
	case errors.Is(err, core.ErrNoRecipient):
		return http.StatusBadRequest, ErrorResponse{Error: "Vehicle has no assigned user with an email address"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"}
	}
}

// uploadErrorResponse maps multipart extraction failures. An over-budget
// body gets its own status so clients can tell it from a missing file.
func uploadErrorResponse(err error) (int, ErrorResponse) {
	if errors.Is(err, errRequestTooLarge) {
		return http.StatusRequestEntityTooLarge, ErrorResponse{Error: err.Error()}
	}
	return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
}

func requestID(r *http.Request) string {
	if v, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return v
	}
	return ""
}
