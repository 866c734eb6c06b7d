package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"cartrack/internal/blob"

	"go.uber.org/zap"
)

var (
	GetFile       = "GET /api/files/{filename}"
	GetFileBase64 = "GET /api/files-base64/{filename}"
)

var contentTypesByExt = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// FileHandler serves stored blobs back by name. The endpoints are
// deliberately unauthenticated to match the embedding UI; blob names are
// unguessable UUIDs and traversal is rejected by the store.
type FileHandler struct {
	logs  *zap.SugaredLogger
	files FileStore
}

func NewFileHandler(logger *zap.SugaredLogger, files FileStore) *FileHandler {
	return &FileHandler{
		logs:  logger,
		files: files,
	}
}

func (h *FileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	filename := r.PathValue("filename")

	f, err := h.files.Open(filename)
	if err != nil {
		h.respondOpenError(w, err, filename, reqID)
		return
	}
	defer f.Close()

	if ct, ok := contentTypesByExt[strings.ToLower(filepath.Ext(filename))]; ok {
		w.Header().Set("Content-Type", ct)
	}

	if _, err := io.Copy(w, f); err != nil {
		h.logs.Errorw("failed to stream file", "error", err, "filename", filename, "request_id", reqID)
	}
}

func (h *FileHandler) HandleGetBase64(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	filename := r.PathValue("filename")

	f, err := h.files.Open(filename)
	if err != nil {
		h.respondOpenError(w, err, filename, reqID)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respond(h.logs, w, ErrorResponse{Error: "Error reading file"}, http.StatusInternalServerError, reqID)
		h.logs.Errorw("failed to read file", "error", err, "filename", filename, "request_id", reqID)
		return
	}

	mimeType, ok := contentTypesByExt[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		mimeType = "application/octet-stream"
	}

	respond(h.logs, w, map[string]string{
		"data":     base64.StdEncoding.EncodeToString(data),
		"mimeType": mimeType,
		"filename": filename,
	}, http.StatusOK, reqID)
}

func (h *FileHandler) respondOpenError(w http.ResponseWriter, err error, filename, reqID string) {
	if errors.Is(err, blob.ErrBlobNotFound) || errors.Is(err, blob.ErrInvalidName) {
		respond(h.logs, w, ErrorResponse{Error: "File not found"}, http.StatusNotFound, reqID)
		return
	}
	respond(h.logs, w, ErrorResponse{Error: "Internal server error"}, http.StatusInternalServerError, reqID)
	h.logs.Errorw("failed to open file", "error", err, "filename", filename, "request_id", reqID)
}
