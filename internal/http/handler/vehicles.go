package handler

import (
	"net/http"

	"cartrack/internal/http/handler/middleware"
	"cartrack/internal/http/payload"

	"go.uber.org/zap"
)

var (
	ListVehicles   = "GET /api/vehicles"
	GetVehicle     = "GET /api/vehicles/{id}"
	CreateVehicle  = "POST /api/vehicles"
	UpdateVehicle  = "PATCH /api/vehicles/{id}"
	DeleteVehicle  = "DELETE /api/vehicles/{id}"
	AttachPhotos   = "POST /api/vehicles/{id}/photos/{category}"
	AttachInvoices = "POST /api/vehicles/{id}/invoices"
	RemoveInvoice  = "DELETE /api/vehicles/{id}/invoices"
	NotifyUpdate   = "POST /api/vehicles/{id}/notify"
)

const maxAttachmentsPerRequest = 100

// maxAttachmentsBody bounds an attach request at the per-file limit times
// the file count, plus headroom for multipart framing.
const maxAttachmentsBody int64 = (maxAttachmentsPerRequest + 1) * (10 << 20)

type VehicleHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	vehicles         VehicleService
}

func NewVehicleHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, vehicles VehicleService) *VehicleHandler {
	return &VehicleHandler{
		logs:             logger,
		requestValidator: requestValidator,
		vehicles:         vehicles,
	}
}

// HandleList returns all vehicles for admins and only the caller's assigned
// vehicles for everyone else.
func (h *VehicleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	sess, _ := middleware.SessionFromContext(r.Context())

	var (
		vehicles any
		err      error
	)
	if sess.Identity.IsAdmin() {
		vehicles, err = h.vehicles.ListVehicles(r.Context())
	} else {
		vehicles, err = h.vehicles.ListForUser(r.Context(), sess.Identity.ID)
	}
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to list vehicles", "error", err, "handler", ListVehicles, "request_id", reqID)
		return
	}

	respond(h.logs, w, vehicles, http.StatusOK, reqID)
}

func (h *VehicleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	vehicle, err := h.vehicles.GetVehicle(r.Context(), r.PathValue("id"))
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to get vehicle", "error", err, "handler", GetVehicle, "request_id", reqID)
		return
	}

	respond(h.logs, w, vehicle, http.StatusOK, reqID)
}

func (h *VehicleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.CreateVehicleRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, ErrorResponse{Error: "Invalid request payload"}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateVehicle,
			"request_id", reqID)
		return
	}

	vehicle, err := h.vehicles.CreateVehicle(r.Context(), req.ToMessage())
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to create vehicle", "error", err, "handler", CreateVehicle, "request_id", reqID)
		return
	}

	respond(h.logs, w, vehicle, http.StatusCreated, reqID)
}

func (h *VehicleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.VehiclePatchRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, ErrorResponse{Error: "Invalid request payload"}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateVehicle,
			"request_id", reqID)
		return
	}

	vehicle, err := h.vehicles.UpdateVehicle(r.Context(), r.PathValue("id"), req.ToPatch())
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to update vehicle", "error", err, "handler", UpdateVehicle, "request_id", reqID)
		return
	}

	respond(h.logs, w, vehicle, http.StatusOK, reqID)
}

func (h *VehicleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if err := h.vehicles.DeleteVehicle(r.Context(), r.PathValue("id")); err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to delete vehicle", "error", err, "handler", DeleteVehicle, "request_id", reqID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *VehicleHandler) HandleAttachPhotos(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	files, cleanup, err := uploadsFromRequest(w, r, "photos", maxAttachmentsPerRequest, maxAttachmentsBody)
	if err != nil {
		code, resp := uploadErrorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		return
	}
	defer cleanup()

	vehicle, err := h.vehicles.AttachPhotos(r.Context(), r.PathValue("id"), r.PathValue("category"), files)
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("vehicle photo upload failed",
			"error", err,
			"handler", AttachPhotos,
			"request_id", reqID)
		return
	}

	respond(h.logs, w, vehicle, http.StatusOK, reqID)
}

func (h *VehicleHandler) HandleAttachInvoices(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	files, cleanup, err := uploadsFromRequest(w, r, "invoices", maxAttachmentsPerRequest, maxAttachmentsBody)
	if err != nil {
		code, resp := uploadErrorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		return
	}
	defer cleanup()

	documentType := r.FormValue("documentType")

	vehicle, err := h.vehicles.AttachInvoices(r.Context(), r.PathValue("id"), documentType, files)
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("invoice upload failed",
			"error", err,
			"handler", AttachInvoices,
			"request_id", reqID)
		return
	}

	respond(h.logs, w, vehicle, http.StatusOK, reqID)
}

func (h *VehicleHandler) HandleRemoveInvoice(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.RemoveInvoiceRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, ErrorResponse{Error: "Invoice URL is required"}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RemoveInvoice,
			"request_id", reqID)
		return
	}

	vehicle, err := h.vehicles.RemoveInvoice(r.Context(), r.PathValue("id"), req.InvoiceURL)
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("invoice delete failed",
			"error", err,
			"handler", RemoveInvoice,
			"request_id", reqID)
		return
	}

	respond(h.logs, w, vehicle, http.StatusOK, reqID)
}

// HandleNotifyUpdate pushes a one-shot notification to the assigned user.
// Delivery failure surfaces as an error response; nothing is retried.
func (h *VehicleHandler) HandleNotifyUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if err := h.vehicles.NotifyUpdate(r.Context(), r.PathValue("id")); err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("update notification failed",
			"error", err,
			"handler", NotifyUpdate,
			"request_id", reqID)
		return
	}

	respond(h.logs, w, map[string]bool{"success": true}, http.StatusOK, reqID)
}
