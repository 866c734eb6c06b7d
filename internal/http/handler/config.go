package handler

import (
	"net/http"

	"cartrack/internal/http/payload"

	"go.uber.org/zap"
)

var (
	GetAllConfig = "GET /api/config"
	GetConfigKey = "GET /api/config/{key}"
	SetConfigKey = "PUT /api/config/{key}"
)

type ConfigHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	config           ConfigService
}

func NewConfigHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, config ConfigService) *ConfigHandler {
	return &ConfigHandler{
		logs:             logger,
		requestValidator: requestValidator,
		config:           config,
	}
}

func (h *ConfigHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	configs, err := h.config.AllConfig(r.Context())
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to get config", "error", err, "handler", GetAllConfig, "request_id", reqID)
		return
	}

	respond(h.logs, w, configs, http.StatusOK, reqID)
}

func (h *ConfigHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	cfg, err := h.config.GetConfig(r.Context(), r.PathValue("key"))
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to get config key", "error", err, "handler", GetConfigKey, "request_id", reqID)
		return
	}

	respond(h.logs, w, cfg, http.StatusOK, reqID)
}

func (h *ConfigHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var req payload.SetConfigRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, ErrorResponse{Error: "Invalid request payload"}, http.StatusBadRequest, reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SetConfigKey,
			"request_id", reqID)
		return
	}

	cfg, err := h.config.SetConfig(r.Context(), r.PathValue("key"), req.Value)
	if err != nil {
		code, resp := errorResponse(err)
		respond(h.logs, w, resp, code, reqID)
		h.logs.Errorw("failed to set config key", "error", err, "handler", SetConfigKey, "request_id", reqID)
		return
	}

	respond(h.logs, w, cfg, http.StatusOK, reqID)
}
