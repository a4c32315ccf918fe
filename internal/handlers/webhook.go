package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jwebster45206/mathbrain/internal/logger"
	"github.com/jwebster45206/mathbrain/internal/metrics"
	"github.com/jwebster45206/mathbrain/internal/middleware"
	"github.com/jwebster45206/mathbrain/internal/services"
	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/phrases"
	"github.com/jwebster45206/mathbrain/pkg/scenario"
)

// ErrorResponse is the body returned for requests that never reach the dialogue.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WebhookHandler answers the voice platform, one turn per call.
type WebhookHandler struct {
	engine  *scenario.Engine
	replies *services.ReplyCache // nil disables retry de-duplication
	logger  *slog.Logger

	picker func() *phrases.Picker
}

// NewWebhookHandler creates a new webhook handler. replies may be nil.
func NewWebhookHandler(engine *scenario.Engine, replies *services.ReplyCache, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		engine:  engine,
		replies: replies,
		logger:  logger,
		picker:  phrases.ForRequest,
	}
}

// WithPicker replaces the per-request phrase source, so replies become reproducible.
func (h *WebhookHandler) WithPicker(picker func() *phrases.Picker) *WebhookHandler {
	h.picker = picker
	return h
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log := logger.WithRequestID(h.logger, middleware.RequestID(r.Context()))

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed for webhook endpoint",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)
		metrics.BadRequestsTotal.WithLabelValues("method").Inc()
		h.writeError(w, log, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var req dialog.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		metrics.BadRequestsTotal.WithLabelValues("decode").Inc()
		h.writeError(w, log, http.StatusBadRequest, "Invalid request body. Expected a dialog request.")
		return
	}
	if err := req.Validate(); err != nil {
		log.Warn("Rejected request", "error", err)
		metrics.BadRequestsTotal.WithLabelValues("invalid").Inc()
		h.writeError(w, log, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	sessionID, messageID := req.Session.SessionID, req.Session.MessageID

	if resp, ok := h.cached(r.Context(), log, sessionID, messageID); ok {
		log.Info("Replayed cached reply",
			"session_id", sessionID,
			"message_id", messageID,
			"scenario", resp.SessionState.Scenario)
		h.writeResponse(w, log, resp)
		return
	}

	out := h.engine.Handle(&req, h.picker())

	if h.replies != nil {
		if err := h.replies.Put(r.Context(), sessionID, messageID, out.Response); err != nil {
			log.Warn("Failed to cache reply", "error", err, "session_id", sessionID)
		}
	}

	took := time.Since(start)
	metrics.ObserveTurn(string(out.Scenario), string(out.Route), took)
	log.Info("Turn answered",
		"from", out.From,
		"scenario", out.Scenario,
		"route", out.Route,
		"session_id", sessionID,
		"message_id", messageID,
		"duration", took)

	h.writeResponse(w, log, out.Response)
}

// cached looks up the reply already given to this message. Cache failures only cost
// de-duplication, so they are logged and treated as a miss.
func (h *WebhookHandler) cached(ctx context.Context, log *slog.Logger, sessionID string, messageID int) (dialog.Response, bool) {
	if h.replies == nil {
		return dialog.Response{}, false
	}
	resp, err := h.replies.Get(ctx, sessionID, messageID)
	switch {
	case err != nil:
		log.Warn("Reply cache lookup failed", "error", err, "session_id", sessionID)
		metrics.ReplyCacheTotal.WithLabelValues("error").Inc()
		return dialog.Response{}, false
	case resp == nil:
		metrics.ReplyCacheTotal.WithLabelValues("miss").Inc()
		return dialog.Response{}, false
	default:
		metrics.ReplyCacheTotal.WithLabelValues("hit").Inc()
		return *resp, true
	}
}

func (h *WebhookHandler) writeResponse(w http.ResponseWriter, log *slog.Logger, resp dialog.Response) {
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("Error encoding webhook response", "error", err)
	}
}

func (h *WebhookHandler) writeError(w http.ResponseWriter, log *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		log.Error("Error encoding error response", "error", err)
	}
}
