// Package handlers exposes the assistant over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paa-ai/skydesk/pkg/services"
)

// maxQueryLength bounds request bodies; a travel question does not need
// more.
const maxQueryLength = 4096

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Query     string `json:"query"`
}

// ChatResponse is the reply to POST /v1/chat.
type ChatResponse struct {
	SessionID string   `json:"session_id"`
	Answer    string   `json:"answer"`
	Flight    string   `json:"flight,omitempty"`
	Intents   []string `json:"intents"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Assistant is the service surface the HTTP layer needs.
type Assistant interface {
	Ask(ctx context.Context, sessionID, query string) *services.Answer
	ResetSession(sessionID string)
	Ready(ctx context.Context) bool
}

// Handler serves the assistant HTTP API.
type Handler struct {
	assistant Assistant
	logger    *slog.Logger
}

// NewHandler creates the HTTP handler layer.
func NewHandler(assistant Assistant, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		assistant: assistant,
		logger:    logger.With("component", "http-handler"),
	}
}

// Routes builds the service router.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/chat", h.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/v1/sessions/{id}", h.handleResetSession).Methods(http.MethodDelete)
	r.HandleFunc("/healthz", h.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/readyz", h.handleReadyz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQueryLength*2)).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query cannot be empty"})
		return
	}
	if len(query) > maxQueryLength {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query too long"})
		return
	}

	answer := h.assistant.Ask(r.Context(), req.SessionID, query)
	h.writeJSON(w, http.StatusOK, ChatResponse{
		SessionID: answer.SessionID,
		Answer:    answer.Text,
		Flight:    answer.Flight,
		Intents:   answer.Intents,
	})
}

func (h *Handler) handleResetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "session id required"})
		return
	}
	h.assistant.ResetSession(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if !h.assistant.Ready(r.Context()) {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "vector store unreachable"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
