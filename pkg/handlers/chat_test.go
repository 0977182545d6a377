package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paa-ai/skydesk/pkg/services"
)

type stubAssistant struct {
	answer   *services.Answer
	ready    bool
	resetIDs []string
}

func (s *stubAssistant) Ask(ctx context.Context, sessionID, query string) *services.Answer {
	if s.answer != nil {
		return s.answer
	}
	return &services.Answer{SessionID: "s-1", Text: "ok", Intents: []string{"web"}}
}

func (s *stubAssistant) ResetSession(sessionID string) {
	s.resetIDs = append(s.resetIDs, sessionID)
}

func (s *stubAssistant) Ready(ctx context.Context) bool { return s.ready }

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	assistant := &stubAssistant{
		answer: &services.Answer{
			SessionID: "abc",
			Text:      "Flight SV726 has landed at gate 12.",
			Flight:    "SV726",
			Intents:   []string{"flight"},
		},
	}
	h := NewHandler(assistant, nil)

	rec := postChat(t, h, `{"query": "status of SV726"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.SessionID)
	assert.Equal(t, "SV726", resp.Flight)
	assert.Contains(t, resp.Answer, "SV726")
	assert.Equal(t, []string{"flight"}, resp.Intents)
}

func TestChatRejectsEmptyQuery(t *testing.T) {
	h := NewHandler(&stubAssistant{}, nil)

	rec := postChat(t, h, `{"query": "   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatRejectsMalformedBody(t *testing.T) {
	h := NewHandler(&stubAssistant{}, nil)

	rec := postChat(t, h, `{"query": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatRejectsOversizedQuery(t *testing.T) {
	h := NewHandler(&stubAssistant{}, nil)

	rec := postChat(t, h, `{"query": "`+strings.Repeat("a", maxQueryLength+1)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetSessionEndpoint(t *testing.T) {
	assistant := &stubAssistant{}
	h := NewHandler(assistant, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/abc", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"abc"}, assistant.resetIDs)
}

func TestHealthz(t *testing.T) {
	h := NewHandler(&stubAssistant{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReflectsStoreState(t *testing.T) {
	h := NewHandler(&stubAssistant{ready: false}, nil)
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h = NewHandler(&stubAssistant{ready: true}, nil)
	rec = httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpointExposed(t *testing.T) {
	h := NewHandler(&stubAssistant{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
