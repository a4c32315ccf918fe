package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mathbrain/internal/metrics"
	"github.com/jwebster45206/mathbrain/internal/middleware"
	"github.com/jwebster45206/mathbrain/internal/services"
	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/phrases"
	"github.com/jwebster45206/mathbrain/pkg/scenario"
)

func newWebhook(replies *services.ReplyCache) *WebhookHandler {
	engine := scenario.NewEngine(scenario.NewRegistry(), scenario.DefaultOptions())
	var seed uint64
	return NewWebhookHandler(engine, replies, testLogger()).WithPicker(func() *phrases.Picker {
		seed++
		return phrases.Seeded(seed)
	})
}

func turnBody(t *testing.T, messageID int, state map[string]any, intents ...string) []byte {
	t.Helper()
	req := dialog.Request{
		Request: dialog.UserRequest{
			Type: dialog.TypeSimpleUtterance,
			NLU:  dialog.NLU{Intents: map[string]dialog.Intent{}},
		},
		Session: dialog.Session{SessionID: "session-1", MessageID: messageID, SkillID: "skill"},
		Version: dialog.Version,
	}
	for _, name := range intents {
		req.Request.NLU.Intents[name] = dialog.Intent{}
	}
	if state != nil {
		req.State.Session = map[string]json.RawMessage{}
		for k, v := range state {
			raw, err := json.Marshal(v)
			require.NoError(t, err)
			req.State.Session[k] = raw
		}
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return data
}

func post(t *testing.T, h http.Handler, body []byte) (*httptest.ResponseRecorder, dialog.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/alice", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp dialog.Response
	if rr.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	}
	return rr, resp
}

func TestWebhookHandler_Rejects(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "method not allowed",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed. Only POST is supported.",
		},
		{
			name:           "invalid JSON body",
			method:         http.MethodPost,
			body:           "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body. Expected a dialog request.",
		},
		{
			name:           "missing session",
			method:         http.MethodPost,
			body:           `{"request": {"nlu": {}}, "version": "1.0"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "session_id cannot be empty",
		},
		{
			name:           "unknown version",
			method:         http.MethodPost,
			body:           `{"session": {"session_id": "s"}, "version": "9.9"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  `unsupported protocol version "9.9"`,
		},
	}

	h := newWebhook(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/alice", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if rr.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", rr.Header().Get("Content-Type"))
			}

			var response ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if response.Error != tt.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tt.expectedError, response.Error)
			}
		})
	}
}

func TestWebhookHandler_Dialogue(t *testing.T) {
	h := newWebhook(nil)

	rr, resp := post(t, h, turnBody(t, 0, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(scenario.Welcome), resp.SessionState.Scenario)
	assert.NotEmpty(t, resp.Response.Text)
	assert.False(t, resp.Response.EndSession)
	assert.Equal(t, dialog.Version, resp.Version)

	state := map[string]any{"scenario": resp.SessionState.Scenario, "shown": resp.SessionState.Shown}
	_, resp = post(t, h, turnBody(t, 1, state, scenario.IntentConfirm))
	assert.Equal(t, string(scenario.ModeSelect), resp.SessionState.Scenario)
	assert.Len(t, resp.Response.Buttons, 6)

	state = map[string]any{"scenario": resp.SessionState.Scenario}
	_, resp = post(t, h, turnBody(t, 2, state, scenario.IntentStartReject))
	assert.Equal(t, string(scenario.Farewell), resp.SessionState.Scenario)
	assert.True(t, resp.EndSession)
	assert.True(t, resp.Response.EndSession)
}

func TestWebhookHandler_Metrics(t *testing.T) {
	h := newWebhook(nil)

	turns := metrics.TurnsTotal.WithLabelValues(string(scenario.Farewell), string(scenario.RouteExit))
	before := testutil.ToFloat64(turns)
	post(t, h, turnBody(t, 5, map[string]any{"scenario": "trivia"}, scenario.IntentStartReject))
	assert.Equal(t, before+1, testutil.ToFloat64(turns))

	bad := metrics.BadRequestsTotal.WithLabelValues("decode")
	before = testutil.ToFloat64(bad)
	post(t, h, []byte("{"))
	assert.Equal(t, before+1, testutil.ToFloat64(bad))
}

func TestWebhookHandler_ReplaysRetries(t *testing.T) {
	cache := services.NewMockCache()
	h := newWebhook(services.NewReplyCache(cache, time.Minute))

	hits := metrics.ReplyCacheTotal.WithLabelValues("hit")
	before := testutil.ToFloat64(hits)

	body := turnBody(t, 3, map[string]any{"scenario": "welcome"}, scenario.IntentConfirm)
	_, first := post(t, h, body)
	_, retry := post(t, h, body)

	if diff := cmp.Diff(first, retry); diff != "" {
		t.Errorf("retry got a different reply (-first +retry):\n%s", diff)
	}
	assert.Len(t, cache.SetCalls, 1, "a replayed reply is not stored again")
	assert.Equal(t, "reply:session-1:3", cache.SetCalls[0].Key)
	assert.Equal(t, before+1, testutil.ToFloat64(hits))

	// next message is answered afresh
	post(t, h, turnBody(t, 4, map[string]any{"scenario": "welcome"}, scenario.IntentConfirm))
	assert.Len(t, cache.SetCalls, 2)
}

func TestWebhookHandler_CacheFailureStillAnswers(t *testing.T) {
	cache := services.NewMockCache()
	cache.GetFunc = func(ctx context.Context, key string) (string, error) {
		return "", errors.New("connection refused")
	}
	cache.SetFunc = func(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
		return errors.New("connection refused")
	}
	h := newWebhook(services.NewReplyCache(cache, time.Minute))

	rr, resp := post(t, h, turnBody(t, 1, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(scenario.Welcome), resp.SessionState.Scenario)
}

func TestWebhookHandler_RequestID(t *testing.T) {
	h := middleware.Logger(newWebhook(nil))

	req := httptest.NewRequest(http.MethodPost, "/v1/alice", bytes.NewReader(turnBody(t, 1, nil)))
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get(middleware.RequestIDHeader))
}
