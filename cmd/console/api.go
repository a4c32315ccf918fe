package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

// newRequest builds the webhook call for one typed utterance.
func newRequest(sessionID string, messageID int, text string, state map[string]json.RawMessage) *dialog.Request {
	return &dialog.Request{
		Meta: dialog.Meta{Locale: "ru-RU", Timezone: "UTC", ClientID: "mathbrain/console"},
		Request: dialog.UserRequest{
			Command:           text,
			OriginalUtterance: text,
			Type:              dialog.TypeSimpleUtterance,
			NLU:               tag(text),
		},
		Session: dialog.Session{
			MessageID: messageID,
			SessionID: sessionID,
			SkillID:   "console",
			New:       messageID == 0,
		},
		State:   dialog.State{Session: state},
		Version: dialog.Version,
	}
}

// sendTurn posts one request to the skill webhook.
func sendTurn(client *http.Client, url string, req *dialog.Request) (*dialog.Response, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("turn failed: %s", errorResp.Error)
	}

	var out dialog.Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &out, nil
}

// stateOf converts a reply's session_state into the blob sent back next turn.
func stateOf(resp *dialog.Response) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(resp.SessionState)
	if err != nil {
		return nil, err
	}
	var state map[string]json.RawMessage
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return state, nil
}
