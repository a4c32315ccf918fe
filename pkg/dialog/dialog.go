package dialog

import (
	"encoding/json"
	"fmt"
)

// Version of the webhook protocol spoken by the platform.
const Version = "1.0"

const TypeSimpleUtterance = "SimpleUtterance"

// Request is one turn sent by the voice platform.
// https://yandex.ru/dev/dialogs/alice/doc/request.html
type Request struct {
	Meta    Meta        `json:"meta"`
	Request UserRequest `json:"request"`
	Session Session     `json:"session"`
	State   State       `json:"state"`
	Version string      `json:"version"`
}

type Meta struct {
	Locale     string                     `json:"locale,omitempty"`
	Timezone   string                     `json:"timezone,omitempty"`
	ClientID   string                     `json:"client_id,omitempty"`
	Interfaces map[string]json.RawMessage `json:"interfaces,omitempty"`
}

// UserRequest is the utterance itself together with what the recognizer made of it.
type UserRequest struct {
	Command           string          `json:"command"`
	OriginalUtterance string          `json:"original_utterance"`
	Type              string          `json:"type"`
	NLU               NLU             `json:"nlu"`
	Payload           json.RawMessage `json:"payload,omitempty"` // set when a button with payload was pressed
}

type NLU struct {
	Tokens   []string          `json:"tokens"`
	Entities []Entity          `json:"entities"`
	Intents  map[string]Intent `json:"intents"`
}

// Intent is a recognized user goal; slots are keyed by name.
type Intent struct {
	Slots map[string]Slot `json:"slots"`
}

type Slot struct {
	Type   string          `json:"type,omitempty"`
	Tokens *Span           `json:"tokens,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`
}

// Span is a half-open [Start, End) range of token indexes.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type Entity struct {
	Type   string          `json:"type"`
	Tokens Span            `json:"tokens"`
	Value  json.RawMessage `json:"value"`
}

type Session struct {
	MessageID int    `json:"message_id"`
	SessionID string `json:"session_id"`
	SkillID   string `json:"skill_id"`
	UserID    string `json:"user_id,omitempty"`
	New       bool   `json:"new"`
}

// State holds the blobs persisted by the platform between turns.
type State struct {
	Session     map[string]json.RawMessage `json:"session,omitempty"`
	User        map[string]json.RawMessage `json:"user,omitempty"`
	Application map[string]json.RawMessage `json:"application,omitempty"`
}

// Validate checks the parts of a request the skill cannot work without.
func (r *Request) Validate() error {
	if r.Version != "" && r.Version != Version {
		return fmt.Errorf("unsupported protocol version %q", r.Version)
	}
	if r.Session.SessionID == "" {
		return fmt.Errorf("session_id cannot be empty")
	}
	return nil
}
