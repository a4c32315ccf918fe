package dialog

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Turn is a read-only view over the recognized part of a request.
type Turn struct {
	nlu NLU
}

// NewTurn wraps the recognizer output of a request.
func NewTurn(req *Request) Turn {
	if req == nil {
		return Turn{}
	}
	return Turn{nlu: req.Request.NLU}
}

// TurnOf builds a Turn directly from recognizer output.
func TurnOf(nlu NLU) Turn {
	return Turn{nlu: nlu}
}

// HasIntent reports whether any of the named intents was recognized.
func (t Turn) HasIntent(names ...string) bool {
	for _, name := range names {
		if _, ok := t.nlu.Intents[name]; ok {
			return true
		}
	}
	return false
}

// Slot returns a slot of a recognized intent.
func (t Turn) Slot(intent, slot string) (Slot, bool) {
	in, ok := t.nlu.Intents[intent]
	if !ok {
		return Slot{}, false
	}
	s, ok := in.Slots[slot]
	return s, ok
}

// SlotNumber returns the integer value of a slot. Non-integer or missing values report false.
func (t Turn) SlotNumber(intent, slot string) (int, bool) {
	s, ok := t.Slot(intent, slot)
	if !ok {
		return 0, false
	}
	return s.Number()
}

// SlotStart returns the index of the first token the slot was recognized from.
func (t Turn) SlotStart(intent, slot string) (int, bool) {
	s, ok := t.Slot(intent, slot)
	if !ok || s.Tokens == nil {
		return 0, false
	}
	return s.Tokens.Start, true
}

// Tokens returns the utterance tokens.
func (t Turn) Tokens() []string {
	return t.nlu.Tokens
}

// Token returns the token at index i.
func (t Turn) Token(i int) (string, bool) {
	if i < 0 || i >= len(t.nlu.Tokens) {
		return "", false
	}
	return t.nlu.Tokens[i], true
}

// HasToken reports whether the utterance contains the literal token (case-insensitive).
func (t Turn) HasToken(token string) bool {
	if token == "" {
		return false
	}
	return slices.ContainsFunc(t.nlu.Tokens, func(s string) bool {
		return strings.EqualFold(s, token)
	})
}

// Numbers returns the integer values of all numeric entities in utterance order.
func (t Turn) Numbers() []int {
	var out []int
	for _, e := range t.nlu.Entities {
		if n, ok := e.Number(); ok {
			out = append(out, n)
		}
	}
	return out
}

// Number returns the slot value as an integer.
func (s Slot) Number() (int, bool) {
	return rawInt(s.Value)
}

// String returns the slot value as a string.
func (s Slot) String() (string, bool) {
	var v string
	if err := json.Unmarshal(s.Value, &v); err != nil {
		return "", false
	}
	return v, true
}

// Number returns the entity value as an integer.
func (e Entity) Number() (int, bool) {
	return rawInt(e.Value)
}

func rawInt(v json.RawMessage) (int, bool) {
	if len(v) == 0 || string(v) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// ParseInt reads a bare numeric token such as "42" or "-7".
func ParseInt(token string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, false
	}
	return n, true
}
