package scenario

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/phrases"
	"github.com/jwebster45206/mathbrain/pkg/session"
)

// turn is a compact description of a test request.
type turn struct {
	state    map[string]json.RawMessage
	intents  map[string]dialog.Intent
	tokens   []string
	entities []int
}

func (tt turn) request() *dialog.Request {
	req := &dialog.Request{
		Version: dialog.Version,
		Session: dialog.Session{SessionID: "test-session", MessageID: 1},
	}
	req.State.Session = tt.state
	req.Request.Type = dialog.TypeSimpleUtterance
	req.Request.NLU = dialog.NLU{Tokens: tt.tokens, Intents: tt.intents}
	for i, n := range tt.entities {
		req.Request.NLU.Entities = append(req.Request.NLU.Entities, dialog.Entity{
			Type:   "YANDEX.NUMBER",
			Tokens: dialog.Span{Start: i, End: i + 1},
			Value:  json.RawMessage(mustJSON(n)),
		})
	}
	return req
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// stateOf builds a persisted state blob from plain values.
func stateOf(kv map[string]any) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(kv))
	for k, v := range kv {
		out[k] = mustJSON(v)
	}
	return out
}

// carry round-trips the state written by a response, the way the platform does.
func carry(t *testing.T, st session.State) map[string]json.RawMessage {
	t.Helper()
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(mustJSON(st), &out))
	return out
}

func intents(names ...string) map[string]dialog.Intent {
	out := make(map[string]dialog.Intent, len(names))
	for _, n := range names {
		out[n] = dialog.Intent{Slots: map[string]dialog.Slot{}}
	}
	return out
}

func slotIntent(intent, slot string, value any, start int) map[string]dialog.Intent {
	return map[string]dialog.Intent{
		intent: {Slots: map[string]dialog.Slot{
			slot: {
				Type:   "YANDEX.NUMBER",
				Tokens: &dialog.Span{Start: start, End: start + 1},
				Value:  json.RawMessage(mustJSON(value)),
			},
		}},
	}
}

func newEngine() *Engine {
	return NewEngine(NewRegistry(), DefaultOptions())
}

func input(facts *session.Facts, tt turn) *Input {
	return &Input{
		Turn:  dialog.NewTurn(tt.request()),
		Facts: facts,
		Pick:  phrases.Seeded(1),
		Opts:  DefaultOptions(),
	}
}
