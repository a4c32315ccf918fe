package dialog

import (
	"encoding/json"

	"github.com/jwebster45206/mathbrain/pkg/session"
)

// Button is a quick-reply button shown under the reply.
type Button struct {
	Title   string `json:"title"`
	Payload any    `json:"payload,omitempty"`
	URL     string `json:"url,omitempty"`
	Hide    bool   `json:"hide"`
}

// NewButton returns a button that stays visible after the next utterance.
func NewButton(title string) Button {
	return Button{Title: title}
}

// Suggest returns a button that disappears after the next utterance.
func Suggest(title string) Button {
	return Button{Title: title, Hide: true}
}

// Link returns a button opening url.
func Link(title, url string) Button {
	return Button{Title: title, URL: url}
}

// Reply is what a scenario produces for one turn, before it is serialized.
type Reply struct {
	Scenario   string // id written into the state, set by the scenario that answered
	Text       string
	TTS        string // defaults to Text
	Card       json.RawMessage
	Buttons    []Button
	Directives json.RawMessage
	EndSession bool

	// State holds scenario specific fields; nil means none.
	State *session.State
}

// Response is the payload returned to the platform.
// https://yandex.ru/dev/dialogs/alice/doc/response.html
type Response struct {
	Response     ResponseBody  `json:"response"`
	SessionState session.State `json:"session_state"`
	EndSession   bool          `json:"end_session,omitempty"`
	Version      string        `json:"version"`
}

type ResponseBody struct {
	Text       string          `json:"text"`
	TTS        string          `json:"tts"`
	Card       json.RawMessage `json:"card,omitempty"`
	Buttons    []Button        `json:"buttons,omitempty"`
	Directives json.RawMessage `json:"directives,omitempty"`
	EndSession bool            `json:"end_session"`
}

// Render serializes a reply. The speech is framed by the skill's jingle markers and
// shown facts are carried over from the session when the scenario did not set them.
func Render(r Reply, facts *session.Facts) Response {
	var st session.State
	if r.State != nil {
		st = *r.State
	}
	st.Scenario = r.Scenario
	if st.Shown == nil {
		if facts != nil && len(facts.Shown) > 0 {
			st.Shown = facts.Shown
		} else {
			st.Shown = []int{session.NoneShown}
		}
	}

	tts := r.TTS
	if tts == "" {
		tts = r.Text
	}

	return Response{
		Response: ResponseBody{
			Text:       r.Text,
			TTS:        Sound(SoundOpening) + tts + Sound(SoundClosing),
			Card:       r.Card,
			Buttons:    r.Buttons,
			Directives: r.Directives,
			EndSession: r.EndSession,
		},
		SessionState: st,
		EndSession:   r.EndSession,
		Version:      Version,
	}
}
