package session

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
)

// Keys of the session state blob round-tripped by the platform.
const (
	KeyScenario       = "scenario"
	KeyShown          = "shown"
	KeyPoints         = "points"
	KeyQuestionNumber = "questionNumber"
	KeyAnswer         = "answer"
	KeyAnswerDen      = "answerDen"
	KeyAsked          = "asked"
)

const (
	// DefaultAnswer is the expected answer of a session that has not been asked anything.
	// No generated problem produces it.
	DefaultAnswer = 2001

	// NoneShown marks an empty set of shown trivia facts.
	NoneShown = -1

	// HelpUsed is written into points when help is requested in the middle of a quiz.
	HelpUsed = -1
)

// Facts is the per-turn view of the session, rebuilt from the state blob on every call.
// Defaults are applied once in Load; scenario code never looks at the raw blob.
type Facts struct {
	Scenario          string // active scenario id, empty for a fresh session
	Points            int    // correct answers in the current quiz run
	QuestionNumber    int    // questions answered in the current quiz run
	AnswerNumerator   int    // expected answer (numerator for fractions)
	AnswerDenominator int    // always >= 1
	AnswerSet         []int  // accepted angles for trigonometry questions
	Asked             []int  // trigonometry table rows already used in this run
	Shown             []int  // trivia facts already shown

	// LastAnswerCorrect is computed while handling the current turn; never persisted.
	LastAnswerCorrect bool

	hasAnswer bool
}

// New returns the facts of a brand new session.
func New() *Facts {
	return &Facts{
		AnswerNumerator:   DefaultAnswer,
		AnswerDenominator: 1,
		Shown:             []int{NoneShown},
	}
}

// Load builds Facts from the session part of the persisted state. Missing or
// malformed fields fall back to their defaults.
func Load(raw map[string]json.RawMessage) *Facts {
	f := New()
	if len(raw) == 0 {
		return f
	}

	if v, ok := raw[KeyScenario]; ok {
		var s string
		if json.Unmarshal(v, &s) == nil {
			f.Scenario = s
		}
	}
	if n, ok := decodeInt(raw[KeyPoints]); ok {
		f.Points = n
	}
	if n, ok := decodeInt(raw[KeyQuestionNumber]); ok && n >= 0 {
		f.QuestionNumber = n
	}
	if v, ok := raw[KeyAnswer]; ok && !isNull(v) {
		f.hasAnswer = true
		if n, ok := decodeInt(v); ok {
			f.AnswerNumerator = n
		} else if set, ok := decodeInts(v); ok {
			f.AnswerSet = set
		}
	}
	if n, ok := decodeInt(raw[KeyAnswerDen]); ok && n >= 1 {
		f.AnswerDenominator = n
	}
	if set, ok := decodeInts(raw[KeyAsked]); ok {
		f.Asked = set
	}
	if set, ok := decodeInts(raw[KeyShown]); ok && len(set) > 0 {
		f.Shown = set
	}
	return f
}

// HasAnswer reports whether the persisted state carried an expected answer,
// i.e. a quiz question is waiting for a reply.
func (f *Facts) HasAnswer() bool {
	return f.hasAnswer
}

// HelpWasUsed reports whether the previous turn showed quiz help.
func (f *Facts) HelpWasUsed() bool {
	return f.Points == HelpUsed
}

// ResetQuiz clears the counters of a quiz run.
func (f *Facts) ResetQuiz() {
	f.Points = 0
	f.QuestionNumber = 0
	f.Asked = nil
	f.LastAnswerCorrect = false
}

// WasAsked reports whether a trigonometry table row was already used.
func (f *Facts) WasAsked(id int) bool {
	return slices.Contains(f.Asked, id)
}

// WasShown reports whether a trivia fact was already shown.
func (f *Facts) WasShown(id int) bool {
	return slices.Contains(f.Shown, id)
}

// AnswerText renders the expected answer the way it is disclosed to the user.
func (f *Facts) AnswerText() string {
	if len(f.AnswerSet) > 0 {
		return strconv.Itoa(f.AnswerSet[0])
	}
	if f.AnswerDenominator != 1 {
		return strconv.Itoa(f.AnswerNumerator) + "/" + strconv.Itoa(f.AnswerDenominator)
	}
	return strconv.Itoa(f.AnswerNumerator)
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || string(v) == "null"
}

func decodeInt(v json.RawMessage) (int, bool) {
	if isNull(v) {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, false
	}
	if n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

func decodeInts(v json.RawMessage) ([]int, bool) {
	if isNull(v) {
		return nil, false
	}
	var ns []float64
	if err := json.Unmarshal(v, &ns); err != nil {
		return nil, false
	}
	out := make([]int, 0, len(ns))
	for _, n := range ns {
		if n != math.Trunc(n) {
			return nil, false
		}
		out = append(out, int(n))
	}
	return out, true
}
