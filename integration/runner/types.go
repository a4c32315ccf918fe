package runner

import (
	"encoding/json"
	"time"
)

// Special utterance values that trigger non-dialogue actions
const (
	ResetSessionPrompt = "RESET_SESSION"
)

// TestSuite defines a complete integration test dialogue
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name      string                     `json:"name"`
	SeedState map[string]json.RawMessage `json:"seed_state,omitempty"` // session state sent with the first step
	Steps     []TestStep                 `json:"steps,omitempty"`      // Used for regular tests
	Cases     []string                   `json:"cases,omitempty"`      // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep defines a single turn and its expected outcomes. The recognizer output
// is scripted directly: intents, tokens and numeric entities.
// Use utterance: "RESET_SESSION" to go back to the seed state
type TestStep struct {
	Name      string           `json:"name,omitempty"`
	Utterance string           `json:"utterance,omitempty"`
	Intents   []string         `json:"intents,omitempty"`
	Slots     []SlotValue      `json:"slots,omitempty"`
	Tokens    []string         `json:"tokens,omitempty"`
	Entities  []int            `json:"entities,omitempty"` // YANDEX.NUMBER values, one token each
	Answer    *AnswerFromState `json:"answer_from_state,omitempty"`

	Expectations Expectations `json:"expect"`
}

// SlotValue fills one slot of a scripted intent.
type SlotValue struct {
	Intent string          `json:"intent"`
	Slot   string          `json:"slot"`
	Value  json.RawMessage `json:"value"`
	Start  int             `json:"start,omitempty"`
}

// AnswerFromState answers the pending quiz question using the answer stored in
// the session state. A non-zero Offset is added to the numerator to script a
// wrong answer.
type AnswerFromState struct {
	Offset int `json:"offset,omitempty"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	// Session state
	Scenario       *string `json:"scenario,omitempty"`
	Points         *int    `json:"points,omitempty"`
	QuestionNumber *int    `json:"question_number,omitempty"`
	EndSession     *bool   `json:"end_session,omitempty"`

	// Response Analysis
	ResponseContains    []string `json:"response_contains,omitempty"`
	ResponseNotContains []string `json:"response_not_contains,omitempty"`
	ResponseRegex       string   `json:"response_regex,omitempty"`
	ResponseMinLength   *int     `json:"response_min_length,omitempty"`
	ButtonsContain      []string `json:"buttons_contain,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName     string
	StepName     string
	Success      bool
	Error        error
	Duration     time.Duration
	ResponseText string
	Scenario     string // scenario the reply moved to
	Points       *int
	IsReset      bool // True if this was a RESET_SESSION step (should not count toward pass/fail metrics)
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job       TestJob
	Results   []TestResult
	Error     error
	Duration  time.Duration
	SessionID string // session used for this test
}

// Path lists the scenarios a dialogue moved through, one per answered step.
func (r TestRunResult) Path() []string {
	var path []string
	for _, step := range r.Results {
		if step.IsReset {
			path = append(path, ResetSessionPrompt)
			continue
		}
		if step.Scenario != "" {
			path = append(path, step.Scenario)
		}
	}
	return path
}

// FinalPoints returns the last score the dialogue reported, if any.
func (r TestRunResult) FinalPoints() (int, bool) {
	for i := len(r.Results) - 1; i >= 0; i-- {
		if p := r.Results[i].Points; p != nil {
			return *p, true
		}
	}
	return 0, false
}
