package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

const (
	answerIntent = "answer"
	answerSlot   = "Answer"
	numberEntity = "YANDEX.NUMBER"
)

// Runner executes scripted dialogues against a running skill API
type Runner struct {
	BaseURL           string
	WebhookPath       string
	Client            *http.Client
	Timeout           time.Duration
	Logger            func(format string, args ...interface{})
	ErrorHandlingMode ErrorHandlingMode
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:           strings.TrimSuffix(baseURL, "/"),
		WebhookPath:       "/v1/alice",
		Client:            &http.Client{Timeout: 10 * time.Second},
		Timeout:           10 * time.Second,
		Logger:            func(string, ...interface{}) {},
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// RunSuite executes a complete test suite in a fresh session
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results:   make([]TestResult, 0, len(suite.Steps)),
		SessionID: uuid.NewString(),
	}

	state := maps.Clone(suite.SeedState)
	messageID := 0

	for i, step := range suite.Steps {
		r.Logger("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)

		var stepResult TestResult
		if step.Utterance == ResetSessionPrompt {
			state = maps.Clone(suite.SeedState)
			stepResult = TestResult{StepName: step.Name, Success: true, IsReset: true, ResponseText: "[SESSION RESET]"}
		} else {
			var next map[string]json.RawMessage
			stepResult, next = r.executeStep(ctx, result.SessionID, messageID, step, state)
			messageID++
			if next != nil {
				state = next
			}
		}
		stepResult.TestName = suite.Name
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.Logger("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), step.Name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, step.Name, stepResult.Error)
			}
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}

		r.Logger("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), step.Name, stepResult.Duration)
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

// executeStep sends one turn and checks expectations. It returns the state the
// skill asked to carry into the next turn, or nil when the turn failed.
func (r *Runner) executeStep(ctx context.Context, sessionID string, messageID int, step TestStep, state map[string]json.RawMessage) (TestResult, map[string]json.RawMessage) {
	start := time.Now()
	result := TestResult{
		StepName: step.Name,
	}

	turn, err := buildRequest(sessionID, messageID, step, state)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		return result, nil
	}

	stepCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	resp, err := PostTurn(stepCtx, r.Client, r.BaseURL+r.WebhookPath, turn)
	if err != nil {
		result.Error = fmt.Errorf("failed to post turn: %w", err)
		result.Duration = time.Since(start)
		return result, nil
	}
	result.ResponseText = resp.Response.Text
	result.Scenario = resp.SessionState.Scenario
	result.Points = resp.SessionState.Points

	next, err := carry(resp)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		return result, nil
	}

	if err := checkExpectations(step.Expectations, resp); err != nil {
		result.Error = fmt.Errorf("expectation failed: %w", err)
		result.Duration = time.Since(start)
		return result, next
	}

	result.Success = true
	result.Duration = time.Since(start)
	return result, next
}

// buildRequest turns a scripted step into the request the platform would send
func buildRequest(sessionID string, messageID int, step TestStep, state map[string]json.RawMessage) (*dialog.Request, error) {
	nlu := dialog.NLU{
		Tokens:   append([]string{}, step.Tokens...),
		Entities: []dialog.Entity{},
		Intents:  map[string]dialog.Intent{},
	}
	for _, name := range step.Intents {
		nlu.Intents[name] = dialog.Intent{}
	}
	for _, s := range step.Slots {
		intent := nlu.Intents[s.Intent]
		if intent.Slots == nil {
			intent.Slots = map[string]dialog.Slot{}
		}
		intent.Slots[s.Slot] = dialog.Slot{
			Type:   numberEntity,
			Tokens: &dialog.Span{Start: s.Start, End: s.Start + 1},
			Value:  s.Value,
		}
		nlu.Intents[s.Intent] = intent
	}
	for _, n := range step.Entities {
		nlu.Entities = append(nlu.Entities, numberAt(len(nlu.Tokens), n))
		nlu.Tokens = append(nlu.Tokens, strconv.Itoa(n))
	}

	if step.Answer != nil {
		num, den, err := pendingAnswer(state)
		if err != nil {
			return nil, err
		}
		num += step.Answer.Offset

		at := len(nlu.Tokens)
		nlu.Tokens = append(nlu.Tokens, strconv.Itoa(num))
		if den != 0 {
			nlu.Tokens = append(nlu.Tokens, strconv.Itoa(den))
		}
		e := numberAt(at, num)
		nlu.Entities = append(nlu.Entities, e)
		nlu.Intents[answerIntent] = dialog.Intent{Slots: map[string]dialog.Slot{
			answerSlot: {Type: e.Type, Tokens: &dialog.Span{Start: at, End: at + 1}, Value: e.Value},
		}}
	}

	return &dialog.Request{
		Meta: dialog.Meta{Locale: "ru-RU", Timezone: "UTC", ClientID: "mathbrain/integration"},
		Request: dialog.UserRequest{
			Command:           step.Utterance,
			OriginalUtterance: step.Utterance,
			Type:              dialog.TypeSimpleUtterance,
			NLU:               nlu,
		},
		Session: dialog.Session{
			MessageID: messageID,
			SessionID: sessionID,
			SkillID:   "integration",
			New:       messageID == 0,
		},
		State:   dialog.State{Session: state},
		Version: dialog.Version,
	}, nil
}

func numberAt(token, n int) dialog.Entity {
	return dialog.Entity{
		Type:   numberEntity,
		Tokens: dialog.Span{Start: token, End: token + 1},
		Value:  json.RawMessage(strconv.Itoa(n)),
	}
}

// pendingAnswer reads the answer of the question in flight. Trigonometry stores
// every accepted angle; the first one is used.
func pendingAnswer(state map[string]json.RawMessage) (num, den int, err error) {
	raw, ok := state["answer"]
	if !ok {
		return 0, 0, fmt.Errorf("answer_from_state: no answer in session state")
	}
	if err := json.Unmarshal(raw, &num); err != nil {
		var angles []int
		if err := json.Unmarshal(raw, &angles); err != nil || len(angles) == 0 {
			return 0, 0, fmt.Errorf("answer_from_state: unreadable answer %s", string(raw))
		}
		num = angles[0]
	}
	if rawDen, ok := state["answerDen"]; ok {
		if err := json.Unmarshal(rawDen, &den); err != nil {
			return 0, 0, fmt.Errorf("answer_from_state: unreadable answerDen %s", string(rawDen))
		}
	}
	return num, den, nil
}

// carry converts a reply's session_state into the blob sent with the next turn
func carry(resp *dialog.Response) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(resp.SessionState)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session state: %w", err)
	}
	var next map[string]json.RawMessage
	if err := json.Unmarshal(data, &next); err != nil {
		return nil, fmt.Errorf("failed to read session state: %w", err)
	}
	return next, nil
}

// checkExpectations validates the test expectations against the reply
func checkExpectations(exp Expectations, resp *dialog.Response) error {
	st := resp.SessionState
	responseText := resp.Response.Text

	if exp.Scenario != nil && st.Scenario != *exp.Scenario {
		return fmt.Errorf("expected scenario %s, got %s", *exp.Scenario, st.Scenario)
	}

	if exp.Points != nil {
		if st.Points == nil {
			return fmt.Errorf("expected points to be %d, but the state has none", *exp.Points)
		}
		if *st.Points != *exp.Points {
			return fmt.Errorf("expected points to be %d, got %d", *exp.Points, *st.Points)
		}
	}

	if exp.QuestionNumber != nil {
		if st.QuestionNumber == nil {
			return fmt.Errorf("expected question_number to be %d, but the state has none", *exp.QuestionNumber)
		}
		if *st.QuestionNumber != *exp.QuestionNumber {
			return fmt.Errorf("expected question_number to be %d, got %d", *exp.QuestionNumber, *st.QuestionNumber)
		}
	}

	if exp.EndSession != nil && resp.EndSession != *exp.EndSession {
		return fmt.Errorf("expected end_session to be %t, got %t", *exp.EndSession, resp.EndSession)
	}

	// Response content checks
	lowerResponse := strings.ToLower(responseText)
	for _, expectedText := range exp.ResponseContains {
		if !strings.Contains(lowerResponse, strings.ToLower(expectedText)) {
			return fmt.Errorf("expected response to contain '%s', but it didn't: %s", expectedText, responseText)
		}
	}
	for _, unexpectedText := range exp.ResponseNotContains {
		if strings.Contains(lowerResponse, strings.ToLower(unexpectedText)) {
			return fmt.Errorf("expected response to NOT contain '%s', but it did", unexpectedText)
		}
	}

	if exp.ResponseRegex != "" {
		matched, err := regexp.MatchString(exp.ResponseRegex, responseText)
		if err != nil {
			return fmt.Errorf("invalid regex pattern: %w", err)
		}
		if !matched {
			return fmt.Errorf("response didn't match regex pattern %s: %s", exp.ResponseRegex, responseText)
		}
	}

	if exp.ResponseMinLength != nil && len([]rune(responseText)) < *exp.ResponseMinLength {
		return fmt.Errorf("expected response length >= %d, got %d", *exp.ResponseMinLength, len([]rune(responseText)))
	}

	for _, title := range exp.ButtonsContain {
		found := false
		for _, b := range resp.Response.Buttons {
			if strings.EqualFold(b.Title, title) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("expected a button titled '%s'", title)
		}
	}

	return nil
}
