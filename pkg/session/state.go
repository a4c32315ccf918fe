package session

// State is the session_state written back to the platform. Scenario and Shown are
// always present; the rest only when the scenario that produced the reply sets them.
type State struct {
	Scenario       string `json:"scenario"`
	Shown          []int  `json:"shown"`
	Points         *int   `json:"points,omitempty"`
	QuestionNumber *int   `json:"questionNumber,omitempty"`
	Answer         any    `json:"answer,omitempty"` // int, or []int for trigonometry
	AnswerDen      *int   `json:"answerDen,omitempty"`
	Asked          []int  `json:"asked,omitempty"`
}

// Int returns a pointer to n, for the optional counters of State.
func Int(n int) *int {
	return &n
}

// Progress is the state a quiz writes after posing a question.
func Progress(f *Facts, answer any) State {
	return State{
		Points:         Int(f.Points),
		QuestionNumber: Int(f.QuestionNumber),
		Answer:         answer,
	}
}
