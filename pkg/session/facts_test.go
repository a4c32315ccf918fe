package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func raw(t *testing.T, src string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

func TestLoad_Defaults(t *testing.T) {
	for _, src := range []string{`{}`, `null`} {
		f := Load(raw(t, src))
		assert.Equal(t, "", f.Scenario)
		assert.Equal(t, 0, f.Points)
		assert.Equal(t, 0, f.QuestionNumber)
		assert.Equal(t, DefaultAnswer, f.AnswerNumerator)
		assert.Equal(t, 1, f.AnswerDenominator)
		assert.Equal(t, []int{NoneShown}, f.Shown)
		assert.Empty(t, f.Asked)
		assert.False(t, f.HasAnswer())
		assert.False(t, f.LastAnswerCorrect)
	}
}

func TestLoad_Fields(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, f *Facts)
	}{
		{
			name: "integer quiz",
			src:  `{"scenario":"addition_subtraction","points":3,"questionNumber":5,"answer":-42,"shown":[2,4]}`,
			check: func(t *testing.T, f *Facts) {
				assert.Equal(t, "addition_subtraction", f.Scenario)
				assert.Equal(t, 3, f.Points)
				assert.Equal(t, 5, f.QuestionNumber)
				assert.Equal(t, -42, f.AnswerNumerator)
				assert.True(t, f.HasAnswer())
				assert.Equal(t, []int{2, 4}, f.Shown)
				assert.Equal(t, "-42", f.AnswerText())
			},
		},
		{
			name: "fraction",
			src:  `{"answer":3,"answerDen":4}`,
			check: func(t *testing.T, f *Facts) {
				assert.Equal(t, 3, f.AnswerNumerator)
				assert.Equal(t, 4, f.AnswerDenominator)
				assert.Equal(t, "3/4", f.AnswerText())
			},
		},
		{
			name: "trigonometry answer set",
			src:  `{"answer":[30,150],"asked":[3,7]}`,
			check: func(t *testing.T, f *Facts) {
				assert.Equal(t, []int{30, 150}, f.AnswerSet)
				assert.Equal(t, DefaultAnswer, f.AnswerNumerator)
				assert.True(t, f.WasAsked(7))
				assert.False(t, f.WasAsked(8))
				assert.Equal(t, "30", f.AnswerText())
			},
		},
		{
			name: "help sentinel",
			src:  `{"points":-1}`,
			check: func(t *testing.T, f *Facts) {
				assert.True(t, f.HelpWasUsed())
				assert.False(t, f.HasAnswer())
			},
		},
		{
			name: "malformed values fall back",
			src:  `{"scenario":7,"points":"x","questionNumber":-3,"answer":1.5,"answerDen":0,"shown":[],"asked":"no"}`,
			check: func(t *testing.T, f *Facts) {
				assert.Equal(t, "", f.Scenario)
				assert.Equal(t, 0, f.Points)
				assert.Equal(t, 0, f.QuestionNumber)
				assert.Equal(t, DefaultAnswer, f.AnswerNumerator)
				assert.Equal(t, 1, f.AnswerDenominator)
				assert.Equal(t, []int{NoneShown}, f.Shown)
				assert.Nil(t, f.Asked)
			},
		},
		{
			name: "null answer is absent",
			src:  `{"answer":null}`,
			check: func(t *testing.T, f *Facts) {
				assert.False(t, f.HasAnswer())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Load(raw(t, tt.src)))
		})
	}
}

func TestFacts_ResetQuiz(t *testing.T) {
	f := Load(raw(t, `{"points":7,"questionNumber":9,"asked":[1,2],"shown":[5]}`))
	f.LastAnswerCorrect = true
	f.ResetQuiz()

	assert.Equal(t, 0, f.Points)
	assert.Equal(t, 0, f.QuestionNumber)
	assert.Nil(t, f.Asked)
	assert.False(t, f.LastAnswerCorrect)
	assert.Equal(t, []int{5}, f.Shown, "shown facts survive a quiz reset")
}

func TestFacts_WasShown(t *testing.T) {
	f := Load(raw(t, `{"shown":[-1,4,11]}`))
	assert.True(t, f.WasShown(4))
	assert.True(t, f.WasShown(11))
	assert.False(t, f.WasShown(0))

	assert.False(t, New().WasShown(0))
}

func TestState_JSON(t *testing.T) {
	st := State{Scenario: "fractions", Shown: []int{NoneShown}, Points: Int(0), QuestionNumber: Int(2), Answer: 5, AnswerDen: Int(6)}
	data, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	assert.JSONEq(t, `{"scenario":"fractions","shown":[-1],"points":0,"questionNumber":2,"answer":5,"answerDen":6}`, string(data))

	minimal, _ := json.Marshal(State{Scenario: "welcome", Shown: []int{1}})
	assert.JSONEq(t, `{"scenario":"welcome","shown":[1]}`, string(minimal))
}
