package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/phrases"
	"github.com/jwebster45206/mathbrain/pkg/session"
)

func TestModeSelect_Choice(t *testing.T) {
	tests := []struct {
		name     string
		in       turn
		wantKind ResultKind
		wantNext ID
	}{
		{"topic intent", turn{intents: intents("fractions")}, KindTransition, Fractions},
		{"option slot", turn{intents: slotIntent(IntentSelectVariant, SlotVariant, 6, 0)}, KindTransition, Trigonometry},
		{"option slot out of range", turn{intents: slotIntent(IntentSelectVariant, SlotVariant, 9, 0), entities: []int{9}}, KindUnresolved, ""},
		{"bare number", turn{entities: []int{2}}, KindTransition, MultiplicationDivision},
		{"first number in range wins", turn{entities: []int{8, 5, 1}}, KindTransition, SquareRoot},
		{"topic intent beats number", turn{intents: intents("exponentiation"), entities: []int{1}}, KindTransition, Exponentiation},
		{"slot beats number", turn{intents: slotIntent(IntentSelectVariant, SlotVariant, 1, 0), entities: []int{4}}, KindTransition, AdditionSubtraction},
		{"repeat option out of range", turn{intents: slotIntent(IntentRepeatVariant, SlotVariant, 7, 0)}, KindTransition, ModeSelect},
		{"nothing", turn{tokens: []string{"не", "знаю"}}, KindUnresolved, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := session.New()
			f.Points, f.QuestionNumber = 7, 10
			res := modeSelect{}.HandleLocalIntents(input(f, tt.in))
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Equal(t, tt.wantNext, res.Next)
			if tt.wantKind == KindTransition && tt.wantNext != ModeSelect {
				assert.Zero(t, f.Points)
				assert.Zero(t, f.QuestionNumber)
			}
		})
	}
}

func TestModeSelect_RepeatOption(t *testing.T) {
	res := modeSelect{}.HandleLocalIntents(input(session.New(), turn{intents: slotIntent(IntentRepeatVariant, SlotVariant, 3, 0)}))
	require.Equal(t, KindPayload, res.Kind)
	assert.Equal(t, "3) операции с дробями. Назовите номер, выбранного задания.", res.Reply.Text)
	assert.Contains(t, res.Reply.TTS, "третье")
	assert.Len(t, res.Reply.Buttons, 6)

	out := newEngine().Handle(turn{
		state:   stateOf(map[string]any{"scenario": ModeSelect}),
		intents: slotIntent(IntentRepeatVariant, SlotVariant, 3, 0),
	}.request(), phrases.Seeded(1))
	assert.Equal(t, RoutePayload, out.Route)
	assert.Equal(t, ModeSelect, out.Scenario)
}

func TestModeSelect_Reply(t *testing.T) {
	r := modeSelect{}.Reply(input(session.New(), turn{}))
	require.Len(t, r.Buttons, 6)
	for _, b := range r.Buttons {
		assert.False(t, b.Hide)
	}
	assert.Contains(t, r.TTS, dialog.Pause)
	assert.Contains(t, r.TTS, "шестое")
	assert.NotContains(t, r.Text, dialog.Pause)
}

func TestWelcome_LocalIntents(t *testing.T) {
	tests := []struct {
		intent string
		want   Result
	}{
		{IntentStartConfirm, Next(ModeSelect)},
		{IntentConfirm, Next(ModeSelect)},
		{IntentReject, Next(Farewell)},
		{IntentCapabilities, Next(Capabilities)},
		{IntentFacts, Unresolved()},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, welcome{}.HandleLocalIntents(input(session.New(), turn{intents: intents(tt.intent)})), tt.intent)
	}
}

func TestWelcome_UsesSkillName(t *testing.T) {
	in := input(session.New(), turn{})
	in.Opts.SkillName = "Счётчик"
	for i := range 10 {
		in.Pick = phrases.Seeded(uint64(i))
		r := welcome{}.Help(in)
		assert.Contains(t, r.Text, `"Счётчик"`)
		assert.Equal(t, "Повторить", r.Buttons[len(r.Buttons)-1].Title)
	}
}

func TestCapabilities(t *testing.T) {
	in := input(session.New(), turn{})
	r := capabilities{}.Reply(in)
	assert.Contains(t, r.Text, "Начнём?")
	assert.Len(t, r.Buttons, 1)

	assert.Equal(t, Next(ModeSelect), capabilities{}.HandleLocalIntents(input(session.New(), turn{intents: intents(IntentBack)})))
	assert.Equal(t, Next(Farewell), capabilities{}.HandleLocalIntents(input(session.New(), turn{intents: intents(IntentReject)})))
}

func TestGrade(t *testing.T) {
	want := map[int]int{0: 2, 3: 2, 4: 3, 5: 3, 6: 4, 8: 4, 9: 5, 10: 5}
	for points, grade := range want {
		assert.Equal(t, grade, Grade(points), "points %d", points)
	}
}

func TestResults(t *testing.T) {
	f := session.New()
	f.Points, f.QuestionNumber = 1, 10
	r := results{id: PartialScore}.Reply(input(f, turn{}))
	assert.Contains(t, r.Text, `1 вопрос из 10, твоя оценка "2"`)
	assert.Len(t, r.Buttons, 3)
	assert.Equal(t, 1, *r.State.Points)

	r = results{id: AllCorrect}.Reply(input(f, turn{}))
	assert.Contains(t, r.TTS, "dialogs-upload")

	tests := []struct {
		name string
		in   turn
		want Result
	}{
		{"confirm", turn{intents: intents(IntentConfirm)}, Next(ModeSelect)},
		{"confirmation word", turn{tokens: []string{"давай", "повторим"}}, Next(ModeSelect)},
		{"reject", turn{intents: intents(IntentStartReject)}, Next(Farewell)},
		{"facts", turn{intents: intents(IntentFacts)}, Next(Trivia)},
		{"other", turn{tokens: []string{"что"}}, Unresolved()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, results{id: AllCorrect}.HandleLocalIntents(input(session.New(), tt.in)))
		})
	}
}

func TestTrivia_CyclesThroughFacts(t *testing.T) {
	all := phrases.Facts()
	f := session.New()
	seen := map[int]bool{}
	for i := range all {
		in := input(f, turn{})
		in.Pick = phrases.Seeded(uint64(i))
		r := trivia{}.Reply(in)
		require.NotNil(t, r.State)
		shown := r.State.Shown
		require.Len(t, shown, i+1)
		last := shown[len(shown)-1]
		require.False(t, seen[last], "fact %d told twice", last)
		seen[last] = true

		link := r.Buttons[len(r.Buttons)-1]
		assert.Equal(t, "ИСТОЧНИК", link.Title)
		assert.Equal(t, all[last].Source, link.URL)
		f.Shown = shown
	}

	r := trivia{}.Reply(input(f, turn{}))
	assert.Len(t, r.State.Shown, 1, "shown list starts over once every fact was told")
}

func TestTrivia_SkipsShownFacts(t *testing.T) {
	all := phrases.Facts()
	f := session.New()
	f.Shown = []int{session.NoneShown}
	for id := range all {
		if id != 7 {
			f.Shown = append(f.Shown, id)
		}
	}
	for seed := range 5 {
		in := input(f, turn{})
		in.Pick = phrases.Seeded(uint64(seed))
		r := trivia{}.Reply(in)
		shown := r.State.Shown
		assert.Equal(t, 7, shown[len(shown)-1], "only unseen fact is told")
		assert.NotContains(t, shown, session.NoneShown)
		assert.Len(t, shown, len(all))
	}
}

func TestTrivia_LocalIntents(t *testing.T) {
	assert.Equal(t, Next(Farewell), trivia{}.HandleLocalIntents(input(session.New(), turn{intents: intents(IntentReject)})))
	assert.Equal(t, Next(ModeSelect), trivia{}.HandleLocalIntents(input(session.New(), turn{tokens: []string{"ага"}})))
}

func TestFarewell(t *testing.T) {
	r := farewell{}.Reply(input(session.New(), turn{}))
	assert.True(t, r.EndSession)
	assert.True(t, farewell{}.Help(input(session.New(), turn{})).EndSession)
	assert.Empty(t, farewell{}.Buttons(nil))
}
