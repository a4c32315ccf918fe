package scenario

import (
	"strconv"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/phrases"
	"github.com/jwebster45206/mathbrain/pkg/session"
)

// results closes a quiz run: AllCorrect after a perfect run, PartialScore otherwise.
type results struct {
	id ID
}

func (r results) ID() ID { return r.id }

// Grade converts the points of a run into a school mark from 2 to 5.
func Grade(points int) int {
	switch {
	case points > 8:
		return 5
	case points > 5:
		return 4
	case points > 3:
		return 3
	default:
		return 2
	}
}

func (r results) Reply(in *Input) dialog.Reply {
	f := in.Facts
	var text, sound string
	if r.id == AllCorrect {
		text = in.Pick.Delight() + `На все вопросы ты ответил верно, у тебя твердая "5". ` + in.Pick.WhatNext()
		sound = in.Pick.One(dialog.ApplauseSounds...)
	} else {
		if f.QuestionNumber == QuestionsPerRun {
			text = in.Pick.Consolation() + "Ты ответил верно на " + phrases.Questions(f.Points) +
				" из " + strconv.Itoa(QuestionsPerRun) + `, твоя оценка "` + strconv.Itoa(Grade(f.Points)) + `". ` +
				in.Pick.WhatNext()
		} else {
			text = in.Pick.Consolation() + in.Pick.WhatNext()
		}
		sound = in.Pick.One(dialog.SadSounds...)
	}

	return dialog.Reply{
		Text:    text,
		TTS:     dialog.Sound(sound) + text,
		Buttons: r.Buttons(in),
		State:   r.score(in),
	}
}

// score keeps the run's counters so the grade can be repeated later.
func (results) score(in *Input) *session.State {
	return &session.State{
		Points:         session.Int(in.Facts.Points),
		QuestionNumber: session.Int(in.Facts.QuestionNumber),
	}
}

func (r results) Help(in *Input) dialog.Reply {
	text := in.Pick.One(
		`Если хотите сыграть заново, так и скажите, тогда мы вернемся на выбор типа задания. Если скажете "Факты", `+
			`я расскажу вам интересные факты. А если вам нужно бежать, скажите "Закончить"`,
		`Если вам понравилось и вы хотите еще скажите "Заново". Я могу рассказать факт, который удивит вас, `+
			"только скажите",
	)
	return dialog.Reply{
		Text:    text,
		Buttons: append(r.Buttons(in), dialog.Suggest("Повторить")),
		State:   r.score(in),
	}
}

func (results) HandleLocalIntents(in *Input) Result {
	switch {
	case in.Turn.HasIntent(IntentStartConfirm, IntentConfirm) || in.Turn.HasToken(in.Opts.RepeatConfirmation):
		return Next(ModeSelect)
	case in.Turn.HasIntent(IntentStartReject, IntentReject):
		return Next(Farewell)
	case in.Turn.HasIntent(IntentFacts):
		return Next(Trivia)
	}
	return Unresolved()
}

func (results) Buttons(*Input) []dialog.Button {
	return []dialog.Button{
		dialog.Suggest("Сыграть заново"),
		dialog.Suggest("Расскажи интересные факты"),
		dialog.Suggest("Закончить"),
	}
}
