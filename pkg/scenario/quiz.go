package scenario

import (
	"strconv"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/problems"
	"github.com/jwebster45206/mathbrain/pkg/session"
)

// QuestionsPerRun is the length of one quiz run.
const QuestionsPerRun = 10

type answerKind int

const (
	integerAnswer answerKind = iota
	fractionAnswer
	angleAnswer
)

// topic describes one quiz topic.
type topic struct {
	id        ID
	rules     string // read before the first question
	helpIntro string // rules as repeated by help
	advice    []string
	generate  problems.Generator
	kind      answerKind
}

const timeLimit = " На каждый из них у вас есть 30 секунд."

var additionSubtraction = &topic{
	id:        AdditionSubtraction,
	rules:     "Вам поочерёдно представятся 10 примеров, содержащих операции сложения и вычитания, для решения на время." + timeLimit + " Удачи!",
	helpIntro: "Вам поочерёдно представляются 10 примеров, содержащих операции сложения и вычитания, для решения на время." + timeLimit,
	advice: []string{
		"Чтобы сложить числа с разными знаками, нужно из большего модуля вычесть меньший модуль, и перед " +
			"полученным ответом поставить знак того числа, модуль которого больше. Чтобы из меньшего числа " +
			"вычесть большее, нужно из большего числа вычесть меньшее и перед полученным ответом поставить минус.",
	},
	generate: problems.AdditionSubtraction,
}

var multiplicationDivision = &topic{
	id:        MultiplicationDivision,
	rules:     "Вам поочерёдно представятся 10 примеров, содержащих операции умножения и деления, для решения на время." + timeLimit + " Удачи!",
	helpIntro: "Вам поочерёдно представляются 10 примеров, содержащих операции умножения и деления, для решения на время." + timeLimit,
	advice: []string{
		`Попробуйте представлять числа в виде суммы или разности чисел, одно или несколько из которых "круглое". ` +
			"На 10, 20, 100, 1000 и другие круглые числа умножать быстрее, в уме нужно сводить всё к таким " +
			"простым операциям.",
	},
	generate: problems.MultiplicationDivision,
}

var fractions = &topic{
	id: Fractions,
	rules: "Вам поочерёдно представятся 10 примеров, содержащих операции сложения, вычитания, умножения и " +
		"деления над дробями, для решения на время." + timeLimit + " Удачи!",
	helpIntro: "Вам поочерёдно представятся 10 примеров, содержащих операции сложения, вычитания, умножения и " +
		"деления над дробями, для решения." + timeLimit,
	advice: []string{
		"Для того, чтобы сложить две дроби, нужно сначала привести их к общему знаменателю, а затем выполнить сложение.",
		"Для того, чтобы из одной дроби вычесть другую, нужно сначала привести их к общему знаменателю, а затем выполнить вычитание.",
		"Для того, чтобы перемножить две дроби, нужно перемножить соответственно их числители и знаменатели.",
		"Для того, чтобы одну дробь разделить на другую, нужно делимое умножить на дробь, обратную делителю.",
	},
	generate: problems.Fractions,
	kind:     fractionAnswer,
}

var exponentiation = &topic{
	id:        Exponentiation,
	rules:     "Вам поочерёдно представятся 10 примеров, содержащих операцию возведения в степень, для решения на время." + timeLimit + " Удачи!",
	helpIntro: "Вам поочерёдно представляются 10 примеров, содержащих операцию возведения в степень, для решения на время." + timeLimit,
	advice: []string{
		"Сосредоточьтесь на решении и не переживайте, результаты, кроме вас, никто не увидит. Наша цель научиться.",
	},
	generate: problems.Exponentiation,
}

var squareRoot = &topic{
	id:        SquareRoot,
	rules:     "Вам поочерёдно представятся 10 примеров, где вам нужно найти квадратный корень, для решения на время." + timeLimit + " Удачи!",
	helpIntro: "Вам поочерёдно представляются 10 примеров, где вам нужно найти квадратный корень, для решения на время." + timeLimit,
	advice: []string{
		"Арифметическим квадратным корнем из неотрицательного числа a называется такое неотрицательное " +
			"число, квадрат которого равен a.",
	},
	generate: problems.SquareRoot,
}

var trigonometry = &topic{
	id: Trigonometry,
	rules: "Вам поочерёдно представятся 10 вопросов о табличных тригонометрических значениях." + timeLimit +
		" Вы должны дать значение угла в градусах. Удачи!",
	helpIntro: "Вам поочерёдно представляются 10 вопросов о табличных тригонометрических значениях." + timeLimit,
	advice: []string{
		"Эти значения нужно выучить, а лучше всего запоминать тригонометрические значения, запоминая их на " +
			"единичной окружности.",
	},
	generate: problems.Trigonometry,
	kind:     angleAnswer,
}

func quizOf(t *topic) Constructor {
	return func() Scenario { return quiz{t} }
}

// quiz asks the questions of one topic, one per turn.
type quiz struct {
	*topic
}

func (q quiz) ID() ID { return q.id }

func (q quiz) Reply(in *Input) dialog.Reply {
	f := in.Facts

	var lead string
	switch {
	case f.QuestionNumber == 0:
		lead = q.rules + "\n"
	case f.LastAnswerCorrect:
		lead = in.Pick.Praise()
	default:
		lead = in.Pick.Reveal(f.AnswerText())
	}

	p := q.generate(in.Pick, f.WasAsked)
	tts := lead + p.Speech + dialog.Sound(dialog.SoundClock)
	if f.QuestionNumber != 0 {
		tts += p.Again
	}

	var st session.State
	switch q.kind {
	case angleAnswer:
		st = session.Progress(f, p.Angles)
		st.Asked = append(append([]int{}, f.Asked...), p.Row)
	case fractionAnswer:
		st = session.Progress(f, p.Answer.Num)
		st.AnswerDen = session.Int(p.Answer.Den)
	default:
		st = session.Progress(f, p.Answer.Num)
	}

	return dialog.Reply{Text: lead + p.Text, TTS: tts, State: &st}
}

// Help ends the run: the next utterance returns to topic selection.
func (q quiz) Help(in *Input) dialog.Reply {
	f := in.Facts
	text := "Вы попросили помощи во время выполнения задания, продолжить его выполнение вы уже не сможете."
	switch {
	case f.QuestionNumber == 0:
		text += " " + q.helpIntro + " Главное не торопитесь, времени у вас достаточно."
	case f.Points <= 0:
		text += " Вы не смогли дать правильного ответа ни на один из вопросов. " + in.Pick.One(q.advice...)
	default:
		text += " Вы верно ответили на " + strconv.Itoa(f.Points) + " из " + strconv.Itoa(f.QuestionNumber) +
			" вопросов, правильный ответ на пример " + f.AnswerText() + "."
	}
	text += " Возвращаемся назад."

	return dialog.Reply{
		Text:    text,
		Buttons: append(q.Buttons(in), dialog.Suggest("Назад")),
		State:   &session.State{Points: session.Int(session.HelpUsed)},
	}
}

// HandleLocalIntents scores the answer and moves on to the next question, or to
// the results once the run is over.
func (q quiz) HandleLocalIntents(in *Input) Result {
	f := in.Facts
	if f.HelpWasUsed() || in.Turn.HasIntent(IntentBack) {
		return Next(ModeSelect)
	}

	if q.correct(in) {
		f.Points++
		f.LastAnswerCorrect = true
	}
	f.QuestionNumber++

	if f.QuestionNumber >= QuestionsPerRun {
		if f.Points == QuestionsPerRun {
			return Next(AllCorrect)
		}
		return Next(PartialScore)
	}
	return Next(q.id)
}

func (q quiz) correct(in *Input) bool {
	f := in.Facts
	switch q.kind {
	case angleAnswer:
		// recognition often splits or misreads the answer, so any number said counts
		for _, tok := range in.Turn.Tokens() {
			if n, ok := dialog.ParseInt(tok); ok && problems.AngleMatches(f.AnswerSet, n) {
				return true
			}
		}
		n, ok := in.Turn.SlotNumber(IntentAnswer, SlotAnswer)
		return ok && problems.AngleMatches(f.AnswerSet, n)

	case fractionAnswer:
		got, ok := fractionAnswerOf(in.Turn)
		if !ok {
			return false
		}
		want := problems.Fraction{Num: f.AnswerNumerator, Den: f.AnswerDenominator}
		return got.Equal(want)

	default:
		n, ok := in.Turn.SlotNumber(IntentAnswer, SlotAnswer)
		return ok && n == f.AnswerNumerator
	}
}

// fractionAnswerOf reads "numerator denominator" from the tokens the answer slot
// starts at. A missing denominator means 1.
func fractionAnswerOf(t dialog.Turn) (problems.Fraction, bool) {
	start, ok := t.SlotStart(IntentAnswer, SlotAnswer)
	if !ok {
		return problems.Fraction{}, false
	}
	tok, _ := t.Token(start)
	num, ok := dialog.ParseInt(tok)
	if !ok {
		if num, ok = t.SlotNumber(IntentAnswer, SlotAnswer); !ok {
			return problems.Fraction{}, false
		}
	}
	den := 1
	if tok, ok := t.Token(start + 1); ok {
		if d, ok := dialog.ParseInt(tok); ok {
			den = d
		}
	}
	if den == 0 {
		return problems.Fraction{}, false
	}
	return problems.Fraction{Num: num, Den: den}, true
}

func (quiz) Buttons(*Input) []dialog.Button {
	return nil
}
