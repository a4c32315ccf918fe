package scenario

import "github.com/jwebster45206/mathbrain/pkg/dialog"

// topics in the order they are offered; option n selects topics[n-1].
var topics = []ID{
	AdditionSubtraction,
	MultiplicationDivision,
	Fractions,
	Exponentiation,
	SquareRoot,
	Trigonometry,
}

var optionTexts = []string{
	"1) сложение, вычитание",
	"2) умножение, деление",
	"3) операции с дробями",
	"4) возведение в степень",
	"5) вычисление квадратного корня",
	"6) тригонометрические табличные значения",
}

var optionSpeech = []string{
	dialog.Pause + " первое. сложение, вычитание " + dialog.Pause + " ",
	"второе. умножение, деление " + dialog.Pause + " ",
	"третье. операции с дробями " + dialog.Pause + " ",
	"четвертое. возведение в степень " + dialog.Pause + " ",
	"пятое. вычисление квадратного корня " + dialog.Pause + " ",
	"шестое. тригонометрические табличные значения " + dialog.Pause + " ",
}

// modeSelect lets the user choose a quiz topic.
type modeSelect struct{}

func (modeSelect) ID() ID { return ModeSelect }

func (m modeSelect) Reply(in *Input) dialog.Reply {
	text := in.Pick.One(
		"С каким типом заданий вы бы хотели поработать?",
		"Выберите тип задания.",
		"Какое задание вам по душе?",
	)
	tts := text
	for _, s := range optionSpeech {
		tts += s
	}
	return dialog.Reply{Text: text, TTS: tts, Buttons: m.Buttons(in)}
}

func (m modeSelect) Help(in *Input) dialog.Reply {
	text := in.Pick.One(
		"Сейчас вам нужно выбрать один из типов заданий, которые вы хотите пройти. Если хотите еще раз "+
			`ознакомиться со списком вариантов скажите "Повторить" или просто выберите задание.`,
		"Навык содержит 6 типов заданий, ваша задача выбрать один из типов. Чтобы услышать варианты выбора, "+
			`скажите "Повторить".`,
	)
	return dialog.Reply{
		Text:    text,
		Buttons: append(m.Buttons(in), dialog.Suggest("Повторить")),
	}
}

// HandleLocalIntents tries, in order: a request to re-read one option, a topic
// intent, an option number slot, a bare number.
func (m modeSelect) HandleLocalIntents(in *Input) Result {
	if in.Turn.HasIntent(IntentRepeatVariant) {
		n, ok := in.Turn.SlotNumber(IntentRepeatVariant, SlotVariant)
		if !ok || n < 1 || n > len(optionTexts) {
			return Next(ModeSelect)
		}
		const ask = " Назовите номер, выбранного задания."
		return Payload(dialog.Reply{
			Text:    optionTexts[n-1] + "." + ask,
			TTS:     optionSpeech[n-1] + ask,
			Buttons: m.Buttons(in),
		})
	}

	for _, id := range topics {
		if in.Turn.HasIntent(string(id)) {
			return enterTopic(in, id)
		}
	}

	if n, ok := in.Turn.SlotNumber(IntentSelectVariant, SlotVariant); ok && n >= 1 && n <= len(topics) {
		return enterTopic(in, topics[n-1])
	}

	for _, n := range in.Turn.Numbers() {
		if n >= 1 && n <= len(topics) {
			return enterTopic(in, topics[n-1])
		}
	}
	return Unresolved()
}

func enterTopic(in *Input, id ID) Result {
	in.Facts.ResetQuiz()
	return Next(id)
}

func (modeSelect) Buttons(*Input) []dialog.Button {
	buttons := make([]dialog.Button, 0, len(optionTexts))
	for _, t := range optionTexts {
		buttons = append(buttons, dialog.NewButton(t))
	}
	return buttons
}
