package scenario

import "github.com/jwebster45206/mathbrain/pkg/dialog"

type welcome struct{}

func (welcome) ID() ID { return Welcome }

func (w welcome) Reply(in *Input) dialog.Reply {
	name := quoted(in.Opts.SkillName)
	const howTo = ` Скажите "Начнем", чтобы начать или "Что ты умеешь?", чтобы узнать, что умеет навык.`
	text := in.Pick.One(
		"Добро пожаловать в навык "+name+". Данный навык поможет детям и школьникам разобраться как в "+
			"базовых, так и в углублённых арифметических действиях, используя устный счёт. Например, сложение, "+
			"вычитание, умножение и так далее."+howTo,
		"Привет, это навык "+name+" давай посчитаем?"+howTo,
		"Приветствую тебя, данный навык поможет детям и школьникам разобраться как в базовых, так и в "+
			"углублённых арифметических действиях, используя устный счёт. Например, сложение, вычитание, "+
			"умножение и так далее, займемся устным счетом?"+howTo,
		"Добро пожаловать в навык "+name+", посчитаем?"+howTo,
		"Привет! Вы зашли в навык "+name+". Давайте оценим твои умения! Если вы хотите узнать, что я умею, "+
			`так и скажите. Если вы хотите остановить навык, скажите "Хватит". Вы готовы?`,
	)
	return dialog.Reply{Text: text, Buttons: w.Buttons(in)}
}

func (w welcome) Help(in *Input) dialog.Reply {
	name := quoted(in.Opts.SkillName)
	text := in.Pick.One(
		"Вы оказались в навыке "+name+`! Вы можете узнать, что умеет этот навык, сказав "Что умеет этот `+
			`навык?". Или начать игру, сказав "Начнем"`,
		"Это навык "+name+`. Чтобы узнать, что умеет навык, нужно сказать "Что ты умеешь". Чтобы `+
			"вернуться назад, так и скажите. Или может просто начнем?",
	)
	return dialog.Reply{
		Text:    text,
		Buttons: append(w.Buttons(in), dialog.Suggest("Повторить")),
	}
}

func (welcome) HandleLocalIntents(in *Input) Result {
	switch {
	case in.Turn.HasIntent(IntentStartConfirm, IntentConfirm):
		return Next(ModeSelect)
	case in.Turn.HasIntent(IntentStartReject, IntentReject):
		return Next(Farewell)
	case in.Turn.HasIntent(IntentCapabilities):
		return Next(Capabilities)
	}
	return Unresolved()
}

func (welcome) Buttons(in *Input) []dialog.Button {
	return []dialog.Button{
		dialog.Suggest(in.Pick.One("Да", "Давай", "С радостью")),
		dialog.Suggest(in.Pick.One("Нет", "В другой раз", "Не сейчас", "Как-нибудь потом")),
		dialog.Suggest("Что умеет этот навык?"),
	}
}
