package scenario

import "github.com/jwebster45206/mathbrain/pkg/dialog"

// capabilities tells what the skill can do.
type capabilities struct{}

func (capabilities) ID() ID { return Capabilities }

func (c capabilities) Reply(in *Input) dialog.Reply {
	name := quoted(in.Opts.SkillName)
	const controls = ` Скажите "В начало", чтобы вернуться в начало навыка. Вы можете попросить повторить ` +
		`последнее сообщение, сказав "Повтори". Команда "Стоп" нужна для того, чтобы покинуть навык.`
	text := in.Pick.One(
		"Навык "+name+" представляет из себя программу, которая предлагает выполнить расчёты в уме, "+
			"используя простейшие арифметические действия, также может рассказать что-нибудь интересное "+
			"и увлекательное."+controls,
		name+" - полезный и увлекательный навык, который в игровой форме поможет разобраться с умением "+
			"счёта в уме. Навык предложит решить вам задания, укажет на ваши ошибки и оценит ваши умения."+controls,
		"В этом навыке вы будете выполнять расчёты без ручки и бумаги. Ваша цель ответить на все вопросы "+
			"используя только устный счёт. А еще навык укажет на ваши ошибки и оценит ваши умения."+controls,
		"Этот навык нацелен на работу с простейшими арифметическими действиями: сложение, вычитание, "+
			"умножение, деление, операции с дробями, возведение в степень, вычисление квадратного корня, "+
			"тригонометрические табличные значения. Также навык укажет на ваши ошибки и оценит ваши умения."+
			controls+" Не волнуйтесь, по ходу действий вы всё поймёте.",
	)
	return dialog.Reply{Text: text + " Начнём?", Buttons: c.Buttons(in)}
}

func (c capabilities) Help(in *Input) dialog.Reply {
	text := in.Pick.One(
		`Если вы хотите вернуться назад, просто скажите "Назад".`,
		"Вы узнали, что умеет навык, хотите вернуться назад?",
		"Не переживайте, вы все поймете, вернемся назад?",
	)
	return dialog.Reply{
		Text:    text,
		Buttons: append(c.Buttons(in), dialog.Suggest("Повторить"), dialog.Suggest("Назад")),
	}
}

func (capabilities) HandleLocalIntents(in *Input) Result {
	switch {
	case in.Turn.HasIntent(IntentConfirm, IntentStartConfirm, IntentBack):
		return Next(ModeSelect)
	case in.Turn.HasIntent(IntentReject):
		return Next(Farewell)
	}
	return Unresolved()
}

func (capabilities) Buttons(in *Input) []dialog.Button {
	return []dialog.Button{
		dialog.Suggest(in.Pick.One("Давай начнём", "Погнали", "Поехали", "Вперед")),
	}
}
