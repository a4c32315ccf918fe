package scenario

import "github.com/jwebster45206/mathbrain/pkg/dialog"

// farewell ends the session.
type farewell struct{}

func (farewell) ID() ID { return Farewell }

func (farewell) Reply(in *Input) dialog.Reply {
	return dialog.Reply{
		Text: in.Pick.One(
			"Хорошо, до новых встреч!",
			"Жаль, а так хотелось посмотреть вас в деле.",
			"Ну ничего, в следующий раз.",
			"Ну ничего. Будет скучно - обращайтесь.",
		),
		EndSession: true,
	}
}

func (f farewell) Help(in *Input) dialog.Reply {
	return f.Reply(in)
}

func (farewell) HandleLocalIntents(*Input) Result {
	return Unresolved()
}

func (farewell) Buttons(*Input) []dialog.Button {
	return nil
}
