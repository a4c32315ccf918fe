package scenario

import (
	"slices"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/phrases"
	"github.com/jwebster45206/mathbrain/pkg/session"
)

// trivia tells a fact the user has not heard in this session yet.
type trivia struct{}

func (trivia) ID() ID { return Trivia }

func (t trivia) Reply(in *Input) dialog.Reply {
	idx, shown := nextFact(in)
	fact := phrases.Facts()[idx]
	text := fact.Text + in.Pick.One(" Сыграем еще раз?", " Еще разок сыграем?", " Я хочу еще увидеть вас в действии.")

	buttons := append(t.Buttons(in), dialog.Link("ИСТОЧНИК", fact.Source))
	return dialog.Reply{
		Text:    text,
		Buttons: buttons,
		State:   &session.State{Shown: shown},
	}
}

// nextFact picks a random unseen fact and returns it with the updated shown list.
// Once every fact was shown the list starts over.
func nextFact(in *Input) (int, []int) {
	all := phrases.Facts()
	seen := in.Facts.WasShown

	var shown []int
	if slices.ContainsFunc(ids(len(all)), func(id int) bool { return !seen(id) }) {
		for _, id := range in.Facts.Shown {
			if id >= 0 && id < len(all) {
				shown = append(shown, id)
			}
		}
	} else {
		seen = func(int) bool { return false }
	}

	idx := in.Pick.Intn(len(all))
	for seen(idx) {
		idx = (idx + 1) % len(all)
	}
	return idx, append(shown, idx)
}

func ids(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (t trivia) Help(in *Input) dialog.Reply {
	return dialog.Reply{
		Text: `Сейчас вы услышали факт, если хотите еще порешать примеры, скажите "Еще раз", а если хотите ` +
			"закончить, так и скажите.",
		Buttons: t.Buttons(in),
	}
}

func (trivia) HandleLocalIntents(in *Input) Result {
	if in.Turn.HasIntent(IntentReject, IntentStartReject) {
		return Next(Farewell)
	}
	return Next(ModeSelect)
}

func (trivia) Buttons(*Input) []dialog.Button {
	return []dialog.Button{
		dialog.Suggest("Сыграть еще раз"),
		dialog.Suggest("Стоп"),
	}
}
