// Package scenario implements the dialogue as a state machine. Each screen of the
// skill is a Scenario; the Engine picks the one that answers a turn.
package scenario

import (
	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/phrases"
	"github.com/jwebster45206/mathbrain/pkg/session"
)

// ID names a scenario. It is written into the session state and read back on the
// next turn.
type ID string

const (
	Welcome                ID = "welcome"
	Capabilities           ID = "capabilities"
	ModeSelect             ID = "mode_select"
	AdditionSubtraction    ID = "addition_subtraction"
	MultiplicationDivision ID = "multiplication_division"
	Fractions              ID = "fractions"
	Exponentiation         ID = "exponentiation"
	SquareRoot             ID = "square_root"
	Trigonometry           ID = "trigonometry"
	AllCorrect             ID = "all_correct"
	PartialScore           ID = "partial_score"
	Trivia                 ID = "trivia"
	Farewell               ID = "farewell"
)

// Intents recognized by the skill's NLU model.
const (
	IntentStartConfirm   = "start_confirm"
	IntentStartReject    = "start_reject"
	IntentSayAgain       = "say_again"
	IntentToStart        = "to_start"
	IntentCapabilities   = "help"
	IntentBack           = "back"
	IntentAnswer         = "answer"
	IntentRepeatVariant  = "repeat_variant"
	IntentSelectVariant  = "select_variant"
	IntentFacts          = "interesting_facts"
	IntentPlatformHelp   = "YANDEX.HELP"
	IntentPlatformRepeat = "YANDEX.REPEAT"
	IntentConfirm        = "YANDEX.CONFIRM"
	IntentReject         = "YANDEX.REJECT"

	SlotAnswer  = "Answer"
	SlotVariant = "Variant"
)

// Intents lists every intent name the dialogue reacts to, topic choices included.
func Intents() []string {
	out := []string{
		IntentStartConfirm, IntentStartReject, IntentSayAgain, IntentToStart,
		IntentCapabilities, IntentBack, IntentAnswer, IntentRepeatVariant,
		IntentSelectVariant, IntentFacts, IntentPlatformHelp, IntentPlatformRepeat,
		IntentConfirm, IntentReject,
	}
	for _, t := range topics {
		out = append(out, string(t))
	}
	return out
}

// Options are the deployment specific settings of the dialogue.
type Options struct {
	// SkillName is how the skill introduces itself.
	SkillName string
	// RepeatConfirmation is the word a user says to confirm starting over, e.g.
	// "повторим". A repeat request containing it is not treated as "say that again".
	RepeatConfirmation string
}

// DefaultOptions returns the settings the skill is published with.
func DefaultOptions() Options {
	return Options{
		SkillName:          phrases.SkillName,
		RepeatConfirmation: "повторим",
	}
}

// Input is everything a scenario may look at while handling one turn.
type Input struct {
	Turn  dialog.Turn
	Facts *session.Facts
	Pick  *phrases.Picker
	Opts  Options
}

// Scenario is one screen of the dialogue.
type Scenario interface {
	ID() ID
	// Reply is the screen's main prompt.
	Reply(in *Input) dialog.Reply
	// Help explains the current screen.
	Help(in *Input) dialog.Reply
	// HandleLocalIntents decides where the utterance leads from this screen.
	HandleLocalIntents(in *Input) Result
	// Buttons is the default set of quick replies offered on this screen.
	Buttons(in *Input) []dialog.Button
}

func quoted(s string) string {
	return `"` + s + `"`
}
