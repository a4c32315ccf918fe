package scenario

import "github.com/jwebster45206/mathbrain/pkg/dialog"

// ResultKind tells what a scenario decided about an utterance.
type ResultKind int

const (
	// KindUnresolved means the utterance was not understood.
	KindUnresolved ResultKind = iota
	// KindTransition moves the dialogue to another scenario.
	KindTransition
	// KindPayload answers with a reply the scenario built itself.
	KindPayload
)

func (k ResultKind) String() string {
	switch k {
	case KindTransition:
		return "transition"
	case KindPayload:
		return "payload"
	default:
		return "unresolved"
	}
}

// Result is the outcome of HandleLocalIntents.
type Result struct {
	Kind  ResultKind
	Next  ID           // set for KindTransition
	Reply dialog.Reply // set for KindPayload
}

// Next transitions to the scenario id.
func Next(id ID) Result {
	return Result{Kind: KindTransition, Next: id}
}

// Payload answers with r as is.
func Payload(r dialog.Reply) Result {
	return Result{Kind: KindPayload, Reply: r}
}

// Unresolved reports that nothing matched.
func Unresolved() Result {
	return Result{Kind: KindUnresolved}
}
