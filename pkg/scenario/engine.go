package scenario

import (
	"encoding/json"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
	"github.com/jwebster45206/mathbrain/pkg/phrases"
	"github.com/jwebster45206/mathbrain/pkg/session"
)

// Route names the rule that produced a reply.
type Route string

const (
	RouteExit         Route = "exit"
	RouteNew          Route = "new"
	RouteRepeat       Route = "repeat"
	RouteStart        Route = "start"
	RouteCapabilities Route = "capabilities"
	RouteHelp         Route = "help"
	RouteTransition   Route = "transition"
	RoutePayload      Route = "payload"
	RouteFallback     Route = "fallback"
)

// Outcome is the answer to one turn.
type Outcome struct {
	Response dialog.Response
	From     ID // scenario active before the turn, empty for a new session
	Scenario ID // scenario written into the new state
	Route    Route
}

// Engine dispatches turns to scenarios. It holds no per-session data and may be
// shared by concurrent requests.
type Engine struct {
	registry *Registry
	opts     Options
}

// NewEngine returns an Engine over the registry.
func NewEngine(registry *Registry, opts Options) *Engine {
	def := DefaultOptions()
	if opts.SkillName == "" {
		opts.SkillName = def.SkillName
	}
	if opts.RepeatConfirmation == "" {
		opts.RepeatConfirmation = def.RepeatConfirmation
	}
	return &Engine{registry: registry, opts: opts}
}

// Handle answers one turn. Global intents are checked in a fixed order before the
// active scenario sees the utterance: exit, new session, repeat, back to start,
// capabilities, platform help.
func (e *Engine) Handle(req *dialog.Request, pick *phrases.Picker) Outcome {
	if pick == nil {
		pick = phrases.ForRequest()
	}
	var raw map[string]json.RawMessage
	if req != nil {
		raw = req.State.Session
	}
	in := &Input{
		Turn:  dialog.NewTurn(req),
		Facts: session.Load(raw),
		Pick:  pick,
		Opts:  e.opts,
	}
	from := ID(in.Facts.Scenario)

	if in.Turn.HasIntent(IntentStartReject) {
		return e.reply(in, from, e.registry.New(Farewell), RouteExit)
	}

	if in.Facts.Scenario == "" {
		return e.reply(in, from, e.registry.Default(), RouteNew)
	}
	active, _ := e.registry.Lookup(in.Facts.Scenario)

	switch {
	case in.Turn.HasIntent(IntentPlatformRepeat, IntentSayAgain) &&
		!in.Facts.HasAnswer() &&
		!in.Turn.HasToken(e.opts.RepeatConfirmation):
		return e.reply(in, from, active, RouteRepeat)
	case in.Turn.HasIntent(IntentToStart):
		return e.reply(in, from, e.registry.Default(), RouteStart)
	case in.Turn.HasIntent(IntentCapabilities):
		return e.reply(in, from, e.registry.New(Capabilities), RouteCapabilities)
	case in.Turn.HasIntent(IntentPlatformHelp):
		return e.render(in, from, active.ID(), active.Help(in), RouteHelp)
	}

	res := active.HandleLocalIntents(in)
	switch res.Kind {
	case KindTransition:
		return e.reply(in, from, e.registry.New(res.Next), RouteTransition)
	case KindPayload:
		return e.render(in, from, active.ID(), res.Reply, RoutePayload)
	default:
		return e.render(in, from, active.ID(), fallback(active, in), RouteFallback)
	}
}

func (e *Engine) reply(in *Input, from ID, s Scenario, route Route) Outcome {
	return e.render(in, from, s.ID(), s.Reply(in), route)
}

func (e *Engine) render(in *Input, from, id ID, r dialog.Reply, route Route) Outcome {
	r.Scenario = string(id)
	return Outcome{
		Response: dialog.Render(r, in.Facts),
		From:     from,
		Scenario: id,
		Route:    route,
	}
}

// fallback is the reply to an utterance the active scenario did not understand.
func fallback(active Scenario, in *Input) dialog.Reply {
	buttons := append(active.Buttons(in),
		dialog.Suggest("Повтори"),
		dialog.Suggest("В самое начало"),
		dialog.Suggest("Помощь"),
		dialog.Suggest("Что умеет навык?"),
	)
	reply := dialog.Reply{
		Text:    in.Pick.Apology(),
		Buttons: buttons,
	}
	if r, ok := active.(results); ok {
		reply.State = r.score(in)
	}
	return reply
}
