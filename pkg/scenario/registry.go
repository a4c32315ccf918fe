package scenario

import "slices"

// Constructor returns a fresh scenario.
type Constructor func() Scenario

// Registry maps scenario ids to their constructors.
type Registry struct {
	ctors map[ID]Constructor
	def   ID
}

// NewRegistry returns the registry of every screen of the skill, with welcome as the
// default.
func NewRegistry() *Registry {
	r := &Registry{ctors: make(map[ID]Constructor), def: Welcome}
	r.Register(Welcome, func() Scenario { return welcome{} })
	r.Register(Capabilities, func() Scenario { return capabilities{} })
	r.Register(ModeSelect, func() Scenario { return modeSelect{} })
	r.Register(AdditionSubtraction, quizOf(additionSubtraction))
	r.Register(MultiplicationDivision, quizOf(multiplicationDivision))
	r.Register(Fractions, quizOf(fractions))
	r.Register(Exponentiation, quizOf(exponentiation))
	r.Register(SquareRoot, quizOf(squareRoot))
	r.Register(Trigonometry, quizOf(trigonometry))
	r.Register(AllCorrect, func() Scenario { return results{id: AllCorrect} })
	r.Register(PartialScore, func() Scenario { return results{id: PartialScore} })
	r.Register(Trivia, func() Scenario { return trivia{} })
	r.Register(Farewell, func() Scenario { return farewell{} })
	return r
}

// Register adds or replaces a constructor.
func (r *Registry) Register(id ID, c Constructor) {
	r.ctors[id] = c
}

// Lookup builds the scenario registered under id. Unknown ids yield the default
// scenario and false.
func (r *Registry) Lookup(id string) (Scenario, bool) {
	if c, ok := r.ctors[ID(id)]; ok {
		return c(), true
	}
	return r.Default(), false
}

// New builds a registered scenario, or the default one.
func (r *Registry) New(id ID) Scenario {
	s, _ := r.Lookup(string(id))
	return s
}

// Default builds the entry scenario.
func (r *Registry) Default() Scenario {
	return r.ctors[r.def]()
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.ctors))
	for id := range r.ctors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
