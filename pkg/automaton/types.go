package automaton

// State is a single vertex of a transition system. State identity is
// positional: ids are dense in [0, N) and carry no meaning beyond which
// transitions reference them.
type State struct {
	ID        int  `json:"id"`
	IsInitial bool `json:"is_initial"`
	IsFinal   bool `json:"is_final"`
}

// Label annotates a transition with a symbol name and an integer value.
// Guess/confirm instances use the value as the phase bit (0 announce,
// 1 confirm); the dimensions instance stores the dimension index there.
type Label struct {
	Symbol string
	Value  int
}

// Transition is a labeled edge between two states, referenced by id.
type Transition struct {
	From  int   `json:"from"`
	To    int   `json:"to"`
	Label Label `json:"label"`
}

// Document is the serialized form of one generated transition system,
// as consumed by the pattern-matching benchmarks and the DOT renderer.
type Document struct {
	Dimensions  int          `json:"dimensions"`
	States      []State      `json:"states"`
	Transitions []Transition `json:"transitions"`
}

// NumStates returns the state count of the document.
func (d *Document) NumStates() int {
	return len(d.States)
}

// Initial returns the id of the initial state, or -1 if none is marked.
func (d *Document) Initial() int {
	for _, s := range d.States {
		if s.IsInitial {
			return s.ID
		}
	}
	return -1
}

// Final returns the id of the final state, or -1 if none is marked.
func (d *Document) Final() int {
	for _, s := range d.States {
		if s.IsFinal {
			return s.ID
		}
	}
	return -1
}
