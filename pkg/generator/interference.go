package generator

import "github.com/MasWag/hyppau-fixtures/pkg/automaton"

// Interference generates the action/output interference instance: a
// fixed 3-level tree where every symbol can be announced and confirmed
// from the initial state, all correct confirmations meet in a single hub
// state, and a second round of announce/confirm either returns to the
// hub or rejects to the final state on the flipped output.
//
// The construction flips between the two configured outputs, so it
// requires exactly two of them. With A = len(actions) * 2, the instance
// has 2A + 3 states.
func Interference(actions []string, outputs []int) (*automaton.Document, error) {
	if err := checkActions(actions); err != nil {
		return nil, err
	}
	if err := checkOutputs(outputs); err != nil {
		return nil, err
	}
	if len(outputs) != 2 {
		return nil, &ConfigError{Field: "outputs", Reason: "interference requires exactly two outputs"}
	}

	alphabet, err := Alphabet(actions, outputs)
	if err != nil {
		return nil, err
	}
	a := len(alphabet)
	doc := newDocument(2, 2*a+3)
	hub := a + 1
	final := 2*a + 2

	emit := func(from, to int, sym Symbol, phase int) {
		doc.Transitions = append(doc.Transitions, automaton.Transition{
			From:  from,
			To:    to,
			Label: automaton.Label{Symbol: sym.Name(), Value: phase},
		})
	}

	// First round: announce from the initial state, confirm into the hub.
	for idx, sym := range alphabet {
		emit(0, idx+1, sym, 0)
		emit(idx+1, hub, sym, 1)
	}

	// Second round: announce from the hub, confirm back, or reject to
	// the final state on the flipped output.
	for idx, sym := range alphabet {
		state := hub + 1 + idx
		emit(hub, state, sym, 0)
		emit(state, hub, sym, 1)

		flipped := outputs[0]
		if sym.Output == outputs[0] {
			flipped = outputs[1]
		}
		emit(state, final, Symbol{Action: sym.Action, Output: flipped}, 1)
	}

	return doc, nil
}
