package generator

import (
	"github.com/MasWag/hyppau-fixtures/pkg/automaton"
)

// Dimensions generates the dimension-scaling instance: a linear
// announce chain over d dimensions, a rotation loop over the second
// level, and a final hop. Actions are named 'a', 'b', ... per dimension.
func Dimensions(d int) (*automaton.Document, error) {
	if d < 1 {
		return nil, &ConfigError{Field: "dimensions", Reason: "must be at least 1"}
	}

	doc := newDocument(d, 2*d+2)

	// Initial chain: one announce per dimension.
	for idx := 0; idx < d; idx++ {
		doc.Transitions = append(doc.Transitions, automaton.Transition{
			From:  idx,
			To:    idx + 1,
			Label: automaton.Label{Symbol: "@", Value: idx},
		})
	}

	// Rotation loop over the second level.
	for idx := 0; idx < d; idx++ {
		doc.Transitions = append(doc.Transitions, automaton.Transition{
			From:  idx + d,
			To:    (idx+1)%d + d,
			Label: automaton.Label{Symbol: string(rune('a' + idx)), Value: idx},
		})
	}

	// Final hop.
	doc.Transitions = append(doc.Transitions, automaton.Transition{
		From:  2 * d,
		To:    2*d + 1,
		Label: automaton.Label{Symbol: "@", Value: 0},
	})

	return doc, nil
}
