package generator

import "fmt"

// Symbol is one letter of the alphabet: an action paired with an output
// value. Symbols are value types and never mutated after expansion.
type Symbol struct {
	Action string
	Output int
}

// Name returns the serialized symbol name, e.g. "a_0".
func (s Symbol) Name() string {
	return fmt.Sprintf("%s_%d", s.Action, s.Output)
}

// Alphabet expands the configured actions and outputs into the full
// cross product, in action-major, output-minor order. It fails with a
// *ConfigError if either list is empty or contains duplicates.
func Alphabet(actions []string, outputs []int) ([]Symbol, error) {
	if err := checkActions(actions); err != nil {
		return nil, err
	}
	if err := checkOutputs(outputs); err != nil {
		return nil, err
	}

	symbols := make([]Symbol, 0, len(actions)*len(outputs))
	for _, act := range actions {
		for _, out := range outputs {
			symbols = append(symbols, Symbol{Action: act, Output: out})
		}
	}
	return symbols, nil
}
