package generator

import (
	"fmt"
	"strings"

	"github.com/MasWag/hyppau-fixtures/pkg/automaton"
)

// Kind names one of the registered instance generators.
type Kind string

const (
	KindStuttering   Kind = "stuttering"
	KindDimensions   Kind = "dimensions"
	KindInterference Kind = "interference"
)

// Kinds lists the registered generator kinds in stable order.
func Kinds() []Kind {
	return []Kind{KindStuttering, KindDimensions, KindInterference}
}

// ParseKind converts a user-supplied kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStuttering, KindDimensions, KindInterference:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Params is the generic parameter bag decoded from batch manifests and
// HTTP request bodies. Which fields apply depends on the kind.
type Params struct {
	Actions    []string `json:"actions,omitempty" mapstructure:"actions"`
	Outputs    []int    `json:"outputs,omitempty" mapstructure:"outputs"`
	Dimensions int      `json:"dimensions,omitempty" mapstructure:"dimensions"`
}

// CacheKey returns a canonical identifier for one (kind, params)
// combination. Generation is deterministic, so equal keys always denote
// byte-identical documents.
func (p Params) CacheKey(kind Kind) string {
	outputs := make([]string, len(p.Outputs))
	for i, out := range p.Outputs {
		outputs[i] = fmt.Sprintf("%d", out)
	}
	return fmt.Sprintf("%s?actions=%s&outputs=%s&dimensions=%d",
		kind,
		strings.Join(p.Actions, ","),
		strings.Join(outputs, ","),
		p.Dimensions,
	)
}

// Generate dispatches to the generator registered for kind. A
// *ConfigError is returned for invalid parameters and ErrUnknownKind for
// an unregistered kind; no partial document is ever returned.
func Generate(kind Kind, p Params) (*automaton.Document, error) {
	switch kind {
	case KindStuttering:
		return Stuttering(p.Actions, p.Outputs)
	case KindDimensions:
		return Dimensions(p.Dimensions)
	case KindInterference:
		return Interference(p.Actions, p.Outputs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
