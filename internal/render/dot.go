// Package render turns automaton documents into Graphviz DOT text.
package render

import (
	"fmt"
	"strings"

	"github.com/MasWag/hyppau-fixtures/pkg/automaton"
)

// DOT renders a document as a Graphviz digraph with the given graph
// name. Final states are drawn as double circles and every initial
// state is anchored from an invisible start point. The document is
// validated first; a malformed document produces no partial output.
func DOT(doc *automaton.Document, name string) (string, error) {
	if err := automaton.Validate(doc); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", name)
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [fontname=\"Helvetica\"];\n")
	sb.WriteString("\n")

	sb.WriteString("    __start__ [shape=point style=invis];\n")

	for _, st := range doc.States {
		shape := "circle"
		if st.IsFinal {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "    %d [shape=%s, label=\"%d\"];\n", st.ID, shape, st.ID)
	}
	sb.WriteString("\n")

	for _, st := range doc.States {
		if st.IsInitial {
			fmt.Fprintf(&sb, "    __start__ -> %d;\n", st.ID)
		}
	}
	sb.WriteString("\n")

	for _, tr := range doc.Transitions {
		label := fmt.Sprintf("%s,%d", tr.Label.Symbol, tr.Label.Value)
		label = strings.ReplaceAll(label, "\"", "\\\"")
		fmt.Fprintf(&sb, "    %d -> %d [label=\"%s\"];\n", tr.From, tr.To, label)
	}

	sb.WriteString("}")
	return sb.String(), nil
}
