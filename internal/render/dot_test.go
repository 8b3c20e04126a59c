package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MasWag/hyppau-fixtures/internal/render"
	"github.com/MasWag/hyppau-fixtures/pkg/automaton"
	"github.com/MasWag/hyppau-fixtures/pkg/generator"
)

func TestDOT(t *testing.T) {
	doc := &automaton.Document{
		Dimensions: 2,
		States: []automaton.State{
			{ID: 0, IsInitial: true},
			{ID: 1, IsFinal: true},
		},
		Transitions: []automaton.Transition{
			{From: 0, To: 1, Label: automaton.Label{Symbol: "a_0", Value: 1}},
		},
	}

	got, err := render.DOT(doc, "G")
	require.NoError(t, err)

	want := `digraph G {
    rankdir=LR;
    node [fontname="Helvetica"];

    __start__ [shape=point style=invis];
    0 [shape=circle, label="0"];
    1 [shape=doublecircle, label="1"];

    __start__ -> 0;

    0 -> 1 [label="a_0,1"];
}`
	assert.Equal(t, want, got)
}

func TestDOT_RejectsMalformed(t *testing.T) {
	doc := &automaton.Document{
		States:      []automaton.State{{ID: 0, IsInitial: true, IsFinal: true}},
		Transitions: []automaton.Transition{{From: 0, To: 42}},
	}
	_, err := render.DOT(doc, "G")
	require.Error(t, err)
}

func TestDOT_GeneratedInstance(t *testing.T) {
	doc, err := generator.Stuttering([]string{"a"}, []int{0, 1})
	require.NoError(t, err)

	got, err := render.DOT(doc, "stutter")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "digraph stutter {"))
	// One node line per state, one edge line per transition.
	nodes := strings.Count(got, "shape=circle") + strings.Count(got, "shape=doublecircle")
	assert.Equal(t, doc.NumStates(), nodes)
	assert.Equal(t, len(doc.Transitions), strings.Count(got, "[label=\""))
	assert.Equal(t, 1, strings.Count(got, "doublecircle"))
}
