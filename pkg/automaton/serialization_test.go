package automaton

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncode_Format(t *testing.T) {
	doc := &Document{
		Dimensions: 2,
		States: []State{
			{ID: 0, IsInitial: true},
			{ID: 1, IsFinal: true},
		},
		Transitions: []Transition{
			{From: 0, To: 1, Label: Label{Symbol: "a_0", Value: 1}},
		},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := `{
  "dimensions": 2,
  "states": [
    {
      "id": 0,
      "is_initial": true,
      "is_final": false
    },
    {
      "id": 1,
      "is_initial": false,
      "is_final": true
    }
  ],
  "transitions": [
    {
      "from": 0,
      "to": 1,
      "label": [
        "a_0",
        1
      ]
    }
  ]
}
`
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	doc := &Document{
		Dimensions: 2,
		States:     []State{{ID: 0, IsInitial: true}, {ID: 1, IsFinal: true}},
		Transitions: []Transition{
			{From: 0, To: 1, Label: Label{Symbol: "b_3", Value: 0}},
		},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Transitions[0].Label != doc.Transitions[0].Label {
		t.Errorf("label = %v, want %v", got.Transitions[0].Label, doc.Transitions[0].Label)
	}
}

func TestLabel_UnmarshalErrors(t *testing.T) {
	cases := []string{
		`"a_0"`,
		`["a_0"]`,
		`["a_0", 1, 2]`,
		`[0, "a_0"]`,
	}
	for _, raw := range cases {
		var l Label
		if err := l.UnmarshalJSON([]byte(raw)); err == nil {
			t.Errorf("UnmarshalJSON(%s) should fail", raw)
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode(strings.NewReader("{")); err == nil {
		t.Error("Decode() should fail on malformed JSON")
	}
}
