package automaton

import (
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON serializes the label as a two-element array, e.g. ["a_0", 1].
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{l.Symbol, l.Value})
}

// UnmarshalJSON deserializes the label from its two-element array form.
func (l *Label) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("label: expected array, got %s", data)
	}
	if len(raw) != 2 {
		return fmt.Errorf("label: expected 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &l.Symbol); err != nil {
		return fmt.Errorf("label symbol: %w", err)
	}
	if err := json.Unmarshal(raw[1], &l.Value); err != nil {
		return fmt.Errorf("label value: %w", err)
	}
	return nil
}

// Encode writes the document as 2-space-indented JSON. The encoding is
// deterministic: identical documents produce byte-identical output, which
// golden-file tests and the serve-side cache rely on.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Decode reads a document from JSON. It does not validate; callers that
// need well-formedness run Validate on the result.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}
