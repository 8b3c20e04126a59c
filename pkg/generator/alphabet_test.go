package generator

import "testing"

func TestAlphabet_Order(t *testing.T) {
	symbols, err := Alphabet([]string{"a", "b"}, []int{0, 1})
	if err != nil {
		t.Fatalf("Alphabet() error = %v, want nil", err)
	}

	want := []Symbol{
		{Action: "a", Output: 0},
		{Action: "a", Output: 1},
		{Action: "b", Output: 0},
		{Action: "b", Output: 1},
	}
	if len(symbols) != len(want) {
		t.Fatalf("Alphabet() = %d symbols, want %d", len(symbols), len(want))
	}
	for i, sym := range symbols {
		if sym != want[i] {
			t.Errorf("symbol %d = %v, want %v", i, sym, want[i])
		}
	}
}

func TestAlphabet_Empty(t *testing.T) {
	if _, err := Alphabet(nil, []int{0}); err == nil {
		t.Error("Alphabet() should reject empty actions")
	}
	if _, err := Alphabet([]string{"a"}, nil); err == nil {
		t.Error("Alphabet() should reject empty outputs")
	}
}

func TestAlphabet_Duplicates(t *testing.T) {
	if _, err := Alphabet([]string{"a", "a"}, []int{0}); err == nil {
		t.Error("Alphabet() should reject duplicate actions")
	}
	if _, err := Alphabet([]string{"a"}, []int{3, 3}); err == nil {
		t.Error("Alphabet() should reject duplicate outputs")
	}
}

func TestSymbol_Name(t *testing.T) {
	sym := Symbol{Action: "up", Output: 2}
	if got := sym.Name(); got != "up_2" {
		t.Errorf("Name() = %q, want up_2", got)
	}
}
