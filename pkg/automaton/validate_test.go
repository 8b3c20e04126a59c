package automaton

import "testing"

func validDoc() *Document {
	return &Document{
		Dimensions: 2,
		States: []State{
			{ID: 0, IsInitial: true},
			{ID: 1},
			{ID: 2, IsFinal: true},
		},
		Transitions: []Transition{
			{From: 0, To: 1, Label: Label{Symbol: "a_0", Value: 0}},
			{From: 1, To: 2, Label: Label{Symbol: "a_1", Value: 1}},
		},
	}
}

func TestValidate_Success(t *testing.T) {
	if err := Validate(validDoc()); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_Empty(t *testing.T) {
	err := Validate(&Document{})
	if err == nil {
		t.Fatal("Validate() should reject a document with no states")
	}
}

func TestValidate_SparseIDs(t *testing.T) {
	doc := validDoc()
	doc.States[1].ID = 5

	err := Validate(doc)
	if err == nil {
		t.Fatal("Validate() should reject non-dense state ids")
	}
}

func TestValidate_InitialFinalCounts(t *testing.T) {
	doc := validDoc()
	doc.States[1].IsInitial = true
	doc.States[2].IsFinal = false

	err := Validate(doc)
	if err == nil {
		t.Fatal("Validate() should reject wrong initial/final counts")
	}

	errs := ValidationErrors(err)
	if len(errs) != 2 {
		t.Errorf("Validate() = %d errors, want 2", len(errs))
	}
}

func TestValidate_TransitionOutOfRange(t *testing.T) {
	doc := validDoc()
	doc.Transitions = append(doc.Transitions, Transition{From: 1, To: 99})

	err := Validate(doc)
	if err == nil {
		t.Fatal("Validate() should reject out-of-range transition endpoints")
	}

	errs := ValidationErrors(err)
	if len(errs) != 1 {
		t.Fatalf("Validate() = %d errors, want 1", len(errs))
	}
	validErr, ok := errs[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", errs[0])
	}
	if validErr.Element != "transition" || validErr.Index != 2 {
		t.Errorf("error = %v, want transition 2", validErr)
	}
}
