package automaton

import "fmt"

// Validate checks the well-formedness of a document:
//   - states are dense and ordered by ascending id from 0,
//   - exactly one state is initial and exactly one is final,
//   - every transition endpoint lies within [0, N).
//
// All violations are collected and returned as an *AggregateError.
func Validate(doc *Document) error {
	var errs []error

	if len(doc.States) == 0 {
		errs = append(errs, &ValidationError{Element: "document", Index: -1, Reason: "no states"})
		return &AggregateError{Errors: errs}
	}

	initials, finals := 0, 0
	for i, s := range doc.States {
		if s.ID != i {
			errs = append(errs, &ValidationError{
				Element: "state",
				Index:   i,
				Reason:  fmt.Sprintf("id %d breaks dense ordering (want %d)", s.ID, i),
			})
		}
		if s.IsInitial {
			initials++
		}
		if s.IsFinal {
			finals++
		}
	}
	if initials != 1 {
		errs = append(errs, &ValidationError{
			Element: "document",
			Index:   -1,
			Reason:  fmt.Sprintf("expected exactly one initial state, got %d", initials),
		})
	}
	if finals != 1 {
		errs = append(errs, &ValidationError{
			Element: "document",
			Index:   -1,
			Reason:  fmt.Sprintf("expected exactly one final state, got %d", finals),
		})
	}

	n := len(doc.States)
	for i, t := range doc.Transitions {
		if t.From < 0 || t.From >= n {
			errs = append(errs, &ValidationError{
				Element: "transition",
				Index:   i,
				Reason:  fmt.Sprintf("from %d out of range [0, %d)", t.From, n),
			})
		}
		if t.To < 0 || t.To >= n {
			errs = append(errs, &ValidationError{
				Element: "transition",
				Index:   i,
				Reason:  fmt.Sprintf("to %d out of range [0, %d)", t.To, n),
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
