package automaton

import "fmt"

// ValidationError reports a single well-formedness violation in a document.
type ValidationError struct {
	Element string // "document", "state", or "transition"
	Index   int    // position within the offending list, -1 for document-level
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Element, e.Reason)
	}
	return fmt.Sprintf("%s %d: %s", e.Element, e.Index, e.Reason)
}

// AggregateError collects multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// ValidationErrors returns all collected errors if err is an
// AggregateError, otherwise nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
