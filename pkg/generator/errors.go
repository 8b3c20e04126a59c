package generator

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a generator kind is not registered.
var ErrUnknownKind = errors.New("unknown generator kind")

// ConfigError reports an invalid generator configuration. Generation
// fails before any construction begins; no partial document is produced.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func checkActions(actions []string) error {
	if len(actions) == 0 {
		return &ConfigError{Field: "actions", Reason: "must not be empty"}
	}
	seen := make(map[string]bool, len(actions))
	for _, act := range actions {
		if act == "" {
			return &ConfigError{Field: "actions", Reason: "must not contain empty names"}
		}
		if seen[act] {
			return &ConfigError{Field: "actions", Reason: fmt.Sprintf("duplicate action %q", act)}
		}
		seen[act] = true
	}
	return nil
}

func checkOutputs(outputs []int) error {
	if len(outputs) == 0 {
		return &ConfigError{Field: "outputs", Reason: "must not be empty"}
	}
	seen := make(map[int]bool, len(outputs))
	for _, out := range outputs {
		if seen[out] {
			return &ConfigError{Field: "outputs", Reason: fmt.Sprintf("duplicate output %d", out)}
		}
		seen[out] = true
	}
	return nil
}
