// Package automaton defines the JSON document schema shared by every
// fixture generator: states with dense positional ids, labeled
// transitions, and the enclosing document with its dimension count.
//
// The package also provides deterministic encoding (2-space-indented
// JSON, stable field order) and structural validation. Semantics of the
// graphs live in pkg/generator; this package only knows the shape.
package automaton
