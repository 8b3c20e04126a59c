// Package generator builds the synthetic transition-system fixtures:
// deterministic labeled automata used to benchmark hyperproperty
// pattern-matching implementations.
//
// Three generators are registered. The stuttering-robustness generator
// is the combinatorial core: it grows quadratically in the alphabet size
// and exercises a checker's insensitivity to repeated outputs. The
// dimensions and interference generators produce structurally simple
// chains and trees for scaling and interference scenarios.
//
// All generators are pure functions: one call takes complete
// configuration and returns a complete document, with no shared state
// between calls. Concurrent generation is safe.
package generator
