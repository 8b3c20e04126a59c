package generator

import "github.com/MasWag/hyppau-fixtures/pkg/automaton"

// Stuttering generates the stuttering-robustness instance for the given
// actions and outputs.
//
// The automaton has three layers plus a single initial and a single
// final state. From the initial state, announcing any symbol (phase 0)
// enters that symbol's branch state, which absorbs repeated identical
// announces via a self-loop. Confirming the symbol (phase 1) locks into
// the symbol's lock-in state; confirming the same action with any other
// output rejects into the final trap state. From a lock-in state, every
// other symbol can be announced, entering a chase state that again
// absorbs stutter, routes a correct confirmation back into that other
// symbol's own lock-in state, and routes any mismatched confirmation to
// the trap. The trap is therefore reachable only through a single
// mismatched phase-1 confirmation, at any depth; the always-consistent
// path cycles through lock-in states forever.
//
// With A = len(actions) * len(outputs), the instance has exactly
// 2A + A*(A-1) + 2 states. State ids are deterministic: initial 0,
// branch states 1..A, lock-in states A+1..2A, chase states above, final
// last. Transition order is construction order and is stable across
// runs.
func Stuttering(actions []string, outputs []int) (*automaton.Document, error) {
	alphabet, err := Alphabet(actions, outputs)
	if err != nil {
		return nil, err
	}
	b := &stutteringBuilder{
		alphabet: alphabet,
		outputs:  outputs,
		letters:  make(map[letterKey]int, len(alphabet)),
	}
	b.allocate()
	b.buildSkeleton()
	b.buildChase()
	return b.doc, nil
}

// letterKey addresses the letter map: which state represents "just
// confirmed this symbol at this phase".
type letterKey struct {
	symbol Symbol
	phase  int
}

// stutteringBuilder is the arena for one generation run. State handles
// for each logical group (branch, lock-in, chase) are allocated up
// front, so the construction below never does offset arithmetic on raw
// loop indices.
type stutteringBuilder struct {
	alphabet []Symbol
	outputs  []int

	doc    *automaton.Document
	final  int
	branch []int // per symbol index
	lockIn []int // per symbol index

	// letters maps (symbol, phase 1) to the symbol's lock-in state. It
	// is written once per symbol during the skeleton pass and only read
	// by the chase pass.
	letters map[letterKey]int
}

func (b *stutteringBuilder) allocate() {
	a := len(b.alphabet)
	n := 2*a + a*(a-1) + 2

	b.doc = newDocument(2, n)
	b.final = n - 1
	b.branch = make([]int, a)
	b.lockIn = make([]int, a)
	for i := range b.alphabet {
		b.branch[i] = i + 1
		b.lockIn[i] = i + 1 + a
	}
}

// chase returns the handle of the chase state for the rank-th other
// symbol (1-based, in alphabet order) of symbol index i.
func (b *stutteringBuilder) chase(i, rank int) int {
	return b.branch[i] + len(b.alphabet)*(1+rank)
}

// buildSkeleton emits the branch and lock-in layers and registers each
// symbol's confirmed lock-in state in the letter map.
func (b *stutteringBuilder) buildSkeleton() {
	for i, sym := range b.alphabet {
		b.emit(0, b.branch[i], sym, 0)
		b.emit(b.branch[i], b.branch[i], sym, 0)
		b.emit(b.branch[i], b.lockIn[i], sym, 1)
		for _, out := range b.outputs {
			if out != sym.Output {
				b.emit(b.branch[i], b.final, Symbol{Action: sym.Action, Output: out}, 1)
			}
		}
		b.emit(b.lockIn[i], b.lockIn[i], sym, 1)
		b.letters[letterKey{symbol: sym, phase: 1}] = b.lockIn[i]
	}
}

// buildChase emits, for every lock-in state, one chase chain per other
// symbol. A correct confirmation splices back into that symbol's own
// lock-in state via the letter map, so the accepting prefix is
// independent of which symbol was confirmed before.
func (b *stutteringBuilder) buildChase() {
	for i, sym := range b.alphabet {
		rank := 1
		for _, other := range b.alphabet {
			if other == sym {
				continue
			}
			state := b.chase(i, rank)
			b.emit(b.lockIn[i], state, other, 0)
			b.emit(state, state, other, 0)
			b.emit(state, b.letters[letterKey{symbol: other, phase: 1}], other, 1)
			for _, out := range b.outputs {
				if out != other.Output {
					b.emit(state, b.final, Symbol{Action: other.Action, Output: out}, 1)
				}
			}
			rank++
		}
	}
}

func (b *stutteringBuilder) emit(from, to int, sym Symbol, phase int) {
	b.doc.Transitions = append(b.doc.Transitions, automaton.Transition{
		From:  from,
		To:    to,
		Label: automaton.Label{Symbol: sym.Name(), Value: phase},
	})
}

// newDocument allocates a document with n states, state 0 initial and
// state n-1 final.
func newDocument(dimensions, n int) *automaton.Document {
	doc := &automaton.Document{
		Dimensions: dimensions,
		States:     make([]automaton.State, n),
	}
	for i := range doc.States {
		doc.States[i] = automaton.State{
			ID:        i,
			IsInitial: i == 0,
			IsFinal:   i == n-1,
		}
	}
	return doc
}
