// Package automaton implements the core finite-automaton data model.
// An automaton is a set of states, an input alphabet, a transition
// relation, one start state, and a set of accepting states. Deterministic
// (DFA), nondeterministic (NFA), and epsilon-capable (ENFA) automata all
// share the same relation structure; only the stepping strategy differs.
package automaton

import (
	"sort"
)

// Epsilon is the reserved marker for transitions that consume no input.
// It may appear as a transition key in ENFA models but is never a member
// of the alphabet.
const Epsilon = "epsilon"

// Kind identifies the automaton variant.
type Kind string

const (
	// DFA maps each (state, symbol) pair to at most one target state.
	DFA Kind = "dfa"
	// NFA maps each (state, symbol) pair to a set of target states.
	NFA Kind = "nfa"
	// ENFA is an NFA that additionally allows epsilon transitions.
	ENFA Kind = "enfa"
)

// Automaton is an immutable finite automaton. Build one with Construct
// (from a Definition) or with the fluent Builder; do not mutate the maps
// after construction.
type Automaton struct {
	Kind     Kind
	States   map[string]bool
	Alphabet map[string]bool
	// Delta maps state -> symbol (or Epsilon) -> sorted target states.
	Delta  map[string]map[string][]string
	Start  string
	Finals map[string]bool
}

// Targets returns the target states for (state, symbol), or nil when the
// transition is undefined. The returned slice is shared and must not be
// modified.
func (a *Automaton) Targets(state, symbol string) []string {
	row, ok := a.Delta[state]
	if !ok {
		return nil
	}
	return row[symbol]
}

// HasEpsilon reports whether any state has an epsilon transition.
func (a *Automaton) HasEpsilon() bool {
	for _, row := range a.Delta {
		if len(row[Epsilon]) > 0 {
			return true
		}
	}
	return false
}

// StateList returns the states in sorted order.
func (a *Automaton) StateList() []string {
	return sortedKeys(a.States)
}

// SymbolList returns the alphabet in sorted order.
func (a *Automaton) SymbolList() []string {
	return sortedKeys(a.Alphabet)
}

// FinalList returns the accepting states in sorted order.
func (a *Automaton) FinalList() []string {
	return sortedKeys(a.Finals)
}

// Definition exports the automaton back to its structural description.
// The result is valid construction input, so models round-trip through
// Definition -> Construct unchanged.
func (a *Automaton) Definition() *Definition {
	def := &Definition{
		States:      a.StateList(),
		Alphabet:    a.SymbolList(),
		Transitions: make(map[string]map[string]TargetList, len(a.Delta)),
		Start:       a.Start,
		Finals:      a.FinalList(),
	}
	for state, row := range a.Delta {
		if len(row) == 0 {
			continue
		}
		out := make(map[string]TargetList, len(row))
		for symbol, targets := range row {
			out[symbol] = append(TargetList(nil), targets...)
		}
		def.Transitions[state] = out
	}
	return def
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
