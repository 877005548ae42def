package engine

import (
	"github.com/automata-xyz/go-automata/automaton"
)

// Closure returns the epsilon closure of the given states: every state
// reachable through zero or more epsilon transitions, in sorted order.
// The result always contains the input states, and applying Closure to
// its own output changes nothing.
func Closure(m *automaton.Automaton, states []string) []string {
	set := make(map[string]bool, len(states))
	for _, s := range states {
		set[s] = true
	}
	return stateSlice(closureSet(m, set))
}

// closureSet expands the set in place following epsilon edges with a
// worklist. A state enters the stack at most once, so epsilon cycles
// terminate.
func closureSet(m *automaton.Automaton, set map[string]bool) map[string]bool {
	stack := make([]string, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, target := range m.Targets(state, automaton.Epsilon) {
			if !set[target] {
				set[target] = true
				stack = append(stack, target)
			}
		}
	}
	return set
}
