package convert

import (
	"github.com/automata-xyz/go-automata/automaton"
	"github.com/automata-xyz/go-automata/engine"
)

// EliminateEpsilon converts an ENFA into an equivalent NFA with the same
// states, alphabet, and start state and no epsilon transitions.
//
// Every state (reachable or not) becomes accepting when its epsilon
// closure touches an original final state. The new transition on
// (s, a) is the closure of the plain moves taken from closure({s});
// empty targets are left out of the relation entirely.
func EliminateEpsilon(enfa *automaton.Automaton) *automaton.Automaton {
	states := enfa.StateList()
	symbols := enfa.SymbolList()

	finals := make(map[string]bool)
	delta := make(map[string]map[string][]string, len(states))

	for _, state := range states {
		closure := engine.Closure(enfa, []string{state})
		if intersectsFinals(enfa, closure) {
			finals[state] = true
		}

		row := make(map[string][]string)
		for _, symbol := range symbols {
			target := moveUnion(enfa, closure, symbol)
			if len(target) == 0 {
				continue
			}
			target = engine.Closure(enfa, target)
			row[symbol] = target
		}
		delta[state] = row
	}

	return &automaton.Automaton{
		Kind:     automaton.NFA,
		States:   copySet(enfa.States),
		Alphabet: copySet(enfa.Alphabet),
		Delta:    delta,
		Start:    enfa.Start,
		Finals:   finals,
	}
}
