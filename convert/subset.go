// Package convert builds equivalent automata of a different variant.
// ToDFA removes nondeterminism via powerset construction and
// EliminateEpsilon folds epsilon closures into ordinary transitions.
// Both produce a fresh, independent model; the source is never touched.
// Given a validly constructed source, conversion cannot fail.
package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/automata-xyz/go-automata/automaton"
)

// ToDFA converts an NFA into an equivalent DFA by powerset construction.
// DFA states are named Q0, Q1, ... in first-discovery order, starting
// from the subset {nfa.Start}; symbols are expanded in sorted order, so
// the output is reproducible for a given input. A symbol whose move
// union is empty gets no transition at all: the DFA stays partial and no
// trap state is synthesized, matching the source NFA's rejection on the
// same inputs. The worklist is bounded by the number of distinct
// subsets, at most 2^|states|.
func ToDFA(nfa *automaton.Automaton) *automaton.Automaton {
	symbols := nfa.SymbolList()

	start := []string{nfa.Start}
	names := map[string]string{subsetKey(start): "Q0"}
	subsets := map[string][]string{subsetKey(start): start}
	queue := []string{subsetKey(start)}
	nextIndex := 1

	states := map[string]bool{"Q0": true}
	finals := make(map[string]bool)
	delta := make(map[string]map[string][]string)

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		name := names[key]
		members := subsets[key]

		if intersectsFinals(nfa, members) {
			finals[name] = true
		}

		row := make(map[string][]string)
		for _, symbol := range symbols {
			target := moveUnion(nfa, members, symbol)
			if len(target) == 0 {
				continue
			}
			targetKey := subsetKey(target)
			targetName, seen := names[targetKey]
			if !seen {
				targetName = fmt.Sprintf("Q%d", nextIndex)
				nextIndex++
				names[targetKey] = targetName
				subsets[targetKey] = target
				states[targetName] = true
				queue = append(queue, targetKey)
			}
			row[symbol] = []string{targetName}
		}
		delta[name] = row
	}

	return &automaton.Automaton{
		Kind:     automaton.DFA,
		States:   states,
		Alphabet: copySet(nfa.Alphabet),
		Delta:    delta,
		Start:    "Q0",
		Finals:   finals,
	}
}

// moveUnion returns the sorted union of symbol transitions over the
// member states.
func moveUnion(m *automaton.Automaton, members []string, symbol string) []string {
	union := make(map[string]bool)
	for _, state := range members {
		for _, target := range m.Targets(state, symbol) {
			union[target] = true
		}
	}
	if len(union) == 0 {
		return nil
	}
	out := make([]string, 0, len(union))
	for s := range union {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// subsetKey canonically encodes a sorted member list so that equal
// subsets map to the same DFA state regardless of discovery path.
func subsetKey(members []string) string {
	return strings.Join(members, "\x1f")
}

func intersectsFinals(m *automaton.Automaton, members []string) bool {
	for _, state := range members {
		if m.Finals[state] {
			return true
		}
	}
	return false
}

func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}
