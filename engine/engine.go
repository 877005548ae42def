// Package engine runs words against automata. Each variant has its own
// stepping strategy over the shared model: a DFA tracks one current
// state, an NFA tracks a set of active states, and an ENFA additionally
// applies epsilon closure around every move. Running a word is a pure
// function of (model, word); rejection is a normal outcome carried in
// the Result, never an error.
package engine

import (
	"sort"

	"github.com/automata-xyz/go-automata/automaton"
)

// Rejection reasons recorded in Result.Reason. An accepted run, and a
// run that consumed the whole word but ended outside the final states,
// both leave Reason empty.
const (
	ReasonSymbolNotInAlphabet = "symbol outside alphabet"
	ReasonNoTransition        = "no transition"
	ReasonNoReachableStates   = "no reachable states"
)

// Step records one trace entry. Step 0 is the initial configuration
// with an empty Symbol and the whole word remaining.
type Step struct {
	Index     int      `json:"index"`
	Symbol    string   `json:"symbol,omitempty"`
	States    []string `json:"states"`
	Remaining string   `json:"remaining"`
}

// Result is the outcome of running a word.
type Result struct {
	Accepted bool     `json:"accepted"`
	Reason   string   `json:"reason,omitempty"`
	Steps    []Step   `json:"steps"`
	Final    []string `json:"final"`
}

// Run processes the word with the stepping strategy matching m.Kind.
// Identical (model, word) pairs always produce identical results.
func Run(m *automaton.Automaton, word string) *Result {
	switch m.Kind {
	case automaton.DFA:
		return runDeterministic(m, word)
	case automaton.ENFA:
		return runEpsilon(m, word)
	default:
		return runNondeterministic(m, word)
	}
}

func runDeterministic(m *automaton.Automaton, word string) *Result {
	current := m.Start
	res := &Result{Steps: []Step{{Index: 0, States: []string{current}, Remaining: word}}}

	runes := []rune(word)
	for i, r := range runes {
		symbol := string(r)
		if !m.Alphabet[symbol] {
			return reject(res, ReasonSymbolNotInAlphabet, []string{current})
		}
		targets := m.Targets(current, symbol)
		if len(targets) == 0 {
			return reject(res, ReasonNoTransition, []string{current})
		}
		current = targets[0]
		res.Steps = append(res.Steps, Step{
			Index:     i + 1,
			Symbol:    symbol,
			States:    []string{current},
			Remaining: string(runes[i+1:]),
		})
	}

	res.Accepted = m.Finals[current]
	res.Final = []string{current}
	return res
}

func runNondeterministic(m *automaton.Automaton, word string) *Result {
	active := map[string]bool{m.Start: true}
	res := &Result{Steps: []Step{{Index: 0, States: stateSlice(active), Remaining: word}}}

	runes := []rune(word)
	for i, r := range runes {
		symbol := string(r)
		if !m.Alphabet[symbol] {
			return reject(res, ReasonSymbolNotInAlphabet, stateSlice(active))
		}
		active = move(m, active, symbol)
		if len(active) == 0 {
			return reject(res, ReasonNoReachableStates, nil)
		}
		res.Steps = append(res.Steps, Step{
			Index:     i + 1,
			Symbol:    symbol,
			States:    stateSlice(active),
			Remaining: string(runes[i+1:]),
		})
	}

	res.Accepted = intersectsFinals(m, active)
	res.Final = stateSlice(active)
	return res
}

func runEpsilon(m *automaton.Automaton, word string) *Result {
	active := closureSet(m, map[string]bool{m.Start: true})
	res := &Result{Steps: []Step{{Index: 0, States: stateSlice(active), Remaining: word}}}

	runes := []rune(word)
	for i, r := range runes {
		symbol := string(r)
		if !m.Alphabet[symbol] {
			return reject(res, ReasonSymbolNotInAlphabet, stateSlice(active))
		}
		active = closureSet(m, move(m, active, symbol))
		if len(active) == 0 {
			return reject(res, ReasonNoReachableStates, nil)
		}
		res.Steps = append(res.Steps, Step{
			Index:     i + 1,
			Symbol:    symbol,
			States:    stateSlice(active),
			Remaining: string(runes[i+1:]),
		})
	}

	res.Accepted = intersectsFinals(m, active)
	res.Final = stateSlice(active)
	return res
}

// move computes the union of symbol transitions over the active set.
func move(m *automaton.Automaton, active map[string]bool, symbol string) map[string]bool {
	next := make(map[string]bool)
	for state := range active {
		for _, target := range m.Targets(state, symbol) {
			next[target] = true
		}
	}
	return next
}

func intersectsFinals(m *automaton.Automaton, active map[string]bool) bool {
	for state := range active {
		if m.Finals[state] {
			return true
		}
	}
	return false
}

func reject(res *Result, reason string, final []string) *Result {
	res.Reason = reason
	res.Final = final
	return res
}

func stateSlice(set map[string]bool) []string {
	states := make([]string, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}
