package automaton

import (
	"fmt"
	"sort"
)

// ConfigurationError reports the structural violations that made a
// definition unusable. All violations are collected before construction
// fails; no partial model is produced.
type ConfigurationError struct {
	Violations []string
}

// Error summarizes the violation count. The individual messages are in
// Violations, in check order.
func (e *ConfigurationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("automaton: invalid configuration: %s", e.Violations[0])
	}
	return fmt.Sprintf("automaton: invalid configuration: %d violations", len(e.Violations))
}

// Construct builds an immutable Automaton from a structural description.
//
// Four conditions are fatal and abort construction: the start state must
// be declared, every final state must be declared, and every transition
// source and target must be declared. They are checked in that order and
// collected into a single ConfigurationError.
//
// Two further conditions are advisory only: a transition symbol missing
// from the alphabet (epsilon exempt) and a state without a transition for
// some alphabet symbol. Construction succeeds despite advisories; they
// are returned as ordered strings for the caller to report. An incomplete
// relation simply rejects more words at run time.
func Construct(kind Kind, def *Definition) (*Automaton, []string, error) {
	states := make(map[string]bool, len(def.States))
	for _, s := range def.States {
		states[s] = true
	}
	alphabet := make(map[string]bool, len(def.Alphabet))
	for _, s := range def.Alphabet {
		alphabet[s] = true
	}

	var violations []string

	if !states[def.Start] {
		violations = append(violations, fmt.Sprintf("start state %q is not declared in states", def.Start))
	}
	for _, f := range sortedSlice(def.Finals) {
		if !states[f] {
			violations = append(violations, fmt.Sprintf("final state %q is not declared in states", f))
		}
	}

	sources := make([]string, 0, len(def.Transitions))
	for s := range def.Transitions {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	for _, src := range sources {
		if !states[src] {
			violations = append(violations, fmt.Sprintf("transition source %q is not declared in states", src))
		}
	}
	for _, src := range sources {
		for _, symbol := range sortedTransitionSymbols(def.Transitions[src]) {
			for _, target := range def.Transitions[src][symbol] {
				if !states[target] {
					violations = append(violations, fmt.Sprintf("transition target %q (from %q on %q) is not declared in states", target, src, symbol))
				}
			}
		}
	}

	if len(violations) > 0 {
		return nil, nil, &ConfigurationError{Violations: violations}
	}

	var advisories []string
	for _, src := range sources {
		for _, symbol := range sortedTransitionSymbols(def.Transitions[src]) {
			if symbol != Epsilon && !alphabet[symbol] {
				advisories = append(advisories, fmt.Sprintf("transition symbol %q (from %q) is not declared in the alphabet", symbol, src))
			}
		}
	}
	symbols := sortedSlice(def.Alphabet)
	for _, state := range sortedSlice(def.States) {
		row, ok := def.Transitions[state]
		if !ok {
			advisories = append(advisories, fmt.Sprintf("state %q has no transitions", state))
			continue
		}
		for _, symbol := range symbols {
			if len(row[symbol]) == 0 {
				advisories = append(advisories, fmt.Sprintf("state %q has no transition on %q", state, symbol))
			}
		}
	}

	delta := make(map[string]map[string][]string, len(def.Transitions))
	for src, row := range def.Transitions {
		out := make(map[string][]string, len(row))
		for symbol, targets := range row {
			if len(targets) == 0 {
				continue
			}
			out[symbol] = dedupSorted(targets)
		}
		delta[src] = out
	}

	finals := make(map[string]bool, len(def.Finals))
	for _, f := range def.Finals {
		finals[f] = true
	}

	return &Automaton{
		Kind:     kind,
		States:   states,
		Alphabet: alphabet,
		Delta:    delta,
		Start:    def.Start,
		Finals:   finals,
	}, advisories, nil
}

func sortedSlice(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func sortedTransitionSymbols(row map[string]TargetList) []string {
	symbols := make([]string, 0, len(row))
	for s := range row {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

func dedupSorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if i == 0 || s != out[n-1] {
			out[n] = s
			n++
		}
	}
	return out[:n]
}
