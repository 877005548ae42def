package main

import (
	"fmt"

	"github.com/automata-xyz/go-automata/automaton"
	"github.com/automata-xyz/go-automata/parser"
)

// loadModel reads a definition file and constructs the automaton.
// Advisories are reported to stdout; fatal violations become the error.
func loadModel(path, kindFlag string) (*automaton.Automaton, error) {
	def, err := parser.ReadFile(path)
	if err != nil {
		return nil, err
	}
	kind, err := parseKind(kindFlag, def)
	if err != nil {
		return nil, err
	}
	m, advisories, err := automaton.Construct(kind, def)
	if err != nil {
		return nil, fmt.Errorf("construct %s: %w", path, err)
	}
	for _, adv := range advisories {
		fmt.Printf("warning: %s\n", adv)
	}
	return m, nil
}
