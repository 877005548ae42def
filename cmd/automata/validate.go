package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/automata-xyz/go-automata/automaton"
	"github.com/automata-xyz/go-automata/parser"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	kindFlag := fs.String("kind", "", "Automaton kind: dfa, nfa, or enfa (default: inferred)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: automata validate <model.json> [options]

Check a model description for structural problems.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Fatal violations (construction fails):
  - start state not declared
  - final state not declared
  - transition source or target not declared

Advisories (construction succeeds):
  - transition symbol missing from the alphabet
  - state without a transition for some alphabet symbol
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("model file required")
	}

	def, err := parser.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	kind, err := parseKind(*kindFlag, def)
	if err != nil {
		return err
	}

	_, advisories, err := automaton.Construct(kind, def)
	var confErr *automaton.ConfigurationError
	if errors.As(err, &confErr) {
		fmt.Printf("Model: %s (%s)\n", fs.Arg(0), kind)
		fmt.Println("Status: invalid")
		for _, v := range confErr.Violations {
			fmt.Printf("  error: %s\n", v)
		}
		return fmt.Errorf("%d fatal violation(s)", len(confErr.Violations))
	}
	if err != nil {
		return err
	}

	fmt.Printf("Model: %s (%s)\n", fs.Arg(0), kind)
	fmt.Println("Status: valid")
	for _, adv := range advisories {
		fmt.Printf("  warning: %s\n", adv)
	}
	return nil
}
