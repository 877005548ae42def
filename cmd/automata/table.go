package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automata-xyz/go-automata/render"
)

func table(args []string) error {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	kindFlag := fs.String("kind", "", "Automaton kind: dfa, nfa, or enfa (default: inferred)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: automata table <model.json> [options]

Display the transition table. The start state is marked with "->",
accepting states with "*", and missing entries with "-".

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("model file required")
	}

	m, err := loadModel(fs.Arg(0), *kindFlag)
	if err != nil {
		return err
	}

	fmt.Print(render.TransitionTable(m))
	return nil
}
