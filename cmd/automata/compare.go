package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automata-xyz/go-automata/engine"
	"github.com/automata-xyz/go-automata/render"
)

func compare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	kindFlag := fs.String("kind", "", "Source automaton kind: dfa, nfa, or enfa (default: inferred)")
	to := fs.String("to", "dfa", "Conversion target: dfa or nfa")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: automata compare <model.json> <word> [options]

Run a word through a model and through its conversion, then print both
traces side by side. The two runs must agree on acceptance.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("model file and word required")
	}

	word := fs.Arg(1)

	m, err := loadModel(fs.Arg(0), *kindFlag)
	if err != nil {
		return err
	}
	converted, err := convertTo(m, *to)
	if err != nil {
		return err
	}

	left := engine.Run(m, word)
	right := engine.Run(converted, word)

	fmt.Print(render.SideBySide(
		fmt.Sprintf("Trace (%s)", m.Kind), render.Trace(word, left),
		fmt.Sprintf("Trace (%s)", converted.Kind), render.Trace(word, right),
	))

	if left.Accepted != right.Accepted {
		return fmt.Errorf("conversion mismatch: source accepted=%v, converted accepted=%v", left.Accepted, right.Accepted)
	}
	return nil
}
