package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automata-xyz/go-automata/engine"
	"github.com/automata-xyz/go-automata/render"
	"github.com/automata-xyz/go-automata/store"
)

func run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	kindFlag := fs.String("kind", "", "Automaton kind: dfa, nfa, or enfa (default: inferred)")
	trace := fs.Bool("trace", false, "Print the step-by-step trace")
	logPath := fs.String("log", "", "Record the run in a SQLite run log at this path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: automata run <model.json> <word> [options]

Process a word and report acceptance.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  automata run dfa.json 0110 --trace
  automata run nfa.json aab --log runs.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("model file and word required")
	}

	modelFile := fs.Arg(0)
	word := fs.Arg(1)

	m, err := loadModel(modelFile, *kindFlag)
	if err != nil {
		return err
	}

	res := engine.Run(m, word)

	if *trace {
		for _, line := range render.Trace(word, res) {
			fmt.Println(line)
		}
	} else {
		fmt.Println(render.Verdict(word, res))
	}

	if *logPath != "" {
		db, err := store.NewSQLiteStore(*logPath)
		if err != nil {
			return err
		}
		defer db.Close()

		name := filepath.Base(modelFile)
		ctx := context.Background()
		if err := db.SaveModel(ctx, name, m.Kind, m.Definition()); err != nil {
			return err
		}
		if err := db.RecordRun(ctx, store.NewRun(name, m.Kind, word, res)); err != nil {
			return err
		}
	}
	return nil
}
