package main

import (
	"fmt"
	"os"

	"github.com/automata-xyz/go-automata/automaton"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "run":
		if err := run(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "convert":
		if err := convertCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "table":
		if err := table(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compare":
		if err := compare(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "runs":
		if err := runs(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("automata version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`automata - finite-state automaton tool

Usage:
  automata <command> [options]

Commands:
  validate   Check a model description for structural problems
  run        Process a word and show the trace
  convert    Convert NFA to DFA or ENFA to NFA
  table      Display the transition table
  compare    Run a model and its conversion side by side
  runs       List recorded runs from a run log
  help       Show this help message
  version    Show version information

Examples:
  # Validate a model (kind inferred from the transitions)
  automata validate nfa.json

  # Run a word with a step-by-step trace
  automata run nfa.json aab --trace

  # Convert an NFA to a DFA and save the result
  automata convert nfa.json --to dfa --output dfa.json

  # Compare an ENFA against its epsilon-free conversion
  automata compare enfa.json a --to nfa`)
}

// detectKind infers the automaton variant from its transitions: any
// epsilon key makes it an ENFA, any multi-target entry an NFA, and a
// purely singleton relation a DFA.
func detectKind(def *automaton.Definition) automaton.Kind {
	kind := automaton.DFA
	for _, row := range def.Transitions {
		for symbol, targets := range row {
			if symbol == automaton.Epsilon {
				return automaton.ENFA
			}
			if len(targets) > 1 {
				kind = automaton.NFA
			}
		}
	}
	return kind
}

func parseKind(flagValue string, def *automaton.Definition) (automaton.Kind, error) {
	switch flagValue {
	case "":
		return detectKind(def), nil
	case "dfa":
		return automaton.DFA, nil
	case "nfa":
		return automaton.NFA, nil
	case "enfa":
		return automaton.ENFA, nil
	default:
		return "", fmt.Errorf("unknown kind %q (want dfa, nfa, or enfa)", flagValue)
	}
}
