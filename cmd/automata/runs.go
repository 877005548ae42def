package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/automata-xyz/go-automata/store"
)

func runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	logPath := fs.String("log", "runs.db", "SQLite run log path")
	model := fs.String("model", "", "Only show runs for this model")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: automata runs [options]

List recorded runs from a run log created with "automata run --log".

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := store.NewSQLiteStore(*logPath)
	if err != nil {
		return err
	}
	defer db.Close()

	recorded, err := db.ListRuns(context.Background(), *model)
	if err != nil {
		return err
	}
	if len(recorded) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, r := range recorded {
		verdict := "rejected"
		if r.Accepted {
			verdict = "accepted"
		}
		detail := ""
		if r.Reason != "" {
			detail = fmt.Sprintf(" (%s)", r.Reason)
		}
		fmt.Printf("%s  %-6s %-20s %-12q %s%s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.Kind, r.Model, r.Word, verdict, detail)
	}
	return nil
}
