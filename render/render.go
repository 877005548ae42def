// Package render formats automata and run traces for terminal output.
// Everything here consumes the structured results produced by the core
// packages and returns plain strings; nothing in the core prints.
package render

import (
	"fmt"
	"strings"

	"github.com/automata-xyz/go-automata/automaton"
	"github.com/automata-xyz/go-automata/engine"
)

// TransitionTable renders the transition relation as a text table.
// The start state is marked with "->", accepting states with "*", and
// missing entries with "-". The epsilon column comes first when the
// model has epsilon transitions.
func TransitionTable(m *automaton.Automaton) string {
	symbols := m.SymbolList()
	if m.HasEpsilon() {
		symbols = append([]string{automaton.Epsilon}, symbols...)
	}

	rows := make([][]string, 0, len(m.States)+1)
	header := append([]string{"state"}, symbols...)
	rows = append(rows, header)

	for _, state := range m.StateList() {
		label := "  "
		if state == m.Start {
			label = "->"
		}
		if m.Finals[state] {
			label += "*"
		} else {
			label += " "
		}
		row := []string{label + state}
		for _, symbol := range symbols {
			row = append(row, formatTargets(m.Targets(state, symbol)))
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for r, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString(" | ")
			}
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteString("\n")
		if r == 0 {
			b.WriteString(strings.Repeat("-", tableWidth(widths)))
			b.WriteString("\n")
		}
	}
	b.WriteString("-> start state, * accepting state\n")
	return b.String()
}

func formatTargets(targets []string) string {
	switch len(targets) {
	case 0:
		return "-"
	case 1:
		return targets[0]
	default:
		return "{" + strings.Join(targets, ", ") + "}"
	}
}

func tableWidth(widths []int) int {
	total := 3 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

// Trace renders a run as one line per step plus a verdict line.
func Trace(word string, r *engine.Result) []string {
	lines := make([]string, 0, len(r.Steps)+1)
	for _, step := range r.Steps {
		if step.Index == 0 {
			lines = append(lines, fmt.Sprintf("start: %s | word %q", formatConfig(step.States), word))
			continue
		}
		lines = append(lines, fmt.Sprintf("step %d: %q -> %s | remaining %q",
			step.Index, step.Symbol, formatConfig(step.States), step.Remaining))
	}
	lines = append(lines, Verdict(word, r))
	return lines
}

// Verdict summarizes the outcome of a run in one line.
func Verdict(word string, r *engine.Result) string {
	if r.Accepted {
		return fmt.Sprintf("word %q accepted, final %s", word, formatConfig(r.Final))
	}
	if r.Reason != "" {
		return fmt.Sprintf("word %q rejected (%s)", word, r.Reason)
	}
	return fmt.Sprintf("word %q rejected, final %s", word, formatConfig(r.Final))
}

func formatConfig(states []string) string {
	if len(states) == 0 {
		return "{}"
	}
	if len(states) == 1 {
		return states[0]
	}
	return "{" + strings.Join(states, ", ") + "}"
}

// SideBySide lays out two traces in parallel columns, padding the
// shorter one. Used to compare a source model against its conversion on
// the same word.
func SideBySide(leftTitle string, left []string, rightTitle string, right []string) string {
	width := len(leftTitle)
	for _, line := range left {
		if len(line) > width {
			width = len(line)
		}
	}

	for len(left) < len(right) {
		left = append(left, "")
	}
	for len(right) < len(left) {
		right = append(right, "")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s | %s\n", width, leftTitle, rightTitle)
	b.WriteString(strings.Repeat("-", width+1) + "+" + strings.Repeat("-", len(rightTitle)+2) + "\n")
	for i := range left {
		fmt.Fprintf(&b, "%-*s | %s\n", width, left[i], right[i])
	}
	return b.String()
}
