package engine

import (
	"reflect"
	"testing"

	"github.com/automata-xyz/go-automata/automaton"
)

// Helper: DFA accepting words with an odd number of 1s.
func parityDFA() *automaton.Automaton {
	return automaton.Build(automaton.DFA).
		States("A", "B").
		Symbols("0", "1").
		Start("A").
		Final("B").
		On("A", "0", "A").
		On("A", "1", "B").
		On("B", "0", "B").
		On("B", "1", "A").
		MustDone()
}

// Helper: NFA accepting words containing the substring "ab".
func substringNFA() *automaton.Automaton {
	return automaton.Build(automaton.NFA).
		States("S", "A", "F").
		Symbols("a", "b").
		Start("S").
		Final("F").
		On("S", "a", "S", "A").
		On("S", "b", "S").
		On("A", "b", "F").
		On("F", "a", "F").
		On("F", "b", "F").
		MustDone()
}

// Helper: ENFA with the chain p -eps-> q -a-> r.
func chainENFA() *automaton.Automaton {
	return automaton.Build(automaton.ENFA).
		States("p", "q", "r").
		Symbols("a").
		Start("p").
		Final("r").
		Eps("p", "q").
		On("q", "a", "r").
		MustDone()
}

// === Deterministic stepping ===

func TestDFAParity(t *testing.T) {
	m := parityDFA()

	res := Run(m, "01")
	if !res.Accepted {
		t.Error(`expected "01" accepted`)
	}
	if !reflect.DeepEqual(res.Final, []string{"B"}) {
		t.Errorf(`expected "01" to end in B, got %v`, res.Final)
	}

	res = Run(m, "00")
	if res.Accepted {
		t.Error(`expected "00" rejected`)
	}
	if !reflect.DeepEqual(res.Final, []string{"A"}) {
		t.Errorf(`expected "00" to end in A, got %v`, res.Final)
	}
	if res.Reason != "" {
		t.Errorf("plain non-acceptance must carry no reason, got %q", res.Reason)
	}
}

func TestDFATrace(t *testing.T) {
	res := Run(parityDFA(), "01")

	want := []Step{
		{Index: 0, Symbol: "", States: []string{"A"}, Remaining: "01"},
		{Index: 1, Symbol: "0", States: []string{"A"}, Remaining: "1"},
		{Index: 2, Symbol: "1", States: []string{"B"}, Remaining: ""},
	}
	if !reflect.DeepEqual(res.Steps, want) {
		t.Errorf("trace = %+v, want %+v", res.Steps, want)
	}
}

func TestDFASymbolOutsideAlphabet(t *testing.T) {
	res := Run(parityDFA(), "0x1")
	if res.Accepted {
		t.Error("expected rejection")
	}
	if res.Reason != ReasonSymbolNotInAlphabet {
		t.Errorf("reason = %q, want %q", res.Reason, ReasonSymbolNotInAlphabet)
	}
	// Trace keeps the steps accumulated before the bad symbol.
	if len(res.Steps) != 2 {
		t.Errorf("expected 2 trace entries, got %d", len(res.Steps))
	}
}

func TestDFANoTransition(t *testing.T) {
	m := automaton.Build(automaton.DFA).
		States("A", "B").
		Symbols("0", "1").
		Start("A").
		Final("B").
		On("A", "0", "B").
		MustDone()

	res := Run(m, "01")
	if res.Accepted || res.Reason != ReasonNoTransition {
		t.Errorf("expected %q rejection, got %+v", ReasonNoTransition, res)
	}
}

// === Nondeterministic stepping ===

func TestNFASubstring(t *testing.T) {
	m := substringNFA()

	if res := Run(m, "aab"); !res.Accepted {
		t.Errorf(`expected "aab" accepted, got %+v`, res)
	}
	if res := Run(m, "ba"); res.Accepted {
		t.Errorf(`expected "ba" rejected, got %+v`, res)
	}
}

func TestNFATraceRecordsActiveSets(t *testing.T) {
	res := Run(substringNFA(), "ab")

	want := []Step{
		{Index: 0, Symbol: "", States: []string{"S"}, Remaining: "ab"},
		{Index: 1, Symbol: "a", States: []string{"A", "S"}, Remaining: "b"},
		{Index: 2, Symbol: "b", States: []string{"F", "S"}, Remaining: ""},
	}
	if !reflect.DeepEqual(res.Steps, want) {
		t.Errorf("trace = %+v, want %+v", res.Steps, want)
	}
}

func TestNFANoReachableStates(t *testing.T) {
	m := automaton.Build(automaton.NFA).
		States("S", "F").
		Symbols("a", "b").
		Start("S").
		Final("F").
		On("S", "a", "F").
		MustDone()

	res := Run(m, "b")
	if res.Accepted || res.Reason != ReasonNoReachableStates {
		t.Errorf("expected %q rejection, got %+v", ReasonNoReachableStates, res)
	}
}

// === Epsilon stepping ===

func TestENFAChain(t *testing.T) {
	m := chainENFA()

	res := Run(m, "a")
	if !res.Accepted {
		t.Errorf(`expected "a" accepted, got %+v`, res)
	}
	// Start configuration is the closure of the start state.
	if !reflect.DeepEqual(res.Steps[0].States, []string{"p", "q"}) {
		t.Errorf("initial configuration = %v, want closure {p, q}", res.Steps[0].States)
	}

	if res := Run(m, ""); res.Accepted {
		t.Error("empty word should be rejected: closure of p does not reach r")
	}
}

func TestENFAClosureAfterEachMove(t *testing.T) {
	// a-move lands on q, whose closure pulls in the accepting state r.
	m := automaton.Build(automaton.ENFA).
		States("p", "q", "r").
		Symbols("a").
		Start("p").
		Final("r").
		On("p", "a", "q").
		Eps("q", "r").
		MustDone()

	res := Run(m, "a")
	if !res.Accepted {
		t.Fatalf("expected acceptance via post-move closure, got %+v", res)
	}
	if !reflect.DeepEqual(res.Final, []string{"q", "r"}) {
		t.Errorf("final configuration = %v, want {q, r}", res.Final)
	}
}

// === Purity and determinism ===

func TestRunIsDeterministic(t *testing.T) {
	m := substringNFA()
	first := Run(m, "abab")
	for i := 0; i < 20; i++ {
		if again := Run(m, "abab"); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed: %+v vs %+v", i, first, again)
		}
	}
}

func TestRunDoesNotMutateModel(t *testing.T) {
	m := substringNFA()
	before := m.Definition()

	Run(m, "ababab")
	Run(m, "zzz")

	if !reflect.DeepEqual(before, m.Definition()) {
		t.Error("running words mutated the model")
	}
}
