package automaton

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func parityDef() *Definition {
	return &Definition{
		States:   []string{"A", "B"},
		Alphabet: []string{"0", "1"},
		Transitions: map[string]map[string]TargetList{
			"A": {"0": {"A"}, "1": {"B"}},
			"B": {"0": {"B"}, "1": {"A"}},
		},
		Start:  "A",
		Finals: []string{"B"},
	}
}

// === Fatal violations ===

func TestConstructValid(t *testing.T) {
	m, advisories, err := Construct(DFA, parityDef())
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}
	if len(advisories) != 0 {
		t.Errorf("expected no advisories, got %v", advisories)
	}
	if m.Start != "A" {
		t.Errorf("expected start A, got %s", m.Start)
	}
	if !m.Finals["B"] || m.Finals["A"] {
		t.Errorf("unexpected finals: %v", m.Finals)
	}
}

func TestConstructUndeclaredStart(t *testing.T) {
	def := parityDef()
	def.Start = "X"

	m, _, err := Construct(DFA, def)
	if m != nil {
		t.Fatal("expected no model on fatal violation")
	}
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if len(confErr.Violations) != 1 || !strings.Contains(confErr.Violations[0], `start state "X"`) {
		t.Errorf("unexpected violations: %v", confErr.Violations)
	}
}

func TestConstructCollectsAllViolations(t *testing.T) {
	def := &Definition{
		States:   []string{"A"},
		Alphabet: []string{"0"},
		Transitions: map[string]map[string]TargetList{
			"A": {"0": {"ghost"}},
			"Z": {"0": {"A"}},
		},
		Start:  "X",
		Finals: []string{"A", "Y"},
	}

	_, _, err := Construct(NFA, def)
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}

	// Check order: start, finals, sources, targets.
	want := []string{"start state", "final state", "transition source", "transition target"}
	if len(confErr.Violations) != len(want) {
		t.Fatalf("expected %d violations, got %v", len(want), confErr.Violations)
	}
	for i, prefix := range want {
		if !strings.HasPrefix(confErr.Violations[i], prefix) {
			t.Errorf("violation %d = %q, want prefix %q", i, confErr.Violations[i], prefix)
		}
	}
}

// === Advisories ===

func TestConstructAdvisoriesStayNonFatal(t *testing.T) {
	def := &Definition{
		States:   []string{"A", "B"},
		Alphabet: []string{"0", "1"},
		Transitions: map[string]map[string]TargetList{
			"A": {"0": {"A"}, "x": {"B"}},
		},
		Start:  "A",
		Finals: []string{"B"},
	}

	m, advisories, err := Construct(DFA, def)
	if err != nil {
		t.Fatalf("advisories must not fail construction: %v", err)
	}
	if m == nil {
		t.Fatal("expected a model")
	}

	want := []string{
		`transition symbol "x" (from "A") is not declared in the alphabet`,
		`state "A" has no transition on "1"`,
		`state "B" has no transitions`,
	}
	if !reflect.DeepEqual(advisories, want) {
		t.Errorf("advisories = %v, want %v", advisories, want)
	}
}

func TestConstructEpsilonExemptFromAlphabetAdvisory(t *testing.T) {
	def := &Definition{
		States:   []string{"p", "q"},
		Alphabet: []string{"a"},
		Transitions: map[string]map[string]TargetList{
			"p": {Epsilon: {"q"}, "a": {"p"}},
			"q": {"a": {"q"}},
		},
		Start:  "p",
		Finals: []string{"q"},
	}

	_, advisories, err := Construct(ENFA, def)
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}
	for _, adv := range advisories {
		if strings.Contains(adv, Epsilon) {
			t.Errorf("epsilon must not trigger an alphabet advisory: %q", adv)
		}
	}
}

func TestConstructAdvisoriesDeterministic(t *testing.T) {
	def := &Definition{
		States:   []string{"C", "A", "B"},
		Alphabet: []string{"1", "0"},
		Transitions: map[string]map[string]TargetList{
			"A": {"0": {"A"}},
		},
		Start:  "A",
		Finals: []string{"A"},
	}

	_, first, err := Construct(DFA, def)
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		_, again, err := Construct(DFA, def)
		if err != nil {
			t.Fatalf("construct failed: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("advisory order changed between runs: %v vs %v", first, again)
		}
	}
}

// === Round trip ===

func TestDefinitionRoundTrip(t *testing.T) {
	m, _, err := Construct(DFA, parityDef())
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}

	again, advisories, err := Construct(DFA, m.Definition())
	if err != nil {
		t.Fatalf("reconstruct from Definition failed: %v", err)
	}
	if len(advisories) != 0 {
		t.Errorf("round trip produced advisories: %v", advisories)
	}
	if !reflect.DeepEqual(m.Delta, again.Delta) {
		t.Errorf("round trip changed the relation: %v vs %v", m.Delta, again.Delta)
	}
	if m.Start != again.Start || !reflect.DeepEqual(m.Finals, again.Finals) {
		t.Error("round trip changed start or finals")
	}
}

// === Builder ===

func TestBuilder(t *testing.T) {
	m, _, err := Build(NFA).
		States("S", "A", "F").
		Symbols("a", "b").
		Start("S").
		Final("F").
		On("S", "a", "S", "A").
		On("S", "b", "S").
		On("A", "b", "F").
		On("F", "a", "F").
		On("F", "b", "F").
		Done()
	if err != nil {
		t.Fatalf("builder construct failed: %v", err)
	}

	if got := m.Targets("S", "a"); !reflect.DeepEqual(got, []string{"A", "S"}) {
		t.Errorf("Targets(S, a) = %v, want sorted [A S]", got)
	}
	if m.HasEpsilon() {
		t.Error("NFA fixture should have no epsilon transitions")
	}
}

func TestBuilderEps(t *testing.T) {
	m := Build(ENFA).
		States("p", "q", "r").
		Symbols("a").
		Start("p").
		Final("r").
		Eps("p", "q").
		On("q", "a", "r").
		MustDone()

	if !m.HasEpsilon() {
		t.Error("expected epsilon transition")
	}
	if got := m.Targets("p", Epsilon); !reflect.DeepEqual(got, []string{"q"}) {
		t.Errorf("Targets(p, epsilon) = %v", got)
	}
}
