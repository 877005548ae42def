package automaton

// Builder provides a fluent API for constructing automata in code.
// It assembles a Definition and runs it through Construct.
//
// Example:
//
//	m, _, err := automaton.Build(automaton.DFA).
//	    States("A", "B").
//	    Symbols("0", "1").
//	    Start("A").
//	    Final("B").
//	    On("A", "0", "A").
//	    On("A", "1", "B").
//	    On("B", "0", "B").
//	    On("B", "1", "A").
//	    Done()
type Builder struct {
	kind Kind
	def  Definition
}

// Build creates a Builder for the given automaton variant.
func Build(kind Kind) *Builder {
	return &Builder{
		kind: kind,
		def: Definition{
			Transitions: make(map[string]map[string]TargetList),
		},
	}
}

// States declares the state labels.
func (b *Builder) States(labels ...string) *Builder {
	b.def.States = append(b.def.States, labels...)
	return b
}

// Symbols declares the alphabet.
func (b *Builder) Symbols(symbols ...string) *Builder {
	b.def.Alphabet = append(b.def.Alphabet, symbols...)
	return b
}

// Start designates the start state.
func (b *Builder) Start(state string) *Builder {
	b.def.Start = state
	return b
}

// Final marks states as accepting.
func (b *Builder) Final(states ...string) *Builder {
	b.def.Finals = append(b.def.Finals, states...)
	return b
}

// On adds targets for the (from, symbol) transition.
func (b *Builder) On(from, symbol string, targets ...string) *Builder {
	row, ok := b.def.Transitions[from]
	if !ok {
		row = make(map[string]TargetList)
		b.def.Transitions[from] = row
	}
	row[symbol] = append(row[symbol], targets...)
	return b
}

// Eps adds epsilon transitions from a state.
func (b *Builder) Eps(from string, targets ...string) *Builder {
	return b.On(from, Epsilon, targets...)
}

// Definition returns the assembled description without constructing.
func (b *Builder) Definition() *Definition {
	return &b.def
}

// Done constructs the automaton, returning any advisories alongside it.
func (b *Builder) Done() (*Automaton, []string, error) {
	return Construct(b.kind, &b.def)
}

// MustDone constructs the automaton and panics on fatal violations.
// Intended for fixtures whose definitions are known to be valid.
func (b *Builder) MustDone() *Automaton {
	m, _, err := b.Done()
	if err != nil {
		panic(err)
	}
	return m
}
