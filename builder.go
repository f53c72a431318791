package regular

import (
	"context"
	"slices"

	"github.com/petrijr/regular/pkg/definition"
)

// AutomatonBuilder provides a fluent API for writing definitions in Go:
//
//	err := regular.New("binary-odd").
//	    Symbols("01").
//	    States("even", "odd").
//	    Start("even").
//	    Accept("odd").
//	    Transition("even", '0', "even").
//	    Transition("even", '1', "odd").
//	    Transition("odd", '0', "even").
//	    Transition("odd", '1', "odd").
//	    Register(ctx, catalog)
//
// Problems are reported by Build and Register, not by the chained calls.
type AutomatonBuilder struct {
	def definition.Definition
}

// New creates a new builder for a definition with the given name.
func New(name string) *AutomatonBuilder {
	return &AutomatonBuilder{
		def: definition.Definition{Name: name},
	}
}

// Name returns the definition name.
func (b *AutomatonBuilder) Name() string {
	return b.def.Name
}

// Describe sets the free-form description.
func (b *AutomatonBuilder) Describe(text string) *AutomatonBuilder {
	b.def.Description = text
	return b
}

// Symbols adds every rune of s to the alphabet.
func (b *AutomatonBuilder) Symbols(s string) *AutomatonBuilder {
	b.def.Alphabet.Symbols += s
	return b
}

// Ranges adds ranges such as "a-z" or single symbols to the alphabet.
func (b *AutomatonBuilder) Ranges(ranges ...string) *AutomatonBuilder {
	b.def.Alphabet.Ranges = append(b.def.Alphabet.Ranges, ranges...)
	return b
}

// States declares states. Redeclared names are ignored.
func (b *AutomatonBuilder) States(names ...string) *AutomatonBuilder {
	for _, n := range names {
		if !slices.Contains(b.def.States, n) {
			b.def.States = append(b.def.States, n)
		}
	}
	return b
}

// Start sets the start state.
func (b *AutomatonBuilder) Start(name string) *AutomatonBuilder {
	b.def.Start = name
	return b
}

// Dead sets the dead state.
func (b *AutomatonBuilder) Dead(name string) *AutomatonBuilder {
	b.def.Dead = name
	return b
}

// Accept marks states as accepting.
func (b *AutomatonBuilder) Accept(names ...string) *AutomatonBuilder {
	for _, n := range names {
		if !slices.Contains(b.def.Accept, n) {
			b.def.Accept = append(b.def.Accept, n)
		}
	}
	return b
}

// Transition adds the edge from --on--> to.
func (b *AutomatonBuilder) Transition(from string, on rune, to string) *AutomatonBuilder {
	b.def.Transitions = append(b.def.Transitions, definition.Edge{
		From: from,
		On:   string(on),
		To:   to,
	})
	return b
}

// TransitionsOn adds one edge from from to to for every rune of symbols.
func (b *AutomatonBuilder) TransitionsOn(from, symbols, to string) *AutomatonBuilder {
	for _, r := range symbols {
		b.Transition(from, r, to)
	}
	return b
}

// Definition returns a copy of the definition built so far, without
// validating it.
func (b *AutomatonBuilder) Definition() Definition {
	def := b.def
	def.Alphabet.Ranges = slices.Clone(def.Alphabet.Ranges)
	def.States = slices.Clone(def.States)
	def.Accept = slices.Clone(def.Accept)
	def.Transitions = slices.Clone(def.Transitions)
	return def
}

// Build validates the definition and returns it.
func (b *AutomatonBuilder) Build() (Definition, error) {
	def := b.Definition()
	if err := definition.Validate(def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Compile validates the definition and compiles it without registering it.
func (b *AutomatonBuilder) Compile() (*Automaton, error) {
	return definition.Compile(b.Definition())
}

// Register registers the built definition with the given catalog.
func (b *AutomatonBuilder) Register(ctx context.Context, c Catalog) error {
	return c.Register(ctx, b.Definition())
}

// MustRegister is like Register but panics on error.
// Useful for initialization in main().
func (b *AutomatonBuilder) MustRegister(ctx context.Context, c Catalog) {
	if err := b.Register(ctx, c); err != nil {
		panic(err)
	}
}
