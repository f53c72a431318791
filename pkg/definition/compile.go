package definition

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/petrijr/regular/pkg/dfa"
)

// Compile validates def and builds the automaton it describes. States are
// allocated in declaration order.
func Compile(def Definition) (*dfa.DFA[rune, int], error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	alpha, err := def.Alphabet.Compile()
	if err != nil {
		return nil, err
	}

	b := dfa.NewBuilder(alpha)
	ids := make(map[string]int, len(def.States))
	for _, st := range def.States {
		ids[st] = b.NewState()
	}
	for _, e := range def.Transitions {
		sym, err := singleRune(e.On)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, def.Name, err)
		}
		if err := b.Transition(ids[e.From], sym, ids[e.To]); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, def.Name, err)
		}
	}

	b.StartState(ids[def.Start])
	if def.Dead != "" {
		b.DeadState(ids[def.Dead])
	}
	for _, st := range def.Accept {
		b.AcceptStates(ids[st])
	}

	d, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, def.Name, err)
	}
	return d, nil
}

// Export describes d as a Definition called name. States are named q0, q1,
// ... in ascending handle order, and transitions are listed by source,
// symbol and target.
func Export[St cmp.Ordered](name string, d *dfa.DFA[rune, St]) (Definition, error) {
	if name == "" {
		return Definition{}, fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}

	states := d.States()
	slices.Sort(states)
	names := make(map[St]string, len(states))
	def := Definition{
		Name:     name,
		Alphabet: AlphabetOf(d.Alphabet()),
		States:   make([]string, 0, len(states)),
	}
	for i, st := range states {
		n := fmt.Sprintf("q%d", i)
		names[st] = n
		def.States = append(def.States, n)
	}

	def.Start = names[d.StartState()]
	if dead, ok := d.DeadState(); ok {
		def.Dead = names[dead]
	}
	for _, st := range d.AcceptStates() {
		def.Accept = append(def.Accept, names[st])
	}

	transitions := d.Transitions()
	slices.SortFunc(transitions, func(a, b dfa.Transition[rune, St]) int {
		return cmp.Or(
			cmp.Compare(a.From, b.From),
			cmp.Compare(a.Symbol, b.Symbol),
			cmp.Compare(a.To, b.To),
		)
	})
	for _, t := range transitions {
		def.Transitions = append(def.Transitions, Edge{
			From: names[t.From],
			On:   string(t.Symbol),
			To:   names[t.To],
		})
	}

	if err := Validate(def); err != nil {
		return Definition{}, err
	}
	return def, nil
}
