package dfa

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/petrijr/regular/pkg/alphabet"
)

const noEdge = -1

// TableStorage keeps the transition function as a dense matrix with one row
// per state and one column per alphabet symbol. It suits small finite
// alphabets where most (state, symbol) pairs have an edge.
type TableStorage[S comparable] struct {
	alpha   alphabet.Alphabet[S]
	symbols []S
	column  map[S]int
	rows    [][]int
}

// NewTableStorage returns an empty TableStorage over alpha. It panics when
// alpha cannot report a finite size.
func NewTableStorage[S comparable](alpha alphabet.Alphabet[S]) *TableStorage[S] {
	n, ok := alpha.NumValues()
	if !ok {
		panic("dfa: table storage needs a finite alphabet")
	}
	symbols := make([]S, 0, n)
	column := make(map[S]int, n)
	for sym := range alpha.Values() {
		column[sym] = len(symbols)
		symbols = append(symbols, sym)
	}
	return &TableStorage[S]{
		alpha:   alpha,
		symbols: symbols,
		column:  column,
	}
}

// TableFactory returns a Factory producing TableStorage values.
func TableFactory[S comparable]() Factory[S, int] {
	return func(alpha alphabet.Alphabet[S]) Storage[S, int] {
		return NewTableStorage(alpha)
	}
}

func (s *TableStorage[S]) Alphabet() alphabet.Alphabet[S] {
	return s.alpha
}

func (s *TableStorage[S]) AllStates() []int {
	states := make([]int, len(s.rows))
	for i := range states {
		states[i] = i
	}
	return states
}

func (s *TableStorage[S]) AllTransitions() []Transition[S, int] {
	var out []Transition[S, int]
	for from, row := range s.rows {
		for col, to := range row {
			if to != noEdge {
				out = append(out, Transition[S, int]{From: from, Symbol: s.symbols[col], To: to})
			}
		}
	}
	slices.SortStableFunc(out, func(a, b Transition[S, int]) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return out
}

func (s *TableStorage[S]) ContainsState(st int) bool {
	return st >= 0 && st < len(s.rows)
}

func (s *TableStorage[S]) Transition(from int, sym S) (int, bool) {
	if !s.ContainsState(from) {
		return 0, false
	}
	col, ok := s.column[sym]
	if !ok {
		return 0, false
	}
	to := s.rows[from][col]
	return to, to != noEdge
}

func (s *TableStorage[S]) TransitionUnchecked(from int, sym S) (int, bool) {
	to := s.rows[from][s.column[sym]]
	return to, to != noEdge
}

func (s *TableStorage[S]) AddState() int {
	row := make([]int, len(s.symbols))
	for i := range row {
		row[i] = noEdge
	}
	s.rows = append(s.rows, row)
	return len(s.rows) - 1
}

func (s *TableStorage[S]) AddTransition(from int, sym S, to int) {
	col, ok := s.column[sym]
	if !ok {
		panic(fmt.Sprintf("dfa: symbol %v has no column in table storage", sym))
	}
	s.rows[from][col] = to
}

func (s *TableStorage[S]) Clone() Storage[S, int] {
	rows := make([][]int, len(s.rows))
	for i, row := range s.rows {
		rows[i] = slices.Clone(row)
	}
	return &TableStorage[S]{
		alpha:   s.alpha,
		symbols: s.symbols,
		column:  s.column,
		rows:    rows,
	}
}
