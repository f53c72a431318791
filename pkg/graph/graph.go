// Package graph renders automaton definitions as state diagrams.
//
// Two formats are supported: Mermaid flowcharts and Graphviz DOT. Both mark
// the start state with an incoming arrow, draw accepting states as double
// circles and the dead state dashed, and merge parallel transitions into
// one edge labelled with the symbol ranges it carries.
package graph

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/petrijr/regular/pkg/definition"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown graph format")

// Format selects an output syntax.
type Format string

const (
	FormatMermaid Format = "mermaid"
	FormatDot     Format = "dot"
)

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatMermaid, FormatDot:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render validates def and draws it in the given format.
func Render(def definition.Definition, format Format) (string, error) {
	if err := definition.Validate(def); err != nil {
		return "", err
	}
	switch format {
	case FormatMermaid:
		return Mermaid(def), nil
	case FormatDot:
		return Dot(def), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

type edge struct {
	from, to int
	label    string
}

// edges merges the transitions of def by endpoints. Edges are ordered by
// source and then target, both in state declaration order.
func edges(def definition.Definition) []edge {
	index := make(map[string]int, len(def.States))
	for i, st := range def.States {
		index[st] = i
	}

	type key struct{ from, to int }
	symbols := make(map[key][]rune)
	for _, t := range def.Transitions {
		k := key{index[t.From], index[t.To]}
		r, _ := utf8.DecodeRuneInString(t.On)
		symbols[k] = append(symbols[k], r)
	}

	out := make([]edge, 0, len(symbols))
	for from := range def.States {
		for to := range def.States {
			runes, ok := symbols[key{from, to}]
			if !ok {
				continue
			}
			out = append(out, edge{
				from:  from,
				to:    to,
				label: strings.Join(definition.FormatRanges(runes), ","),
			})
		}
	}
	return out
}

func accepting(def definition.Definition) map[string]bool {
	acc := make(map[string]bool, len(def.Accept))
	for _, st := range def.Accept {
		acc[st] = true
	}
	return acc
}
