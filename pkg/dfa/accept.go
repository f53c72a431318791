package dfa

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// Acceptor decides membership of symbol sequences in a language.
type Acceptor[S comparable] interface {
	Accept(input iter.Seq[S]) bool
}

var (
	_ Acceptor[rune] = (*DFA[rune, int])(nil)
	_ Acceptor[bool] = (*DFA[bool, int])(nil)
)

// IsAccepted reports whether a accepts input.
func IsAccepted[S comparable](input iter.Seq[S], a Acceptor[S]) bool {
	return a.Accept(input)
}

// InvalidRune is yielded by Runes for each byte of s that is not part of a
// valid UTF-8 encoding. It is not a Unicode scalar value, so no rune
// alphabet contains it and acceptance rejects the input.
const InvalidRune rune = -1

// Runes yields the runes of s. Malformed bytes yield InvalidRune rather
// than utf8.RuneError, so a literal U+FFFD in an alphabet cannot match
// them.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			if r == utf8.RuneError && size == 1 {
				r = InvalidRune
			}
			if !yield(r) {
				return
			}
			s = s[size:]
		}
	}
}

// Symbols yields syms in order.
func Symbols[S any](syms ...S) iter.Seq[S] {
	return slices.Values(syms)
}
