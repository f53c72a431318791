package definition

import (
	"cmp"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/petrijr/regular/pkg/alphabet"
)

type interval struct {
	lo, hi rune
}

// intervals is an ascending list of disjoint, non-adjacent rune intervals.
type intervals []interval

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if !utf8.ValidString(s) || size == 0 || size != len(s) {
		return 0, fmt.Errorf("symbol %q must be exactly one rune", s)
	}
	return r, nil
}

func parseRange(s string) (interval, error) {
	if !utf8.ValidString(s) {
		return interval{}, fmt.Errorf("range %q is not valid UTF-8", s)
	}
	rs := []rune(s)
	switch {
	case len(rs) == 1:
		return interval{rs[0], rs[0]}, nil
	case len(rs) == 3 && rs[1] == '-':
		if !utf8.ValidRune(rs[0]) || !utf8.ValidRune(rs[2]) {
			return interval{}, fmt.Errorf("range %q has an invalid bound", s)
		}
		if rs[0] > rs[2] {
			return interval{}, fmt.Errorf("range %q is reversed", s)
		}
		return interval{rs[0], rs[2]}, nil
	default:
		return interval{}, fmt.Errorf("malformed range %q", s)
	}
}

func parseAlphabet(a Alphabet) (intervals, error) {
	var ivs []interval
	for _, s := range a.Ranges {
		iv, err := parseRange(s)
		if err != nil {
			return nil, err
		}
		ivs = append(ivs, iv)
	}
	if !utf8.ValidString(a.Symbols) {
		return nil, fmt.Errorf("symbols contain invalid UTF-8")
	}
	for _, r := range a.Symbols {
		ivs = append(ivs, interval{r, r})
	}
	if len(ivs) == 0 {
		return nil, fmt.Errorf("alphabet is empty")
	}
	return merge(ivs), nil
}

func merge(ivs []interval) intervals {
	slices.SortFunc(ivs, func(a, b interval) int {
		return cmp.Compare(a.lo, b.lo)
	})
	var step alphabet.RuneStep
	out := intervals{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if iv.lo <= alphabet.SuccessorSaturating[rune](step, last.hi) {
			last.hi = max(last.hi, iv.hi)
			continue
		}
		out = append(out, iv)
	}
	return out
}

func (ivs intervals) contains(r rune) bool {
	_, found := slices.BinarySearchFunc(ivs, r, func(iv interval, r rune) int {
		switch {
		case iv.hi < r:
			return -1
		case iv.lo > r:
			return 1
		}
		return 0
	})
	return found
}

// toAlphabet returns a Range for a single interval and a Sorted set
// otherwise, so equal symbol sets always compare equal.
func (ivs intervals) toAlphabet() alphabet.Alphabet[rune] {
	if len(ivs) == 1 {
		return alphabet.Runes(ivs[0].lo, ivs[0].hi)
	}
	var syms []rune
	for _, iv := range ivs {
		for r := range alphabet.Runes(iv.lo, iv.hi).Values() {
			syms = append(syms, r)
		}
	}
	return alphabet.NewSorted(syms...)
}

func (iv interval) String() string {
	if iv.lo == iv.hi {
		return string(iv.lo)
	}
	return string(iv.lo) + "-" + string(iv.hi)
}

// FormatRanges compresses runes into the range notation used by Alphabet,
// in ascending order.
func FormatRanges(runes []rune) []string {
	if len(runes) == 0 {
		return nil
	}
	ivs := make([]interval, 0, len(runes))
	for _, r := range runes {
		ivs = append(ivs, interval{r, r})
	}
	merged := merge(ivs)
	out := make([]string, 0, len(merged))
	for _, iv := range merged {
		out = append(out, iv.String())
	}
	return out
}

// AlphabetOf builds the Alphabet describing a.
func AlphabetOf(a alphabet.Alphabet[rune]) Alphabet {
	if r, ok := a.(alphabet.Range[rune]); ok {
		lo, hi, nonEmpty := r.Bounds()
		if !nonEmpty {
			return Alphabet{}
		}
		return Alphabet{Ranges: []string{interval{lo, hi}.String()}}
	}
	return Alphabet{Ranges: FormatRanges(slices.Collect(a.Values()))}
}

// Compile parses the alphabet of a definition.
func (a Alphabet) Compile() (alphabet.Alphabet[rune], error) {
	ivs, err := parseAlphabet(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return ivs.toAlphabet(), nil
}
