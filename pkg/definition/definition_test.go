package definition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrijr/regular/pkg/alphabet"
	"github.com/petrijr/regular/pkg/dfa"
)

const abcYAML = `
name: abc
description: a*b*c*
alphabet:
  ranges: ["a-c"]
states: [s0, s1, s2, dead]
start: s0
dead: dead
accept: [s0, s1, s2]
transitions:
  - {from: s0, on: a, to: s0}
  - {from: s0, on: b, to: s1}
  - {from: s0, on: c, to: s2}
  - {from: s1, on: a, to: dead}
  - {from: s1, on: b, to: s1}
  - {from: s1, on: c, to: s2}
  - {from: s2, on: a, to: dead}
  - {from: s2, on: b, to: dead}
  - {from: s2, on: c, to: s2}
  - {from: dead, on: a, to: dead}
  - {from: dead, on: b, to: dead}
  - {from: dead, on: c, to: dead}
`

func TestParseAndCompile(t *testing.T) {
	def, err := Parse([]byte(abcYAML))
	require.NoError(t, err)
	assert.Equal(t, "abc", def.Name)
	assert.Equal(t, "a*b*c*", def.Description)
	assert.Len(t, def.Transitions, 12)

	d, err := Compile(def)
	require.NoError(t, err)

	for _, s := range []string{"", "aaaabbbbcccc", "abc", "cc", "aabb"} {
		assert.True(t, d.Accept(dfa.Runes(s)), "expected %q to be accepted", s)
	}
	for _, s := range []string{"cbbbbcccc", "z", "ccbbaa"} {
		assert.False(t, d.Accept(dfa.Runes(s)), "expected %q to be rejected", s)
	}
	assert.True(t, d.Alphabet().Equal(alphabet.Runes('a', 'c')))
}

func TestExport_RoundTrip(t *testing.T) {
	def, err := Parse([]byte(abcYAML))
	require.NoError(t, err)
	d, err := Compile(def)
	require.NoError(t, err)

	exported, err := Export("abc-copy", d.Complement())
	require.NoError(t, err)
	assert.Equal(t, []string{"q0", "q1", "q2", "q3"}, exported.States)
	assert.Equal(t, "q0", exported.Start)
	assert.Equal(t, "q3", exported.Dead)
	assert.Equal(t, []string{"q3"}, exported.Accept)
	assert.Equal(t, []string{"a-c"}, exported.Alphabet.Ranges)
	assert.Equal(t, Edge{From: "q0", On: "a", To: "q0"}, exported.Transitions[0])

	data, err := Marshal(exported)
	require.NoError(t, err)
	reparsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, exported, reparsed)

	c, err := Compile(reparsed)
	require.NoError(t, err)
	for _, s := range []string{"", "abc", "cbbbbcccc", "ccbbaa", "z"} {
		assert.Equal(t, !d.Accept(dfa.Runes(s)) && s != "z", c.Accept(dfa.Runes(s)), "input %q", s)
	}
}

func TestExport_RequiresName(t *testing.T) {
	def, err := Parse([]byte(abcYAML))
	require.NoError(t, err)
	d, err := Compile(def)
	require.NoError(t, err)

	_, err = Export("", d)
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestValidate_Errors(t *testing.T) {
	valid := func() Definition {
		return Definition{
			Name:        "t",
			Alphabet:    Alphabet{Ranges: []string{"a-b"}},
			States:      []string{"x", "y"},
			Start:       "x",
			Accept:      []string{"y"},
			Transitions: []Edge{{From: "x", On: "a", To: "y"}},
		}
	}
	require.NoError(t, Validate(valid()))

	cases := []struct {
		name   string
		mutate func(d *Definition)
	}{
		{"missing name", func(d *Definition) { d.Name = "" }},
		{"no states", func(d *Definition) { d.States = nil }},
		{"duplicate state", func(d *Definition) { d.States = []string{"x", "x", "y"} }},
		{"missing start", func(d *Definition) { d.Start = "" }},
		{"unknown start", func(d *Definition) { d.Start = "z" }},
		{"unknown dead", func(d *Definition) { d.Dead = "z" }},
		{"unknown accept", func(d *Definition) { d.Accept = []string{"z"} }},
		{"unknown target", func(d *Definition) { d.Transitions[0].To = "z" }},
		{"multi-rune symbol", func(d *Definition) { d.Transitions[0].On = "ab" }},
		{"empty symbol", func(d *Definition) { d.Transitions[0].On = "" }},
		{"symbol outside alphabet", func(d *Definition) { d.Transitions[0].On = "q" }},
		{"empty alphabet", func(d *Definition) { d.Alphabet = Alphabet{} }},
		{"reversed range", func(d *Definition) { d.Alphabet.Ranges = []string{"z-a"} }},
		{"malformed range", func(d *Definition) { d.Alphabet.Ranges = []string{"a-"} }},
		{"invalid UTF-8 range", func(d *Definition) { d.Alphabet.Ranges = []string{"\xff-b"} }},
		{"invalid UTF-8 symbols", func(d *Definition) { d.Alphabet.Symbols = "\xff" }},
		{"invalid UTF-8 symbol", func(d *Definition) { d.Transitions[0].On = "\xff" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid()
			tc.mutate(&d)
			err := Validate(d)
			require.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestReplacementCharacterIsASymbol(t *testing.T) {
	def := Definition{
		Name:        "specials",
		Alphabet:    Alphabet{Ranges: []string{"\uFFFD"}, Symbols: "\uFFFD"},
		States:      []string{"s"},
		Start:       "s",
		Accept:      []string{"s"},
		Transitions: []Edge{{From: "s", On: "\uFFFD", To: "s"}},
	}
	d, err := Compile(def)
	require.NoError(t, err)
	assert.True(t, d.Accept(dfa.Runes("\uFFFD")))
	assert.False(t, d.Accept(dfa.Runes("\xff")))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("name: x\nstates: [a]\nstart: a\nalphabet: {symbols: ab}\nbogus: 1\n"))
	require.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestAlphabetCompile(t *testing.T) {
	merged, err := Alphabet{Ranges: []string{"a-c", "d"}, Symbols: "b"}.Compile()
	require.NoError(t, err)
	assert.True(t, merged.Equal(alphabet.Runes('a', 'd')))

	sparse, err := Alphabet{Symbols: "xa"}.Compile()
	require.NoError(t, err)
	assert.True(t, sparse.Equal(alphabet.NewSorted('a', 'x')))
	assert.False(t, sparse.Contains('b'))

	again, err := Alphabet{Ranges: []string{"x", "a"}}.Compile()
	require.NoError(t, err)
	assert.True(t, sparse.Equal(again))
}

func TestFormatRanges(t *testing.T) {
	assert.Equal(t, []string{"a-c", "x", "z"}, FormatRanges([]rune("zcabxa")))
	assert.Nil(t, FormatRanges(nil))
}

func TestAlphabetOf(t *testing.T) {
	assert.Equal(t, Alphabet{Ranges: []string{"0-9"}}, AlphabetOf(alphabet.Runes('0', '9')))
	assert.Equal(t, Alphabet{Ranges: []string{"a", "c-d"}}, AlphabetOf(alphabet.NewSorted('d', 'a', 'c')))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "abc.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(abcYAML), 0o644))
	def, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "abc", def.Name)

	jsonPath := filepath.Join(dir, "tiny.json")
	doc := `{"name":"tiny","alphabet":{"symbols":"01"},"states":["a"],"start":"a","accept":["a"],
		"transitions":[{"from":"a","on":"0","to":"a"},{"from":"a","on":"1","to":"a"}]}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(doc), 0o644))
	def, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "tiny", def.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
