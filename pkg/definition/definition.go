// Package definition describes rune automata as plain documents that can be
// stored, exchanged and edited by hand.
//
// A Definition names its states instead of using storage handles:
//
//	name: abc
//	alphabet:
//	  ranges: ["a-c"]
//	states: [s0, s1, s2, dead]
//	start: s0
//	dead: dead
//	accept: [s0, s1, s2]
//	transitions:
//	  - {from: s0, on: a, to: s0}
//	  - {from: s0, on: b, to: s1}
//
// Compile turns a Definition into a dfa.DFA, and Export goes the other way.
package definition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition is returned for documents that do not describe a
// valid automaton.
var ErrInvalidDefinition = errors.New("invalid automaton definition")

// Alphabet lists the symbols of a definition. Ranges are written "a-z" or
// as a single symbol "x"; Symbols adds each rune of the string.
type Alphabet struct {
	Ranges  []string `yaml:"ranges,omitempty" json:"ranges,omitempty"`
	Symbols string   `yaml:"symbols,omitempty" json:"symbols,omitempty"`
}

// Edge is one transition, on a single-rune symbol.
type Edge struct {
	From string `yaml:"from" json:"from"`
	On   string `yaml:"on" json:"on"`
	To   string `yaml:"to" json:"to"`
}

// Definition is a named rune automaton.
type Definition struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Alphabet    Alphabet `yaml:"alphabet" json:"alphabet"`
	States      []string `yaml:"states" json:"states"`
	Start       string   `yaml:"start" json:"start"`
	Dead        string   `yaml:"dead,omitempty" json:"dead,omitempty"`
	Accept      []string `yaml:"accept,omitempty" json:"accept,omitempty"`
	Transitions []Edge   `yaml:"transitions,omitempty" json:"transitions,omitempty"`
}

// Parse decodes and validates a YAML document. Unknown fields are
// rejected.
func Parse(data []byte) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := Validate(def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// ParseJSON decodes and validates a JSON document.
func ParseJSON(data []byte) (Definition, error) {
	var def Definition
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := Validate(def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Load reads a definition from path. Files ending in .json are decoded as
// JSON, everything else as YAML.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read definition: %w", err)
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return ParseJSON(data)
	}
	return Parse(data)
}

// Marshal encodes def as YAML.
func Marshal(def Definition) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return nil, fmt.Errorf("failed to encode definition: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode definition: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks that every name a definition references is declared and
// that its alphabet and symbols are well formed.
func Validate(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if len(def.States) == 0 {
		return fmt.Errorf("%w: %s: no states", ErrInvalidDefinition, def.Name)
	}

	declared := make(map[string]struct{}, len(def.States))
	for _, st := range def.States {
		if st == "" {
			return fmt.Errorf("%w: %s: empty state name", ErrInvalidDefinition, def.Name)
		}
		if _, dup := declared[st]; dup {
			return fmt.Errorf("%w: %s: duplicate state %q", ErrInvalidDefinition, def.Name, st)
		}
		declared[st] = struct{}{}
	}
	known := func(role, st string) error {
		if _, ok := declared[st]; !ok {
			return fmt.Errorf("%w: %s: %s state %q is not declared", ErrInvalidDefinition, def.Name, role, st)
		}
		return nil
	}

	if def.Start == "" {
		return fmt.Errorf("%w: %s: start state is required", ErrInvalidDefinition, def.Name)
	}
	if err := known("start", def.Start); err != nil {
		return err
	}
	if def.Dead != "" {
		if err := known("dead", def.Dead); err != nil {
			return err
		}
	}
	for _, st := range def.Accept {
		if err := known("accept", st); err != nil {
			return err
		}
	}

	intervals, err := parseAlphabet(def.Alphabet)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, def.Name, err)
	}
	for i, e := range def.Transitions {
		if err := known("source", e.From); err != nil {
			return err
		}
		if err := known("target", e.To); err != nil {
			return err
		}
		sym, err := singleRune(e.On)
		if err != nil {
			return fmt.Errorf("%w: %s: transition %d: %w", ErrInvalidDefinition, def.Name, i, err)
		}
		if !intervals.contains(sym) {
			return fmt.Errorf("%w: %s: transition %d: symbol %q is not in the alphabet", ErrInvalidDefinition, def.Name, i, sym)
		}
	}
	return nil
}
