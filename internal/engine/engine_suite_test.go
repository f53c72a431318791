package engine

import (
	"context"
	"errors"

	"github.com/stretchr/testify/suite"

	"github.com/petrijr/regular/internal/persistence"
	"github.com/petrijr/regular/pkg/api"
	"github.com/petrijr/regular/pkg/definition"
	"github.com/petrijr/regular/pkg/dfa"
)

// CatalogSuite exercises the catalog contract. Each backend runs it with
// its own store.
type CatalogSuite struct {
	suite.Suite
	newStore func() persistence.Store

	catalog api.Catalog
	metrics *api.BasicMetrics
	ctx     context.Context
}

func (s *CatalogSuite) SetupTest() {
	s.ctx = context.Background()
	s.metrics = &api.BasicMetrics{}
	s.catalog = NewEngineWithConfig(Config{
		Store:    s.newStore(),
		Observer: s.metrics,
	})
}

func endsInOne(name string) definition.Definition {
	return definition.Definition{
		Name:     name,
		Alphabet: definition.Alphabet{Symbols: "01"},
		States:   []string{"even", "odd"},
		Start:    "even",
		Accept:   []string{"odd"},
		Transitions: []definition.Edge{
			{From: "even", On: "0", To: "even"},
			{From: "even", On: "1", To: "odd"},
			{From: "odd", On: "0", To: "even"},
			{From: "odd", On: "1", To: "odd"},
		},
	}
}

func containsZero(name string) definition.Definition {
	return definition.Definition{
		Name:     name,
		Alphabet: definition.Alphabet{Ranges: []string{"0-1"}},
		States:   []string{"none", "seen"},
		Start:    "none",
		Accept:   []string{"seen"},
		Transitions: []definition.Edge{
			{From: "none", On: "0", To: "seen"},
			{From: "none", On: "1", To: "none"},
			{From: "seen", On: "0", To: "seen"},
			{From: "seen", On: "1", To: "seen"},
		},
	}
}

func onlyA(name string) definition.Definition {
	return definition.Definition{
		Name:        name,
		Alphabet:    definition.Alphabet{Symbols: "ab"},
		States:      []string{"s"},
		Start:       "s",
		Accept:      []string{"s"},
		Transitions: []definition.Edge{{From: "s", On: "a", To: "s"}},
	}
}

func (s *CatalogSuite) register(defs ...definition.Definition) {
	for _, def := range defs {
		s.Require().NoError(s.catalog.Register(s.ctx, def))
	}
}

func (s *CatalogSuite) assertAccepts(name string, accepted, rejected []string) {
	for _, in := range accepted {
		ok, err := s.catalog.Accept(s.ctx, name, in)
		s.Require().NoError(err)
		s.True(ok, "%s should accept %q", name, in)
	}
	for _, in := range rejected {
		ok, err := s.catalog.Accept(s.ctx, name, in)
		s.Require().NoError(err)
		s.False(ok, "%s should reject %q", name, in)
	}
}

func (s *CatalogSuite) TestRegisterAndAccept() {
	s.register(endsInOne("ends-in-one"))

	s.assertAccepts("ends-in-one", []string{"1", "0101"}, []string{"", "10", "2"})

	snap := s.metrics.Snapshot()
	s.Equal(int64(1), snap.Compiles, "automaton should be compiled once and cached")
	s.Equal(int64(2), snap.Accepted)
	s.Equal(int64(3), snap.Rejected)
}

func (s *CatalogSuite) TestAcceptUnknown() {
	_, err := s.catalog.Accept(s.ctx, "missing", "1")
	s.Require().Error(err)
	s.True(errors.Is(err, persistence.ErrAutomatonNotFound), "got %v", err)
}

func (s *CatalogSuite) TestRegisterInvalid() {
	def := endsInOne("broken")
	def.Start = "nowhere"

	err := s.catalog.Register(s.ctx, def)
	s.Require().Error(err)
	s.True(errors.Is(err, definition.ErrInvalidDefinition), "got %v", err)

	names, err := s.catalog.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *CatalogSuite) TestRegisterReplacesCompiled() {
	s.register(endsInOne("x"))
	s.assertAccepts("x", []string{"1"}, nil)

	s.register(containsZero("x"))
	s.assertAccepts("x", []string{"10"}, []string{"1"})

	def, err := s.catalog.Definition(s.ctx, "x")
	s.Require().NoError(err)
	s.Equal([]string{"none", "seen"}, def.States)
}

func (s *CatalogSuite) TestAutomatonIsCached() {
	s.register(endsInOne("ends-in-one"))

	a1, err := s.catalog.Automaton(s.ctx, "ends-in-one")
	s.Require().NoError(err)
	a2, err := s.catalog.Automaton(s.ctx, "ends-in-one")
	s.Require().NoError(err)

	s.Same(a1, a2)
	s.Len(a1.States(), 2)
}

func (s *CatalogSuite) TestCombine() {
	s.register(endsInOne("ends-in-one"), containsZero("has-zero"))

	cases := []struct {
		op       api.Op
		out      string
		accepted []string
		rejected []string
	}{
		{api.OpUnion, "either", []string{"1", "10", "0", "111"}, []string{"", "11x"}},
		{api.OpIntersection, "both", []string{"01", "1001"}, []string{"1", "10", ""}},
		{api.OpDifference, "ones-only", []string{"1", "111"}, []string{"01", "", "10"}},
	}
	for _, tc := range cases {
		def, err := s.catalog.Combine(s.ctx, tc.op, "ends-in-one", "has-zero", tc.out)
		s.Require().NoError(err, "%s", tc.op)
		s.Equal(tc.out, def.Name)
		s.Len(def.States, 4)
		s.Equal(string(tc.op)+" of ends-in-one and has-zero", def.Description)

		stored, err := s.catalog.Definition(s.ctx, tc.out)
		s.Require().NoError(err)
		s.Equal(def, stored)

		s.assertAccepts(tc.out, tc.accepted, tc.rejected)
	}

	names, err := s.catalog.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"both", "either", "ends-in-one", "has-zero", "ones-only"}, names)

	snap := s.metrics.Snapshot()
	s.Equal(int64(3), snap.Operations)
	s.Equal(int64(4), snap.LargestProduct)
}

func (s *CatalogSuite) TestCombineErrors() {
	s.register(endsInOne("ends-in-one"), onlyA("only-a"))

	_, err := s.catalog.Combine(s.ctx, api.OpComplement, "ends-in-one", "ends-in-one", "out")
	s.True(errors.Is(err, api.ErrUnknownOperation), "got %v", err)

	_, err = s.catalog.Combine(s.ctx, api.OpUnion, "ends-in-one", "ends-in-one", "")
	s.True(errors.Is(err, ErrNameRequired), "got %v", err)

	_, err = s.catalog.Combine(s.ctx, api.OpUnion, "ends-in-one", "only-a", "out")
	s.True(errors.Is(err, dfa.ErrOperationWithNonEqualAlphabets), "got %v", err)

	_, err = s.catalog.Combine(s.ctx, api.OpUnion, "ends-in-one", "missing", "out")
	s.True(errors.Is(err, persistence.ErrAutomatonNotFound), "got %v", err)

	_, err = s.catalog.Definition(s.ctx, "out")
	s.True(errors.Is(err, persistence.ErrAutomatonNotFound), "failed operations must not store a result")

	// The unknown operation is rejected before anything runs.
	s.Equal(int64(3), s.metrics.Snapshot().OperationErrors)
}

func (s *CatalogSuite) TestComplement() {
	s.register(endsInOne("ends-in-one"))

	def, err := s.catalog.Complement(s.ctx, "ends-in-one", "not-ends-in-one")
	s.Require().NoError(err)
	s.Equal("complement of ends-in-one", def.Description)

	s.assertAccepts("not-ends-in-one", []string{"", "0", "10"}, []string{"1", "01"})
}

func (s *CatalogSuite) TestRemove() {
	s.register(endsInOne("ends-in-one"))
	s.assertAccepts("ends-in-one", []string{"1"}, nil)

	s.Require().NoError(s.catalog.Remove(s.ctx, "ends-in-one"))

	_, err := s.catalog.Accept(s.ctx, "ends-in-one", "1")
	s.True(errors.Is(err, persistence.ErrAutomatonNotFound), "got %v", err)

	err = s.catalog.Remove(s.ctx, "ends-in-one")
	s.True(errors.Is(err, persistence.ErrAutomatonNotFound), "got %v", err)
}

func (s *CatalogSuite) TestMalformedInputRejected() {
	s.register(definition.Definition{
		Name:        "specials",
		Alphabet:    definition.Alphabet{Ranges: []string{"\uFFF0-\uFFFF"}},
		States:      []string{"s"},
		Start:       "s",
		Accept:      []string{"s"},
		Transitions: []definition.Edge{{From: "s", On: "\uFFFD", To: "s"}},
	})

	s.assertAccepts("specials", []string{"", "\uFFFD"}, []string{"\xff", "\uFFFD\xc0"})
}

func (s *CatalogSuite) TestCanceledContext() {
	s.register(endsInOne("ends-in-one"))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.catalog.Accept(ctx, "ends-in-one", "1")
	s.True(errors.Is(err, context.Canceled), "got %v", err)

	_, err = s.catalog.Complement(ctx, "ends-in-one", "out")
	s.True(errors.Is(err, context.Canceled), "got %v", err)
}
