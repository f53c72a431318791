package persistence

import (
	"context"
	"errors"

	"github.com/stretchr/testify/suite"

	"github.com/petrijr/regular/pkg/definition"
)

// StoreSuite exercises the Store contract. Each backend runs it with its
// own newStore.
type StoreSuite struct {
	suite.Suite
	newStore func() Store
	store    Store
	ctx      context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func sampleDefinition(name string) definition.Definition {
	return definition.Definition{
		Name:        name,
		Description: "strings over {0,1} ending in 1",
		Alphabet:    definition.Alphabet{Symbols: "01"},
		States:      []string{"even", "odd"},
		Start:       "even",
		Accept:      []string{"odd"},
		Transitions: []definition.Edge{
			{From: "even", On: "0", To: "even"},
			{From: "even", On: "1", To: "odd"},
			{From: "odd", On: "0", To: "even"},
			{From: "odd", On: "1", To: "odd"},
		},
	}
}

func (s *StoreSuite) TestSaveAndGet() {
	def := sampleDefinition("ends-in-one")
	s.Require().NoError(s.store.Save(s.ctx, def))

	got, err := s.store.Get(s.ctx, "ends-in-one")
	s.Require().NoError(err)
	s.Equal(def, got)
}

func (s *StoreSuite) TestGetNotFound() {
	_, err := s.store.Get(s.ctx, "does-not-exist")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrAutomatonNotFound), "expected ErrAutomatonNotFound, got %v", err)
}

func (s *StoreSuite) TestSaveReplaces() {
	def := sampleDefinition("ends-in-one")
	s.Require().NoError(s.store.Save(s.ctx, def))

	def.Description = "updated"
	def.Accept = []string{"even"}
	s.Require().NoError(s.store.Save(s.ctx, def))

	got, err := s.store.Get(s.ctx, "ends-in-one")
	s.Require().NoError(err)
	s.Equal("updated", got.Description)
	s.Equal([]string{"even"}, got.Accept)

	names, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"ends-in-one"}, names)
}

func (s *StoreSuite) TestListSorted() {
	names, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)

	for _, n := range []string{"zeta", "alpha", "mid"} {
		s.Require().NoError(s.store.Save(s.ctx, sampleDefinition(n)))
	}

	names, err = s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"alpha", "mid", "zeta"}, names)
}

func (s *StoreSuite) TestDelete() {
	s.Require().NoError(s.store.Save(s.ctx, sampleDefinition("a")))
	s.Require().NoError(s.store.Save(s.ctx, sampleDefinition("b")))

	s.Require().NoError(s.store.Delete(s.ctx, "a"))

	_, err := s.store.Get(s.ctx, "a")
	s.ErrorIs(err, ErrAutomatonNotFound)

	names, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"b"}, names)

	s.ErrorIs(s.store.Delete(s.ctx, "a"), ErrAutomatonNotFound)
}

func (s *StoreSuite) TestStoredCopyIsIndependent() {
	def := sampleDefinition("copy")
	s.Require().NoError(s.store.Save(s.ctx, def))

	def.States[0] = "mutated"
	got, err := s.store.Get(s.ctx, "copy")
	s.Require().NoError(err)
	s.Equal("even", got.States[0])

	got.Accept[0] = "mutated"
	again, err := s.store.Get(s.ctx, "copy")
	s.Require().NoError(err)
	s.Equal([]string{"odd"}, again.Accept)
}
