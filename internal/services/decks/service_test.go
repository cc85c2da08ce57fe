package decks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/decklist-exporter/internal/dependencies/mocks"
	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/storage/memory"
	"github.com/mcoot/decklist-exporter/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.random = mocks.NewMockRandom("DECK01", "DECK02")
	s.service = New(s.store, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestSubmitSampleDeck() {
	deck, err := s.service.Submit(s.ctx, model.DeckSubmission{Name: "Ash", Code: SampleCode})
	s.Require().NoError(err)

	s.Equal("DECK01", deck.ID)
	s.Equal("Ash", deck.Name)
	s.Equal("/decks/DECK01", deck.URL)
	s.Require().NotEmpty(deck.Cards)
	for i, c := range deck.Cards {
		s.Equal(i, c.Index)
	}
	s.Equal(28, deck.TotalCards())
}

func (s *ServiceSuite) TestSubmitCreatesPlayer() {
	_, err := s.service.Submit(s.ctx, model.DeckSubmission{Name: "Ash", Code: SampleCode})
	s.Require().NoError(err)

	players, err := s.store.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal("Ash", players[0].Name)
	s.Equal(SampleCode, players[0].DeckCodeOrEmpty())
	s.Equal("/decks/DECK01", *players[0].DeckURL)
}

func (s *ServiceSuite) TestSubmitReusesPlayerByName() {
	_, _ = s.service.Submit(s.ctx, model.DeckSubmission{Name: "Ash", Code: SampleCode})
	_, err := s.service.Submit(s.ctx, model.DeckSubmission{Name: "ash", Code: SampleCode})
	s.Require().NoError(err)

	players, _ := s.store.ListPlayers(s.ctx)
	s.Require().Len(players, 1)
	s.Equal("/decks/DECK02", *players[0].DeckURL)
}

func (s *ServiceSuite) TestSubmitUnknownCode() {
	_, err := s.service.Submit(s.ctx, model.DeckSubmission{Name: "Ash", Code: "nope"})
	s.ErrorIs(err, model.ErrDeckNotFound)
}

func (s *ServiceSuite) TestSubmitMissingFields() {
	_, err := s.service.Submit(s.ctx, model.DeckSubmission{Name: " ", Code: SampleCode})
	s.ErrorIs(err, ErrInvalidSubmission)
}

func (s *ServiceSuite) TestRegisterDecklist() {
	s.service.RegisterDecklist("custom", []model.Card{{Count: 60, Name: "Basic Water Energy", Expansion: "SVE", Number: "3"}})

	deck, err := s.service.Submit(s.ctx, model.DeckSubmission{Name: "Misty", Code: "custom"})
	s.Require().NoError(err)
	s.Equal(60, deck.TotalCards())
}

func (s *ServiceSuite) TestUpdatePlayer() {
	player, err := s.service.AddPlayer(s.ctx, "Brock")
	s.Require().NoError(err)

	name := "Brock Harrison"
	code := "abc"
	updated, err := s.service.UpdatePlayer(s.ctx, player.ID, model.PlayerUpdate{Name: &name, DeckCode: &code})
	s.Require().NoError(err)
	s.Equal("Brock Harrison", updated.Name)
	s.Equal("abc", updated.DeckCodeOrEmpty())

	empty := ""
	updated, err = s.service.UpdatePlayer(s.ctx, player.ID, model.PlayerUpdate{DeckCode: &empty})
	s.Require().NoError(err)
	s.Nil(updated.DeckCode)
	s.Equal("Brock Harrison", updated.Name)
}

func (s *ServiceSuite) TestUpdateUnknownPlayer() {
	_, err := s.service.UpdatePlayer(s.ctx, "missing", model.PlayerUpdate{})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeletePlayer() {
	player, _ := s.service.AddPlayer(s.ctx, "Brock")

	s.Require().NoError(s.service.DeletePlayer(s.ctx, player.ID))
	s.ErrorIs(s.service.DeletePlayer(s.ctx, player.ID), model.ErrPlayerNotFound)
}
