package decks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/decklist-exporter/internal/dependencies/random"
	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/storage"
)

// ErrInvalidSubmission is returned when a name or code is missing
var ErrInvalidSubmission = errors.New("name and code are required")

const (
	deckIDLength   = 6
	deckIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Service backs the development API: it resolves decklist codes from an
// in-process catalogue and keeps the player list.
type Service struct {
	store  storage.PlayerStore
	random random.Random
	logger *slog.Logger

	mu        sync.RWMutex
	decklists map[string][]model.Card
}

// New creates a Service with the sample decklist registered
func New(store storage.PlayerStore, rnd random.Random, logger *slog.Logger) *Service {
	s := &Service{
		store:     store,
		random:    rnd,
		logger:    logger,
		decklists: make(map[string][]model.Card),
	}
	s.RegisterDecklist(SampleCode, sampleDecklist())
	return s
}

// RegisterDecklist adds or replaces a decklist in the catalogue
func (s *Service) RegisterDecklist(code string, cards []model.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decklists[code] = cards
}

func (s *Service) lookup(code string) ([]model.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cards, ok := s.decklists[code]
	if !ok {
		return nil, false
	}
	out := make([]model.Card, len(cards))
	for i, c := range cards {
		c.Index = i
		out[i] = c
	}
	return out, true
}

// Submit resolves a decklist code and records it against the trainer,
// creating the player when no player of that name exists yet.
func (s *Service) Submit(ctx context.Context, sub model.DeckSubmission) (*model.Deck, error) {
	name := strings.TrimSpace(sub.Name)
	code := strings.TrimSpace(sub.Code)
	if name == "" || code == "" {
		return nil, ErrInvalidSubmission
	}

	cards, ok := s.lookup(code)
	if !ok {
		return nil, model.ErrDeckNotFound
	}

	deckID := s.random.String(deckIDLength, deckIDAlphabet)
	deckURL := "/decks/" + deckID

	player, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if player == nil {
		player = &model.Player{ID: model.PlayerID(uuid.NewString()), Name: name}
	}
	player.DeckCode = &code
	player.DeckURL = &deckURL

	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("save player: %w", err)
	}

	s.logger.Info("deck created",
		slog.String("deck_id", deckID),
		slog.String("player_id", string(player.ID)),
	)

	return &model.Deck{
		Message: "Deck created",
		ID:      deckID,
		Name:    name,
		Cards:   cards,
		URL:     deckURL,
	}, nil
}

func (s *Service) findByName(ctx context.Context, name string) (*model.Player, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	for _, p := range players {
		if strings.EqualFold(p.Name, name) {
			return &p, nil
		}
	}
	return nil, nil
}

// ListPlayers returns every player
func (s *Service) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return s.store.ListPlayers(ctx)
}

// UpdatePlayer applies a partial update
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, update model.PlayerUpdate) (*model.Player, error) {
	player, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		player.Name = *update.Name
	}
	if update.DeckCode != nil {
		if *update.DeckCode == "" {
			player.DeckCode = nil
			player.DeckURL = nil
		} else {
			code := *update.DeckCode
			player.DeckCode = &code
		}
	}

	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("save player: %w", err)
	}
	return player, nil
}

// DeletePlayer removes a player
func (s *Service) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	return s.store.DeletePlayer(ctx, id)
}

// AddPlayer creates a player without a deck; used to seed the development backend
func (s *Service) AddPlayer(ctx context.Context, name string) (*model.Player, error) {
	player := &model.Player{ID: model.PlayerID(uuid.NewString()), Name: name}
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("save player: %w", err)
	}
	return player, nil
}
