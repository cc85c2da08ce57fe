package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/decklist-exporter/internal/backend"
	"github.com/mcoot/decklist-exporter/internal/model"
)

// Messages shown for failed operations
const (
	MessageLoadFailed     = "Failed to load players"
	MessageUpdateFailed   = "Failed to update player"
	MessageDeleteFailed   = "Failed to delete player"
	MessageRegisterFailed = "Failed to register deck"
)

// DeletePrompt is the question put to the Confirmer before deleting
const DeletePrompt = "Are you sure you want to delete this player?"

// PlayerAPI is the subset of the backend the admin table uses
type PlayerAPI interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	UpdatePlayer(ctx context.Context, id model.PlayerID, update model.PlayerUpdate) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) bool

// Confirm calls f
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// EditForm is the edit modal, pre-filled from the selected player
type EditForm struct {
	PlayerID model.PlayerID
	Name     string
	DeckCode string
}

// RegisterForm is the register-deck modal, scoped to the deck code only
type RegisterForm struct {
	PlayerID model.PlayerID
	DeckCode string
}

// State is a snapshot of the admin table for rendering
type State struct {
	Players  []model.Player
	Loading  bool
	Error    string
	Editing  *EditForm
	Register *RegisterForm
}

// Controller manages the player table and its edit, register and delete
// actions. Every successful mutation is followed by a refetch.
type Controller struct {
	api    PlayerAPI
	logger *slog.Logger

	mu       sync.Mutex
	players  []model.Player
	loading  bool
	err      string
	editing  *EditForm
	register *RegisterForm
}

// NewController creates a new admin table controller
func NewController(api PlayerAPI, logger *slog.Logger) *Controller {
	return &Controller{
		api:     api,
		logger:  logger,
		players: []model.Player{},
		loading: true,
	}
}

// State returns a snapshot of the controller
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := State{
		Players: append([]model.Player(nil), c.players...),
		Loading: c.loading,
		Error:   c.err,
	}
	if c.editing != nil {
		edit := *c.editing
		state.Editing = &edit
	}
	if c.register != nil {
		reg := *c.register
		state.Register = &reg
	}
	return state
}

// Load fetches the full player list. The table reports loading until the
// first fetch completes. On failure the previous list is kept.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	players, err := c.api.ListPlayers(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.err = MessageLoadFailed
		c.logFailure("error fetching players", err)
		return fmt.Errorf("list players: %w", err)
	}

	c.players = players
	c.err = ""
	return nil
}

// BeginEdit opens the edit modal for a player
func (c *Controller) BeginEdit(id model.PlayerID) (EditForm, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, ok := model.FindPlayer(c.players, id)
	if !ok {
		return EditForm{}, model.ErrPlayerNotFound
	}

	form := EditForm{
		PlayerID: player.ID,
		Name:     player.Name,
		DeckCode: player.DeckCodeOrEmpty(),
	}
	c.editing = &form
	return form, nil
}

// CancelEdit closes the edit modal, discarding changes
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = nil
}

// SaveEdit updates the player's name and deck code. An empty deck code is
// left out of the update.
func (c *Controller) SaveEdit(ctx context.Context, form EditForm) error {
	update := model.PlayerUpdate{Name: &form.Name}
	if form.DeckCode != "" {
		update.DeckCode = &form.DeckCode
	}

	if _, err := c.api.UpdatePlayer(ctx, form.PlayerID, update); err != nil {
		c.setError(MessageUpdateFailed)
		c.logFailure("error updating player", err)
		return fmt.Errorf("update player %s: %w", form.PlayerID, err)
	}

	c.mu.Lock()
	c.editing = nil
	c.mu.Unlock()

	return c.Load(ctx)
}

// BeginRegister opens the register-deck modal for a player
func (c *Controller) BeginRegister(id model.PlayerID) (RegisterForm, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, ok := model.FindPlayer(c.players, id)
	if !ok {
		return RegisterForm{}, model.ErrPlayerNotFound
	}

	form := RegisterForm{
		PlayerID: player.ID,
		DeckCode: player.DeckCodeOrEmpty(),
	}
	c.register = &form
	return form, nil
}

// CancelRegister closes the register-deck modal, discarding changes
func (c *Controller) CancelRegister() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register = nil
}

// SaveRegister sets only the player's deck code, even when empty
func (c *Controller) SaveRegister(ctx context.Context, form RegisterForm) error {
	update := model.PlayerUpdate{DeckCode: &form.DeckCode}

	if _, err := c.api.UpdatePlayer(ctx, form.PlayerID, update); err != nil {
		c.setError(MessageRegisterFailed)
		c.logFailure("error registering deck", err)
		return fmt.Errorf("register deck for %s: %w", form.PlayerID, err)
	}

	c.mu.Lock()
	c.register = nil
	c.mu.Unlock()

	return c.Load(ctx)
}

// Delete removes a player once the confirmer agrees. Declining is a no-op.
// It reports whether a delete was attempted.
func (c *Controller) Delete(ctx context.Context, id model.PlayerID, confirmer Confirmer) (bool, error) {
	if !confirmer.Confirm(DeletePrompt) {
		return false, nil
	}

	if err := c.api.DeletePlayer(ctx, id); err != nil {
		c.setError(MessageDeleteFailed)
		c.logFailure("error deleting player", err)
		return true, fmt.Errorf("delete player %s: %w", id, err)
	}

	return true, c.Load(ctx)
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = msg
}

func (c *Controller) logFailure(msg string, err error) {
	attrs := []any{slog.String("error", err.Error())}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs, slog.Int("status", apiErr.Status), slog.String("response", apiErr.Body))
	}
	c.logger.Error(msg, attrs...)
}
