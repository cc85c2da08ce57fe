package exporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/decklist-exporter/internal/backend"
	"github.com/mcoot/decklist-exporter/internal/model"
)

// Status is the state of the submission form
type Status string

const (
	StatusIdle      Status = "idle"
	StatusExporting Status = "exporting"
	StatusSuccess   Status = "success"
	StatusError     Status = "error"
)

// GenericFailureMessage is shown when a failure carries no usable message
const GenericFailureMessage = "Failed to export decklist"

// ErrSubmissionInProgress is returned when a submit or edit is attempted
// while a previous submission is still in flight
var ErrSubmissionInProgress = errors.New("submission already in progress")

// DeckSubmitter sends decklists to the backend
type DeckSubmitter interface {
	SubmitDeck(ctx context.Context, sub model.DeckSubmission) (*model.Deck, error)
}

// Config holds configuration for the form controller
type Config struct {
	// RequirePhone enables the phone-number variant of the form
	RequirePhone bool
}

// State is a snapshot of the controller for rendering
type State struct {
	Form         Form
	Status       Status
	ErrorMessage string
	Deck         *model.Deck
}

// Controller holds the decklist form and drives idle -> exporting ->
// success|error. Leaving success or error requires Reset; after an error the
// form may also be resubmitted.
type Controller struct {
	client DeckSubmitter
	cfg    Config
	logger *slog.Logger

	mu           sync.Mutex
	form         Form
	status       Status
	errorMessage string
	deck         *model.Deck
	generation   int
}

// NewController creates a new form controller
func NewController(client DeckSubmitter, cfg Config, logger *slog.Logger) *Controller {
	return &Controller{
		client: client,
		cfg:    cfg,
		logger: logger,
		status: StatusIdle,
	}
}

// RequirePhone reports whether the phone field is mandatory
func (c *Controller) RequirePhone() bool {
	return c.cfg.RequirePhone
}

// SetForm replaces the form fields. Phone input keeps digits only. Inputs
// are locked while a submission is in flight.
func (c *Controller) SetForm(form Form) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusExporting {
		return ErrSubmissionInProgress
	}

	form.Phone = SanitizePhone(form.Phone)
	c.form = form
	return nil
}

// State returns a snapshot of the controller
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Form:         c.form,
		Status:       c.status,
		ErrorMessage: c.errorMessage,
		Deck:         c.deck,
	}
}

// Submit validates the form and, if valid, exports it. Validation failures
// never reach the backend.
func (c *Controller) Submit(ctx context.Context) (*model.Deck, error) {
	c.mu.Lock()
	if c.status == StatusExporting {
		c.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}

	if err := Validate(c.form, c.cfg.RequirePhone); err != nil {
		c.status = StatusError
		c.errorMessage = err.Error()
		c.mu.Unlock()
		c.logger.Debug("decklist form rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	form := c.form.Trimmed()
	sub := model.DeckSubmission{
		Name:  form.TrainerName,
		Code:  form.DecklistCode,
		Phone: form.Phone,
	}
	c.status = StatusExporting
	c.errorMessage = ""
	generation := c.generation
	c.mu.Unlock()

	c.logger.Info("exporting decklist", slog.String("code", sub.Code))

	deck, err := c.client.SubmitDeck(ctx, sub)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		// Reset while in flight; drop the result
		return deck, err
	}

	if err != nil {
		c.status = StatusError
		c.errorMessage = failureMessage(err)
		c.logger.Error("failed to export decklist",
			slog.String("code", sub.Code),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("export decklist: %w", err)
	}

	c.status = StatusSuccess
	c.deck = deck
	c.logger.Info("decklist exported",
		slog.String("deck_id", deck.ID),
		slog.Int("cards", len(deck.Cards)),
	)
	return deck, nil
}

// Reset clears the form and any result back to the initial idle state
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = Form{}
	c.status = StatusIdle
	c.errorMessage = ""
	c.deck = nil
	c.generation++
}

// failureMessage prefers the backend's own message, then the error text
func failureMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return backend.MessageOr(err, GenericFailureMessage)
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericFailureMessage
}
