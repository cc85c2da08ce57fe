package pin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/decklist-exporter/internal/storage"
)

// Entry is the outcome of a PIN keystroke
type Entry struct {
	// PIN is the sanitized input
	PIN string
	// Token is the encoded value, empty until the PIN is complete
	Token string
	// Saved reports whether Token was written to the store
	Saved bool
	// Remaining is the number of digits still needed
	Remaining int
}

// Service encodes PINs and persists the resulting token
type Service struct {
	store  storage.PinStore
	logger *slog.Logger
}

// New creates a new pin Service
func New(store storage.PinStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Enter sanitizes raw input and, when it forms a complete PIN, stores its
// encoded token, overwriting any previous one. Incomplete input never touches
// the store.
func (s *Service) Enter(ctx context.Context, raw string) (Entry, error) {
	entry := Entry{PIN: SanitizeInput(raw)}
	entry.Remaining = Length - len(entry.PIN)

	token, ok := Encode(entry.PIN)
	if !ok {
		return entry, nil
	}

	if err := s.store.SavePin(ctx, token); err != nil {
		s.logger.Error("failed to save pin", slog.String("error", err.Error()))
		return entry, fmt.Errorf("save pin: %w", err)
	}

	entry.Token = token
	entry.Saved = true
	s.logger.Info("pin saved")
	return entry, nil
}

// Stored returns the persisted token, or "" when none has been saved
func (s *Service) Stored(ctx context.Context) (string, error) {
	token, err := s.store.LoadPin(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load pin: %w", err)
	}
	return token, nil
}
