package storage

import (
	"context"
	"errors"

	"github.com/mcoot/decklist-exporter/internal/model"
)

// PinKey is the well-known key the encoded PIN token is persisted under
const PinKey = "pin"

// ErrNotFound is returned when a key has never been written
var ErrNotFound = errors.New("not found")

// PinStore persists the single encoded PIN token. Writes overwrite any prior
// value.
type PinStore interface {
	LoadPin(ctx context.Context) (string, error)
	SavePin(ctx context.Context, token string) error
}

// PlayerStore persists players for the development backend
type PlayerStore interface {
	// ListPlayers returns players in insertion order
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	SavePlayer(ctx context.Context, player *model.Player) error
	DeletePlayer(ctx context.Context, id model.PlayerID) error
}

// Storage combines every store a single backend provides
type Storage interface {
	PinStore
	PlayerStore
}
