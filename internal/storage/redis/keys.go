package redis

import (
	"fmt"

	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/storage"
)

// Key prefix for all decklist-exporter data
const keyPrefix = "deckexport"

// pinKey returns the Redis key for the encoded PIN token
func pinKey() string {
	return fmt.Sprintf("%s:%s", keyPrefix, storage.PinKey)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerIndexKey returns the Redis key for the LIST of player ids in insertion order
func playerIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}
