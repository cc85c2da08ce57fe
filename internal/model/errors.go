package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Deck errors
	ErrDeckNotFound = errors.New("decklist not found")
)
