package model

// PlayerID uniquely identifies a player on the backend
type PlayerID string

// Player is a tournament participant as returned by the backend.
// Players are created by the backend, never by this client.
type Player struct {
	ID       PlayerID `json:"id"`
	Name     string   `json:"name"`
	DeckCode *string  `json:"deckCode"`
	DeckURL  *string  `json:"deckUrl"`
}

// DeckCodeOrEmpty returns the player's deck code, or "" when none is registered
func (p Player) DeckCodeOrEmpty() string {
	if p.DeckCode == nil {
		return ""
	}
	return *p.DeckCode
}

// PlayerUpdate is the body of a player update. Nil fields are left untouched
// by the backend and omitted from the request.
type PlayerUpdate struct {
	Name     *string `json:"name,omitempty"`
	DeckCode *string `json:"deckCode,omitempty"`
}

// FindPlayer returns the player with the given id from a list
func FindPlayer(players []Player, id PlayerID) (Player, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}
