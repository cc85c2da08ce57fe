package model

// DeckSubmission is the request body for exporting a decklist
type DeckSubmission struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Phone string `json:"phone,omitempty"`
}

// Card is a single entry of a resolved decklist
type Card struct {
	Index     int    `json:"index"`
	Count     int    `json:"count"`
	Name      string `json:"name"`
	Expansion string `json:"expansion"`
	Number    string `json:"number"`
	Image     string `json:"image"`
}

// Deck is the backend's resolved representation of a submitted decklist
type Deck struct {
	Message string `json:"message,omitempty"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cards   []Card `json:"cards"`
	URL     string `json:"url"`
}

// TotalCards returns the sum of card counts in the deck
func (d Deck) TotalCards() int {
	total := 0
	for _, c := range d.Cards {
		total += c.Count
	}
	return total
}
