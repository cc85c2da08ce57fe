package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/decklist-exporter/internal/api/apierr"
	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/services/decks"
)

// DeckHandler handles decklist submission
type DeckHandler struct {
	decks *decks.Service
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(decks *decks.Service) *DeckHandler {
	return &DeckHandler{decks: decks}
}

// Create handles POST /api/decks
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.DeckSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	deck, err := h.decks.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}
