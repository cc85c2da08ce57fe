package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/decklist-exporter/internal/api/apierr"
	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/services/decks"
)

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	decks *decks.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(decks *decks.Service) *PlayerHandler {
	return &PlayerHandler{decks: decks}
}

// List handles GET /api/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.decks.ListPlayers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// Update handles PUT /api/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req model.PlayerUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.decks.UpdatePlayer(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

// Delete handles DELETE /api/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.decks.DeletePlayer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Player deleted"})
}
