package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/decklist-exporter/internal/api/handler"
	"github.com/mcoot/decklist-exporter/internal/api/middleware"
	"github.com/mcoot/decklist-exporter/internal/services/decks"
)

// RouterConfig holds configuration for the development API router
type RouterConfig struct {
	Logger      *slog.Logger
	DeckService *decks.Service
}

// NewRouter creates the development backend router. It serves the same
// endpoints the front-end consumes from the real backend.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.DeckService)
	deckHandler := handler.NewDeckHandler(cfg.DeckService)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.Recovery(cfg.Logger))

	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/decks", deckHandler.Create).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
