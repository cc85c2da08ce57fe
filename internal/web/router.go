package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/decklist-exporter/internal/services/admin"
	"github.com/mcoot/decklist-exporter/internal/services/exporter"
	"github.com/mcoot/decklist-exporter/internal/storage"
	"github.com/mcoot/decklist-exporter/internal/storage/cookie"
	"github.com/mcoot/decklist-exporter/internal/web/handler"
	"github.com/mcoot/decklist-exporter/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger *slog.Logger
	// NewExporter and NewAdmin build a fresh controller per request
	NewExporter func() *exporter.Controller
	NewAdmin    func() *admin.Controller
	// PinStore keeps PINs server side when set; otherwise each browser keeps
	// its own in a cookie
	PinStore  storage.PinStore
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Logging wraps recovery so panics are logged with their request id
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))

	pinStore := func(w http.ResponseWriter, r *http.Request) storage.PinStore {
		return cookie.New(w, r)
	}
	if cfg.PinStore != nil {
		pinStore = func(http.ResponseWriter, *http.Request) storage.PinStore {
			return cfg.PinStore
		}
	}

	// Create handlers
	deckHandler := handler.NewDeckHandler(cfg.NewExporter, cfg.Logger)
	adminHandler := handler.NewAdminHandler(cfg.NewAdmin, cfg.Logger)
	pinHandler := handler.NewPinHandler(pinStore, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())

	pages.HandleFunc("/", deckHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/decks", deckHandler.Submit).Methods(http.MethodPost)

	pages.HandleFunc("/admin", adminHandler.Index).Methods(http.MethodGet)
	pages.HandleFunc("/admin/players/{id}/edit", adminHandler.Edit).Methods(http.MethodGet)
	pages.HandleFunc("/admin/players/{id}/edit", adminHandler.SaveEdit).Methods(http.MethodPost)
	pages.HandleFunc("/admin/players/{id}/register", adminHandler.Register).Methods(http.MethodGet)
	pages.HandleFunc("/admin/players/{id}/register", adminHandler.SaveRegister).Methods(http.MethodPost)
	pages.HandleFunc("/admin/players/{id}/delete", adminHandler.ConfirmDelete).Methods(http.MethodGet)
	pages.HandleFunc("/admin/players/{id}/delete", adminHandler.Delete).Methods(http.MethodPost)

	pages.HandleFunc("/pin", pinHandler.Show).Methods(http.MethodGet)
	pages.HandleFunc("/pin", pinHandler.Enter).Methods(http.MethodPost)

	return r
}
