package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/decklist-exporter/internal/services/pin"
	"github.com/mcoot/decklist-exporter/internal/storage"
	"github.com/mcoot/decklist-exporter/internal/web/middleware"
	"github.com/mcoot/decklist-exporter/internal/web/templates/layout"
	"github.com/mcoot/decklist-exporter/internal/web/templates/pages"
)

// PinStoreFunc returns the store a request's PIN is persisted in
type PinStoreFunc func(w http.ResponseWriter, r *http.Request) storage.PinStore

// PinHandler handles the PIN entry page
type PinHandler struct {
	store  PinStoreFunc
	logger *slog.Logger
}

// NewPinHandler creates a new PinHandler
func NewPinHandler(store PinStoreFunc, logger *slog.Logger) *PinHandler {
	return &PinHandler{
		store:  store,
		logger: logger,
	}
}

// Show renders the empty PIN input
func (h *PinHandler) Show(w http.ResponseWriter, r *http.Request) {
	svc := pin.New(h.store(w, r), h.logger)
	stored, err := svc.Stored(r.Context())
	if err != nil {
		h.logger.Warn("failed to read stored pin", slog.String("error", err.Error()))
	}

	h.render(w, r, pages.PinData{
		Entry:  pin.Entry{Remaining: pin.Length},
		Stored: stored,
	})
}

// Enter sanitizes the posted digits and saves the token once all eight are
// present. HTMX requests get only the status block back.
func (h *PinHandler) Enter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, "/pin", http.StatusSeeOther)
		return
	}

	svc := pin.New(h.store(w, r), h.logger)
	entry, err := svc.Enter(r.Context(), r.PostFormValue("pin"))
	if err != nil {
		http.Error(w, "Failed to save PIN", http.StatusInternalServerError)
		return
	}
	stored, _ := svc.Stored(r.Context())

	data := pages.PinData{Entry: entry, Stored: stored}
	if isHTMX(r) {
		render(w, r, h.logger, pages.PinStatus(data))
		return
	}
	h.render(w, r, data)
}

func (h *PinHandler) render(w http.ResponseWriter, r *http.Request, data pages.PinData) {
	data.PageData = layout.PageData{
		Title: "PIN",
		Flash: middleware.GetFlash(r.Context()),
		Nav:   "pin",
	}
	render(w, r, h.logger, pages.Pin(data))
}
