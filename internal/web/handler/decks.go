package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/decklist-exporter/internal/services/exporter"
	"github.com/mcoot/decklist-exporter/internal/web/middleware"
	"github.com/mcoot/decklist-exporter/internal/web/templates/layout"
	"github.com/mcoot/decklist-exporter/internal/web/templates/pages"
)

// DeckHandler handles the decklist form and its result page
type DeckHandler struct {
	newExporter func() *exporter.Controller
	logger      *slog.Logger
}

// NewDeckHandler creates a new DeckHandler. Each request gets its own form
// controller from newExporter.
func NewDeckHandler(newExporter func() *exporter.Controller, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{
		newExporter: newExporter,
		logger:      logger,
	}
}

// Home renders an empty decklist form
func (h *DeckHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctrl := h.newExporter()
	h.renderForm(w, r, ctrl)
}

// Submit validates and exports the posted form. Success renders the deck;
// any failure re-renders the form with its values and the message.
func (h *DeckHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl := h.newExporter()

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	form := exporter.Form{
		TrainerName:  r.PostFormValue("trainer_name"),
		DecklistCode: r.PostFormValue("decklist_code"),
		Phone:        r.PostFormValue("phone"),
	}
	if err := ctrl.SetForm(form); err != nil {
		h.renderForm(w, r, ctrl)
		return
	}

	deck, err := ctrl.Submit(r.Context())
	if err != nil {
		h.renderForm(w, r, ctrl)
		return
	}

	data := pages.ResultData{
		PageData: layout.PageData{
			Title: "Deck Created",
			Flash: middleware.GetFlash(r.Context()),
			Nav:   "home",
		},
		Deck: deck,
	}
	render(w, r, h.logger, pages.Result(data))
}

func (h *DeckHandler) renderForm(w http.ResponseWriter, r *http.Request, ctrl *exporter.Controller) {
	state := ctrl.State()
	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Export",
			Flash: middleware.GetFlash(r.Context()),
			Nav:   "home",
		},
		Form:         state.Form,
		RequirePhone: ctrl.RequirePhone(),
		Status:       state.Status,
		Error:        state.ErrorMessage,
	}
	render(w, r, h.logger, pages.Home(data))
}
