package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/services/admin"
	"github.com/mcoot/decklist-exporter/internal/web/middleware"
	"github.com/mcoot/decklist-exporter/internal/web/templates/layout"
	"github.com/mcoot/decklist-exporter/internal/web/templates/pages"
)

// AdminHandler handles the player management pages
type AdminHandler struct {
	newAdmin func() *admin.Controller
	logger   *slog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(newAdmin func() *admin.Controller, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		newAdmin: newAdmin,
		logger:   logger,
	}
}

// Index renders the players table
func (h *AdminHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctrl := h.newAdmin()
	_ = ctrl.Load(r.Context())
	h.render(w, r, ctrl.State(), nil)
}

// Edit renders the table with the edit modal open
func (h *AdminHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ctrl, id, ok := h.loadWith(w, r)
	if !ok {
		return
	}
	if _, err := ctrl.BeginEdit(id); err != nil {
		h.playerMissing(w, r, err)
		return
	}
	h.render(w, r, ctrl.State(), nil)
}

// SaveEdit applies the edit modal
func (h *AdminHandler) SaveEdit(w http.ResponseWriter, r *http.Request) {
	ctrl, id, ok := h.loadWith(w, r)
	if !ok {
		return
	}
	if _, err := ctrl.BeginEdit(id); err != nil {
		h.playerMissing(w, r, err)
		return
	}

	form := admin.EditForm{
		PlayerID: id,
		Name:     r.PostFormValue("name"),
		DeckCode: r.PostFormValue("deck_code"),
	}
	if err := ctrl.SaveEdit(r.Context(), form); err != nil {
		// Keep the modal open with what was typed
		state := ctrl.State()
		state.Editing = &form
		h.render(w, r, state, nil)
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Player updated")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Register renders the table with the register-deck modal open
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctrl, id, ok := h.loadWith(w, r)
	if !ok {
		return
	}
	if _, err := ctrl.BeginRegister(id); err != nil {
		h.playerMissing(w, r, err)
		return
	}
	h.render(w, r, ctrl.State(), nil)
}

// SaveRegister applies the register-deck modal
func (h *AdminHandler) SaveRegister(w http.ResponseWriter, r *http.Request) {
	ctrl, id, ok := h.loadWith(w, r)
	if !ok {
		return
	}
	if _, err := ctrl.BeginRegister(id); err != nil {
		h.playerMissing(w, r, err)
		return
	}

	form := admin.RegisterForm{
		PlayerID: id,
		DeckCode: r.PostFormValue("deck_code"),
	}
	if err := ctrl.SaveRegister(r.Context(), form); err != nil {
		state := ctrl.State()
		state.Register = &form
		h.render(w, r, state, nil)
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Deck registered")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// ConfirmDelete renders the table with the delete confirmation open
func (h *AdminHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	ctrl, id, ok := h.loadWith(w, r)
	if !ok {
		return
	}
	state := ctrl.State()
	player, found := model.FindPlayer(state.Players, id)
	if !found {
		h.playerMissing(w, r, model.ErrPlayerNotFound)
		return
	}
	h.render(w, r, state, &player)
}

// Delete removes the player when the confirmation was accepted. Anything
// other than confirm=yes is treated as declining.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctrl, id, ok := h.loadWith(w, r)
	if !ok {
		return
	}

	confirmed := admin.ConfirmFunc(func(string) bool {
		return r.PostFormValue("confirm") == "yes"
	})
	attempted, err := ctrl.Delete(r.Context(), id, confirmed)
	if err != nil {
		h.render(w, r, ctrl.State(), nil)
		return
	}
	if attempted {
		middleware.SetFlash(w, middleware.FlashSuccess, "Player deleted")
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// loadWith parses the form, fetches the table and extracts the player id.
// A failed fetch renders the table with its error and reports !ok.
func (h *AdminHandler) loadWith(w http.ResponseWriter, r *http.Request) (*admin.Controller, model.PlayerID, bool) {
	ctrl := h.newAdmin()
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return nil, "", false
	}
	if err := ctrl.Load(r.Context()); err != nil {
		h.render(w, r, ctrl.State(), nil)
		return nil, "", false
	}
	return ctrl, model.PlayerID(mux.Vars(r)["id"]), true
}

func (h *AdminHandler) playerMissing(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Could not open player"
	if errors.Is(err, model.ErrPlayerNotFound) {
		msg = "Player not found"
	}
	middleware.SetFlash(w, middleware.FlashError, msg)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) render(w http.ResponseWriter, r *http.Request, state admin.State, deleting *model.Player) {
	data := pages.AdminData{
		PageData: layout.PageData{
			Title: "Players",
			Flash: middleware.GetFlash(r.Context()),
			Nav:   "admin",
		},
		State:        state,
		Deleting:     deleting,
		DeletePrompt: admin.DeletePrompt,
	}
	render(w, r, h.logger, pages.Admin(data))
}
