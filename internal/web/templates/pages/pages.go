package pages

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"

	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/services/admin"
	"github.com/mcoot/decklist-exporter/internal/services/exporter"
	"github.com/mcoot/decklist-exporter/internal/services/pin"
	"github.com/mcoot/decklist-exporter/internal/web/templates/layout"
)

//go:embed *.html
var files embed.FS

var (
	homeTemplate   = page("home.html")
	resultTemplate = page("result.html")
	adminTemplate  = page("admin.html")
	pinTemplate    = page("pin.html")
)

func page(name string) *template.Template {
	return template.Must(layout.Base().ParseFS(files, name))
}

// HomeData is the decklist submission form
type HomeData struct {
	layout.PageData
	Form         exporter.Form
	RequirePhone bool
	Status       exporter.Status
	Error        string
}

// Home renders the decklist submission form
func Home(data HomeData) templ.Component {
	return templ.FromGoHTML(homeTemplate, data)
}

// ResultData is a successfully created deck
type ResultData struct {
	layout.PageData
	Deck *model.Deck
}

// Result renders the created deck
func Result(data ResultData) templ.Component {
	return templ.FromGoHTML(resultTemplate, data)
}

// AdminData is the players table with at most one open modal
type AdminData struct {
	layout.PageData
	State admin.State
	// Deleting is set while the delete confirmation is open
	Deleting     *model.Player
	DeletePrompt string
}

// Admin renders the player management page
func Admin(data AdminData) templ.Component {
	return templ.FromGoHTML(adminTemplate, data)
}

// PinData is the PIN entry page
type PinData struct {
	layout.PageData
	Entry pin.Entry
	// Stored is the token currently persisted, if any
	Stored string
}

// Pin renders the PIN entry page
func Pin(data PinData) templ.Component {
	return templ.FromGoHTML(pinTemplate, data)
}

// PinStatus renders only the status block below the PIN input, for HTMX
// swaps on each keystroke
func PinStatus(data PinData) templ.Component {
	return templ.FromGoHTML(pinTemplate.Lookup("pin-status"), data)
}
