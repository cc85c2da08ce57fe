package layout

import (
	_ "embed"
	"html/template"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData is embedded in every page's data
type PageData struct {
	Title string
	Flash *FlashMessage
	// Nav marks the active navigation link
	Nav string
}

//go:embed base.html
var baseSource string

// Base returns a fresh copy of the site layout. Pages parse their own
// "content" block into it.
func Base() *template.Template {
	return template.Must(template.New("base").Funcs(Funcs()).Parse(baseSource))
}

// Funcs are the helpers available to every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"plural": func(n int, singular, plural string) string {
			if n == 1 {
				return singular
			}
			return plural
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
}
