package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mcoot/decklist-exporter/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.Deck:
		o.printDeck(v)
	case []model.Player:
		o.printPlayers(v)
	case PinResult:
		o.printPin(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PinResult is the outcome of a pin command
type PinResult struct {
	Token string `json:"token,omitempty"`
	PIN   string `json:"pin,omitempty"`
	Saved bool   `json:"saved"`
	File  string `json:"file"`
}

func (o *Output) printDeck(d *model.Deck) {
	fmt.Fprintln(o.w, "Deck Created Successfully")
	fmt.Fprintf(o.w, "Deck Code: %s\n", d.ID)
	fmt.Fprintf(o.w, "Trainer: %s\n", d.Name)
	if d.URL != "" {
		fmt.Fprintf(o.w, "URL: %s\n", d.URL)
	}

	fmt.Fprintf(o.w, "\nCards (%d):\n", d.TotalCards())
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, c := range d.Cards {
		fmt.Fprintf(tw, "  %s (%s/%s)\t%d\n", c.Name, c.Expansion, c.Number, c.Count)
	}
	_ = tw.Flush()
}

func (o *Output) printPlayers(players []model.Player) {
	if len(players) == 0 {
		fmt.Fprintln(o.w, "No players found")
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tID\tNAME\tDECK CODE")
	for i, p := range players {
		code := p.DeckCodeOrEmpty()
		if code == "" {
			code = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, p.ID, p.Name, code)
	}
	_ = tw.Flush()
}

func (o *Output) printPin(p PinResult) {
	switch {
	case p.PIN != "":
		fmt.Fprintf(o.w, "PIN: %s\n", p.PIN)
	case p.Token != "":
		fmt.Fprintf(o.w, "Token: %s\n", p.Token)
	default:
		fmt.Fprintln(o.w, "No PIN stored")
		return
	}
	if p.Saved {
		fmt.Fprintf(o.w, "Saved to %s\n", p.File)
	}
}
