package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/services/admin"
	"github.com/mcoot/decklist-exporter/internal/services/exporter"
	"github.com/mcoot/decklist-exporter/internal/services/pin"
	"github.com/mcoot/decklist-exporter/internal/web/templates/layout"
)

func renderDoc(t *testing.T, fn func(*bytes.Buffer) error) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestHomeShowsPhoneOnlyWhenRequired(t *testing.T) {
	ctx := context.Background()

	doc := renderDoc(t, func(b *bytes.Buffer) error {
		return Home(HomeData{PageData: layout.PageData{Title: "Export"}}).Render(ctx, b)
	})
	assert.Equal(t, 0, doc.Find("#phone").Length())
	assert.Equal(t, 0, doc.Find("#form-error").Length())

	doc = renderDoc(t, func(b *bytes.Buffer) error {
		return Home(HomeData{
			RequirePhone: true,
			Form:         exporter.Form{TrainerName: "Ash", Phone: "0812"},
			Status:       exporter.StatusError,
			Error:        "Please enter a valid phone number",
		}).Render(ctx, b)
	})
	phone, _ := doc.Find("#phone").Attr("value")
	assert.Equal(t, "0812", phone)
	name, _ := doc.Find("#trainer-name").Attr("value")
	assert.Equal(t, "Ash", name)
	assert.Contains(t, doc.Find("#form-error").Text(), "Please enter a valid phone number")
}

func TestResultListsCards(t *testing.T) {
	deck := &model.Deck{
		ID:   "ABC123",
		Name: "Ash",
		Cards: []model.Card{
			{Count: 4, Name: "Charmander", Expansion: "OBF", Number: "26"},
			{Count: 2, Name: "Charizard ex", Expansion: "OBF", Number: "125"},
		},
	}

	doc := renderDoc(t, func(b *bytes.Buffer) error {
		return Result(ResultData{Deck: deck}).Render(context.Background(), b)
	})

	assert.Equal(t, "ABC123", doc.Find(".code-value").Text())
	assert.Equal(t, "Ash", doc.Find(".trainer-name").Text())
	rows := doc.Find("tr.card-row")
	require.Equal(t, 2, rows.Length())
	assert.Contains(t, rows.First().Text(), "Charmander (OBF/26)")
	assert.Contains(t, rows.First().Text(), "4")
}

func TestAdminTable(t *testing.T) {
	code := "xyz"
	state := admin.State{
		Players: []model.Player{
			{ID: "p1", Name: "Misty", DeckCode: &code},
			{ID: "p2", Name: "Brock"},
		},
		Editing: &admin.EditForm{PlayerID: "p1", Name: "Misty", DeckCode: "xyz"},
	}

	doc := renderDoc(t, func(b *bytes.Buffer) error {
		return Admin(AdminData{State: state}).Render(context.Background(), b)
	})

	rows := doc.Find("tr.player-row")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "xyz", rows.Eq(0).Find(".player-deck-code").Text())
	assert.Equal(t, "-", rows.Eq(1).Find(".player-deck-code").Text())
	assert.Equal(t, 1, doc.Find("#edit-modal").Length())
	assert.Equal(t, 0, doc.Find("#register-modal").Length())
	assert.Equal(t, 0, doc.Find("#delete-modal").Length())
}

func TestAdminEmptyAndLoading(t *testing.T) {
	doc := renderDoc(t, func(b *bytes.Buffer) error {
		return Admin(AdminData{}).Render(context.Background(), b)
	})
	assert.Contains(t, doc.Find("#players").Text(), "No players found")

	doc = renderDoc(t, func(b *bytes.Buffer) error {
		return Admin(AdminData{State: admin.State{Loading: true}}).Render(context.Background(), b)
	})
	assert.Contains(t, doc.Text(), "Loading players...")
	assert.Equal(t, 0, doc.Find("#players").Length())
}

func TestPinStatusHint(t *testing.T) {
	tests := []struct {
		name  string
		entry pin.Entry
		want  string
	}{
		{"one digit left", pin.Entry{PIN: "1234567", Remaining: 1}, "Enter 1 more digit"},
		{"several left", pin.Entry{PIN: "12", Remaining: 6}, "Enter 6 more digits"},
		{"saved", pin.Entry{PIN: "12345678", Token: "MTIzNDo1Njc4", Saved: true}, "Saved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := renderDoc(t, func(b *bytes.Buffer) error {
				return PinStatus(PinData{Entry: tt.entry}).Render(context.Background(), b)
			})
			assert.Contains(t, doc.Find("#pin-status").Text(), tt.want)
		})
	}
}

func TestPinEmptyShowsNoHint(t *testing.T) {
	doc := renderDoc(t, func(b *bytes.Buffer) error {
		return Pin(PinData{Entry: pin.Entry{Remaining: 8}}).Render(context.Background(), b)
	})
	assert.NotContains(t, doc.Find("#pin-status").Text(), "more digit")
	assert.Equal(t, 1, doc.Find("#pin-input").Length())
}

func TestLayoutFlash(t *testing.T) {
	doc := renderDoc(t, func(b *bytes.Buffer) error {
		return Pin(PinData{PageData: layout.PageData{
			Flash: &layout.FlashMessage{Type: "success", Message: "Player deleted"},
		}}).Render(context.Background(), b)
	})
	assert.Equal(t, "Player deleted", doc.Find(".flash-success").Text())
}
