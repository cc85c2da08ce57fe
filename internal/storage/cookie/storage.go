package cookie

import (
	"context"
	"net/http"
	"time"

	"github.com/mcoot/decklist-exporter/internal/storage"
)

// DefaultMaxAge keeps the token for a year, the closest a cookie gets to
// browser local storage
const DefaultMaxAge = 365 * 24 * time.Hour

// PinStore keeps the PIN token in the browser under the "pin" cookie. It is
// bound to a single request/response pair.
type PinStore struct {
	w      http.ResponseWriter
	r      *http.Request
	maxAge time.Duration

	// saved shadows the request cookie once written so a later load in the
	// same request sees the new value
	saved *string
}

var _ storage.PinStore = (*PinStore)(nil)

// New creates a PinStore for one request
func New(w http.ResponseWriter, r *http.Request) *PinStore {
	return &PinStore{w: w, r: r, maxAge: DefaultMaxAge}
}

func (s *PinStore) LoadPin(ctx context.Context) (string, error) {
	if s.saved != nil {
		return *s.saved, nil
	}
	c, err := s.r.Cookie(storage.PinKey)
	if err != nil || c.Value == "" {
		return "", storage.ErrNotFound
	}
	return c.Value, nil
}

func (s *PinStore) SavePin(ctx context.Context, token string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     storage.PinKey,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	s.saved = &token
	return nil
}
