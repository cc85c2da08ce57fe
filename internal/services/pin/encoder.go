package pin

import (
	"encoding/base64"
	"errors"
	"strings"
)

const (
	// Length is the number of digits in a PIN
	Length = 8

	half      = Length / 2
	separator = ":"
)

// ErrInvalidToken is returned when a stored token does not decode to a PIN
var ErrInvalidToken = errors.New("invalid pin token")

// SanitizeInput strips everything but ASCII digits from raw and caps the
// result at Length digits.
func SanitizeInput(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == Length {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsComplete reports whether pin is exactly Length ASCII digits
func IsComplete(pin string) bool {
	if len(pin) != Length {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// Encode splits an 8-digit PIN into two halves, joins them with a colon and
// base64-encodes the result. ok is false for anything but exactly 8 digits.
//
// The encoding is reversible and provides no confidentiality.
func Encode(pin string) (token string, ok bool) {
	if !IsComplete(pin) {
		return "", false
	}
	joined := pin[:half] + separator + pin[half:]
	return base64.StdEncoding.EncodeToString([]byte(joined)), true
}

// Decode reverses Encode
func Decode(token string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	first, second, found := strings.Cut(string(data), separator)
	if !found || len(first) != half || len(second) != half {
		return "", ErrInvalidToken
	}

	pin := first + second
	if !IsComplete(pin) {
		return "", ErrInvalidToken
	}
	return pin, nil
}
