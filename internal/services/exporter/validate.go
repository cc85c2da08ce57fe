package exporter

import (
	"regexp"
	"strings"
)

// Field names used in validation errors
const (
	FieldTrainerName  = "trainer_name"
	FieldDecklistCode = "decklist_code"
	FieldPhone        = "phone"
)

var phonePattern = regexp.MustCompile(`^08[0-9]+$`)

// minPhoneLength is exclusive: a phone must be longer than this
const minPhoneLength = 6

// ValidationError reports the first invalid field of a form
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Form holds the decklist submission fields as typed by the user
type Form struct {
	TrainerName  string
	DecklistCode string
	Phone        string
}

// Trimmed returns the form with surrounding whitespace removed from every field
func (f Form) Trimmed() Form {
	return Form{
		TrainerName:  strings.TrimSpace(f.TrainerName),
		DecklistCode: strings.TrimSpace(f.DecklistCode),
		Phone:        strings.TrimSpace(f.Phone),
	}
}

// IsValidPhone reports whether phone starts with 08, holds only digits and
// is longer than six characters.
func IsValidPhone(phone string) bool {
	return len(phone) > minPhoneLength && phonePattern.MatchString(phone)
}

// SanitizePhone keeps only the digits of raw phone input
func SanitizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks the form in field order. A phone is mandatory only when
// requirePhone is set, but any phone supplied must be valid.
func Validate(form Form, requirePhone bool) error {
	form = form.Trimmed()

	if form.TrainerName == "" {
		return &ValidationError{Field: FieldTrainerName, Message: "Please enter a trainer's name"}
	}
	if form.DecklistCode == "" {
		return &ValidationError{Field: FieldDecklistCode, Message: "Please enter a decklist code"}
	}
	if form.Phone == "" {
		if requirePhone {
			return &ValidationError{Field: FieldPhone, Message: "Please enter a phone number"}
		}
		return nil
	}
	if !IsValidPhone(form.Phone) {
		return &ValidationError{Field: FieldPhone, Message: "Please enter a valid phone number"}
	}
	return nil
}
