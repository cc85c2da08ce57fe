package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringUsesAlphabet(t *testing.T) {
	r := New()
	s := r.String(32, "AB")

	assert.Len(t, s, 32)
	assert.Empty(t, strings.Trim(s, "AB"))
}

func TestStringDegenerateInput(t *testing.T) {
	r := New()
	assert.Empty(t, r.String(0, "AB"))
	assert.Empty(t, r.String(5, ""))
}
