package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Galaxy Ship", "galaxy-ship"},
		{"My Amazing LEGO Build! @2024", "my-amazing-lego-build-2024"},
		{"Super   Cool---Build", "super-cool-build"},
		{"  padded title  ", "padded-title"},
		{"snake_case_title", "snake-case-title"},
		{"---edges---", "edges"},
		{"ALL CAPS", "all-caps"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyIsIdempotent(t *testing.T) {
	for _, in := range []string{"Galaxy Ship", "My Amazing LEGO Build! @2024", "a_b c-d"} {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}
