package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSeparate = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL slug from a title: lowercase and trim, drop every
// character that is not a word character, whitespace or hyphen, collapse
// runs of whitespace/underscores/hyphens into a single hyphen, then trim
// leading and trailing hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSeparate.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}
