package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Gallery", T("en", "nav.gallery"))
	assert.Equal(t, "Galería", T("es", "nav.gallery"))

	// Unknown locales fall back to English, unknown keys to the key itself.
	assert.Equal(t, "Gallery", T("fr", "nav.gallery"))
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/", Path("en", "/"))
	assert.Equal(t, "/builds/galaxy-ship", Path("en", "/builds/galaxy-ship"))
	assert.Equal(t, "/es", Path("es", "/"))
	assert.Equal(t, "/es/builds/galaxy-ship", Path("es", "/builds/galaxy-ship"))
	assert.Equal(t, "/support", Path("fr", "/support"))
}

func TestLocalesCoverSameKeys(t *testing.T) {
	for key := range locales["en"] {
		_, ok := locales["es"][key]
		assert.True(t, ok, "missing Spanish translation for %s", key)
	}
	for key := range locales["es"] {
		_, ok := locales["en"][key]
		assert.True(t, ok, "missing English translation for %s", key)
	}
}
