package i18n

// Route-based localization for the public site: "/" serves English and
// "/es" Spanish. The admin back-office is English only.

const DefaultLocale = "en"

var locales = map[string]map[string]string{
	"en": {
		"nav.gallery":         "Gallery",
		"nav.story":           "My Story",
		"nav.support":         "Support Me",
		"hero.badge":          "Master Builder",
		"hero.greeting":       "Hi, I build with",
		"hero.title":          "bricks!",
		"hero.description":    "Welcome to my gallery! Every build here started as a pile of bricks and a big idea.",
		"hero.explore":        "Explore Gallery",
		"hero.support":        "Support My Creations",
		"hero.creations":      "Creations",
		"hero.totalPieces":    "Total Pieces",
		"gallery.title":       "My Creations",
		"gallery.subtitle":    "Every build tells a story",
		"gallery.empty":       "Nothing here yet",
		"gallery.emptyHint":   "The first build is still on the table. Check back soon!",
		"gallery.pieces":      "pieces",
		"build.back":          "Back to Gallery",
		"build.published":     "Published",
		"build.pieces":        "Pieces",
		"build.started":       "Started",
		"build.completed":     "Completed",
		"build.story":         "The Story",
		"build.supportTitle":  "Enjoyed this creation?",
		"build.supportText":   "Your support helps me get more bricks and create even more amazing builds!",
		"build.supportButton": "Support Me",
		"story.title":         "My Story",
		"support.title":       "Support My Creations",
		"support.subtitle":    "Every donation goes straight into new bricks. Thank you!",
		"support.copy":        "Copy address",
		"notfound.title":      "Page not found",
		"notfound.hint":       "Looks like this brick went missing.",
		"notfound.home":       "Back home",
	},
	"es": {
		"nav.gallery":         "Galería",
		"nav.story":           "Mi Historia",
		"nav.support":         "Apóyame",
		"hero.badge":          "Maestro Constructor",
		"hero.greeting":       "Hola, construyo con",
		"hero.title":          "¡bloques!",
		"hero.description":    "¡Bienvenido a mi galería! Cada construcción empezó como un montón de bloques y una gran idea.",
		"hero.explore":        "Explorar la galería",
		"hero.support":        "Apoya mis creaciones",
		"hero.creations":      "Creaciones",
		"hero.totalPieces":    "Piezas en total",
		"gallery.title":       "Mis Creaciones",
		"gallery.subtitle":    "Cada construcción cuenta una historia",
		"gallery.empty":       "Aún no hay nada aquí",
		"gallery.emptyHint":   "La primera construcción sigue en la mesa. ¡Vuelve pronto!",
		"gallery.pieces":      "piezas",
		"build.back":          "Volver a la galería",
		"build.published":     "Publicado",
		"build.pieces":        "Piezas",
		"build.started":       "Comenzado",
		"build.completed":     "Terminado",
		"build.story":         "La Historia",
		"build.supportTitle":  "¿Te gustó esta creación?",
		"build.supportText":   "¡Tu apoyo me ayuda a conseguir más bloques y crear construcciones aún más increíbles!",
		"build.supportButton": "Apóyame",
		"story.title":         "Mi Historia",
		"support.title":       "Apoya mis creaciones",
		"support.subtitle":    "Cada donación se convierte en bloques nuevos. ¡Gracias!",
		"support.copy":        "Copiar dirección",
		"notfound.title":      "Página no encontrada",
		"notfound.hint":       "Parece que este bloque se perdió.",
		"notfound.home":       "Volver al inicio",
	},
}

// Supported reports whether the locale has a string table.
func Supported(locale string) bool {
	_, ok := locales[locale]
	return ok
}

// T resolves a message key for a locale, falling back to English and
// finally to the key itself so a missing translation never breaks a page.
func T(locale, key string) string {
	if msgs, ok := locales[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := locales[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Path prefixes a site-relative path with the locale segment. English is
// the default locale and keeps unprefixed URLs.
func Path(locale, path string) string {
	if locale == DefaultLocale || !Supported(locale) {
		return path
	}
	if path == "/" {
		return "/" + locale
	}
	return "/" + locale + path
}
