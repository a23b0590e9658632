package handlers

import (
	"net/http"
	"net/url"

	"mybricks/internal/constants"
	"mybricks/internal/i18n"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin routes. The session is re-validated on
// every request; an anonymous visitor is bounced to the login page with
// the original path preserved as the return target.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(constants.SessionKeyUserEmail) == nil {
			target := "/admin/login?redirect=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps a logged-in admin away from the login page.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(constants.SessionKeyUserEmail) != nil {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LocaleMiddleware pins the request locale for a public route group.
func LocaleMiddleware(locale string) gin.HandlerFunc {
	if !i18n.Supported(locale) {
		locale = i18n.DefaultLocale
	}
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyLocale, locale)
		c.Next()
	}
}

// SessionContext exposes the login state to every template.
func SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		c.Set(constants.ContextKeyIsLoggedIn, session.Get(constants.SessionKeyUserEmail) != nil)
		c.Next()
	}
}

// render merges the ambient context (locale, login state) into the
// template data.
func render(c *gin.Context, status int, templateName string, data gin.H) {
	if _, ok := data["Locale"]; !ok {
		data["Locale"] = localeOf(c)
	}
	if isLoggedIn, exists := c.Get(constants.ContextKeyIsLoggedIn); exists {
		data["IsLoggedIn"] = isLoggedIn
	}
	c.HTML(status, templateName, data)
}

func localeOf(c *gin.Context) string {
	if v, exists := c.Get(constants.ContextKeyLocale); exists {
		if locale, ok := v.(string); ok {
			return locale
		}
	}
	return i18n.DefaultLocale
}
