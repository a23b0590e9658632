package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mybricks/internal/constants"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("testsession", cookie.NewStore([]byte("test-secret"))))

	r.GET("/test-login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(constants.SessionKeyUserEmail, "admin@example.com")
		session.Save()
		c.Status(http.StatusOK)
	})
	r.GET("/admin/login", RedirectIfAuthenticated(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	admin := r.Group("/admin", AuthMiddleware())
	admin.GET("/posts", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func loginCookies(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test-login", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func TestAuthMiddlewareRedirectsAnonymous(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login?redirect=%2Fadmin%2Fposts", w.Header().Get("Location"))
}

func TestAuthMiddlewareAllowsSession(t *testing.T) {
	r := newTestRouter()
	cookies := loginCookies(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginPageBouncesAuthenticated(t *testing.T) {
	r := newTestRouter()
	cookies := loginCookies(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestSafeRedirect(t *testing.T) {
	assert.Equal(t, "/admin/posts", safeRedirect("/admin/posts"))
	assert.Equal(t, "/admin", safeRedirect(""))
	assert.Equal(t, "/admin", safeRedirect("https://evil.example.com"))
	assert.Equal(t, "/admin", safeRedirect("//evil.example.com"))
}
