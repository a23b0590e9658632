package main

import (
	"html/template"
	"io/fs"
	"net/http"

	"mybricks/internal/config"
	"mybricks/internal/handlers"
	"mybricks/internal/i18n"
	applog "mybricks/internal/log"
	"mybricks/internal/repository"
	"mybricks/internal/services"
	"mybricks/internal/storage"
	"mybricks/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Global filesystems populated by assets_dev.go or assets_prod.go.
var templatesFS fs.FS
var staticFS fs.FS

var templateFuncs = template.FuncMap{
	"t":          i18n.T,
	"localePath": i18n.Path,
	"date":       utils.FormatDate,
	"isoDate":    utils.FormatDateInput,
}

func createRenderer(logger *zap.SugaredLogger) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	add := func(name string, files ...string) {
		tpl, err := template.New(files[0]).Funcs(templateFuncs).ParseFS(templatesFS, files...)
		if err != nil {
			logger.Fatalw("template parse failed", "template", name, "error", err)
		}
		r.Add(name, tpl)
	}

	add("gallery.html", "base.html", "gallery.html")
	add("build.html", "base.html", "build.html")
	add("story.html", "base.html", "story.html")
	add("support.html", "base.html", "support.html")
	add("login.html", "base.html", "login.html")
	add("dashboard.html", "base.html", "dashboard.html")
	add("admin_posts.html", "base.html", "admin_posts.html", "_pagination.html")
	add("editor.html", "base.html", "editor.html")
	add("404.html", "base.html", "404.html")
	add("error.html", "base.html", "error.html")

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := applog.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := utils.InitDatabase(cfg.Database.Path)
	if err != nil {
		logger.Fatalw("database init failed", "error", err)
	}
	if err := utils.SeedAdminUser(db, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Fatalw("admin seed failed", "error", err)
	}

	store, err := storage.NewDiskStore(cfg.Storage.Path, cfg.Storage.URLPrefix)
	if err != nil {
		logger.Fatalw("storage init failed", "error", err)
	}

	postRepo := repository.NewPostRepository(db)
	userRepo := repository.NewUserRepository(db)

	postService := services.NewPostService(postRepo, store, logger)
	authService := services.NewAuthService(userRepo)
	storageService := services.NewStorageService(store, cfg.Storage.QuotaGB)

	galleryHandler := handlers.NewGalleryHandler(postService, cfg.Wallets, logger)
	adminHandler := handlers.NewAdminHandler(postService, storageService, logger)
	authHandler := handlers.NewAuthHandler(authService)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.HTMLRender = createRenderer(logger)

	cookieStore := cookie.NewStore([]byte(cfg.Session.Secret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(cfg.Session.Name, cookieStore))
	r.Use(handlers.SessionContext())

	r.StaticFS("/static", http.FS(staticFS))
	r.Static(cfg.Storage.URLPrefix, store.Root())

	// Public site: English at the root, Spanish under /es.
	registerPublic(r.Group("/", handlers.LocaleMiddleware("en")), galleryHandler)
	registerPublic(r.Group("/es", handlers.LocaleMiddleware("es")), galleryHandler)

	// Login lives outside the guarded group; a live session skips it.
	r.GET("/admin/login", handlers.RedirectIfAuthenticated(), authHandler.ShowLoginPage)
	r.POST("/admin/login", authHandler.Login)

	admin := r.Group("/admin")
	admin.Use(handlers.AuthMiddleware())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.GET("/posts", adminHandler.ListPosts)
		admin.GET("/posts/new", adminHandler.NewPost)
		admin.GET("/posts/edit/:id", adminHandler.EditPost)
		admin.POST("/posts/save", adminHandler.SavePost)
		admin.POST("/posts/toggle/:id", adminHandler.ToggleStatus)
		admin.POST("/posts/delete/:id", adminHandler.DeletePost)
		admin.GET("/posts/export", adminHandler.ExportPosts)
		admin.GET("/logout", authHandler.Logout)
	}

	r.NoRoute(galleryHandler.NotFound)

	logger.Infow("server starting", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func registerPublic(g *gin.RouterGroup, h *handlers.GalleryHandler) {
	g.GET("", h.Home)
	g.GET("/builds/:slug", h.ShowBuild)
	g.GET("/my-story", h.Story)
	g.GET("/support", h.Support)
}
