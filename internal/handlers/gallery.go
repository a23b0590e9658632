package handlers

import (
	"net/http"

	"mybricks/internal/config"
	"mybricks/internal/services"
	"mybricks/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Wallet is one donation option on the support page.
type Wallet struct {
	Name    string
	Symbol  string
	Address string
}

type GalleryHandler struct {
	postService *services.PostService
	wallets     []Wallet
	log         *zap.SugaredLogger
}

func NewGalleryHandler(postService *services.PostService, cfg config.WalletConfig, logger *zap.SugaredLogger) *GalleryHandler {
	return &GalleryHandler{
		postService: postService,
		wallets: []Wallet{
			{Name: "Bitcoin", Symbol: "BTC", Address: cfg.BTC},
			{Name: "Solana", Symbol: "SOL", Address: cfg.SOL},
			{Name: "Ethereum", Symbol: "ETH", Address: cfg.ETH},
			{Name: "BNB", Symbol: "BNB", Address: cfg.BNB},
			{Name: "USDT (Tron)", Symbol: "USDT", Address: cfg.USDTTron},
		},
		log: logger,
	}
}

// Home renders the public gallery: published builds newest-first, each
// with its cover image, plus the hero counters.
func (h *GalleryHandler) Home(c *gin.Context) {
	posts, err := h.postService.ListWithImages("published")
	if err != nil {
		h.log.Errorw("gallery load failed", "error", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	totalPieces := 0
	for _, p := range posts {
		if p.PieceCount != nil {
			totalPieces += *p.PieceCount
		}
	}

	render(c, http.StatusOK, "gallery.html", gin.H{
		"posts":       posts,
		"TotalPieces": totalPieces,
	})
}

// ShowBuild renders one published build by slug. Drafts and unknown slugs
// both fall through to the 404 page.
func (h *GalleryHandler) ShowBuild(c *gin.Context) {
	post, err := h.postService.GetPostBySlug(c.Param("slug"), true)
	if err != nil {
		render(c, http.StatusNotFound, "404.html", gin.H{})
		return
	}

	storyHTML, err := utils.RenderMarkdown(post.Description)
	if err != nil {
		h.log.Errorw("story render failed", "slug", post.Slug, "error", err)
		storyHTML = ""
	}

	render(c, http.StatusOK, "build.html", gin.H{
		"post":      post,
		"StoryHTML": storyHTML,
	})
}

func (h *GalleryHandler) Story(c *gin.Context) {
	render(c, http.StatusOK, "story.html", gin.H{})
}

func (h *GalleryHandler) Support(c *gin.Context) {
	render(c, http.StatusOK, "support.html", gin.H{
		"wallets": h.wallets,
	})
}

func (h *GalleryHandler) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{})
}
