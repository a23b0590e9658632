package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"mybricks/internal/constants"
	"mybricks/internal/services"
	"mybricks/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const adminPageSize = 10

type AdminHandler struct {
	postService    *services.PostService
	storageService *services.StorageService
	log            *zap.SugaredLogger
}

func NewAdminHandler(postService *services.PostService, storageService *services.StorageService, logger *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{
		postService:    postService,
		storageService: storageService,
		log:            logger,
	}
}

// Dashboard shows the build counters and the storage quota readout.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.postService.GetStats()
	if err != nil {
		h.log.Errorw("stats load failed", "error", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	usage, err := h.storageService.Usage()
	if err != nil {
		h.log.Warnw("storage usage unavailable", "error", err)
		usage = &services.StorageUsage{QuotaGB: 1}
	}

	usedLabel := fmt.Sprintf("%.2f MB", usage.UsedMB)
	if usage.UsedMB < 1 {
		usedLabel = fmt.Sprintf("%d KB", int(math.Round(usage.UsedMB*1024)))
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Stats":        stats,
		"Usage":        usage,
		"UsedLabel":    usedLabel,
		"UsagePercent": fmt.Sprintf("%.1f", usage.Percent),
	})
}

// ListPosts renders the admin table with a status filter and pagination.
func (h *AdminHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	status := c.DefaultQuery("status", "all")

	posts, total, err := h.postService.ListPage(page, adminPageSize, status)
	if err != nil {
		h.log.Errorw("post list failed", "error", err)
		render(c, http.StatusInternalServerError, "error.html", gin.H{})
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(adminPageSize)))

	session := sessions.Default(c)
	flashes := session.Flashes(constants.SessionKeySuccessFlash)
	session.Save()

	render(c, http.StatusOK, "admin_posts.html", gin.H{
		"posts":      posts,
		"Status":     status,
		"Pagination": utils.Paginate(page, totalPages),
		"Flashes":    flashes,
	})
}

func (h *AdminHandler) NewPost(c *gin.Context) {
	render(c, http.StatusOK, "editor.html", gin.H{
		"post": nil,
	})
}

func (h *AdminHandler) EditPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/posts")
		return
	}

	post, err := h.postService.GetPostByID(uint(id))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/posts")
		return
	}

	render(c, http.StatusOK, "editor.html", gin.H{
		"post": post,
	})
}

// SavePost handles the editor submission: one multipart request carrying
// field values, retained image ids in visible order, ids marked for
// deletion, the cover index and the new files.
func (h *AdminHandler) SavePost(c *gin.Context) {
	form, status, err := h.parseEditorForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid form data"})
		return
	}

	result, err := h.postService.Save(form, status)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		h.log.Errorw("save failed", "post_id", form.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save post"})
		return
	}

	if result.NoChanges {
		c.JSON(http.StatusOK, gin.H{"status": "info", "message": "No changes to save"})
		return
	}

	message := saveMessage(form.ID != 0, status, result)

	session := sessions.Default(c)
	session.AddFlash(message, constants.SessionKeySuccessFlash)
	session.Save()

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  message,
		"post_id":  result.PostID,
		"slug":     result.Slug,
		"redirect": "/admin/posts",
	})
}

func (h *AdminHandler) parseEditorForm(c *gin.Context) (*services.EditorForm, string, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, "", err
	}

	var id uint
	if raw := c.PostForm("id"); raw != "" && raw != "0" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, "", err
		}
		id = uint(parsed)
	}

	coverIndex, _ := strconv.Atoi(c.DefaultPostForm("cover_index", "0"))

	form := &services.EditorForm{
		ID:            id,
		Title:         c.PostForm("title"),
		Slug:          c.PostForm("slug"),
		Description:   c.PostForm("description"),
		PieceCount:    c.PostForm("piece_count"),
		DateStart:     c.PostForm("date_start"),
		DateCompleted: c.PostForm("date_completed"),
		Retained:      parseIDs(mf.Value["retained_images"]),
		Deleted:       parseIDs(mf.Value["delete_images"]),
		CoverIndex:    coverIndex,
	}

	for _, fh := range mf.File["new_images"] {
		fh := fh
		form.NewImages = append(form.NewImages, services.NewImage{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}

	return form, c.PostForm("status"), nil
}

func parseIDs(values []string) []uint {
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			ids = append(ids, uint(n))
		}
	}
	return ids
}

func saveMessage(editing bool, status string, result *services.SaveResult) string {
	var message string
	switch {
	case editing:
		message = "Post updated successfully!"
	case status == "published":
		message = "Post published!"
	default:
		message = "Draft saved!"
	}
	if result.Failed > 0 {
		message = fmt.Sprintf("%s %d of %d image(s) failed to upload.",
			message, result.Failed, result.Failed+result.Uploaded)
	}
	return message
}

// ToggleStatus flips a post between draft and published from the list page.
func (h *AdminHandler) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid post ID"})
		return
	}

	post, err := h.postService.ToggleStatus(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Post not found"})
			return
		}
		h.log.Errorw("status toggle failed", "post_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update post status"})
		return
	}

	message := "Post unpublished"
	if post.IsPublished() {
		message = "Post published!"
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message, "post_status": post.Status})
}

// DeletePost removes a post and its images. Retrying against a gone id
// reports not-found instead of failing hard.
func (h *AdminHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid post ID"})
		return
	}

	if err := h.postService.DeletePost(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Post not found"})
			return
		}
		h.log.Errorw("delete failed", "post_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Post deleted successfully"})
}

// ExportPosts downloads every build with its image metadata as a zipped
// JSON document.
func (h *AdminHandler) ExportPosts(c *gin.Context) {
	posts, err := h.postService.GetAllForExport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to load posts"})
		return
	}

	jsonData, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to encode posts"})
		return
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	f, err := zw.Create("builds.json")
	if err == nil {
		_, err = f.Write(jsonData)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to build archive"})
		return
	}
	zw.Close()

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=mybricks_backup_%s.zip", time.Now().Format("20060102150405")))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}
