package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mybricks/internal/constants"
	"mybricks/internal/models"
	"mybricks/internal/repository"
	"mybricks/internal/storage"
	"mybricks/internal/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ValidationError is a user-correctable problem detected before any store
// call. Handlers surface its message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NewImage is a file queued for upload by the editor.
type NewImage struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// EditorForm carries one submission of the post editor: the field values,
// the retained existing images in their current visible order, the images
// marked for deletion, the designated cover index into the logical list
// [retained ++ new], and the new files in upload order.
type EditorForm struct {
	ID            uint // 0 means a new post
	Title         string
	Slug          string
	Description   string
	PieceCount    string // raw form value, "" means unset
	DateStart     string // "2006-01-02" or ""
	DateCompleted string
	Retained      []uint
	Deleted       []uint
	CoverIndex    int
	NewImages     []NewImage
}

// SaveResult summarises one save: upload tallies for the per-file loop and
// the NoChanges flag for the no-op guard.
type SaveResult struct {
	PostID    uint
	Slug      string
	Uploaded  int
	Failed    int
	NoChanges bool
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type PostService struct {
	repo  *repository.PostRepository
	store storage.Store
	log   *zap.SugaredLogger
}

func NewPostService(repo *repository.PostRepository, store storage.Store, logger *zap.SugaredLogger) *PostService {
	return &PostService{repo: repo, store: store, log: logger}
}

// validateFields runs the pre-store field checks in order; the first
// failure wins and aborts the save.
func validateFields(form *EditorForm) error {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return validationErr("Title is required")
	}
	if n := len([]rune(title)); n < constants.TitleMinLen || n > constants.TitleMaxLen {
		return validationErr("Title must be between 3 and 100 characters")
	}
	if form.PieceCount != "" {
		n, err := strconv.Atoi(strings.TrimSpace(form.PieceCount))
		if err != nil || n < 0 {
			return validationErr("Piece count must be a positive number")
		}
	}
	if form.DateStart != "" && form.DateCompleted != "" && form.DateStart > form.DateCompleted {
		return validationErr("Start date must be before completion date")
	}
	return nil
}

// validateNewImages applies the batch add rules before anything is
// uploaded: the count cap first, then per-file type and size checks. The
// first failing file rejects the whole batch.
func validateNewImages(form *EditorForm) error {
	total := len(form.Retained) + len(form.NewImages)
	if total > constants.MaxImagesPerPost {
		return validationErr("Maximum 4 images allowed per build")
	}
	for _, img := range form.NewImages {
		if !allowedImageTypes[strings.ToLower(img.ContentType)] {
			return validationErr("Invalid file type. Please upload JPEG, PNG, or WebP.")
		}
		if img.Size > constants.MaxImageBytes {
			return validationErr("File too large. Maximum size is 5MB.")
		}
	}
	return nil
}

// Save runs the full editor save sequence for the given target status:
// validation, post upsert, deletions, reorder, uploads. The sequence is a
// series of independent store calls, not a transaction; a failure aborts
// the current step and everything already done stays done.
func (s *PostService) Save(form *EditorForm, status string) (*SaveResult, error) {
	if status != constants.StatusDraft && status != constants.StatusPublished {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	if err := validateFields(form); err != nil {
		return nil, err
	}
	if err := validateNewImages(form); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(form.Title)
	slugValue := strings.TrimSpace(form.Slug)
	if slugValue == "" {
		slugValue = utils.Slugify(title)
	}

	var pieceCount *int
	if form.PieceCount != "" {
		n, _ := strconv.Atoi(strings.TrimSpace(form.PieceCount))
		pieceCount = &n
	}
	dateStart, err := parseDate(form.DateStart)
	if err != nil {
		return nil, validationErr("Invalid start date")
	}
	dateCompleted, err := parseDate(form.DateCompleted)
	if err != nil {
		return nil, validationErr("Invalid completion date")
	}

	var post *models.Post
	if form.ID == 0 {
		post = &models.Post{}
	} else {
		post, err = s.repo.FindByID(form.ID)
		if err != nil {
			return nil, err
		}
		if noChanges(post, form, title, slugValue, pieceCount, dateStart, dateCompleted, status) {
			return &SaveResult{PostID: post.ID, Slug: post.Slug, NoChanges: true}, nil
		}
	}

	post.Title = title
	post.Slug = slugValue
	post.Description = strings.TrimSpace(form.Description)
	post.PieceCount = pieceCount
	post.DateStart = dateStart
	post.DateCompleted = dateCompleted
	post.Status = status
	if status == constants.StatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if form.ID == 0 {
		err = s.repo.Create(post)
	} else {
		err = s.repo.Update(post)
	}
	if err != nil {
		return nil, err
	}

	if err := s.deleteMarkedImages(post.ID, form.Deleted); err != nil {
		return nil, err
	}

	retained, err := s.retainedInOrder(post.ID, form.Retained)
	if err != nil {
		return nil, err
	}

	plan := PlanOrder(len(retained)+len(form.NewImages), form.CoverIndex)
	for i, img := range retained {
		if img.DisplayOrder == plan[i] {
			continue
		}
		if err := s.repo.ReorderImage(img.ID, plan[i]); err != nil {
			return nil, err
		}
	}

	result := &SaveResult{PostID: post.ID, Slug: post.Slug}
	for j, img := range form.NewImages {
		ordinal := plan[len(retained)+j]
		if err := s.uploadImage(post, img, ordinal); err != nil {
			s.log.Warnw("image upload failed", "post_id", post.ID, "file", img.Filename, "error", err)
			result.Failed++
			continue
		}
		result.Uploaded++
	}

	return result, nil
}

// deleteMarkedImages removes each image's blob (best-effort) and then its
// metadata row. A storage failure never blocks the row deletion. Ids that
// belong to a different post are ignored, so a stale or crafted form cannot
// touch another post's images.
func (s *PostService) deleteMarkedImages(postID uint, ids []uint) error {
	for _, id := range ids {
		img, err := s.repo.FindImage(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}
		if img.PostID != postID {
			s.log.Warnw("ignoring image from another post", "image_id", id, "post_id", postID)
			continue
		}
		if err := s.store.Remove(storage.ObjectPath(img.ImageURL)); err != nil {
			s.log.Warnw("blob removal failed", "image_id", id, "error", err)
		}
		if err := s.repo.RemoveImage(id); err != nil {
			return err
		}
	}
	return nil
}

// retainedInOrder resolves the retained image ids against the stored rows,
// preserving the visible order the editor submitted.
func (s *PostService) retainedInOrder(postID uint, ids []uint) ([]models.PostImage, error) {
	stored, err := s.repo.ImagesByPost(postID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.PostImage, len(stored))
	for _, img := range stored {
		byID[img.ID] = img
	}

	retained := make([]models.PostImage, 0, len(ids))
	for _, id := range ids {
		if img, ok := byID[id]; ok {
			retained = append(retained, img)
		}
	}
	return retained, nil
}

func (s *PostService) uploadImage(post *models.Post, img NewImage, ordinal int) error {
	src, err := img.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	url, err := s.store.Upload(objectName(post.ID, img.Filename), src)
	if err != nil {
		return err
	}

	return s.repo.AddImage(&models.PostImage{
		PostID:       post.ID,
		ImageURL:     url,
		DisplayOrder: ordinal,
		AltText:      post.Title,
	})
}

// objectName builds a collision-resistant store path namespaced by post id,
// keeping a sanitized hint of the original file name.
func objectName(postID uint, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	base := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	name := uuid.NewString()
	if base != "" {
		name = name + "-" + base
	}
	return fmt.Sprintf("%d/%s%s", postID, name, ext)
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// noChanges reports whether the submission would rewrite the stored post
// verbatim with no image work, in which case the save is skipped entirely.
func noChanges(post *models.Post, form *EditorForm, title, slugValue string, pieceCount *int, dateStart, dateCompleted *time.Time, status string) bool {
	if len(form.Deleted) > 0 || len(form.NewImages) > 0 || form.CoverIndex != 0 {
		return false
	}
	return post.Title == title &&
		post.Slug == slugValue &&
		post.Description == strings.TrimSpace(form.Description) &&
		intPtrEqual(post.PieceCount, pieceCount) &&
		timePtrEqual(post.DateStart, dateStart) &&
		timePtrEqual(post.DateCompleted, dateCompleted) &&
		post.Status == status
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// ToggleStatus flips a post between draft and published from the list
// page. PublishedAt is stamped on the first publish only and survives
// later unpublishing.
func (s *PostService) ToggleStatus(id uint) (*models.Post, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if post.Status == constants.StatusPublished {
		post.Status = constants.StatusDraft
	} else {
		post.Status = constants.StatusPublished
		if post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post together with its images: blobs best-effort,
// metadata rows, then the post row. The cascade is enforced here, not by
// the store.
func (s *PostService) DeletePost(id uint) error {
	images, err := s.repo.ImagesByPost(id)
	if err != nil {
		return err
	}
	for _, img := range images {
		if err := s.store.Remove(storage.ObjectPath(img.ImageURL)); err != nil {
			s.log.Warnw("blob removal failed", "image_id", img.ID, "error", err)
		}
		if err := s.repo.RemoveImage(img.ID); err != nil {
			return err
		}
	}
	return s.repo.Delete(id)
}

func (s *PostService) GetPostByID(id uint) (*models.PostWithImages, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	images, err := s.repo.ImagesByPost(post.ID)
	if err != nil {
		return nil, err
	}
	return &models.PostWithImages{Post: *post, Images: images}, nil
}

func (s *PostService) GetPostBySlug(slugValue string, publishedOnly bool) (*models.PostWithImages, error) {
	post, err := s.repo.FindBySlug(slugValue, publishedOnly)
	if err != nil {
		return nil, err
	}
	images, err := s.repo.ImagesByPost(post.ID)
	if err != nil {
		return nil, err
	}
	return &models.PostWithImages{Post: *post, Images: images}, nil
}

// ListWithImages returns posts newest-first with their ordered images
// stitched in from a second query.
func (s *PostService) ListWithImages(status string) ([]models.PostWithImages, error) {
	posts, err := s.repo.List(status)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	imagesByPost, err := s.repo.ImagesForPosts(ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.PostWithImages, len(posts))
	for i, p := range posts {
		out[i] = models.PostWithImages{Post: p, Images: imagesByPost[p.ID]}
	}
	return out, nil
}

// ListPage returns one admin page of posts plus the total matching count.
func (s *PostService) ListPage(page, pageSize int, status string) ([]models.Post, int64, error) {
	return s.repo.ListPage(page, pageSize, status)
}

// Stats are the dashboard counters.
type Stats struct {
	Total     int64
	Published int64
	Drafts    int64
}

func (s *PostService) GetStats() (*Stats, error) {
	total, err := s.repo.CountByStatus("all")
	if err != nil {
		return nil, err
	}
	published, err := s.repo.CountByStatus(constants.StatusPublished)
	if err != nil {
		return nil, err
	}
	drafts, err := s.repo.CountByStatus(constants.StatusDraft)
	if err != nil {
		return nil, err
	}
	return &Stats{Total: total, Published: published, Drafts: drafts}, nil
}

// GetAllForExport returns every post with images for the admin backup
// download.
func (s *PostService) GetAllForExport() ([]models.PostWithImages, error) {
	return s.ListWithImages("all")
}
