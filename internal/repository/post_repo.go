package repository

import (
	"mybricks/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes the post row. Deleting an id that no longer exists
// reports gorm.ErrRecordNotFound so retries surface as not-found instead
// of silently succeeding.
func (r *PostRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	return &post, err
}

// FindBySlug looks a post up by its public URL slug. With publishedOnly
// set, drafts behave as missing.
func (r *PostRepository) FindBySlug(slug string, publishedOnly bool) (*models.Post, error) {
	query := r.db.Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("status = ?", "published")
	}
	var post models.Post
	err := query.First(&post).Error
	return &post, err
}

// List returns posts newest-first, optionally filtered by status.
// An empty filter or "all" returns everything.
func (r *PostRepository) List(status string) ([]models.Post, error) {
	query := r.db.Order("created_at DESC")
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	var posts []models.Post
	err := query.Find(&posts).Error
	return posts, err
}

// ListPage returns one page of posts for the admin table, with the total
// count for pagination.
func (r *PostRepository) ListPage(page, pageSize int, status string) ([]models.Post, int64, error) {
	if page < 1 {
		page = 1
	}

	query := r.db.Model(&models.Post{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	return posts, total, err
}

func (r *PostRepository) CountByStatus(status string) (int64, error) {
	query := r.db.Model(&models.Post{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *PostRepository) ImagesByPost(postID uint) ([]models.PostImage, error) {
	var images []models.PostImage
	err := r.db.Where("post_id = ?", postID).
		Order("display_order ASC").
		Find(&images).Error
	return images, err
}

// ImagesForPosts fetches the images of many posts in one query, ordered,
// for the in-memory cover merge done by the gallery page.
func (r *PostRepository) ImagesForPosts(postIDs []uint) (map[uint][]models.PostImage, error) {
	byPost := make(map[uint][]models.PostImage, len(postIDs))
	if len(postIDs) == 0 {
		return byPost, nil
	}

	var images []models.PostImage
	err := r.db.Where("post_id IN ?", postIDs).
		Order("post_id ASC, display_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		byPost[img.PostID] = append(byPost[img.PostID], img)
	}
	return byPost, nil
}

func (r *PostRepository) FindImage(imageID uint) (*models.PostImage, error) {
	var img models.PostImage
	err := r.db.First(&img, imageID).Error
	return &img, err
}

func (r *PostRepository) AddImage(img *models.PostImage) error {
	return r.db.Create(img).Error
}

func (r *PostRepository) RemoveImage(imageID uint) error {
	return r.db.Unscoped().Delete(&models.PostImage{}, imageID).Error
}

func (r *PostRepository) ReorderImage(imageID uint, newOrder int) error {
	return r.db.Model(&models.PostImage{}).
		Where("id = ?", imageID).
		Update("display_order", newOrder).Error
}
