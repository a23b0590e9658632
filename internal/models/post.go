package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a single gallery entry ("build"). PublishedAt is set the first
// time the post transitions to published and is never reset afterwards.
type Post struct {
	gorm.Model
	Title         string     `gorm:"not null" json:"title" form:"title"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug" form:"slug"`
	Description   string     `gorm:"type:text" json:"description" form:"description"`
	PieceCount    *int       `json:"piece_count"`
	Status        string     `gorm:"not null;default:draft;index" json:"status"`
	DateStart     *time.Time `json:"date_start"`
	DateCompleted *time.Time `json:"date_completed"`
	PublishedAt   *time.Time `json:"published_at"`
}

// IsPublished reports whether the post is visible in the public gallery.
// Value receiver so templates can call it on list elements.
func (p Post) IsPublished() bool {
	return p.Status == "published"
}

// PostWithImages is the view model the gallery and detail pages render.
// Images are ordered by DisplayOrder ascending; the first one is the cover.
type PostWithImages struct {
	Post
	Images []PostImage
}

// CoverURL returns the cover image URL, or "" when the post has no images.
func (p PostWithImages) CoverURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].ImageURL
}
