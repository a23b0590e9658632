package models

import "gorm.io/gorm"

// PostImage is one uploaded image belonging to a post. Within a post the
// DisplayOrder values form a dense sequence starting at 0 after every save;
// the image at 0 is the cover shown in list and gallery previews.
type PostImage struct {
	gorm.Model
	PostID       uint   `gorm:"index;not null" json:"post_id"`
	ImageURL     string `gorm:"not null" json:"image_url"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
	AltText      string `json:"alt_text"`
}
