package db

import (
	"time"

	"gorm.io/gorm"
)

// Post is a blog article authored in the admin rich-text editor. Content is
// stored as HTML. Thumbnail and ContentStorageIDs reference uploaded blobs
// so they can be cleaned up when the post goes away.
type Post struct {
	gorm.Model
	Title             string `gorm:"size:200;not null"`
	Slug              string `gorm:"size:200;uniqueIndex;not null"`
	Excerpt           string `gorm:"size:500"`
	Content           string `gorm:"type:text"`
	Thumbnail         string `gorm:"size:120"`
	Active            bool   `gorm:"index"`
	ContentStorageIDs []string `gorm:"serializer:json;type:text"`
	PublishedAt       *time.Time
}
