package models

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus is the publication state of a post.
type PostStatus string

const (
	// PostStatusPublish marks a post visible to everyone.
	PostStatusPublish PostStatus = "publish"
	// PostStatusDraft marks an unfinished post.
	PostStatusDraft PostStatus = "draft"
	// PostStatusPrivate marks a post only administrators can read.
	PostStatusPrivate PostStatus = "private"
)

// PostType distinguishes blog posts from static pages.
type PostType string

const (
	// PostTypePost is a dated blog entry.
	PostTypePost PostType = "post"
	// PostTypePage is an undated static page.
	PostTypePage PostType = "page"
)

// Post is a piece of site content.
type Post struct {
	ID           uint64     `gorm:"primaryKey"`
	Title        string     `gorm:"size:255;not null"`
	Slug         string     `gorm:"size:191;index"`
	Content      string     `gorm:"type:text"`
	Excerpt      string     `gorm:"type:text"`
	ThumbnailURL string     `gorm:"size:2048"`
	Status       PostStatus `gorm:"type:varchar(20);not null;default:'publish';index:idx_posts_listing"`
	Type         PostType   `gorm:"type:varchar(20);not null;default:'post';index:idx_posts_listing"`
	// Protected posts are hidden from listings unless filters are suppressed.
	Protected   bool
	PublishedAt time.Time  `gorm:"not null;index:idx_posts_listing"`
	Categories  []Category `gorm:"many2many:post_categories;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeSave stores the publication time in UTC so day range queries compare like with like.
func (p *Post) BeforeSave(*gorm.DB) error {
	p.PublishedAt = p.PublishedAt.UTC()
	return nil
}

// Category is a post taxonomy term.
type Category struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"unique;size:191;not null"`
	Slug string `gorm:"size:191"`
}
