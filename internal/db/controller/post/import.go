package post

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/throwback-posts/throwback-posts/internal/db/models"
)

// ImportPost is one post of an import file.
type ImportPost struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"         validate:"required,max=255"`
	Slug         string    `json:"slug"          validate:"max=191"`
	Content      string    `json:"content"`
	Excerpt      string    `json:"excerpt"`
	ThumbnailURL string    `json:"thumbnail_url" validate:"omitempty,url"`
	Status       string    `json:"status"        validate:"omitempty,oneof=publish draft private"`
	Type         string    `json:"type"          validate:"omitempty,oneof=post page"`
	Protected    bool      `json:"protected"`
	PublishedAt  time.Time `json:"published_at"  validate:"required"`
	Categories   []string  `json:"categories"    validate:"dive,required,max=191"`
}

// Import upserts posts and their categories in one transaction and returns
// the number of stored posts. Posts with an id replace the stored post.
func (s *Store) Import(ctx context.Context, posts []ImportPost) (int, error) {
	if s.db == nil {
		return 0, ErrDBNil
	}

	validate := validator.New()

	for i := range posts {
		if err := validate.Struct(&posts[i]); err != nil {
			return 0, errors.Wrapf(ErrInvalidImport, "post %d (%q): %v", i, posts[i].Title, err)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := map[string]models.Category{}

		for i := range posts {
			p := toModel(&posts[i])

			for _, name := range posts[i].Categories {
				c, err := category(tx, categories, name)
				if err != nil {
					return err
				}

				p.Categories = append(p.Categories, c)
			}

			if err := tx.Omit("Categories").Save(p).Error; err != nil {
				return errors.Wrapf(err, "store post %q", p.Title)
			}

			if err := tx.Model(p).Association("Categories").Replace(p.Categories); err != nil {
				return errors.Wrapf(err, "link categories of post %q", p.Title)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(posts), nil
}

func toModel(in *ImportPost) *models.Post {
	p := &models.Post{
		ID:           in.ID,
		Title:        in.Title,
		Slug:         in.Slug,
		Content:      in.Content,
		Excerpt:      in.Excerpt,
		ThumbnailURL: in.ThumbnailURL,
		Status:       models.PostStatus(in.Status),
		Type:         models.PostType(in.Type),
		Protected:    in.Protected,
		PublishedAt:  in.PublishedAt,
	}

	if p.Status == "" {
		p.Status = models.PostStatusPublish
	}

	if p.Type == "" {
		p.Type = models.PostTypePost
	}

	return p
}

// category returns the category called name, creating it when missing.
func category(tx *gorm.DB, cache map[string]models.Category, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if c, ok := cache[name]; ok {
		return c, nil
	}

	c := models.Category{Name: name, Slug: slug(name)}

	err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&c).Error
	if err != nil {
		return c, errors.Wrapf(err, "create category %q", name)
	}

	if c.ID == 0 {
		if err := tx.Where("name = ?", name).First(&c).Error; err != nil {
			return c, errors.Wrapf(err, "load category %q", name)
		}
	}

	cache[name] = c

	return c, nil
}

func slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
