// Package post implements the content store on top of gorm.
package post

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/throwback-posts/throwback-posts/internal/db/models"
	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
)

const postsPath = "/posts/"

// sortable maps accepted OrderBy values to columns.
var sortable = map[string]string{ //nolint:gochecknoglobals
	"published_at": "posts.published_at",
	"title":        "posts.title",
	"id":           "posts.id",
}

// Visible hides password protected posts.
func Visible(db *gorm.DB) *gorm.DB {
	return db.Where("posts.protected = ?", false)
}

// Store answers post queries against the posts table.
type Store struct {
	db      *gorm.DB
	siteURL string
	// scopes are the visibility filters applied unless a query suppresses them.
	scopes []func(*gorm.DB) *gorm.DB
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithScopes replaces the default visibility filters.
func WithScopes(scopes ...func(*gorm.DB) *gorm.DB) StoreOption {
	return func(s *Store) {
		s.scopes = scopes
	}
}

// NewStore returns a Store building permalinks below siteURL.
func NewStore(db *gorm.DB, siteURL string, opts ...StoreOption) *Store {
	s := &Store{
		db:      db,
		siteURL: strings.TrimRight(siteURL, "/"),
		scopes:  []func(*gorm.DB) *gorm.DB{Visible},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Permalink returns the public URL of the post with the given id.
func (s *Store) Permalink(id uint64) string {
	return s.siteURL + postsPath + strconv.FormatUint(id, 10)
}

// Query returns the posts published on the criteria day, newest first.
func (s *Store) Query(ctx context.Context, c tb.Criteria) ([]tb.PostRef, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	from, to := c.DayRange()
	db := s.db.WithContext(ctx)

	q := db.Model(&models.Post{}).
		Where("posts.published_at >= ? AND posts.published_at < ?", from.UTC(), to.UTC())

	if c.PostType != "" {
		q = q.Where("posts.type = ?", c.PostType)
	}

	if c.Status != "" {
		q = q.Where("posts.status = ?", c.Status)
	}

	if len(c.CategoryIDs) > 0 {
		sub := db.Table("post_categories").Select("post_id").Where("category_id IN ?", c.CategoryIDs)
		q = q.Where("posts.id IN (?)", sub)
	}

	if len(c.ExcludeIDs) > 0 {
		q = q.Where("posts.id NOT IN ?", c.ExcludeIDs)
	}

	if !c.SuppressFilters {
		q = q.Scopes(s.scopes...)
	}

	column, ok := sortable[c.OrderBy]
	if !ok {
		column = sortable["published_at"]
	}

	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: column, Raw: true},
		Desc:   !strings.EqualFold(c.Order, "asc"),
	}).Order("posts.id DESC")

	if c.Limit > 0 {
		q = q.Limit(c.Limit)
	}

	var posts []models.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "query posts by day")
	}

	return s.refs(posts), nil
}

// Categories lists every category by name.
func (s *Store) Categories(ctx context.Context) ([]tb.Category, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var rows []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	out := make([]tb.Category, len(rows))
	for i, c := range rows {
		out[i] = tb.Category{ID: c.ID, Name: c.Name}
	}

	return out, nil
}

// AllPosts lists every post of type post regardless of status, newest first.
func (s *Store) AllPosts(ctx context.Context) ([]tb.PostRef, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var posts []models.Post

	err := s.db.WithContext(ctx).
		Where("type = ?", models.PostTypePost).
		Order("published_at DESC").Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}

	return s.refs(posts), nil
}

// Recent returns the n newest visible published posts.
func (s *Store) Recent(ctx context.Context, n int) ([]tb.PostRef, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var posts []models.Post

	err := s.db.WithContext(ctx).
		Scopes(s.scopes...).
		Where("posts.type = ? AND posts.status = ?", models.PostTypePost, models.PostStatusPublish).
		Order("posts.published_at DESC").Order("posts.id DESC").
		Limit(n).
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "list recent posts")
	}

	return s.refs(posts), nil
}

// Get returns a visible published post with its categories.
func (s *Store) Get(ctx context.Context, id uint64) (*models.Post, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var p models.Post

	err := s.db.WithContext(ctx).
		Scopes(s.scopes...).
		Preload("Categories").
		Where("posts.status = ?", models.PostStatusPublish).
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}

		return nil, errors.Wrapf(err, "get post %d", id)
	}

	return &p, nil
}

// Ref converts a stored post to the view used by the widget.
func (s *Store) Ref(p *models.Post) tb.PostRef {
	excerpt := p.Excerpt
	if excerpt == "" {
		excerpt = Excerpt(p.Content, excerptWords)
	}

	return tb.PostRef{
		ID:           p.ID,
		Title:        p.Title,
		Permalink:    s.Permalink(p.ID),
		PublishedAt:  p.PublishedAt,
		Excerpt:      excerpt,
		ThumbnailURL: p.ThumbnailURL,
	}
}

func (s *Store) refs(posts []models.Post) []tb.PostRef {
	out := make([]tb.PostRef, len(posts))
	for i := range posts {
		out[i] = s.Ref(&posts[i])
	}

	return out
}
