package throwback

import (
	"context"
	"time"
)

const (
	// PostTypePost restricts queries to regular posts.
	PostTypePost = "post"
	// StatusPublish restricts queries to published content.
	StatusPublish = "publish"

	orderByDate = "published_at"
	orderDesc   = "desc"
)

// PostRef is a read-only view of a post owned by the content store.
type PostRef struct {
	ID           uint64
	Title        string
	Permalink    string
	PublishedAt  time.Time
	Excerpt      string // may be empty
	ThumbnailURL string // may be empty
}

// Category is a selectable post category.
type Category struct {
	ID   uint64
	Name string
}

// Group holds the posts matching one offset.
type Group struct {
	Key   string
	Label string
	Posts []PostRef
}

// Criteria describes one content store lookup.
type Criteria struct {
	Year     int
	Month    time.Month
	Day      int
	Location *time.Location

	CategoryIDs []uint64 // empty means every category
	ExcludeIDs  []uint64 // empty means nothing is excluded

	Limit    int
	OrderBy  string
	Order    string
	PostType string
	Status   string

	// SuppressFilters bypasses the visibility filters the store would apply otherwise.
	SuppressFilters bool
}

// DayRange returns the half-open interval [from, to) covering the criteria day.
func (c Criteria) DayRange() (from, to time.Time) {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}

	from = time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, loc)

	return from, from.AddDate(0, 0, 1)
}

// ContentStore answers post queries.
type ContentStore interface {
	Query(ctx context.Context, criteria Criteria) ([]PostRef, error)
}

// SettingsRepository reads the persisted settings record.
// Load returns (nil, nil) when no record was stored yet.
type SettingsRepository interface {
	Load(ctx context.Context) (*Settings, error)
}
