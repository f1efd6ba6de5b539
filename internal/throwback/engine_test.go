package throwback

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPost struct {
	ref        PostRef
	categories []uint64
	postType   string
	status     string
}

// memStore applies criteria to an in memory post list and records every call.
type memStore struct {
	posts []memPost
	calls []Criteria
	err   error
}

func (m *memStore) Query(_ context.Context, c Criteria) ([]PostRef, error) {
	m.calls = append(m.calls, c)

	if m.err != nil {
		return nil, m.err
	}

	from, to := c.DayRange()

	var out []PostRef

	for _, p := range m.posts {
		if p.ref.PublishedAt.Before(from) || !p.ref.PublishedAt.Before(to) {
			continue
		}

		if p.postType != c.PostType || p.status != c.Status {
			continue
		}

		if len(c.CategoryIDs) > 0 && !intersects(p.categories, c.CategoryIDs) {
			continue
		}

		if contains(c.ExcludeIDs, p.ref.ID) {
			continue
		}

		out = append(out, p.ref)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	if c.Limit > 0 && len(out) > c.Limit {
		out = out[:c.Limit]
	}

	return out, nil
}

func contains(ids []uint64, id uint64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

func intersects(a, b []uint64) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}

	return false
}

func published(id uint64, at time.Time, categories ...uint64) memPost {
	return memPost{
		ref:        PostRef{ID: id, Title: "post", PublishedAt: at},
		categories: categories,
		postType:   PostTypePost,
		status:     StatusPublish,
	}
}

func activeSettings(keys ...string) *Settings {
	s := DefaultSettings()
	s.Activate = true
	s.Dates = keys

	return s
}

var fixedToday = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func TestComputeGroups_Example(t *testing.T) {
	store := &memStore{posts: []memPost{
		published(1, time.Date(2023, time.June, 15, 9, 30, 0, 0, time.UTC)),
		published(2, time.Date(2023, time.June, 16, 9, 30, 0, 0, time.UTC)),
	}}

	groups, err := ComputeGroups(context.Background(), activeSettings("1 year", "1 month"), fixedToday, store)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	assert.Equal(t, "One year ago", groups[0].Label)
	assert.Equal(t, "1 year", groups[0].Key)
	require.Len(t, groups[0].Posts, 1)
	assert.Equal(t, uint64(1), groups[0].Posts[0].ID)

	// both offsets were queried even though only one matched
	assert.Len(t, store.calls, 2)
}

func TestComputeGroups_Inactive(t *testing.T) {
	store := &memStore{posts: []memPost{published(1, date(2023, time.June, 15))}}

	settings := activeSettings("1 year")
	settings.Activate = false

	groups, err := ComputeGroups(context.Background(), settings, fixedToday, store)
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Empty(t, store.calls)
}

func TestComputeGroups_NoSettingsOrKeys(t *testing.T) {
	store := &memStore{}

	groups, err := ComputeGroups(context.Background(), nil, fixedToday, store)
	require.NoError(t, err)
	assert.Empty(t, groups)

	groups, err = ComputeGroups(context.Background(), activeSettings(), fixedToday, store)
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Empty(t, store.calls)
}

func TestComputeGroups_CatalogOrder(t *testing.T) {
	store := &memStore{posts: []memPost{
		published(1, date(2017, time.June, 15)),
		published(2, date(2024, time.June, 8)),
		published(3, date(2024, time.March, 15)),
	}}

	groups, err := ComputeGroups(context.Background(),
		activeSettings("1 week", "7 years", "3 months"), fixedToday, store)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "7 years", groups[0].Key)
	assert.Equal(t, "3 months", groups[1].Key)
	assert.Equal(t, "1 week", groups[2].Key)
}

func TestComputeGroups_UnknownKeySkipped(t *testing.T) {
	store := &memStore{posts: []memPost{published(1, date(2023, time.June, 15))}}

	groups, err := ComputeGroups(context.Background(),
		activeSettings("10 years", "1 year", "yesterday"), fixedToday, store)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "1 year", groups[0].Key)
	assert.Len(t, store.calls, 1)
}

func TestComputeGroups_DuplicateKeysQueryOnce(t *testing.T) {
	store := &memStore{posts: []memPost{published(1, date(2023, time.June, 15))}}

	groups, err := ComputeGroups(context.Background(), activeSettings("1 year", "1 year"), fixedToday, store)
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Len(t, store.calls, 1)
}

func TestComputeGroups_OutputNotLongerThanSelection(t *testing.T) {
	store := &memStore{posts: []memPost{
		published(1, date(2023, time.June, 15)),
		published(2, date(2022, time.June, 15)),
	}}

	keys := []string{"1 year", "2 years", "3 years"}

	groups, err := ComputeGroups(context.Background(), activeSettings(keys...), fixedToday, store)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(groups), len(keys))
	assert.Len(t, groups, 2)
}

func TestComputeGroups_MaxPosts(t *testing.T) {
	day := date(2023, time.June, 15)
	store := &memStore{}

	for i := 1; i <= 5; i++ {
		store.posts = append(store.posts, published(uint64(i), day.Add(time.Duration(i)*time.Hour)))
	}

	settings := activeSettings("1 year")
	settings.MaxPosts = 3

	groups, err := ComputeGroups(context.Background(), settings, fixedToday, store)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Posts, 3)

	ids := []uint64{groups[0].Posts[0].ID, groups[0].Posts[1].ID, groups[0].Posts[2].ID}
	assert.Equal(t, []uint64{5, 4, 3}, ids)
}

func TestComputeGroups_Criteria(t *testing.T) {
	store := &memStore{}

	settings := activeSettings("1 year")
	settings.CategoryIDs = []uint64{4, 9}
	settings.ExcludedPostIDs = []uint64{42}
	settings.MaxPosts = 2

	_, err := ComputeGroups(context.Background(), settings, fixedToday, store)
	require.NoError(t, err)
	require.Len(t, store.calls, 1)

	c := store.calls[0]
	assert.Equal(t, 2023, c.Year)
	assert.Equal(t, time.June, c.Month)
	assert.Equal(t, 15, c.Day)
	assert.Equal(t, []uint64{4, 9}, c.CategoryIDs)
	assert.Equal(t, []uint64{42}, c.ExcludeIDs)
	assert.Equal(t, 2, c.Limit)
	assert.Equal(t, "published_at", c.OrderBy)
	assert.Equal(t, "desc", c.Order)
	assert.Equal(t, PostTypePost, c.PostType)
	assert.Equal(t, StatusPublish, c.Status)
	assert.True(t, c.SuppressFilters)
}

func TestComputeGroups_LimitNormalized(t *testing.T) {
	tests := []struct {
		maxPosts int
		want     int
	}{
		{0, DefaultMaxPosts},
		{-3, MinMaxPosts},
		{50, MaxMaxPosts},
		{4, 4},
	}

	for _, tt := range tests {
		store := &memStore{}
		settings := activeSettings("1 week")
		settings.MaxPosts = tt.maxPosts

		_, err := ComputeGroups(context.Background(), settings, fixedToday, store)
		require.NoError(t, err)
		require.Len(t, store.calls, 1)
		assert.Equal(t, tt.want, store.calls[0].Limit, "max posts %d", tt.maxPosts)
	}
}

func TestComputeGroups_Filters(t *testing.T) {
	day := date(2023, time.June, 15)
	store := &memStore{posts: []memPost{
		published(1, day, 7),
		published(2, day, 8),
		published(3, day, 7, 8),
		{ref: PostRef{ID: 4, PublishedAt: day}, postType: "page", status: StatusPublish, categories: []uint64{7}},
		{ref: PostRef{ID: 5, PublishedAt: day}, postType: PostTypePost, status: "draft", categories: []uint64{7}},
	}}

	settings := activeSettings("1 year")
	settings.CategoryIDs = []uint64{7}
	settings.ExcludedPostIDs = []uint64{3}

	groups, err := ComputeGroups(context.Background(), settings, fixedToday, store)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Posts, 1)
	assert.Equal(t, uint64(1), groups[0].Posts[0].ID)

	// empty filters restrict nothing
	settings.CategoryIDs = nil
	settings.ExcludedPostIDs = nil

	groups, err = ComputeGroups(context.Background(), settings, fixedToday, store)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Posts, 3)
}

func TestComputeGroups_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &memStore{err: storeErr}

	groups, err := ComputeGroups(context.Background(), activeSettings("1 year", "1 week"), fixedToday, store)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrContentStore)
	require.ErrorIs(t, err, storeErr)
	assert.Nil(t, groups)
	assert.Len(t, store.calls, 1)
}

func TestComputeGroups_NilStore(t *testing.T) {
	_, err := ComputeGroups(context.Background(), activeSettings("1 year"), fixedToday, nil)
	require.ErrorIs(t, err, ErrNilStore)
}
