package throwback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_FieldIDsMatchSettings(t *testing.T) {
	sections := Schema(nil, nil, nil)
	require.Len(t, sections, 2)

	ids := FieldIDs(sections)
	values := DefaultSettings().FormValues()

	for _, id := range ids {
		if id == "activate" || id == "show_date" || id == "show_time" || id == "show_image" || id == "show_excerpt" {
			continue
		}

		_, ok := values[id]
		assert.True(t, ok, "field %q has no form value", id)
	}

	assert.Equal(t, []string{
		"activate", "dates", "categories", "posts_to_exclude",
		"title", "subtitle", "max_posts", "open_target", "primary_color", "secondary_color",
		"icon", "show_date", "show_time", "show_image", "show_excerpt",
	}, ids)
}

func TestSchema_Options(t *testing.T) {
	offsets := ResolveOffsets(date(2024, time.June, 15))
	categories := []Category{{ID: 3, Name: "News"}, {ID: 5, Name: "Travel"}}
	posts := []PostRef{{ID: 11, Title: "Hello"}}

	sections := Schema(offsets, categories, posts)
	fields := map[string]Field{}

	for _, s := range sections {
		for _, f := range s.Fields {
			fields[f.ID] = f
		}
	}

	dates := fields["dates"]
	require.Len(t, dates.Options, 11)
	assert.Equal(t, Option{Value: "7 years", Label: "Seven years ago"}, dates.Options[0])
	assert.Equal(t, FieldMultiSelect, dates.Type)

	assert.Equal(t, []Option{{Value: "3", Label: "News"}, {Value: "5", Label: "Travel"}}, fields["categories"].Options)
	assert.Equal(t, []Option{{Value: "11", Label: "Hello"}}, fields["posts_to_exclude"].Options)

	maxPosts := fields["max_posts"]
	assert.Equal(t, "5", maxPosts.Default)
	assert.Equal(t, 1, maxPosts.Min)
	assert.Equal(t, 8, maxPosts.Max)

	assert.Equal(t, TargetSelf, fields["open_target"].Default)
	assert.Len(t, fields["open_target"].Options, 2)
	assert.Equal(t, "#EE4440", fields["primary_color"].Default)
	assert.Equal(t, "#4CDBC4", fields["secondary_color"].Default)
}

func TestSettings_Normalize(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 5},
		{-1, 1},
		{1, 1},
		{8, 8},
		{9, 8},
		{3, 3},
	}

	for _, tt := range tests {
		s := &Settings{MaxPosts: tt.in}
		s.Normalize()
		assert.Equal(t, tt.want, s.MaxPosts, "in %d", tt.in)
	}
}

func TestSettings_FormValues(t *testing.T) {
	s := DefaultSettings()
	s.Activate = true
	s.ShowExcerpt = true
	s.Dates = []string{"1 year", "1 week"}
	s.CategoryIDs = []uint64{2, 7}
	s.Icon.URL = "https://example.com/icon.png"

	values := s.FormValues()

	assert.Equal(t, []string{"true"}, values["activate"])
	assert.Equal(t, []string{"true"}, values["show_excerpt"])
	assert.NotContains(t, values, "show_date")
	assert.Equal(t, []string{"1 year", "1 week"}, values["dates"])
	assert.Equal(t, []string{"2", "7"}, values["categories"])
	assert.Empty(t, values["posts_to_exclude"])
	assert.Equal(t, []string{"5"}, values["max_posts"])
	assert.Equal(t, []string{"https://example.com/icon.png"}, values["icon"])
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"known offsets", func(s *Settings) { s.Dates = []string{"7 years", "1 week"} }, false},
		{"unknown offset", func(s *Settings) { s.Dates = []string{"8 years"} }, true},
		{"max posts too high", func(s *Settings) { s.MaxPosts = 9 }, true},
		{"max posts zero", func(s *Settings) { s.MaxPosts = 0 }, true},
		{"bad target", func(s *Settings) { s.OpenTarget = "_parent" }, true},
		{"empty target", func(s *Settings) { s.OpenTarget = "" }, false},
		{"bad color", func(s *Settings) { s.PrimaryColor = "red;}body{display:none" }, true},
		{"short color", func(s *Settings) { s.SecondaryColor = "#fff" }, false},
		{"bad icon", func(s *Settings) { s.Icon.URL = "not a url" }, true},
		{"icon url", func(s *Settings) { s.Icon.URL = "https://example.com/i.svg" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)

			err := v.Struct(s)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
