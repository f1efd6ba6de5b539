package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/throwback-posts/throwback-posts/internal/config"
	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
)

func TestParseDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	today := time.Date(2024, time.June, 15, 10, 0, 0, 0, loc)

	day, err := parseDay("", today)
	require.NoError(t, err)
	assert.Equal(t, today, day)

	day, err = parseDay("2020-02-29", today)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.February, 29, 0, 0, 0, 0, loc), day)

	_, err = parseDay("29/02/2020", today)
	require.Error(t, err)
}

func TestRenderPreview(t *testing.T) {
	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	active := &tb.Settings{Activate: true}

	tests := []struct {
		name     string
		settings *tb.Settings
		groups   []tb.Group
		want     []string
	}{
		{name: "no settings", want: []string{"2024-06-15", "no settings stored"}},
		{name: "inactive", settings: &tb.Settings{}, want: []string{"not activated"}},
		{name: "no groups", settings: active, want: []string{"nothing was published"}},
		{
			name:     "groups",
			settings: active,
			groups: []tb.Group{{
				Key:   "1 year",
				Label: "One year ago",
				Posts: []tb.PostRef{{
					Title:       "Beach day",
					Permalink:   "https://blog.example.com/posts/3",
					PublishedAt: day.AddDate(-1, 0, 0),
				}},
			}},
			want: []string{"One year ago", "Beach day", "2023/06/15", "https://blog.example.com/posts/3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderPreview(day, tt.settings, tt.groups)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderPreview_SiteLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, loc)
	groups := []tb.Group{{
		Key:   "1 year",
		Label: "One year ago",
		Posts: []tb.PostRef{{
			Title: "Late night post",
			// 23:30 in New York, already the next day in UTC
			PublishedAt: time.Date(2023, time.June, 16, 3, 30, 0, 0, time.UTC),
		}},
	}}

	out := renderPreview(day, &tb.Settings{Activate: true}, groups)
	assert.Contains(t, out, "2023/06/15")
	assert.NotContains(t, out, "2023/06/16")
}

func TestDecodePosts(t *testing.T) {
	posts, err := decodePosts(strings.NewReader(`[
		{"id": 3, "title": "Beach day", "published_at": "2023-06-15T09:00:00Z", "categories": ["Travel"]}
	]`))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, uint64(3), posts[0].ID)
	assert.Equal(t, []string{"Travel"}, posts[0].Categories)

	_, err = decodePosts(strings.NewReader(`[{"headline": "x"}]`))
	require.Error(t, err)

	_, err = decodePosts(strings.NewReader(`{`))
	require.Error(t, err)
}

func TestLoadConfig_Env(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.MainFile), []byte(`
Title = "From env"

[DB]
GormEngine = "sqlite"
File = "posts.db"

[Log]
LogLevel = "info"
AppName = "throwback-posts"
ServiceName = "throwback-posts"

[Webserver]
Port = 8080
URL = "http://localhost:8080"
`), 0o600))

	t.Setenv(envPrefix+"_CONFIG", dir)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "From env", cfg.Title)
	assert.Equal(t, "http://localhost:8080", cfg.Site.URL)

	t.Setenv(envPrefix+"_CONFIG", filepath.Join(dir, "missing"))

	_, err = loadConfig()
	require.Error(t, err)
}
