package widget

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
)

const defaultIcon = "/static/throwback-posts/img/default_icon.svg"

func newRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New(Options{DefaultIconURL: defaultIcon})
	require.NoError(t, err)

	return r
}

func sampleGroups() []tb.Group {
	return []tb.Group{
		{
			Key:   "1 year",
			Label: "One year ago",
			Posts: []tb.PostRef{
				{
					ID:           1,
					Title:        "Summer trip",
					Permalink:    "https://blog.example.com/posts/1",
					PublishedAt:  time.Date(2023, time.June, 15, 9, 30, 0, 0, time.UTC),
					Excerpt:      "We went to the sea.",
					ThumbnailURL: "https://blog.example.com/img/sea.jpg",
				},
			},
		},
		{
			Key:   "1 week",
			Label: "One Week ago",
			Posts: []tb.PostRef{
				{ID: 2, Title: "Weekly notes", Permalink: "https://blog.example.com/posts/2"},
			},
		},
	}
}

func TestRender_Empty(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Render(nil, tb.DefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = r.Render(sampleGroups(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRender_Structure(t *testing.T) {
	r := newRenderer(t)

	settings := tb.DefaultSettings()
	settings.Activate = true

	out, err := r.Render(sampleGroups(), settings)
	require.NoError(t, err)

	html := string(out)
	assert.Equal(t, 1, strings.Count(html, `id="throwback-posts"`))
	assert.Contains(t, html, `id="js-throwback-posts"`)
	assert.Contains(t, html, "background: #EE4440")
	assert.Contains(t, html, "color: #4CDBC4 !important")
	assert.Contains(t, html, `<img src="`+defaultIcon+`"`)
	assert.Contains(t, html, "Throwback Posts!")
	assert.Contains(t, html, "Time to celebrate.")
	assert.Equal(t, 2, strings.Count(html, `class="throwback-posts__group"`))
	assert.Equal(t, 2, strings.Count(html, `class="throwback-posts__card"`))
	assert.Contains(t, html, `target="_self" href="https://blog.example.com/posts/1"`)
	assert.Contains(t, html, "Summer trip")

	// all display flags are off
	assert.NotContains(t, html, "throwback-posts__date\"")
	assert.NotContains(t, html, "throwback-posts__time\"")
	assert.NotContains(t, html, "background-image")
	assert.NotContains(t, html, "We went to the sea.")

	assert.Equal(t, strings.Count(html, "<div"), strings.Count(html, "</div>"))
}

func TestRender_Flags(t *testing.T) {
	r := newRenderer(t)

	settings := tb.DefaultSettings()
	settings.ShowDate = true
	settings.ShowTime = true
	settings.ShowImage = true
	settings.ShowExcerpt = true
	settings.Icon.URL = "https://cdn.example.com/icon.png"

	out, err := r.Render(sampleGroups(), settings)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `<div class="throwback-posts__date">2023/06/15</div>`)
	assert.Contains(t, html, `<div class="throwback-posts__time">One year ago</div>`)
	assert.Contains(t, html, `<div class="throwback-posts__time">One Week ago</div>`)
	assert.Contains(t, html, "background-image:url(https://blog.example.com/img/sea.jpg)")
	assert.Contains(t, html, `<p class="throwback-posts__excerpt">We went to the sea.</p>`)
	assert.Contains(t, html, `<img src="https://cdn.example.com/icon.png"`)

	// the second post has no thumbnail and no excerpt
	assert.Equal(t, 1, strings.Count(html, "background-image"))
	assert.Equal(t, 1, strings.Count(html, "throwback-posts__excerpt"))
}

func TestRender_DateLocation(t *testing.T) {
	r, err := New(Options{Location: time.FixedZone("UTC-10", -10*60*60)})
	require.NoError(t, err)

	settings := tb.DefaultSettings()
	settings.ShowDate = true

	out, err := r.Render(sampleGroups(), settings)
	require.NoError(t, err)
	assert.Contains(t, string(out), "2023/06/14")
}

func TestRender_Target(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		target string
		want   string
	}{
		{"", `target="_blank"`},
		{"_self", `target="_self"`},
		{"_blank", `target="_blank"`},
		{`_top" onclick="x`, `target="_blank"`},
	}

	for _, tt := range tests {
		settings := tb.DefaultSettings()
		settings.OpenTarget = tt.target

		out, err := r.Render(sampleGroups(), settings)
		require.NoError(t, err)
		assert.Contains(t, string(out), tt.want, "target %q", tt.target)
	}
}

func TestRender_Escaping(t *testing.T) {
	r := newRenderer(t)

	settings := tb.DefaultSettings()
	settings.Title = `<script>alert("x")</script>`
	settings.Subtitle = `"><img src=x onerror=alert(1)>`
	settings.PrimaryColor = "red;}</style><script>alert(1)</script>"
	settings.SecondaryColor = "#123"
	settings.Icon.URL = `javascript:alert(1)`

	groups := sampleGroups()
	groups[0].Posts[0].Title = "<b>bold</b>"

	out, err := r.Render(groups, settings)
	require.NoError(t, err)

	html := string(out)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img src=x")
	assert.NotContains(t, html, "<b>bold</b>")
	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&lt;b&gt;bold&lt;/b&gt;")
	assert.Contains(t, html, "background: #EE4440")
	assert.Contains(t, html, "color: #123 !important")
}

func TestAssets(t *testing.T) {
	r := newRenderer(t)

	out, err := r.Assets("/static/throwback-posts")
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="/static/throwback-posts/css/throwback-posts.css"`)
	assert.Contains(t, string(out), `src="/static/throwback-posts/js/throwback-posts.js"`)
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"css/throwback-posts.css", "js/throwback-posts.js", "img/default_icon.svg"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		require.NoError(t, f.Close())
	}
}
