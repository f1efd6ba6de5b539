// Package widget renders the throwback groups as the floating footer widget.
package widget

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/template/html/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
)

const (
	templateName       = "widget"
	assetsTemplateName = "assets"
	dateLayout         = "2006/01/02"

	// DefaultIconPath is the default icon below the widget asset prefix.
	DefaultIconPath = "/img/default_icon.svg"
)

var renderErrors = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "throwback_render_errors_total",
	Help: "Number of failed widget renders.",
})

// Options configures a Renderer.
type Options struct {
	// DefaultIconURL is used when the settings carry no icon.
	DefaultIconURL string
	// Location is the time zone post dates are printed in. Defaults to UTC.
	Location *time.Location
}

// Renderer turns throwback groups into widget markup.
type Renderer struct {
	engine   *html.Engine
	validate *validator.Validate
	opts     Options
}

type card struct {
	Title     string
	Permalink string
	Thumbnail string
	Date      string
	Label     string
	Excerpt   string
}

type group struct {
	Key   string
	Cards []card
}

type view struct {
	PrimaryColor   string
	SecondaryColor string
	IconURL        string
	Title          string
	Subtitle       string
	Target         string
	Groups         []group
}

// New parses the embedded widget template.
func New(opts Options) (*Renderer, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, err
	}

	engine := html.NewFileSystem(http.FS(sub), ".gohtml")
	if err := engine.Load(); err != nil {
		return nil, errors.Wrap(err, "load widget template")
	}

	return &Renderer{
		engine:   engine,
		validate: validator.New(),
		opts:     opts,
	}, nil
}

// Render returns the widget markup, or nothing when there is no settings
// record or no group. Every value is escaped for its context.
func (r *Renderer) Render(groups []tb.Group, settings *tb.Settings) (template.HTML, error) {
	if settings == nil || len(groups) == 0 {
		return "", nil
	}

	v := view{
		PrimaryColor:   r.color(settings.PrimaryColor, tb.DefaultPrimaryColor),
		SecondaryColor: r.color(settings.SecondaryColor, tb.DefaultSecondaryColor),
		IconURL:        settings.Icon.URL,
		Title:          settings.Title,
		Subtitle:       settings.Subtitle,
		Target:         target(settings.OpenTarget),
		Groups:         make([]group, 0, len(groups)),
	}

	if v.IconURL == "" {
		v.IconURL = r.opts.DefaultIconURL
	}

	for _, g := range groups {
		out := group{Key: g.Key, Cards: make([]card, 0, len(g.Posts))}

		for _, p := range g.Posts {
			c := card{Title: p.Title, Permalink: p.Permalink}

			if settings.ShowImage {
				c.Thumbnail = p.ThumbnailURL
			}

			if settings.ShowDate {
				c.Date = p.PublishedAt.In(r.opts.Location).Format(dateLayout)
			}

			if settings.ShowTime {
				c.Label = g.Label
			}

			if settings.ShowExcerpt {
				c.Excerpt = p.Excerpt
			}

			out.Cards = append(out.Cards, c)
		}

		v.Groups = append(v.Groups, out)
	}

	var buf bytes.Buffer
	if err := r.engine.Render(&buf, templateName, v); err != nil {
		renderErrors.Inc()
		return "", errors.Wrap(err, "render widget")
	}

	//nolint:gosec // produced by html/template
	return template.HTML(buf.String()), nil
}

func (r *Renderer) color(value, fallback string) string {
	if r.validate.Var(value, "required,hexcolor") != nil {
		return fallback
	}

	return value
}

// target falls back to a new tab when the record carries no valid target.
func target(t string) string {
	if t == tb.TargetSelf || t == tb.TargetBlank {
		return t
	}

	return tb.TargetBlank
}

// Assets returns the stylesheet and script tags for assets served below prefix.
func (r *Renderer) Assets(prefix string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.engine.Render(&buf, assetsTemplateName, prefix); err != nil {
		renderErrors.Inc()
		return "", errors.Wrap(err, "render widget assets")
	}

	//nolint:gosec // produced by html/template
	return template.HTML(buf.String()), nil
}
