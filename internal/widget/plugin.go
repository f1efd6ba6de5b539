package widget

import (
	"context"
	"html/template"

	"github.com/throwback-posts/throwback-posts/internal/hooks"
	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
)

// HookName identifies the widget callback in the hook registry.
const HookName = "throwback-posts"

// Loader returns the settings and today's groups.
type Loader interface {
	Load(ctx context.Context) (*tb.Settings, []tb.Group, error)
}

// Plugin wires the widget into page rendering.
type Plugin struct {
	loader    Loader
	renderer  *Renderer
	assetsURL string
}

// NewPlugin returns a Plugin whose assets are served below assetsURL.
func NewPlugin(loader Loader, renderer *Renderer, assetsURL string) *Plugin {
	return &Plugin{loader: loader, renderer: renderer, assetsURL: assetsURL}
}

// Register adds the widget assets to the head and the widget to the footer of every page.
func (p *Plugin) Register(reg *hooks.Registry) {
	reg.Add(hooks.Head, HookName, p.Head)
	reg.Add(hooks.Footer, HookName, p.Footer)
}

// Head renders the stylesheet and script tags. They do not depend on the
// settings, so no record is read for them.
func (p *Plugin) Head(context.Context) (template.HTML, error) {
	return p.renderer.Assets(p.assetsURL)
}

// Footer renders the widget, or nothing when there is nothing to show.
func (p *Plugin) Footer(ctx context.Context) (template.HTML, error) {
	return p.Fragment(ctx)
}

// Fragment renders the widget markup alone.
func (p *Plugin) Fragment(ctx context.Context) (template.HTML, error) {
	settings, groups, err := p.loader.Load(ctx)
	if err != nil {
		return "", err
	}

	return p.renderer.Render(groups, settings)
}
