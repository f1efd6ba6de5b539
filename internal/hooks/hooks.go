// Package hooks lets components contribute markup to named points of a page.
package hooks

import (
	"context"
	"html/template"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Point is a named location in the page layout.
type Point string

const (
	// Head is rendered at the end of the document head.
	Head Point = "head"
	// Footer is rendered right before the closing body tag.
	Footer Point = "footer"
)

// Callback returns the markup a component contributes to a point.
type Callback func(ctx context.Context) (template.HTML, error)

type entry struct {
	name string
	cb   Callback
}

// Registry maps points to callbacks in registration order.
type Registry struct {
	mu      sync.RWMutex
	entries map[Point][]entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Point][]entry)}
}

// Add registers cb under name for point.
func (r *Registry) Add(point Point, name string, cb Callback) {
	if cb == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[point] = append(r.entries[point], entry{name: name, cb: cb})
}

// Names returns the callback names registered for point.
func (r *Registry) Names(point Point) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries[point]))
	for _, e := range r.entries[point] {
		names = append(names, e.name)
	}

	return names
}

// Render concatenates the output of every callback of point. A failing
// callback is logged and contributes nothing.
func (r *Registry) Render(ctx context.Context, point Point) template.HTML {
	r.mu.RLock()
	entries := append([]entry(nil), r.entries[point]...)
	r.mu.RUnlock()

	var b strings.Builder

	for _, e := range entries {
		out, err := e.cb(ctx)
		if err != nil {
			log.Error().Err(err).Str("hook", string(point)).Str("callback", e.name).Msg("hook callback failed")
			continue
		}

		b.WriteString(string(out))
	}

	//nolint:gosec // callbacks return markup produced by html/template
	return template.HTML(b.String())
}
