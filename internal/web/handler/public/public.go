// Package public serves the pages readers see, with the footer hooks injected.
package public

import (
	"errors"
	"html/template"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/throwback-posts/throwback-posts/internal/config"
	"github.com/throwback-posts/throwback-posts/internal/db/controller/post"
	"github.com/throwback-posts/throwback-posts/internal/hooks"
	"github.com/throwback-posts/throwback-posts/internal/web/handler"
	"github.com/throwback-posts/throwback-posts/internal/widget"
)

const (
	// PostPath is the single post route.
	PostPath = handler.RootPath + "posts/:id"

	// FragmentPath returns the widget markup alone.
	FragmentPath = handler.RootPath + "throwback"

	// IndexTemplate lists the recent posts.
	IndexTemplate = "public/index"

	// PostTemplate shows one post.
	PostTemplate = "public/post"
)

// ErrNilDependencies is returned by Init when a dependency is missing.
var ErrNilDependencies = errors.New("app, config, posts, hooks or widget is nil")

// Service is the public pages handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	posts  *post.Store
	hooks  *hooks.Registry
	widget *widget.Plugin
}

// Handler is the public pages handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the public routes.
func (s *Service) Init(router fiber.Router, deps *handler.Dependencies) error {
	if router == nil || deps == nil || deps.Cfg == nil || deps.Posts == nil || deps.Hooks == nil || deps.Widget == nil {
		return ErrNilDependencies
	}

	s.cfg = deps.Cfg
	s.posts = deps.Posts
	s.hooks = deps.Hooks
	s.widget = deps.Widget

	router.Get(handler.RootPath, s.Index)
	router.Get(PostPath, s.Post)
	router.Get(FragmentPath, s.Fragment)

	return nil
}

// Index lists the most recent posts.
func (s *Service) Index(c *fiber.Ctx) error {
	recent, err := s.posts.Recent(c.UserContext(), s.cfg.Site.RecentPosts)
	if err != nil {
		log.Error().Err(err).Msg("failed to load recent posts")
		return fiber.ErrInternalServerError
	}

	return c.Render(IndexTemplate, s.page(c, fiber.Map{"Posts": recent}), handler.SiteLayout)
}

// Post shows a single published post.
func (s *Service) Post(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.ErrNotFound
	}

	p, err := s.posts.Get(c.UserContext(), id)
	if errors.Is(err, post.ErrPostNotFound) {
		return fiber.ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to load post")
		return fiber.ErrInternalServerError
	}

	return c.Render(PostTemplate, s.page(c, fiber.Map{
		"Post": s.posts.Ref(p),
		// imported content is trusted markup
		"Content":    template.HTML(p.Content), //nolint:gosec
		"Categories": p.Categories,
	}), handler.SiteLayout)
}

// Fragment returns the widget markup, or 204 when there is nothing to show.
func (s *Service) Fragment(c *fiber.Ctx) error {
	markup, err := s.widget.Fragment(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("throwback widget failed")
	}

	if err != nil || markup == "" {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Type("html", "utf-8")

	return c.SendString(string(markup))
}

// page adds the site title and the hook output to data.
func (s *Service) page(c *fiber.Ctx, data fiber.Map) fiber.Map {
	ctx := c.UserContext()

	data["Title"] = s.cfg.Title
	data["Head"] = s.hooks.Render(ctx, hooks.Head)
	data["Footer"] = s.hooks.Render(ctx, hooks.Footer)

	return data
}
