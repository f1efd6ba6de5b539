// Package throwbackposts serves the admin form of the throwback widget.
package throwbackposts

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/throwback-posts/throwback-posts/internal/db/controller/post"
	tbrepo "github.com/throwback-posts/throwback-posts/internal/db/controller/throwback"
	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
	"github.com/throwback-posts/throwback-posts/internal/web/handler"
	"github.com/throwback-posts/throwback-posts/internal/web/navigation"
)

const (
	// Path is the path to the throwback settings page.
	Path = handler.AdminHomePath

	// ResetPath restores the defaults.
	ResetPath = Path + "/reset"

	// TemplateName is the name of the settings template.
	TemplateName = "admin/settings/throwback-posts"
)

// ErrNilDependencies is returned by Init when a dependency is missing.
var ErrNilDependencies = errors.New("app, settings, posts or throwback service is nil")

// Service is the throwback settings handler service.
type Service struct {
	handler.Service
	settings  *tbrepo.Repository
	posts     *post.Store
	throwback *tb.Service
	validator *validator.Validate
}

// Handler is the throwback settings handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init registers the settings routes below router.
func (s *Service) Init(router fiber.Router, deps *handler.Dependencies) error {
	if router == nil || deps == nil || deps.Settings == nil || deps.Posts == nil || deps.Throwback == nil {
		return ErrNilDependencies
	}

	s.settings = deps.Settings
	s.posts = deps.Posts
	s.throwback = deps.Throwback
	s.validator = newValidator()

	router.Get(Path, s.Get)
	router.Post(Path, s.Post)
	router.Post(ResetPath, s.Reset)

	return nil
}

// newValidator reports field errors by form name.
func newValidator() *validator.Validate {
	v := tb.NewValidator()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	})

	return v
}

func navigationContext() *navigation.Context {
	return navigation.NewContext("Throwback Posts", "settings", "throwback-posts").
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Settings", "", false).
		AddBreadcrumb("Throwback Posts", Path, true)
}

// Get renders the form with the stored settings or the defaults.
func (s *Service) Get(c *fiber.Ctx) error {
	settings, err := s.settings.LoadOrDefault(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("failed to load throwback settings")

		if !errors.Is(err, tb.ErrMalformedSettings) {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
		}

		// let the admin overwrite a broken record
		settings = tb.DefaultSettings()
	}

	return s.render(c, fiber.StatusOK, settings, fiber.Map{})
}

// Post validates and stores the submitted form.
func (s *Service) Post(c *fiber.Ctx) error {
	settings := new(tb.Settings)
	if err := c.BodyParser(settings); err != nil {
		log.Error().Err(err).Msg("failed to parse throwback settings form")

		return s.render(c, fiber.StatusBadRequest, settings, fiber.Map{"Error": []string{"Invalid form data"}})
	}

	if err := s.validator.Struct(settings); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)

		messages := make([]string, len(validationErrors))
		invalid := make(map[string]bool, len(validationErrors))

		for i, ve := range validationErrors {
			messages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
			invalid[ve.Field()] = true
		}

		log.Warn().Err(err).Msg("validation failed for throwback settings")

		return s.render(c, fiber.StatusBadRequest, settings, fiber.Map{"Error": messages, "Invalid": invalid})
	}

	if err := s.settings.Save(c.UserContext(), settings); err != nil {
		log.Error().Err(err).Msg("failed to save throwback settings")

		return s.render(c, fiber.StatusInternalServerError, settings, fiber.Map{"Error": []string{"Failed to save settings"}})
	}

	log.Info().
		Bool("activate", settings.Activate).
		Strs("dates", settings.Dates).
		Int("max_posts", settings.MaxPosts).
		Msg("throwback settings saved successfully")

	return s.render(c, fiber.StatusOK, settings, fiber.Map{"Success": "Settings saved successfully"})
}

// Reset deletes the stored record so the defaults apply again.
func (s *Service) Reset(c *fiber.Ctx) error {
	if err := s.settings.Reset(c.UserContext()); err != nil {
		log.Error().Err(err).Msg("failed to reset throwback settings")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to reset settings")
	}

	log.Info().Msg("throwback settings reset to defaults")

	return c.Redirect(Path)
}

func (s *Service) render(c *fiber.Ctx, status int, settings *tb.Settings, data fiber.Map) error {
	ctx := c.UserContext()

	categories, err := s.posts.Categories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load categories")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load categories")
	}

	posts, err := s.posts.AllPosts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load posts")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load posts")
	}

	data["Sections"] = tb.Schema(tb.ResolveOffsets(s.throwback.Today()), categories, posts)
	data["Values"] = settings.FormValues()
	data["Navigation"] = navigationContext()
	data["ResetPath"] = ResetPath
	data["Path"] = Path

	return c.Status(status).Render(TemplateName, data, handler.BaseLayout)
}
