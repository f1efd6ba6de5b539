package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/throwback-posts/throwback-posts/internal/auth"
	"github.com/throwback-posts/throwback-posts/internal/config"
	"github.com/throwback-posts/throwback-posts/internal/db/models"
	"github.com/throwback-posts/throwback-posts/internal/web/handler"
	"github.com/throwback-posts/throwback-posts/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the login page template.
	TemplateName = "login"
)

// Form is the submitted login form.
type Form struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	provider *auth.LocalProvider
}

// Handler is the login handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the login handler.
func (s *Service) Init(app fiber.Router, deps *handler.Dependencies) error {
	if app == nil || !deps.Valid() {
		return ErrNilDependencies
	}

	s.cfg = deps.Cfg
	s.provider = auth.NewLocalProvider(deps.DB)

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the login page, or skips it when the session is still valid.
func (s *Service) Get(c *fiber.Ctx) error {
	sessData := new(session.Data)
	if err := sessData.Read(c.Cookies(session.CookieName)); err == nil && sessData.User.ID > 0 {
		return c.Redirect(handler.AdminHomePath)
	}

	return s.render(c, nil)
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		return s.render(c, ErrInvalidFormData)
	}

	user, err := s.provider.Authenticate(c.UserContext(), form.Username, form.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", form.Username).Msg("login failed")

		if isCredentialError(err) {
			return s.render(c, ErrInvalidCredentials)
		}

		return s.render(c, ErrInternalServerError)
	}

	if err = s.startSession(c, user); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return s.render(c, ErrInternalServerError)
	}

	log.Info().Str("username", user.Username).Msg("admin logged in")

	return c.Redirect(handler.AdminHomePath)
}

func (s *Service) startSession(c *fiber.Ctx, user *models.User) error {
	sessionID := session.GenerateSessionID()
	expiry := s.cfg.Webserver.Session.ExpiryTime

	userSession := &session.Data{User: *user}
	if err := userSession.Write(sessionID, expiry); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(expiry.Seconds()),
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, err error) error {
	data := fiber.Map{"Title": s.cfg.Title}
	if err != nil {
		data["error"] = err.Error()
	}

	return c.Render(TemplateName, data)
}

func isCredentialError(err error) bool {
	return errors.Is(err, auth.ErrUserNotFound) ||
		errors.Is(err, auth.ErrInvalidPassword) ||
		errors.Is(err, auth.ErrUserAccountDisabled) ||
		errors.Is(err, auth.ErrEmptyCredentials)
}
