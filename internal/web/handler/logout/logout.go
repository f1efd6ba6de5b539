// Package logout ends the administrator session.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/throwback-posts/throwback-posts/internal/config"
	"github.com/throwback-posts/throwback-posts/internal/web/handler"
	"github.com/throwback-posts/throwback-posts/internal/web/handler/login"
	"github.com/throwback-posts/throwback-posts/internal/web/session"
)

// Path is the logout route.
const Path = handler.RootPath + "logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the logout handler.
var Handler = Service{} //nolint:gochecknoglobals

// Init initializes the logout handler.
func (s *Service) Init(app fiber.Router, deps *handler.Dependencies) error {
	if app == nil || !deps.Valid() {
		return login.ErrNilDependencies
	}

	s.cfg = deps.Cfg

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)

	return nil
}

// Logout handles user logout by clearing the session.
func (s *Service) Logout(c *fiber.Ctx) error {
	if sessionID := c.Cookies(session.CookieName); sessionID != "" {
		if err := session.Delete(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(login.Path)
}
