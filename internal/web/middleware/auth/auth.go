package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/throwback-posts/throwback-posts/internal/web/handler/login"
	"github.com/throwback-posts/throwback-posts/internal/web/session"
)

// CurrentUserKey is the fiber.Locals key of the logged in user.
const CurrentUserKey = "CurrentUser"

// Middleware is a Fiber middleware that checks for user authentication.
func Middleware(c *fiber.Ctx) error {
	sessData := new(session.Data)
	if err := sessData.Read(c.Cookies(session.CookieName)); err != nil || sessData.User.ID == 0 {
		return c.Redirect(login.Path)
	}

	c.Locals(CurrentUserKey, sessData.User)

	return c.Next()
}
