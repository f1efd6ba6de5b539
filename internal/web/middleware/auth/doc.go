// Package auth guards the admin pages.
//
// The middleware reads the session cookie, redirects to the login page when
// the session is missing or expired, and stores the logged in user in
// fiber.Locals under CurrentUserKey for handlers and templates.
//
// Usage:
//
//	app.Use("/admin", authmiddleware.Middleware)
package auth
