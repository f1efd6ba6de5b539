// Package session keeps the logged in administrator between requests.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/throwback-posts/throwback-posts/internal/db/models"
	"github.com/throwback-posts/throwback-posts/internal/uniuri"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

const idLen = 48

// ErrNoSession is returned when the session id is unknown or expired.
var ErrNoSession = errors.New("session not found")

// Store is the global session store instance.
var Store *session.Store //nolint:gochecknoglobals

// Data represents the session data structure.
type Data struct {
	User models.User
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	if len(byteData) == 0 {
		return ErrNoSession
	}

	return json.Unmarshal(byteData, s)
}

// Delete removes the session.
func Delete(sessionID string) error {
	return Store.Storage.Delete(sessionID)
}

// Init initializes the session store. A nil storage keeps sessions in memory.
func Init(storage fiber.Storage) {
	cfg := session.Config{}
	if storage != nil {
		cfg.Storage = storage
	}

	Store = session.New(cfg)
}

// GenerateSessionID generates a new random session ID.
func GenerateSessionID() string {
	return uniuri.NewLen(idLen)
}
