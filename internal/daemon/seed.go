package daemon

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/throwback-posts/throwback-posts/internal/auth"
	"github.com/throwback-posts/throwback-posts/internal/config"
	"github.com/throwback-posts/throwback-posts/internal/uniuri"
)

const (
	adminUsername     = "admin"
	defaultAdminEmail = "admin@localhost"
)

// seed creates the first administrator with a random password when the
// user table is empty. The password is logged once.
func seed(cfg *config.Config, db *gorm.DB) error {
	ctx := context.Background()
	provider := auth.NewLocalProvider(db)

	count, err := provider.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	email := cfg.Site.AdminEmail
	if email == "" {
		email = defaultAdminEmail
	}

	password := uniuri.New()

	if _, err = provider.CreateUser(ctx, adminUsername, email, password); err != nil {
		return err
	}

	log.Warn().
		Str("username", adminUsername).
		Str("password", password).
		Msg("created initial administrator, change the password after the first login")

	return nil
}
