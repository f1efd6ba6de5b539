// Package dsn builds data source names and gorm dialectors from the configuration.
package dsn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/throwback-posts/throwback-posts/internal/config"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Create builds the MySQL data source name from the configuration.
func Create(cfg *config.Config) string {
	out := fmt.Sprintf("%s:%s@tcp(%s)/%s",
		cfg.DB.User,
		cfg.DB.Password,
		net.JoinHostPort(cfg.DB.Host, strconv.Itoa(cfg.DB.Port)),
		cfg.DB.Name,
	)

	if cfg.DB.Extras != "" {
		out += "?" + cfg.DB.Extras
	}

	return out
}

// PostgresURI builds a postgres:// connection url. Extras are appended as query.
func PostgresURI(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DB.User, cfg.DB.Password),
		Host:     net.JoinHostPort(cfg.DB.Host, strconv.Itoa(cfg.DB.Port)),
		Path:     "/" + cfg.DB.Name,
		RawQuery: cfg.DB.Extras,
	}

	return u.String()
}

// SQLite returns the sqlite file dsn with foreign keys enabled.
func SQLite(cfg *config.Config) string {
	sep := "?"
	if strings.Contains(cfg.DB.File, "?") {
		sep = "&"
	}

	return cfg.DB.File + sep + sqlitePragmas
}

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(Create(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(PostgresURI(cfg)), nil
	case config.EngineSQLite:
		return sqlite.Open(SQLite(cfg)), nil
	default:
		return nil, config.ErrUnknownGormEngine
	}
}
