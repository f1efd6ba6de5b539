// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata" // site time zones must load on hosts without zoneinfo

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// EnvJSON overrides the file configuration with a JSON document.
	EnvJSON = "THROWBACK_POSTS_CONFIG_JSON"

	// MainFile is the configuration file name inside the config directory.
	MainFile = "main.toml"

	defaultShutDownTime = 5
	defaultRecentPosts  = 10
	defaultSessionTTL   = 12 * time.Hour
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	if _, err := toml.DecodeFile(filepath.Join(path, MainFile), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if JSONConfigEnv := os.Getenv(EnvJSON); JSONConfigEnv != "" {
		var err error

		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Location returns the site time zone, UTC when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Site.TimeZone == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.Site.TimeZone)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidTimeZone, err.Error())
	}

	return loc, nil
}

// validate the settings needed to start and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres:
	case EngineSQLite:
		if c.DB.File == "" {
			return errors.Wrap(ErrEmptySQLiteFile, invalidErrMessage)
		}
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if _, err := c.Location(); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = defaultSessionTTL
	}

	if c.Site.URL == "" {
		c.Site.URL = c.Webserver.URL
	}

	if c.Site.RecentPosts <= 0 {
		c.Site.RecentPosts = defaultRecentPosts
	}

	return nil
}
