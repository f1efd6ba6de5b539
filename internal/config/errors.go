package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormEngine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be mysql, postgres or sqlite")

	// ErrEmptySQLiteFile error if the sqlite engine has no database file.
	ErrEmptySQLiteFile = errors.New("toml config db.file can not be empty for sqlite")

	// ErrInvalidTimeZone error if config site.timeZone can not be loaded.
	ErrInvalidTimeZone = errors.New("toml config site.timeZone is not a valid IANA time zone")

	// ErrNilConfig error if a nil configuration is passed on.
	ErrNilConfig = errors.New("config is nil")
)
