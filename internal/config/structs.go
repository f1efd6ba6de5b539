package config

import (
	"time"

	"github.com/throwback-posts/throwback-posts/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration // idle time until an admin session expires
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Site      Site
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Port           int     // listening port for the webserver
	ShutDownTime   int     // seconds /checkalive reports 503 before the server stops
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// Site holds the content related settings.
type Site struct {
	URL         string // public base url for permalinks, defaults to Webserver.URL
	TimeZone    string // IANA zone "today" is computed in, defaults to UTC
	RecentPosts int    // number of posts on the home page
	AdminEmail  string // email of the seeded administrator
}
