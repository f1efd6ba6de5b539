// Package auth authenticates the site administrators against the local user table.
package auth
