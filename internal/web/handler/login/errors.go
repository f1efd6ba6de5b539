// Package login provides HTTP handlers and helpers for administrator authentication.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the provided username and/or password
	// are not valid.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")

	// ErrNilDependencies is returned by Init when app or dependencies are missing.
	ErrNilDependencies = errors.New("app or dependencies are nil")
)
