package post

import "errors"

var (
	// ErrPostNotFound is returned when no visible post has the requested id.
	ErrPostNotFound = errors.New("post not found")
	// ErrDBNil is returned when the store has no database connection.
	ErrDBNil = errors.New("database connection is nil")
	// ErrInvalidImport is returned when an imported post fails validation.
	ErrInvalidImport = errors.New("invalid imported post")
)
