package core

import "errors"

// Common errors.
var (
	ErrNotFound      = errors.New("note not found")
	ErrAlreadyExists = errors.New("note already exists")
	ErrEmptyTitle    = errors.New("note title is empty")
	ErrEmptyContent  = errors.New("note content is empty")
	ErrInvalidName   = errors.New("invalid note name")
	ErrMalformed     = errors.New("malformed note record")
	ErrNotDirectory  = errors.New("notes path is not a directory")
)

// IsRejection reports whether err is a user-input rejection, as opposed to an
// I/O or decoding failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrInvalidName)
}
