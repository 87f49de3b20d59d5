package repository

import "errors"

var (
	// ErrNotFound covers both a missing row and a row owned by another
	// user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when a write would duplicate an email.
	ErrEmailTaken = errors.New("email already in use")
)
