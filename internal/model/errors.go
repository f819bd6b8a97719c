package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches the lookup keys.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on a uniqueness violation.
	ErrAlreadyExists = errors.New("already exists")
)
