package router

import "errors"

var (
	// ErrNotFound is returned by Match when no route matches.
	ErrNotFound = errors.New("route not found")

	// ErrInvalidRoute rejects malformed patterns at load time.
	ErrInvalidRoute = errors.New("invalid route")

	// ErrDuplicateRoute rejects a second exact route for the same method and path.
	ErrDuplicateRoute = errors.New("duplicate route")
)
