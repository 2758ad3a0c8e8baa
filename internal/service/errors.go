package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown login and a wrong
	// password; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is returned for remember and reset tokens that are
	// unknown, expired or already used.
	ErrTokenInvalid = errors.New("token is invalid, expired or already used")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
