package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a new user collides with an
	// existing login or email.
	ErrLoginAlreadyExists = errors.New("login or email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRememberTokenNotFound is returned when a remember token hash is
	// unknown, expired or was rotated away by a concurrent request.
	ErrRememberTokenNotFound = errors.New("remember token was not found")

	// ErrResetNotFound is returned when a password-reset token is unknown,
	// expired or already used.
	ErrResetNotFound = errors.New("password reset token was not found")

	// ErrBanNotFound is returned when an IP has no ban record.
	ErrBanNotFound = errors.New("ip ban was not found")

	// ErrNoEscalation is returned by EscalateBan when the failure counter is
	// below the threshold.
	ErrNoEscalation = errors.New("ban threshold not reached")

	// ErrSessionNotFound is returned when a session id is unknown.
	ErrSessionNotFound = errors.New("session was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBeginningTransaction is returned when a transaction cannot be
	// opened.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when a transaction cannot be
	// committed. Its statements are rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrEncodingSession is returned when a session record cannot be
	// serialized or deserialized.
	ErrEncodingSession = errors.New("failed to encode session")
)
