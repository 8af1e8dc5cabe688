package adapter

import "errors"

var (
	// ErrUnauthorized is mapped from HTTP 401: missing, expired or invalid
	// bearer token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden is mapped from HTTP 403: the caller can see the resource
	// but lacks the required role.
	ErrForbidden = errors.New("operation forbidden")

	// ErrNotFound is mapped from HTTP 404.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is mapped from HTTP 409 where the endpoint gives the
	// conflict no more specific meaning, e.g. registering an email that
	// already has an account.
	ErrConflict = errors.New("conflict")

	// ErrAlreadySaved is returned by item saves on HTTP 409: the normalized
	// URL is already saved for this user. Callers treat it as a non-fatal
	// outcome, not a failure.
	ErrAlreadySaved = errors.New("already saved")

	// ErrReminderExists is returned by reminder creation on HTTP 409: the
	// item already has a live reminder.
	ErrReminderExists = errors.New("reminder already exists")
)
