package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when the caller can see a resource but
	// lacks the role required for the attempted operation (e.g. a viewer
	// attaching items to a shared collection).
	ErrForbidden = errors.New("operation not allowed for this role")

	// ErrInvalidUsername is returned when a profile username does not
	// match the allowed shape: lowercase letters, digits and
	// underscores, 3-20 characters.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidTimezone is returned when a reminder carries a timezone
	// that is not a known IANA zone name.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrMetadataFetch is returned when the outbound page fetch of the
	// metadata function fails. Callers treat it as best-effort and fall
	// back to empty metadata.
	ErrMetadataFetch = errors.New("metadata fetch failed")
)
