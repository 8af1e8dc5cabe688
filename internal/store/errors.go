package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrNotFound is returned when a queried resource (item, collection,
	// reminder, profile) does not exist or is not visible to the caller.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateSavedURL is returned when an INSERT into saved_items hits
	// the per-user unique constraint on normalized_url, meaning the user has
	// already saved this URL.
	ErrDuplicateSavedURL = errors.New("url already saved")

	// ErrUsernameTaken is returned when a profile update hits the global
	// unique constraint on username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrReminderExists is returned when creating a reminder for an item
	// that already has a live (pending or active) reminder.
	ErrReminderExists = errors.New("item already has a live reminder")

	// ErrPermissionDenied is returned when the database rejects a write with
	// insufficient_privilege (42501), e.g. a row-level policy refusing an
	// update on a record the caller cannot edit.
	ErrPermissionDenied = errors.New("permission denied")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a partial update with no fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
