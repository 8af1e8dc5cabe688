package client

// Warning is a non-fatal, user-visible problem raised by a degraded
// fetch. Callers render it alongside whatever partial data was produced;
// they never treat it as a failure.
type Warning struct {
	// Message is the user-facing text.
	Message string

	// Err is the underlying cause, for logging.
	Err error
}

func newWarning(message string, err error) *Warning {
	return &Warning{Message: message, Err: err}
}
