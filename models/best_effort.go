package models

// BestEffort is the result of a fire-and-forget side operation
// (metadata prefetch, interest-collection creation, collection attach
// after a successful save). Failures are recorded, logged by the caller,
// and never escalate into a failure of the primary action.
//
// Modeling these results explicitly keeps call sites honest: a function
// returning BestEffort cannot have its error mistaken for a fatal one,
// and tests can assert the failure was swallowed rather than propagated.
type BestEffort struct {
	// Attempted is false when the operation was skipped entirely
	// (e.g. no collection selected during quick-save).
	Attempted bool `json:"attempted"`

	// Err is the failure, if any. Informational only.
	Err error `json:"-"`
}

// Succeeded reports whether the operation was attempted and completed.
func (b BestEffort) Succeeded() bool {
	return b.Attempted && b.Err == nil
}

// Failed reports whether the operation was attempted and failed.
func (b BestEffort) Failed() bool {
	return b.Attempted && b.Err != nil
}

// BestEffortOK marks a side operation as attempted and successful.
func BestEffortOK() BestEffort {
	return BestEffort{Attempted: true}
}

// BestEffortFailed marks a side operation as attempted and failed.
func BestEffortFailed(err error) BestEffort {
	return BestEffort{Attempted: true, Err: err}
}

// BestEffortSkipped marks a side operation as never attempted.
func BestEffortSkipped() BestEffort {
	return BestEffort{}
}
