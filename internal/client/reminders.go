package client

import (
	"context"
	"errors"
	"time"

	"github.com/savedit/savedit/internal/adapter"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/models"
)

// ReminderTracker manages the single optional reminder of a saved item.
//
// Creation prefers the create-reminder function endpoint, which also
// schedules the notification side effects. When the function is
// unavailable the tracker falls back to the direct table insert; the
// reminder row then exists but no notification was scheduled, and the
// result is marked Degraded so the UI can tell the user.
type ReminderTracker struct {
	backend adapter.Backend
	logger  *logger.Logger
}

func NewReminderTracker(backend adapter.Backend, logger *logger.Logger) *ReminderTracker {
	return &ReminderTracker{backend: backend, logger: logger}
}

// ReminderResult is the outcome of CreateReminder.
type ReminderResult struct {
	Reminder models.Reminder

	// Degraded is true when the direct-insert fallback was used: the
	// reminder exists but no notification has been scheduled for it.
	Degraded bool
}

// CreateReminder schedules a reminder for the item. fireAt is converted
// to UTC; timezone is the IANA zone captured on the client for display.
func (t *ReminderTracker) CreateReminder(ctx context.Context, itemID string, fireAt time.Time, timezone string) (ReminderResult, error) {
	req := models.CreateReminderRequest{
		SavedItemID: itemID,
		FireAt:      fireAt.UTC(),
		Timezone:    timezone,
	}

	reminder, err := t.backend.FnCreateReminder(ctx, req)
	if err == nil {
		return ReminderResult{Reminder: reminder}, nil
	}

	// A conflict means the item already has a live reminder; the
	// fallback would hit the same constraint, so surface it directly.
	if errors.Is(err, adapter.ErrReminderExists) {
		return ReminderResult{}, err
	}

	t.logger.Warn().Err(err).Msg("create-reminder function failed, falling back to direct insert")

	reminder, fallbackErr := t.backend.CreateReminder(ctx, req)
	if fallbackErr != nil {
		return ReminderResult{}, fallbackErr
	}

	return ReminderResult{Reminder: reminder, Degraded: true}, nil
}

// CompleteReminder marks the reminder completed. Completion is one-way
// and idempotent: completing an already-completed reminder succeeds.
func (t *ReminderTracker) CompleteReminder(ctx context.Context, reminderID string) error {
	return t.backend.CompleteReminder(ctx, reminderID)
}
