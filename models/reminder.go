package models

import "time"

// ReminderStatus is the lifecycle state of a reminder.
//
// Client paths only ever write ReminderPending and ReminderCompleted.
// ReminderActive is written by the server-side dispatcher when the fire
// time passes; clients must tolerate it when filtering but never produce
// it themselves.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderActive    ReminderStatus = "active"
	ReminderCompleted ReminderStatus = "completed"
)

// Reminder is a scheduled future prompt attached to exactly one saved
// item. An item has at most one live (pending or active) reminder at a
// time. Completion is one-way: a completed reminder never returns to
// pending.
type Reminder struct {
	// ID is the server-assigned opaque identifier (UUID string).
	ID string `json:"id"`

	// UserID is the owning user's identifier.
	UserID string `json:"user_id"`

	// SavedItemID references the saved item the reminder belongs to.
	SavedItemID string `json:"saved_item_id"`

	// FireAtUTC is the instant the reminder fires.
	FireAtUTC time.Time `json:"fire_at_utc"`

	// Timezone is the IANA timezone captured at creation, used for
	// display and notification localization.
	Timezone string `json:"timezone"`

	Status ReminderStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// Live reports whether the reminder should still appear in the
// reminders view (pending or active, not yet completed).
func (r *Reminder) Live() bool {
	return r.Status == ReminderPending || r.Status == ReminderActive
}

// TableName returns the name of the database table
// associated with the Reminder model.
func (r Reminder) TableName() string {
	return "reminders"
}
