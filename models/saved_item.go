package models

import "time"

// ItemStatus is the lifecycle state of a saved item.
//
// Items enter the system as StatusQueued (quick-save, share sheet,
// extension) and are promoted to StatusActive once server-side enrichment
// completes. StatusArchived items are kept but hidden from every default
// view. Soft deletion is tracked separately via SavedItem.DeletedAt.
type ItemStatus string

const (
	StatusQueued   ItemStatus = "queued"
	StatusActive   ItemStatus = "active"
	StatusArchived ItemStatus = "archived"
)

// SavedItem is one piece of externally-sourced content a user chose to
// keep. It is the canonical record every view renders from; raw rows that
// arrive in view-specific shapes are adapted into this type at the
// boundary so internal logic never branches on which alias is present.
type SavedItem struct {
	// ID is the server-assigned opaque identifier (UUID string).
	ID string `json:"id"`

	// UserID is the owning user's identifier.
	UserID string `json:"user_id"`

	// URL is the source URL exactly as the user supplied it.
	URL string `json:"url"`

	// NormalizedURL is the canonicalized form of URL used as the
	// per-user de-duplication key. See urlx.NormalizeURL.
	NormalizedURL string `json:"normalized_url"`

	// Title is the display title. May be empty for queued items whose
	// enrichment has not completed yet.
	Title string `json:"title"`

	// Notes holds free-form user notes.
	Notes string `json:"notes,omitempty"`

	// Description is the auto-fetched page description.
	Description string `json:"description,omitempty"`

	// ThumbnailURL is the original remote thumbnail.
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// ThumbnailMirroredURL is the cached copy of the thumbnail.
	// When present it takes precedence over ThumbnailURL for display.
	ThumbnailMirroredURL string `json:"thumbnail_mirrored_url,omitempty"`

	// Tags are free-text labels. Order is irrelevant and uniqueness is
	// not enforced client-side.
	Tags []string `json:"tags,omitempty"`

	// Provider is the source platform label. When empty it is derived
	// from the URL's hostname.
	Provider string `json:"provider,omitempty"`

	// Status is the enrichment lifecycle state.
	Status ItemStatus `json:"status"`

	// DeletedAt is the soft-delete marker. A non-nil value hides the
	// item from every view; the row still exists until hard deletion.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// Reminder is the item's single optional reminder, populated only by
	// views that join against the reminders table.
	Reminder *Reminder `json:"reminder,omitempty"`
}

// Deleted reports whether the item has been soft-deleted.
func (s *SavedItem) Deleted() bool {
	return s.DeletedAt != nil
}

// Visible reports whether the item may appear in any default view:
// not archived and not soft-deleted.
func (s *SavedItem) Visible() bool {
	return s.Status != StatusArchived && !s.Deleted()
}

// TableName returns the name of the database table
// associated with the SavedItem model.
func (s SavedItem) TableName() string {
	return "saved_items"
}
