package models

import "time"

// Collection roles as annotated by the accessible-collections RPC.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Collection is a named, user-created grouping of saved items.
//
// ItemCount and SampleThumbnails are derived server-side whenever
// membership changes; clients must treat them as eventually consistent
// and re-fetch instead of adjusting them locally.
type Collection struct {
	// ID is the server-assigned opaque identifier (UUID string).
	ID string `json:"id"`

	// Name is the user-chosen collection name.
	Name string `json:"name"`

	// OwnerID is the owning user's identifier.
	OwnerID string `json:"owner_id"`

	// ItemCount is the derived number of member items.
	ItemCount int `json:"item_count"`

	// SampleThumbnails holds up to four member thumbnails for the
	// collection card preview.
	SampleThumbnails []string `json:"sample_thumbnails,omitempty"`

	// Role is the caller's role on the collection (owner/editor/viewer),
	// populated only when the collection was resolved through the
	// accessible-collections RPC.
	Role string `json:"role,omitempty"`

	// Shared reports whether the collection reached the caller through
	// sharing rather than ownership. Always false on the owned-only
	// fallback path, since shared visibility requires the RPC.
	Shared bool `json:"is_shared"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Collection model.
func (c Collection) TableName() string {
	return "collections"
}

// CollectionItem associates one SavedItem with one Collection.
// At most one row exists per (collection, item) pair; membership is
// binary and carries no further state.
type CollectionItem struct {
	CollectionID string    `json:"collection_id"`
	SavedItemID  string    `json:"saved_item_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the CollectionItem model.
func (c CollectionItem) TableName() string {
	return "collection_items"
}
