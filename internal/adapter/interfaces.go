// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the SavedIt backend.
//
// The primary abstraction is [Backend], which decouples the client packages
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPBackend]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401). 409 is ambiguous on its own, so
// it maps to [ErrConflict] and the endpoints where it carries a specific
// meaning translate it: [ErrAlreadySaved] on item saves, [ErrReminderExists]
// on reminder creation.
package adapter

import (
	"context"

	"github.com/savedit/savedit/models"
)

// Backend defines transport-agnostic communication with the SavedIt backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Table-shaped operations (items, collections, memberships, reminders) map
// one-to-one onto the REST routes; the Fn* and RPC-style methods call the
// function and RPC endpoints the legacy clients rely on.
type Backend interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and stores the returned bearer token via
	// SetToken. The returned user carries the server-assigned UserID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates and stores the returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// SaveItem performs the direct table-shaped insert used by the quick-save
	// composition. Returns [ErrAlreadySaved] (wrapped) when the normalized
	// URL is already saved for this user.
	SaveItem(ctx context.Context, req models.SaveItemRequest) (models.SavedItem, error)

	// GetItem fetches one saved item by ID.
	GetItem(ctx context.Context, itemID string) (models.SavedItem, error)

	// ListUncategorizedItems returns the caller's visible items that belong
	// to no collection, newest first.
	ListUncategorizedItems(ctx context.Context) ([]models.SavedItem, error)

	// ListCollectionItems returns the visible items of one collection via
	// the join relation.
	ListCollectionItems(ctx context.Context, collectionID string) ([]models.SavedItem, error)

	// UpdateItem applies a partial update of title/notes/tags.
	UpdateItem(ctx context.Context, itemID string, patch models.ItemPatch) (models.SavedItem, error)

	// ArchiveItem and RestoreItem move an item in and out of the archived
	// lifecycle state.
	ArchiveItem(ctx context.Context, itemID string) error
	RestoreItem(ctx context.Context, itemID string) error

	// DeleteItem soft-deletes; PurgeItem removes the row permanently.
	DeleteItem(ctx context.Context, itemID string) error
	PurgeItem(ctx context.Context, itemID string) error

	// CreateCollection creates a new empty collection owned by the caller.
	CreateCollection(ctx context.Context, name string) (models.Collection, error)

	// GetCollection fetches one accessible collection with its derived card
	// fields re-read server-side.
	GetCollection(ctx context.Context, collectionID string) (models.Collection, error)

	// DeleteCollection removes an owned collection. Membership rows go with
	// it; the saved items inside stay saved.
	DeleteCollection(ctx context.Context, collectionID string) error

	// ListCollections is the plain REST listing of the caller's collections.
	ListCollections(ctx context.Context) ([]models.Collection, error)

	// ListAccessibleCollections calls the accessible-collections RPC: owned
	// plus shared collections in one call, each annotated with role and
	// is_shared.
	ListAccessibleCollections(ctx context.Context) ([]models.Collection, error)

	// ListItemCollections returns the IDs of the collections containing the
	// given item.
	ListItemCollections(ctx context.Context, itemID string) ([]string, error)

	// AttachItem adds an item to a collection (duplicate-ignoring);
	// DetachItem removes it.
	AttachItem(ctx context.Context, collectionID, itemID string) error
	DetachItem(ctx context.Context, collectionID, itemID string) error

	// CreateReminder performs the direct table-shaped reminder insert.
	// Returns [ErrReminderExists] (wrapped) when the item already has a
	// live reminder.
	CreateReminder(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error)

	// FnCreateReminder calls the create-reminder function endpoint, which
	// additionally schedules the notification side effects.
	FnCreateReminder(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error)

	// CompleteReminder marks a reminder completed. Idempotent server-side.
	CompleteReminder(ctx context.Context, reminderID string) error

	// ListReminderItems returns items with a live reminder, ordered by fire
	// time ascending.
	ListReminderItems(ctx context.Context) ([]models.SavedItem, error)

	// FnQuickSave calls the legacy quick-save function endpoint.
	FnQuickSave(ctx context.Context, req models.QuickSaveRequest) (models.SavedItem, error)

	// FnFetchMetadata calls the fetch-metadata function endpoint.
	FnFetchMetadata(ctx context.Context, pageURL string) (models.PageMetadata, error)

	// GetProfile and CompleteProfile back the onboarding flow.
	GetProfile(ctx context.Context) (models.Profile, error)
	CompleteProfile(ctx context.Context, patch models.ProfilePatch) (models.Profile, error)

	// IsUsernameAvailable calls the availability RPC.
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)

	// CreateInterestCollections calls the interest-collections RPC and
	// returns how many collections were created.
	CreateInterestCollections(ctx context.Context, interests []string) (int, error)
}
