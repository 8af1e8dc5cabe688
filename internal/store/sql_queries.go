package store

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/savedit/savedit/models"
)

// savedItemColumns is the canonical column list for saved_items queries.
// Every SELECT against the table uses this order so a single scan helper
// serves all of them.
const savedItemColumns = `id, user_id, url, normalized_url, title, notes, description, thumbnail_url, thumbnail_mirrored_url, tags, provider, status, deleted_at, created_at`

const (
	createUser = `INSERT INTO users (id, email, auth_hash)
    VALUES ($1, $2, $3)
    RETURNING id, email, auth_hash, created_at;`

	findUserByEmail = `SELECT id, email, auth_hash, created_at
    FROM users
    WHERE email = $1;`

	getProfile = `SELECT user_id, username, display_name, interests, onboarding_done, updated_at
		FROM profiles
		WHERE user_id = $1;`

	upsertProfile = `INSERT INTO profiles (user_id, username, display_name, interests, onboarding_done)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			interests = EXCLUDED.interests,
			onboarding_done = EXCLUDED.onboarding_done,
			updated_at = NOW()
		RETURNING user_id, username, display_name, interests, onboarding_done, updated_at;`

	usernameExists = `SELECT EXISTS (
		SELECT 1 FROM profiles WHERE username = $1
	);`

	createSavedItem = `INSERT INTO saved_items (id, user_id, url, normalized_url, title, notes, description, thumbnail_url, tags, provider, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + savedItemColumns + `;`

	getSavedItem = `SELECT ` + savedItemColumns + `
		FROM saved_items
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`

	// Listings select from the saved_items_active view, which already
	// excludes archived and soft-deleted rows. Uncategorized means the
	// item belongs to no collection at all.
	listUncategorizedItems = `SELECT ` + savedItemColumns + `
		FROM saved_items_active si
		WHERE si.user_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM collection_items ci WHERE ci.saved_item_id = si.id
		  )
		ORDER BY si.created_at DESC;`

	listItemsByCollection = `SELECT si.id, si.user_id, si.url, si.normalized_url, si.title, si.notes, si.description, si.thumbnail_url, si.thumbnail_mirrored_url, si.tags, si.provider, si.status, si.deleted_at, si.created_at
		FROM collection_items ci
		JOIN saved_items_active si ON si.id = ci.saved_item_id
		WHERE ci.collection_id = $1
		ORDER BY ci.created_at DESC;`

	setItemStatus = `UPDATE saved_items
		SET status = $3
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`

	softDeleteItem = `UPDATE saved_items
		SET deleted_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`

	hardDeleteItem = `DELETE FROM saved_items
		WHERE id = $1 AND user_id = $2;`

	createCollection = `INSERT INTO collections (id, name, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, owner_id, created_at, updated_at;`

	// Member and item rows go with the collection via ON DELETE CASCADE;
	// the saved items themselves survive.
	deleteCollection = `DELETE FROM collections
		WHERE id = $1 AND owner_id = $2;`

	// Collection card columns: role and is_shared are resolved per caller,
	// item_count and sample_thumbnails are derived from current membership.
	// Thumbnails prefer the mirrored copy and skip members without one.
	accessibleCollectionColumns = `c.id, c.name, c.owner_id,
		CASE WHEN c.owner_id = $1 THEN 'owner' ELSE m.role END AS role,
		(c.owner_id <> $1) AS is_shared,
		(SELECT COUNT(*) FROM collection_items ci WHERE ci.collection_id = c.id) AS item_count,
		COALESCE((
			SELECT jsonb_agg(t.thumb)
			FROM (
				SELECT COALESCE(NULLIF(si.thumbnail_mirrored_url, ''), si.thumbnail_url) AS thumb
				FROM collection_items ci
				JOIN saved_items si ON si.id = ci.saved_item_id
				WHERE ci.collection_id = c.id
				  AND si.deleted_at IS NULL AND si.status <> 'archived'
				  AND COALESCE(NULLIF(si.thumbnail_mirrored_url, ''), si.thumbnail_url) <> ''
				ORDER BY ci.created_at DESC
				LIMIT 4
			) t
		), '[]'::jsonb) AS sample_thumbnails,
		c.created_at, c.updated_at`

	listAccessibleCollections = `SELECT ` + accessibleCollectionColumns + `
		FROM collections c
		LEFT JOIN collection_members m ON m.collection_id = c.id AND m.user_id = $1
		WHERE c.owner_id = $1 OR m.user_id IS NOT NULL
		ORDER BY c.updated_at DESC;`

	getAccessibleCollection = `SELECT ` + accessibleCollectionColumns + `
		FROM collections c
		LEFT JOIN collection_members m ON m.collection_id = c.id AND m.user_id = $1
		WHERE c.id = $2 AND (c.owner_id = $1 OR m.user_id IS NOT NULL);`

	addCollectionMember = `INSERT INTO collection_members (collection_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection_id, user_id) DO UPDATE SET role = EXCLUDED.role;`

	attachItem = `INSERT INTO collection_items (collection_id, saved_item_id)
		VALUES ($1, $2)
		ON CONFLICT (collection_id, saved_item_id) DO NOTHING;`

	detachItem = `DELETE FROM collection_items
		WHERE collection_id = $1 AND saved_item_id = $2;`

	touchCollection = `UPDATE collections
		SET updated_at = NOW()
		WHERE id = $1;`

	listItemCollectionIDs = `SELECT collection_id
		FROM collection_items
		WHERE saved_item_id = $1;`

	createReminder = `INSERT INTO reminders (id, user_id, saved_item_id, fire_at_utc, timezone, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id, user_id, saved_item_id, fire_at_utc, timezone, status, created_at;`

	// Completion is one-way and idempotent: re-completing a completed
	// reminder is a no-op that still matches the row.
	completeReminder = `UPDATE reminders
		SET status = 'completed'
		WHERE id = $1 AND user_id = $2;`

	// Items joined with their live reminder. Archived and soft-deleted
	// items are excluded even if their reminder is still live.
	listLiveReminderItems = `SELECT si.id, si.user_id, si.url, si.normalized_url, si.title, si.notes, si.description, si.thumbnail_url, si.thumbnail_mirrored_url, si.tags, si.provider, si.status, si.deleted_at, si.created_at,
		r.id, r.user_id, r.saved_item_id, r.fire_at_utc, r.timezone, r.status, r.created_at
		FROM reminders r
		JOIN saved_items si ON si.id = r.saved_item_id
		WHERE r.user_id = $1 AND r.status IN ('pending', 'active')
		  AND si.deleted_at IS NULL AND si.status <> 'archived'
		ORDER BY r.fire_at_utc ASC;`

	promotePendingReminders = `UPDATE reminders
		SET status = 'active'
		WHERE status = 'pending' AND fire_at_utc <= $1;`
)

// buildItemUpdateQuery builds a partial UPDATE for the editable item fields.
// Only non-nil patch fields produce SET clauses; tags are replaced as a
// whole JSONB value. Returns ErrBuildingSQLQuery for an empty patch.
func buildItemUpdateQuery(userID, itemID string, patch models.ItemPatch) (string, []any, error) {
	if patch.Empty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.Update("saved_items").PlaceholderFormat(sq.Dollar)

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Notes != nil {
		builder = builder.Set("notes", *patch.Notes)
	}
	if patch.Tags != nil {
		tags, err := json.Marshal(*patch.Tags)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("tags", tags)
	}

	return builder.
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + savedItemColumns).
		ToSql()
}
