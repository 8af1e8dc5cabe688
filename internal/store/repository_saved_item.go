package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/models"
)

// savedItemRepository is the PostgreSQL-backed implementation of
// [SavedItemRepository]. It owns every query against the "saved_items"
// table, including the view-shaped listings (dashboard, uncategorized,
// collection detail) that the synchronizers render from.
type savedItemRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSavedItemRepository(db *DB, logger *logger.Logger) SavedItemRepository {
	logger.Debug().Msg("creating saved item repository")
	return &savedItemRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows so one scan helper serves
// single-row and multi-row queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateItem persists a new saved item and returns the stored row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on (user_id, normalized_url)
//     → [ErrDuplicateSavedURL]: the user already saved this URL.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *savedItemRepository) CreateItem(ctx context.Context, item models.SavedItem) (models.SavedItem, error) {
	log := logger.FromContext(ctx)

	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return models.SavedItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, createSavedItem,
		item.ID, item.UserID, item.URL, item.NormalizedURL,
		item.Title, item.Notes, item.Description, item.ThumbnailURL,
		tags, item.Provider, item.Status)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*savedItemRepository.CreateItem").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.SavedItem{}, ErrDuplicateSavedURL
		case pgerrcode.InsufficientPrivilege:
			return models.SavedItem{}, ErrPermissionDenied
		default:
			return models.SavedItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanSavedItem(row)
	if err != nil {
		// RETURNING scan surfaces constraint errors on some drivers
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.SavedItem{}, ErrDuplicateSavedURL
		}
		log.Err(err).Str("func", "*savedItemRepository.CreateItem").Msg("error: scanning error")
		return models.SavedItem{}, err
	}

	return saved, nil
}

// GetItem retrieves a single visible item owned by the given user.
// Soft-deleted items behave as missing.
func (r *savedItemRepository) GetItem(ctx context.Context, userID, itemID string) (models.SavedItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getSavedItem, itemID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*savedItemRepository.GetItem").Msg("error: row is nil")
		return models.SavedItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	item, err := scanSavedItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SavedItem{}, ErrNotFound
		}
		log.Err(err).Str("func", "*savedItemRepository.GetItem").Msg("error: scanning error")
		return models.SavedItem{}, err
	}

	return item, nil
}

// ListUncategorizedItems returns the dashboard listing: visible items that
// belong to no collection, newest first. Visibility is delegated to the
// saved_items_active view.
func (r *savedItemRepository) ListUncategorizedItems(ctx context.Context, userID string) ([]models.SavedItem, error) {
	return r.listItems(ctx, "*savedItemRepository.ListUncategorizedItems", listUncategorizedItems, userID)
}

// ListItemsByCollection returns the visible members of a collection in
// attach order, newest first.
func (r *savedItemRepository) ListItemsByCollection(ctx context.Context, collectionID string) ([]models.SavedItem, error) {
	return r.listItems(ctx, "*savedItemRepository.ListItemsByCollection", listItemsByCollection, collectionID)
}

func (r *savedItemRepository) listItems(ctx context.Context, funcName, query string, arg any) ([]models.SavedItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.SavedItem, 0)
	for rows.Next() {
		item, err := scanSavedItem(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// UpdateItem applies a partial update of the editable fields and returns
// the updated row.
//
// Error handling:
//   - empty patch → [ErrBuildingSQLQuery].
//   - PostgreSQL insufficient_privilege (42501) → [ErrPermissionDenied].
//   - no matching row → [ErrNotFound].
func (r *savedItemRepository) UpdateItem(ctx context.Context, userID, itemID string, patch models.ItemPatch) (models.SavedItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildItemUpdateQuery(userID, itemID, patch)
	if err != nil {
		log.Err(err).Str("func", "*savedItemRepository.UpdateItem").Msg("error building update query")
		return models.SavedItem{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*savedItemRepository.UpdateItem").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.InsufficientPrivilege:
			return models.SavedItem{}, ErrPermissionDenied
		default:
			return models.SavedItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	item, err := scanSavedItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SavedItem{}, ErrNotFound
		}
		log.Err(err).Str("func", "*savedItemRepository.UpdateItem").Msg("error: scanning error")
		return models.SavedItem{}, err
	}

	return item, nil
}

// SetItemStatus transitions the item's lifecycle state (archive, restore).
// Soft-deleted items behave as missing.
func (r *savedItemRepository) SetItemStatus(ctx context.Context, userID, itemID string, status models.ItemStatus) error {
	return r.execOwned(ctx, "*savedItemRepository.SetItemStatus", setItemStatus, itemID, userID, status)
}

// SoftDeleteItem marks the item deleted without removing the row. The
// operation is not idempotent: a second call reports [ErrNotFound].
func (r *savedItemRepository) SoftDeleteItem(ctx context.Context, userID, itemID string) error {
	return r.execOwned(ctx, "*savedItemRepository.SoftDeleteItem", softDeleteItem, itemID, userID)
}

// HardDeleteItem removes the row permanently. Membership rows and
// reminders are removed by ON DELETE CASCADE.
func (r *savedItemRepository) HardDeleteItem(ctx context.Context, userID, itemID string) error {
	return r.execOwned(ctx, "*savedItemRepository.HardDeleteItem", hardDeleteItem, itemID, userID)
}

func (r *savedItemRepository) execOwned(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")

		switch postgresError(err) {
		case pgerrcode.InsufficientPrivilege:
			return ErrPermissionDenied
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanSavedItem(row rowScanner) (models.SavedItem, error) {
	var item models.SavedItem
	var tags []byte

	err := row.Scan(
		&item.ID, &item.UserID, &item.URL, &item.NormalizedURL,
		&item.Title, &item.Notes, &item.Description,
		&item.ThumbnailURL, &item.ThumbnailMirroredURL,
		&tags, &item.Provider, &item.Status,
		&item.DeletedAt, &item.CreatedAt)
	if err != nil {
		return models.SavedItem{}, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &item.Tags); err != nil {
			return models.SavedItem{}, fmt.Errorf("%w: tags: %w", ErrScanningRow, err)
		}
	}

	return item, nil
}
