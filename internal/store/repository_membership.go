package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/savedit/savedit/internal/logger"
)

// membershipRepository is the PostgreSQL-backed implementation of
// [MembershipRepository] over the "collection_items" join table.
//
// Attach is an upsert: re-attaching an already attached item is a no-op
// rather than an error, which makes drag-and-drop and retried quick-save
// attachments safe.
type membershipRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMembershipRepository(db *DB, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("creating membership repository")
	return &membershipRepository{
		db:     db,
		logger: logger,
	}
}

// AttachItem adds an item to a collection. Existing membership is left
// untouched (ON CONFLICT DO NOTHING). The collection's updated_at is
// bumped so card ordering reflects recent activity.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrNotFound]: the
//     collection or the item does not exist.
func (r *membershipRepository) AttachItem(ctx context.Context, collectionID, itemID string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, attachItem, collectionID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.AttachItem").Msg("error executing statement")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrNotFound
		case pgerrcode.InsufficientPrivilege:
			return ErrPermissionDenied
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if _, err := r.db.ExecContext(ctx, touchCollection, collectionID); err != nil {
		// membership is already persisted; a stale updated_at only delays
		// card reordering
		log.Err(err).Str("func", "*membershipRepository.AttachItem").Msg("error touching collection")
	}

	return nil
}

// DetachItem removes an item from a collection. Removing a non-member is
// a no-op.
func (r *membershipRepository) DetachItem(ctx context.Context, collectionID, itemID string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, detachItem, collectionID, itemID)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.DetachItem").Msg("error executing statement")

		switch postgresError(err) {
		case pgerrcode.InsufficientPrivilege:
			return ErrPermissionDenied
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if _, err := r.db.ExecContext(ctx, touchCollection, collectionID); err != nil {
		log.Err(err).Str("func", "*membershipRepository.DetachItem").Msg("error touching collection")
	}

	return nil
}

// ListItemCollectionIDs returns the IDs of every collection the item
// belongs to.
func (r *membershipRepository) ListItemCollectionIDs(ctx context.Context, itemID string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listItemCollectionIDs, itemID)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.ListItemCollectionIDs").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*membershipRepository.ListItemCollectionIDs").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
