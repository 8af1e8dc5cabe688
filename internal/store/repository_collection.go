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

// collectionRepository is the PostgreSQL-backed implementation of
// [CollectionRepository]. Accessible-collection queries resolve the
// caller's role and derive the card fields (item_count, up to four
// sample thumbnails) from current membership.
type collectionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCollection persists a new collection owned by collection.OwnerID.
func (r *collectionRepository) CreateCollection(ctx context.Context, collection models.Collection) (models.Collection, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCollection, collection.ID, collection.Name, collection.OwnerID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*collectionRepository.CreateCollection").Msg("error: row is nil")
		return models.Collection{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&collection.ID, &collection.Name, &collection.OwnerID, &collection.CreatedAt, &collection.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.CreateCollection").Msg("error: scanning error")
		return models.Collection{}, err
	}

	// a freshly created collection is owned, never shared
	collection.Role = models.RoleOwner
	collection.Shared = false
	return collection, nil
}

// GetCollection retrieves one collection the user can access (owned or
// shared with them), annotated with the caller's role.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNotFound]: missing or not accessible.
func (r *collectionRepository) GetCollection(ctx context.Context, userID, collectionID string) (models.Collection, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getAccessibleCollection, userID, collectionID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*collectionRepository.GetCollection").Msg("error: row is nil")
		return models.Collection{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	collection, err := scanAccessibleCollection(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Collection{}, ErrNotFound
		}
		log.Err(err).Str("func", "*collectionRepository.GetCollection").Msg("error: scanning error")
		return models.Collection{}, err
	}

	return collection, nil
}

// ListAccessibleCollections returns every collection the user owns or that
// was shared with them, most recently updated first.
func (r *collectionRepository) ListAccessibleCollections(ctx context.Context, userID string) ([]models.Collection, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAccessibleCollections, userID)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.ListAccessibleCollections").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	collections := make([]models.Collection, 0)
	for rows.Next() {
		collection, err := scanAccessibleCollection(rows)
		if err != nil {
			log.Err(err).Str("func", "*collectionRepository.ListAccessibleCollections").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		collections = append(collections, collection)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*collectionRepository.ListAccessibleCollections").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return collections, nil
}

// DeleteCollection removes a collection owned by the user. Member and
// item rows cascade away with it; the saved items themselves survive.
//
// Error handling:
//   - no matching row → [ErrNotFound]: the collection does not exist or
//     the user does not own it.
func (r *collectionRepository) DeleteCollection(ctx context.Context, userID, collectionID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCollection, collectionID, userID)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.DeleteCollection").Msg("error executing statement")

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

// AddMember grants (or updates) a user's role on a collection.
func (r *collectionRepository) AddMember(ctx context.Context, collectionID, userID, role string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, addCollectionMember, collectionID, userID, role)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.AddMember").Msg("error executing statement")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrNotFound
		case pgerrcode.InsufficientPrivilege:
			return ErrPermissionDenied
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

func scanAccessibleCollection(row rowScanner) (models.Collection, error) {
	var collection models.Collection
	var role sql.NullString
	var thumbnails []byte

	err := row.Scan(
		&collection.ID, &collection.Name, &collection.OwnerID,
		&role, &collection.Shared, &collection.ItemCount, &thumbnails,
		&collection.CreatedAt, &collection.UpdatedAt)
	if err != nil {
		return models.Collection{}, err
	}

	collection.Role = role.String

	if len(thumbnails) > 0 {
		if err := json.Unmarshal(thumbnails, &collection.SampleThumbnails); err != nil {
			return models.Collection{}, fmt.Errorf("%w: sample_thumbnails: %w", ErrScanningRow, err)
		}
	}

	return collection, nil
}
