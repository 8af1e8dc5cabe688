package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/models"
)

// reminderRepository is the PostgreSQL-backed implementation of
// [ReminderRepository].
//
// A partial unique index on (saved_item_id) WHERE status <> 'completed'
// enforces the at-most-one-live-reminder-per-item rule at the storage
// level; the repository maps its violation to [ErrReminderExists].
type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReminder persists a new pending reminder for an item.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the live-reminder index
//     → [ErrReminderExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrNotFound]: the item
//     does not exist.
func (r *reminderRepository) CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReminder,
		reminder.ID, reminder.UserID, reminder.SavedItemID,
		reminder.FireAtUTC, reminder.Timezone)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reminderRepository.CreateReminder").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Reminder{}, ErrReminderExists
		case pgerrcode.ForeignKeyViolation:
			return models.Reminder{}, ErrNotFound
		default:
			return models.Reminder{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	err := row.Scan(&reminder.ID, &reminder.UserID, &reminder.SavedItemID,
		&reminder.FireAtUTC, &reminder.Timezone, &reminder.Status, &reminder.CreatedAt)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Reminder{}, ErrReminderExists
		case pgerrcode.ForeignKeyViolation:
			return models.Reminder{}, ErrNotFound
		}
		log.Err(err).Str("func", "*reminderRepository.CreateReminder").Msg("error: scanning error")
		return models.Reminder{}, err
	}

	return reminder, nil
}

// CompleteReminder marks a reminder completed. The transition is one-way
// and idempotent: completing an already completed reminder succeeds.
//
// Error handling:
//   - no matching row → [ErrNotFound]: the reminder does not exist or
//     belongs to another user.
func (r *reminderRepository) CompleteReminder(ctx context.Context, userID, reminderID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, completeReminder, reminderID, userID)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.CompleteReminder").Msg("error executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
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

// ListLiveReminderItems returns the user's reminder view: saved items
// joined with their live (pending or active) reminder, soonest first.
// Archived and soft-deleted items are excluded even when their reminder
// is still live.
func (r *reminderRepository) ListLiveReminderItems(ctx context.Context, userID string) ([]models.SavedItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLiveReminderItems, userID)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.ListLiveReminderItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.SavedItem, 0)
	for rows.Next() {
		var item models.SavedItem
		var reminder models.Reminder
		var tags []byte

		err := rows.Scan(
			&item.ID, &item.UserID, &item.URL, &item.NormalizedURL,
			&item.Title, &item.Notes, &item.Description,
			&item.ThumbnailURL, &item.ThumbnailMirroredURL,
			&tags, &item.Provider, &item.Status,
			&item.DeletedAt, &item.CreatedAt,
			&reminder.ID, &reminder.UserID, &reminder.SavedItemID,
			&reminder.FireAtUTC, &reminder.Timezone, &reminder.Status, &reminder.CreatedAt)
		if err != nil {
			log.Err(err).Str("func", "*reminderRepository.ListLiveReminderItems").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &item.Tags); err != nil {
				return nil, fmt.Errorf("%w: tags: %w", ErrScanningRows, err)
			}
		}

		item.Reminder = &reminder
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*reminderRepository.ListLiveReminderItems").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// promoteMaxAttempts bounds the in-place retry of the promotion sweep.
// The next tick retries anyway, so a short burst is all that is useful.
const promoteMaxAttempts = 3

// PromotePendingReminders transitions every pending reminder whose fire
// time has passed to 'active' and reports how many rows changed. Called
// only by the dispatch worker; client paths never write 'active'.
//
// The sweep contends with reminder completions, so errors the classifier
// deems retryable (deadlocks, serialization failures, dropped
// connections) are retried up to promoteMaxAttempts times before the
// tick is given up.
func (r *reminderRepository) PromotePendingReminders(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= promoteMaxAttempts; attempt++ {
		result, err := r.db.ExecContext(ctx, promotePendingReminders, now)
		if err == nil {
			affected, err := result.RowsAffected()
			if err != nil {
				return 0, fmt.Errorf("unexpected DB error: %w", err)
			}
			return affected, nil
		}

		lastErr = err
		if r.db.errorClassificator.Classify(err) != Retryable {
			log.Err(err).Str("func", "*reminderRepository.PromotePendingReminders").Msg("error executing statement")
			return 0, fmt.Errorf("unexpected DB error: %w", err)
		}
		log.Warn().Err(err).
			Int("attempt", attempt).
			Str("func", "*reminderRepository.PromotePendingReminders").
			Msg("retryable error during promotion sweep")
	}

	return 0, fmt.Errorf("unexpected DB error: %w", lastErr)
}
