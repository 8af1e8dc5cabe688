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

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. Interests are stored as a JSONB array.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile retrieves the profile row for the given user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNotFound] (the user has not started onboarding).
func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getProfile, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error: row is nil")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrNotFound
		}
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error: scanning error")
		return models.Profile{}, err
	}

	return profile, nil
}

// UpsertProfile inserts or replaces the profile row for profile.UserID and
// returns the stored representation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on username → [ErrUsernameTaken].
func (r *profileRepository) UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	interests, err := json.Marshal(profile.Interests)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, upsertProfile,
		profile.UserID, profile.Username, profile.DisplayName, interests, profile.OnboardingDone)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Profile{}, ErrUsernameTaken
		default:
			return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	stored, err := scanProfile(row)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("error: scanning error")
		return models.Profile{}, err
	}

	return stored, nil
}

// UsernameExists reports whether any profile already holds the given
// username. Backs the is_username_available RPC.
func (r *profileRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, usernameExists, username)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*profileRepository.UsernameExists").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}

func scanProfile(row *sql.Row) (models.Profile, error) {
	var profile models.Profile
	var interests []byte

	err := row.Scan(&profile.UserID, &profile.Username, &profile.DisplayName, &interests, &profile.OnboardingDone, &profile.UpdatedAt)
	if err != nil {
		return models.Profile{}, err
	}

	if len(interests) > 0 {
		if err := json.Unmarshal(interests, &profile.Interests); err != nil {
			return models.Profile{}, fmt.Errorf("%w: interests: %w", ErrScanningRow, err)
		}
	}

	return profile, nil
}
