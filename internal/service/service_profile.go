package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/store"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

// usernameRe is the allowed public-handle shape: lowercase letters,
// digits and underscores, 3-20 characters.
var usernameRe = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

// profileService is the concrete implementation of ProfileService. It
// owns onboarding: username validation, the onboarding-done flag gating
// the dashboard, and seeding one collection per picked interest.
type profileService struct {
	profileRepository    store.ProfileRepository
	collectionRepository store.CollectionRepository
	ids                  *utils.UUIDGenerator
	logger               *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, collections store.CollectionRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository:    profiles,
		collectionRepository: collections,
		ids:                  utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// GetProfile returns the user's profile. A user who never started
// onboarding has no row yet; that surfaces as store.ErrNotFound and the
// handler layer translates it into an incomplete-profile response.
func (s *profileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return s.profileRepository.GetProfile(ctx, userID)
}

// CompleteProfile validates and stores the onboarding submission, then
// seeds an interest collection for each picked topic.
//
// Returns the stored profile or:
//   - ErrInvalidUsername if the username does not match the allowed shape.
//   - store.ErrUsernameTaken if another user holds the username.
//
// Interest collection creation is best effort: a failure is logged and
// the remaining interests are still processed. Onboarding must not fail
// because one seed collection could not be created.
func (s *profileService) CompleteProfile(ctx context.Context, userID string, patch models.ProfilePatch) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if !usernameRe.MatchString(patch.Username) {
		log.Error().Str("username", patch.Username).Msg("complete profile: invalid username")
		return models.Profile{}, ErrInvalidUsername
	}

	profile := models.Profile{
		UserID:         userID,
		Username:       patch.Username,
		DisplayName:    patch.DisplayName,
		Interests:      patch.Interests,
		OnboardingDone: patch.OnboardingDone,
	}

	stored, err := s.profileRepository.UpsertProfile(ctx, profile)
	if err != nil {
		log.Err(err).Str("username", patch.Username).Msg("profile upsert failed")
		return models.Profile{}, fmt.Errorf("profile upsert failed: %w", err)
	}

	s.CreateInterestCollections(ctx, userID, patch.Interests)

	return stored, nil
}

// IsUsernameAvailable reports whether the username can still be claimed.
// The handle is lowercased before the lookup; malformed handles read as
// unavailable rather than erroring, so the check stays a cheap yes/no.
func (s *profileService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !usernameRe.MatchString(username) {
		return false, nil
	}

	exists, err := s.profileRepository.UsernameExists(ctx, username)
	if err != nil {
		return false, err
	}

	return !exists, nil
}

// CreateInterestCollections seeds one collection per interest and
// reports how many were created. Individual failures are logged and
// skipped; seeding is never a reason to fail the caller.
func (s *profileService) CreateInterestCollections(ctx context.Context, userID string, interests []string) (int, error) {
	log := logger.FromContext(ctx)

	created := 0
	for _, interest := range interests {
		if interest == "" {
			continue
		}
		collection := models.Collection{
			ID:      s.ids.Generate(),
			Name:    interest,
			OwnerID: userID,
		}
		if _, err := s.collectionRepository.CreateCollection(ctx, collection); err != nil {
			log.Warn().Err(err).Str("interest", interest).Msg("interest collection not created")
			continue
		}
		created++
	}

	return created, nil
}
