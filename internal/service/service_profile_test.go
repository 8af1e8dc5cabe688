package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/store"
	"github.com/savedit/savedit/models"
)

func newTestProfileService(profiles *mockProfileRepo, collections *mockCollectionRepo) ProfileService {
	if profiles == nil {
		profiles = &mockProfileRepo{}
	}
	if collections == nil {
		collections = &mockCollectionRepo{}
	}
	return NewProfileService(profiles, collections, logger.NewLogger("test"))
}

func TestCompleteProfile_Success(t *testing.T) {
	var upserted models.Profile
	profiles := &mockProfileRepo{
		upsertProfileFunc: func(ctx context.Context, profile models.Profile) (models.Profile, error) {
			upserted = profile
			return profile, nil
		},
	}
	svc := newTestProfileService(profiles, nil)

	result, err := svc.CompleteProfile(context.Background(), "user-1", models.ProfilePatch{
		Username:       "jane_doe42",
		DisplayName:    "Jane Doe",
		OnboardingDone: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", upserted.UserID)
	assert.Equal(t, "jane_doe42", result.Username)
	assert.Equal(t, "Jane Doe", upserted.DisplayName, "display name must reach the stored profile")
	assert.True(t, upserted.OnboardingDone)
}

func TestCompleteProfile_UsernameValidation(t *testing.T) {
	svc := newTestProfileService(nil, nil)

	tests := []struct {
		name     string
		username string
	}{
		{"too short", "ab"},
		{"too long", "abcdefghijklmnopqrstu"},
		{"uppercase", "JaneDoe"},
		{"spaces", "jane doe"},
		{"punctuation", "jane.doe"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CompleteProfile(context.Background(), "user-1", models.ProfilePatch{Username: tt.username})
			assert.ErrorIs(t, err, ErrInvalidUsername)
		})
	}
}

func TestCompleteProfile_UsernameTaken(t *testing.T) {
	profiles := &mockProfileRepo{
		upsertProfileFunc: func(ctx context.Context, profile models.Profile) (models.Profile, error) {
			return models.Profile{}, store.ErrUsernameTaken
		},
	}
	svc := newTestProfileService(profiles, nil)

	_, err := svc.CompleteProfile(context.Background(), "user-1", models.ProfilePatch{Username: "jane_doe"})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestCompleteProfile_SeedsInterestCollections(t *testing.T) {
	var createdNames []string
	collections := &mockCollectionRepo{
		createCollectionFunc: func(ctx context.Context, collection models.Collection) (models.Collection, error) {
			createdNames = append(createdNames, collection.Name)
			return collection, nil
		},
	}
	svc := newTestProfileService(nil, collections)

	_, err := svc.CompleteProfile(context.Background(), "user-1", models.ProfilePatch{
		Username:  "jane_doe",
		Interests: []string{"cooking", "", "travel"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"cooking", "travel"}, createdNames, "empty interests are skipped")
}

func TestCompleteProfile_InterestCollectionFailureIsTolerated(t *testing.T) {
	collections := &mockCollectionRepo{
		createCollectionFunc: func(ctx context.Context, collection models.Collection) (models.Collection, error) {
			return models.Collection{}, assert.AnError
		},
	}
	svc := newTestProfileService(nil, collections)

	_, err := svc.CompleteProfile(context.Background(), "user-1", models.ProfilePatch{
		Username:  "jane_doe",
		Interests: []string{"cooking"},
	})
	assert.NoError(t, err, "onboarding must not fail because a seed collection failed")
}

func TestIsUsernameAvailable(t *testing.T) {
	profiles := &mockProfileRepo{
		usernameExistsFunc: func(ctx context.Context, username string) (bool, error) {
			return username == "taken_name", nil
		},
	}
	svc := newTestProfileService(profiles, nil)

	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"free handle", "free_name", true},
		{"taken handle", "taken_name", false},
		{"uppercase input is lowered", "TAKEN_NAME", false},
		{"malformed handle reads unavailable", "no spaces!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, err := svc.IsUsernameAvailable(context.Background(), tt.username)
			require.NoError(t, err)
			assert.Equal(t, tt.want, available)
		})
	}
}

func TestCreateInterestCollections_CountsOnlySuccesses(t *testing.T) {
	collections := &mockCollectionRepo{
		createCollectionFunc: func(ctx context.Context, collection models.Collection) (models.Collection, error) {
			if collection.Name == "broken" {
				return models.Collection{}, assert.AnError
			}
			return collection, nil
		},
	}
	svc := newTestProfileService(nil, collections)

	created, err := svc.CreateInterestCollections(context.Background(), "user-1", []string{"cooking", "broken", "travel"})
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestGetProfile_NotOnboarded(t *testing.T) {
	profiles := &mockProfileRepo{
		getProfileFunc: func(ctx context.Context, userID string) (models.Profile, error) {
			return models.Profile{}, store.ErrNotFound
		},
	}
	svc := newTestProfileService(profiles, nil)

	_, err := svc.GetProfile(context.Background(), "user-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
