package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/models"
)

func TestListAccessibleCollections_RPCSuccess(t *testing.T) {
	now := time.Now()
	backend := &mockBackend{
		listAccessibleFn: func(ctx context.Context) ([]models.Collection, error) {
			return []models.Collection{
				{ID: "c-old", Name: "Old", UpdatedAt: now.Add(-time.Hour)},
				{ID: "c-new", Name: "New", UpdatedAt: now, Role: models.RoleEditor, Shared: true},
			}, nil
		},
	}
	resolver := NewMembershipResolver(backend, logger.Nop())

	result := resolver.ListAccessibleCollections(context.Background(), testUserID)

	require.Nil(t, result.Warning)
	assert.False(t, result.Degraded)
	require.Len(t, result.Collections, 2)
	assert.Equal(t, "c-new", result.Collections[0].ID, "most recently updated first")
	assert.Equal(t, "c-old", result.Collections[1].ID)
	assert.True(t, result.Collections[0].Shared, "rpc annotations are preserved")
}

func TestListAccessibleCollections_FallbackToOwned(t *testing.T) {
	now := time.Now()
	backend := &mockBackend{
		listAccessibleFn: func(ctx context.Context) ([]models.Collection, error) {
			return nil, errors.New("rpc unavailable")
		},
		listCollectionsFn: func(ctx context.Context) ([]models.Collection, error) {
			return []models.Collection{
				{ID: "c-mine", OwnerID: testUserID, UpdatedAt: now, Shared: true},
				{ID: "c-theirs", OwnerID: "someone-else", UpdatedAt: now},
			}, nil
		},
	}
	resolver := NewMembershipResolver(backend, logger.Nop())

	result := resolver.ListAccessibleCollections(context.Background(), testUserID)

	assert.True(t, result.Degraded)
	require.NotNil(t, result.Warning)
	assert.Equal(t, "shared collections are temporarily unavailable", result.Warning.Message)

	require.Len(t, result.Collections, 1, "collections owned by other users are dropped")
	got := result.Collections[0]
	assert.Equal(t, "c-mine", got.ID)
	assert.Equal(t, models.RoleOwner, got.Role)
	assert.False(t, got.Shared, "nothing is known to be shared without the rpc")
}

func TestListAccessibleCollections_BothPathsFail(t *testing.T) {
	backend := &mockBackend{
		listAccessibleFn: func(ctx context.Context) ([]models.Collection, error) {
			return nil, errors.New("rpc unavailable")
		},
		listCollectionsFn: func(ctx context.Context) ([]models.Collection, error) {
			return nil, errors.New("listing unavailable")
		},
	}
	resolver := NewMembershipResolver(backend, logger.Nop())

	result := resolver.ListAccessibleCollections(context.Background(), testUserID)

	assert.True(t, result.Degraded)
	require.NotNil(t, result.Warning)
	assert.Equal(t, "collections are temporarily unavailable", result.Warning.Message)
	assert.NotNil(t, result.Collections, "degraded result is an empty list, not nil")
	assert.Empty(t, result.Collections)
}

func TestCollectionsContainingItem(t *testing.T) {
	backend := &mockBackend{
		listItemCollectionsFn: func(ctx context.Context, itemID string) ([]string, error) {
			assert.Equal(t, "item-1", itemID)
			return []string{"c-1", "c-2"}, nil
		},
	}
	resolver := NewMembershipResolver(backend, logger.Nop())

	set, err := resolver.CollectionsContainingItem(context.Background(), "item-1")

	require.NoError(t, err)
	assert.Len(t, set, 2)
	_, ok := set["c-1"]
	assert.True(t, ok)
	_, ok = set["c-3"]
	assert.False(t, ok)
}

func TestCollectionsContainingItem_Error(t *testing.T) {
	wantErr := errors.New("boom")
	backend := &mockBackend{
		listItemCollectionsFn: func(ctx context.Context, itemID string) ([]string, error) {
			return nil, wantErr
		},
	}
	resolver := NewMembershipResolver(backend, logger.Nop())

	_, err := resolver.CollectionsContainingItem(context.Background(), "item-1")

	assert.ErrorIs(t, err, wantErr)
}

func TestToggleMembership(t *testing.T) {
	var attached, detached bool
	backend := &mockBackend{
		attachItemFn: func(ctx context.Context, collectionID, itemID string) error {
			attached = true
			return nil
		},
		detachItemFn: func(ctx context.Context, collectionID, itemID string) error {
			detached = true
			return nil
		},
	}
	resolver := NewMembershipResolver(backend, logger.Nop())

	require.NoError(t, resolver.ToggleMembership(context.Background(), "c-1", "item-1", false))
	assert.True(t, attached)
	assert.False(t, detached)

	attached = false
	require.NoError(t, resolver.ToggleMembership(context.Background(), "c-1", "item-1", true))
	assert.True(t, detached)
	assert.False(t, attached)
}
