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

// ─────────────────────────────── dashboard ───────────────────────────────

func TestDashboardLoad_SortsNewestFirst(t *testing.T) {
	now := time.Now()
	backend := &mockBackend{
		listUncategorizedFn: func(ctx context.Context) ([]models.SavedItem, error) {
			return []models.SavedItem{
				{ID: "old", Title: "Old", Status: models.StatusActive, CreatedAt: now.Add(-time.Hour)},
				{ID: "new", Title: "New", Status: models.StatusActive, CreatedAt: now},
			}, nil
		},
	}
	view := NewDashboardView(backend, logger.Nop())

	items, warning := view.Load(context.Background(), "", SortNewest)

	require.Nil(t, warning)
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, "old", items[1].ID)
}

func TestDashboardLoad_SortOrders(t *testing.T) {
	now := time.Now()
	fetch := func(ctx context.Context) ([]models.SavedItem, error) {
		return []models.SavedItem{
			{ID: "b", Title: "banana", Status: models.StatusActive, CreatedAt: now.Add(-time.Hour)},
			{ID: "a", Title: "Apple", Status: models.StatusActive, CreatedAt: now},
		}, nil
	}

	tests := []struct {
		name    string
		order   SortOrder
		firstID string
	}{
		{name: "oldest first", order: SortOldest, firstID: "b"},
		{name: "title is case-insensitive", order: SortTitle, firstID: "a"},
		{name: "unknown order falls back to newest", order: SortOrder("bogus"), firstID: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewDashboardView(&mockBackend{listUncategorizedFn: fetch}, logger.Nop())

			items, warning := view.Load(context.Background(), "", tt.order)

			require.Nil(t, warning)
			require.Len(t, items, 2)
			assert.Equal(t, tt.firstID, items[0].ID)
		})
	}
}

func TestDashboardLoad_FiltersInvisibleItems(t *testing.T) {
	deletedAt := time.Now()
	backend := &mockBackend{
		listUncategorizedFn: func(ctx context.Context) ([]models.SavedItem, error) {
			return []models.SavedItem{
				{ID: "visible", Status: models.StatusActive},
				{ID: "archived", Status: models.StatusArchived},
				{ID: "deleted", Status: models.StatusActive, DeletedAt: &deletedAt},
			}, nil
		},
	}
	view := NewDashboardView(backend, logger.Nop())

	items, warning := view.Load(context.Background(), "", SortNewest)

	require.Nil(t, warning)
	require.Len(t, items, 1, "archived and soft-deleted rows never reach the screen")
	assert.Equal(t, "visible", items[0].ID)
}

func TestDashboardLoad_SearchQuery(t *testing.T) {
	backend := &mockBackend{
		listUncategorizedFn: func(ctx context.Context) ([]models.SavedItem, error) {
			return []models.SavedItem{
				{ID: "by-title", Title: "Sourdough Basics", URL: "https://a.example", Status: models.StatusActive},
				{ID: "by-url", Title: "Untitled", URL: "https://bread.example/guide", Status: models.StatusActive},
				{ID: "by-notes", Title: "Video", URL: "https://b.example", Notes: "bread recipe to try", Status: models.StatusActive},
				{ID: "no-match", Title: "Woodworking", URL: "https://c.example", Status: models.StatusActive},
			}, nil
		},
	}
	view := NewDashboardView(backend, logger.Nop())

	items, warning := view.Load(context.Background(), "  BREAD ", SortTitle)

	require.Nil(t, warning)
	require.Len(t, items, 2, "query matches url and notes case-insensitively after trimming")
	assert.Equal(t, "by-url", items[0].ID)
	assert.Equal(t, "by-notes", items[1].ID)
}

func TestDashboardLoad_FetchFailureDegrades(t *testing.T) {
	backend := &mockBackend{
		listUncategorizedFn: func(ctx context.Context) ([]models.SavedItem, error) {
			return nil, errors.New("backend down")
		},
	}
	view := NewDashboardView(backend, logger.Nop())

	items, warning := view.Load(context.Background(), "", SortNewest)

	require.NotNil(t, warning)
	assert.Equal(t, "your saved items could not be loaded", warning.Message)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

// ──────────────────────────── collection detail ────────────────────────────

func TestCollectionDetailLoad_Success(t *testing.T) {
	backend := &mockBackend{
		listCollectionItemsFn: func(ctx context.Context, collectionID string) ([]models.SavedItem, error) {
			assert.Equal(t, "c-1", collectionID)
			return []models.SavedItem{{ID: "item-1", Status: models.StatusActive}}, nil
		},
	}
	view := NewCollectionDetailView(backend, logger.Nop())

	items, warning := view.Load(context.Background(), "c-1")

	require.Nil(t, warning)
	require.Len(t, items, 1)
	assert.Equal(t, "item-1", items[0].ID)
}

func TestCollectionDetailLoad_FetchFailureDegrades(t *testing.T) {
	backend := &mockBackend{
		listCollectionItemsFn: func(ctx context.Context, collectionID string) ([]models.SavedItem, error) {
			return nil, errors.New("backend down")
		},
	}
	view := NewCollectionDetailView(backend, logger.Nop())

	items, warning := view.Load(context.Background(), "c-1")

	require.NotNil(t, warning)
	assert.Equal(t, "this collection could not be loaded", warning.Message)
	assert.Empty(t, items)
}

// ─────────────────────────────── reminders ───────────────────────────────

func TestRemindersLoad_OrdersByFireTime(t *testing.T) {
	now := time.Now().UTC()
	backend := &mockBackend{
		listReminderItemsFn: func(ctx context.Context) ([]models.SavedItem, error) {
			return []models.SavedItem{
				{
					ID: "later", Status: models.StatusActive,
					Reminder: &models.Reminder{Status: models.ReminderPending, FireAtUTC: now.Add(2 * time.Hour)},
				},
				{
					ID: "soon", Status: models.StatusActive,
					Reminder: &models.Reminder{Status: models.ReminderActive, FireAtUTC: now.Add(time.Hour)},
				},
			}, nil
		},
	}
	view := NewRemindersView(backend, logger.Nop())

	items, warning := view.Load(context.Background())

	require.Nil(t, warning)
	require.Len(t, items, 2)
	assert.Equal(t, "soon", items[0].ID, "closest fire time first")
	assert.Equal(t, "later", items[1].ID)
}

func TestRemindersLoad_ExcludesDeadEntries(t *testing.T) {
	now := time.Now().UTC()
	deletedAt := now
	backend := &mockBackend{
		listReminderItemsFn: func(ctx context.Context) ([]models.SavedItem, error) {
			return []models.SavedItem{
				{
					ID: "live", Status: models.StatusActive,
					Reminder: &models.Reminder{Status: models.ReminderPending, FireAtUTC: now},
				},
				{
					ID: "completed", Status: models.StatusActive,
					Reminder: &models.Reminder{Status: models.ReminderCompleted, FireAtUTC: now},
				},
				{ID: "no-reminder", Status: models.StatusActive},
				{
					ID: "archived", Status: models.StatusArchived,
					Reminder: &models.Reminder{Status: models.ReminderPending, FireAtUTC: now},
				},
				{
					ID: "deleted", Status: models.StatusActive, DeletedAt: &deletedAt,
					Reminder: &models.Reminder{Status: models.ReminderActive, FireAtUTC: now},
				},
			}, nil
		},
	}
	view := NewRemindersView(backend, logger.Nop())

	items, warning := view.Load(context.Background())

	require.Nil(t, warning)
	require.Len(t, items, 1)
	assert.Equal(t, "live", items[0].ID)
}

func TestRemindersLoad_FetchFailureDegrades(t *testing.T) {
	backend := &mockBackend{
		listReminderItemsFn: func(ctx context.Context) ([]models.SavedItem, error) {
			return nil, errors.New("backend down")
		},
	}
	view := NewRemindersView(backend, logger.Nop())

	items, warning := view.Load(context.Background())

	require.NotNil(t, warning)
	assert.Equal(t, "your reminders could not be loaded", warning.Message)
	assert.Empty(t, items)
}
