package client

import (
	"context"
	"sort"
	"strings"

	"github.com/savedit/savedit/internal/adapter"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/models"
)

// SortOrder selects the client-side sort key of the dashboard view.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortTitle  SortOrder = "title"
)

// DashboardView synchronizes the home view: the user's visible items
// that belong to no collection. Search and sort run client-side over the
// fetched page.
type DashboardView struct {
	backend adapter.Backend
	logger  *logger.Logger
}

func NewDashboardView(backend adapter.Backend, logger *logger.Logger) *DashboardView {
	return &DashboardView{backend: backend, logger: logger}
}

// Load fetches the uncategorized items and applies query and sort.
// On fetch failure the view degrades to an empty list plus a warning.
func (v *DashboardView) Load(ctx context.Context, query string, order SortOrder) ([]models.SavedItem, *Warning) {
	items, err := v.backend.ListUncategorizedItems(ctx)
	if err != nil {
		v.logger.Err(err).Msg("dashboard fetch failed")
		return []models.SavedItem{}, newWarning("your saved items could not be loaded", err)
	}

	// The server already filters archived and soft-deleted rows; keep
	// the filter here too so a stale row can never reach the screen.
	visible := items[:0]
	for _, item := range items {
		item := item
		if item.Visible() {
			visible = append(visible, item)
		}
	}

	filtered := filterByQuery(visible, query)
	sortItems(filtered, order)

	return filtered, nil
}

// CollectionDetailView synchronizes the item list of one collection via
// the join relation. The join table is the only membership
// representation; a failed fetch degrades to an empty list plus a
// warning rather than trying an alternate schema.
type CollectionDetailView struct {
	backend adapter.Backend
	logger  *logger.Logger
}

func NewCollectionDetailView(backend adapter.Backend, logger *logger.Logger) *CollectionDetailView {
	return &CollectionDetailView{backend: backend, logger: logger}
}

// Load fetches the collection's visible items, newest first.
func (v *CollectionDetailView) Load(ctx context.Context, collectionID string) ([]models.SavedItem, *Warning) {
	items, err := v.backend.ListCollectionItems(ctx, collectionID)
	if err != nil {
		v.logger.Err(err).Str("collectionID", collectionID).Msg("collection detail fetch failed")
		return []models.SavedItem{}, newWarning("this collection could not be loaded", err)
	}

	return items, nil
}

// RemindersView synchronizes the reminders list: items with a live
// (pending or active) reminder, ordered by fire time ascending.
type RemindersView struct {
	backend adapter.Backend
	logger  *logger.Logger
}

func NewRemindersView(backend adapter.Backend, logger *logger.Logger) *RemindersView {
	return &RemindersView{backend: backend, logger: logger}
}

// Load fetches the reminder items. Archived and soft-deleted items are
// excluded even when their reminder is still live, and so are items
// whose reminder is missing or completed, regardless of what the server
// returned.
func (v *RemindersView) Load(ctx context.Context) ([]models.SavedItem, *Warning) {
	items, err := v.backend.ListReminderItems(ctx)
	if err != nil {
		v.logger.Err(err).Msg("reminders fetch failed")
		return []models.SavedItem{}, newWarning("your reminders could not be loaded", err)
	}

	result := make([]models.SavedItem, 0, len(items))
	for _, item := range items {
		if !item.Visible() {
			continue
		}
		if item.Reminder == nil || !item.Reminder.Live() {
			continue
		}
		result = append(result, item)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Reminder.FireAtUTC.Before(result[j].Reminder.FireAtUTC)
	})

	return result, nil
}

// filterByQuery keeps items whose title, URL or notes contain the query,
// case-insensitively. An empty query keeps everything.
func filterByQuery(items []models.SavedItem, query string) []models.SavedItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	result := make([]models.SavedItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), query) ||
			strings.Contains(strings.ToLower(item.URL), query) ||
			strings.Contains(strings.ToLower(item.Notes), query) {
			result = append(result, item)
		}
	}
	return result
}

func sortItems(items []models.SavedItem, order SortOrder) {
	switch order {
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	case SortTitle:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
	default: // SortNewest
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}
