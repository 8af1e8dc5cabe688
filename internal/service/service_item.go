package service

import (
	"context"
	"fmt"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/store"
	"github.com/savedit/savedit/internal/urlx"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

// itemService is the concrete implementation of ItemService. It owns the
// saved-item lifecycle: insertion with per-user URL deduplication, the
// view-shaped listings, partial edits, archiving and both deletion modes.
type itemService struct {
	itemRepository       store.SavedItemRepository
	collectionRepository store.CollectionRepository
	metadata             MetadataService
	ids                  *utils.UUIDGenerator
	logger               *logger.Logger
}

func NewItemService(items store.SavedItemRepository, collections store.CollectionRepository, metadata MetadataService, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository:       items,
		collectionRepository: collections,
		metadata:             metadata,
		ids:                  utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// SaveItem inserts a new item from an explicit save request. The URL is
// normalized for deduplication; whatever metadata the caller prefetched
// rides along unchanged.
//
// Returns the stored item or:
//   - ErrInvalidDataProvided if the URL is empty.
//   - store.ErrDuplicateSavedURL if the user already saved this URL.
func (s *itemService) SaveItem(ctx context.Context, userID string, req models.SaveItemRequest) (models.SavedItem, error) {
	log := logger.FromContext(ctx)

	if req.URL == "" {
		log.Error().Msg("save item: empty url")
		return models.SavedItem{}, ErrInvalidDataProvided
	}

	item := models.SavedItem{
		ID:            s.ids.Generate(),
		UserID:        userID,
		URL:           req.URL,
		NormalizedURL: urlx.NormalizeURL(req.URL),
		Title:         req.Title,
		Description:   req.Description,
		ThumbnailURL:  req.Thumbnail,
		Notes:         req.Notes,
		Tags:          req.Tags,
		Status:        models.StatusQueued,
	}
	if item.Title != "" || item.Description != "" {
		// caller already enriched the item, no async pass needed
		item.Status = models.StatusActive
	}

	saved, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("url", req.URL).Msg("saving item failed")
		return models.SavedItem{}, fmt.Errorf("saving item failed: %w", err)
	}

	return saved, nil
}

// QuickSave is the one-shot save function behind the extension and the
// share sheet: it scrapes page metadata inline (best effort, failures are
// logged and ignored) and inserts the item in a single call.
func (s *itemService) QuickSave(ctx context.Context, userID string, req models.QuickSaveRequest) (models.SavedItem, error) {
	log := logger.FromContext(ctx)

	if req.URL == "" {
		log.Error().Msg("quick save: empty url")
		return models.SavedItem{}, ErrInvalidDataProvided
	}

	saveReq := models.SaveItemRequest{URL: req.URL}

	meta, err := s.metadata.FetchMetadata(ctx, req.URL)
	if err != nil {
		// metadata is decoration, the save must go through regardless
		log.Warn().Err(err).Str("url", req.URL).Str("source", req.Source).Msg("quick save: metadata fetch failed")
	} else {
		saveReq.Title = meta.Title
		saveReq.Description = meta.Description
		saveReq.Thumbnail = meta.Image
	}

	return s.SaveItem(ctx, userID, saveReq)
}

func (s *itemService) GetItem(ctx context.Context, userID, itemID string) (models.SavedItem, error) {
	return s.itemRepository.GetItem(ctx, userID, itemID)
}

// ListUncategorized returns the dashboard feed: visible items that belong
// to no collection, newest first.
func (s *itemService) ListUncategorized(ctx context.Context, userID string) ([]models.SavedItem, error) {
	return s.itemRepository.ListUncategorizedItems(ctx, userID)
}

// ListByCollection returns the visible members of a collection the user
// can access. Accessibility is checked first so a foreign collection ID
// reads as missing, not as an empty collection.
func (s *itemService) ListByCollection(ctx context.Context, userID, collectionID string) ([]models.SavedItem, error) {
	log := logger.FromContext(ctx)

	if _, err := s.collectionRepository.GetCollection(ctx, userID, collectionID); err != nil {
		log.Err(err).Str("collectionID", collectionID).Msg("collection access check failed")
		return nil, err
	}

	return s.itemRepository.ListItemsByCollection(ctx, collectionID)
}

// UpdateItem applies a partial edit of title, notes or tags.
//
// Returns ErrInvalidDataProvided for an empty patch; permission failures
// surface as store.ErrPermissionDenied.
func (s *itemService) UpdateItem(ctx context.Context, userID, itemID string, patch models.ItemPatch) (models.SavedItem, error) {
	if patch.Empty() {
		return models.SavedItem{}, ErrInvalidDataProvided
	}

	return s.itemRepository.UpdateItem(ctx, userID, itemID, patch)
}

func (s *itemService) ArchiveItem(ctx context.Context, userID, itemID string) error {
	return s.itemRepository.SetItemStatus(ctx, userID, itemID, models.StatusArchived)
}

func (s *itemService) RestoreItem(ctx context.Context, userID, itemID string) error {
	return s.itemRepository.SetItemStatus(ctx, userID, itemID, models.StatusActive)
}

// DeleteItem soft-deletes: the row is hidden from every view but kept
// until purged.
func (s *itemService) DeleteItem(ctx context.Context, userID, itemID string) error {
	return s.itemRepository.SoftDeleteItem(ctx, userID, itemID)
}

// PurgeItem removes the row permanently, cascading to memberships and
// reminders.
func (s *itemService) PurgeItem(ctx context.Context, userID, itemID string) error {
	return s.itemRepository.HardDeleteItem(ctx, userID, itemID)
}
