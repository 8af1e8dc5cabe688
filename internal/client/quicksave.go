package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/savedit/savedit/internal/adapter"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/urlx"
	"github.com/savedit/savedit/models"
)

// metadataDebounce matches the typing debounce of the original intake
// form.
const metadataDebounce = 400 * time.Millisecond

// Outcome is the user-visible result of a quick-save.
type Outcome string

const (
	// OutcomeSaved: item inserted, and attached if a collection was
	// selected.
	OutcomeSaved Outcome = "saved"

	// OutcomeAlreadySaved: the normalized URL is already saved for this
	// user. Not an error.
	OutcomeAlreadySaved Outcome = "already_saved"

	// OutcomeSavedNotAttached: the item was inserted but the selected
	// collection attach failed. The save is never rolled back.
	OutcomeSavedNotAttached Outcome = "saved_not_attached"
)

// QuickSaveIntake composes the quick-save action: a debounced
// best-effort metadata prefetch while the user types, then an item
// insert plus an optional collection attach on submit.
type QuickSaveIntake struct {
	backend adapter.Backend
	logger  *logger.Logger

	debounced func(func())

	mu          sync.Mutex
	prefetchURL string
	prefetched  models.PageMetadata
}

func NewQuickSaveIntake(backend adapter.Backend, logger *logger.Logger) *QuickSaveIntake {
	return &QuickSaveIntake{
		backend:   backend,
		logger:    logger,
		debounced: debounce.New(metadataDebounce),
	}
}

// OnURLChanged schedules a metadata prefetch for the typed URL,
// debounced so only the final value of a typing burst hits the network.
// The prefetch is best-effort and silent: a failure leaves the form
// fields empty and is only logged.
func (q *QuickSaveIntake) OnURLChanged(ctx context.Context, rawURL string) {
	q.debounced(func() {
		metadata, err := q.backend.FnFetchMetadata(ctx, rawURL)
		if err != nil {
			q.logger.Debug().Err(err).Str("url", rawURL).Msg("metadata prefetch failed")
			return
		}

		q.mu.Lock()
		q.prefetchURL = urlx.NormalizeURL(rawURL)
		q.prefetched = metadata
		q.mu.Unlock()
	})
}

// Prefetched returns the metadata fetched for the given URL, if the
// prefetch for it has completed.
func (q *QuickSaveIntake) Prefetched(rawURL string) (models.PageMetadata, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.prefetchURL == "" || q.prefetchURL != urlx.NormalizeURL(rawURL) {
		return models.PageMetadata{}, false
	}
	return q.prefetched, true
}

// SaveResult is the composed outcome of a quick-save submit.
type SaveResult struct {
	Item    models.SavedItem
	Outcome Outcome

	// Attach records the optional collection attach. Skipped when no
	// collection was selected.
	Attach models.BestEffort
}

// Save inserts the item and optionally attaches it to collectionID.
//
// The two writes are deliberately not atomic: an attach failure yields
// OutcomeSavedNotAttached with the item kept, never a rollback. A
// duplicate URL yields OutcomeAlreadySaved, not an error.
func (q *QuickSaveIntake) Save(ctx context.Context, req models.SaveItemRequest, collectionID string) (SaveResult, error) {
	if metadata, ok := q.Prefetched(req.URL); ok {
		req = mergeMetadata(req, metadata)
	}

	item, err := q.backend.SaveItem(ctx, req)
	if err != nil {
		if errors.Is(err, adapter.ErrAlreadySaved) {
			return SaveResult{Outcome: OutcomeAlreadySaved, Attach: models.BestEffortSkipped()}, nil
		}
		return SaveResult{}, err
	}

	if collectionID == "" {
		return SaveResult{Item: item, Outcome: OutcomeSaved, Attach: models.BestEffortSkipped()}, nil
	}

	if err := q.backend.AttachItem(ctx, collectionID, item.ID); err != nil {
		q.logger.Warn().Err(err).
			Str("collectionID", collectionID).
			Str("itemID", item.ID).
			Msg("quick-save attach failed, item kept")
		return SaveResult{Item: item, Outcome: OutcomeSavedNotAttached, Attach: models.BestEffortFailed(err)}, nil
	}

	return SaveResult{Item: item, Outcome: OutcomeSaved, Attach: models.BestEffortOK()}, nil
}

// mergeMetadata fills empty request fields from prefetched metadata.
// User-typed values always win.
func mergeMetadata(req models.SaveItemRequest, metadata models.PageMetadata) models.SaveItemRequest {
	if req.Title == "" {
		req.Title = metadata.Title
	}
	if req.Description == "" {
		req.Description = metadata.Description
	}
	if req.Thumbnail == "" {
		req.Thumbnail = metadata.Image
	}
	return req
}
