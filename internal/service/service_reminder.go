package service

import (
	"context"
	"fmt"
	"time"

	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/store"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

// reminderService is the concrete implementation of ReminderService.
//
// It only ever writes the 'pending' and 'completed' statuses. The
// 'active' status is owned by the dispatch worker; this service merely
// tolerates it when listing.
type reminderService struct {
	reminderRepository store.ReminderRepository
	ids                *utils.UUIDGenerator
	logger             *logger.Logger
}

func NewReminderService(reminders store.ReminderRepository, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminders,
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// CreateReminder schedules a new pending reminder for an item.
//
// Validation:
//   - SavedItemID and FireAt are required → ErrInvalidDataProvided.
//   - FireAt must lie in the future → ErrInvalidDataProvided.
//   - Timezone must be a known IANA zone → ErrInvalidTimezone. An empty
//     timezone defaults to UTC.
//
// A second live reminder on the same item surfaces as
// store.ErrReminderExists.
func (s *reminderService) CreateReminder(ctx context.Context, userID string, req models.CreateReminderRequest) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	if req.SavedItemID == "" || req.FireAt.IsZero() {
		log.Error().Msg("create reminder: missing item or fire time")
		return models.Reminder{}, ErrInvalidDataProvided
	}
	if !req.FireAt.After(time.Now()) {
		log.Error().Time("fireAt", req.FireAt).Msg("create reminder: fire time in the past")
		return models.Reminder{}, ErrInvalidDataProvided
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		log.Error().Str("timezone", timezone).Msg("create reminder: unknown timezone")
		return models.Reminder{}, ErrInvalidTimezone
	}

	reminder := models.Reminder{
		ID:          s.ids.Generate(),
		UserID:      userID,
		SavedItemID: req.SavedItemID,
		FireAtUTC:   req.FireAt.UTC(),
		Timezone:    timezone,
	}

	created, err := s.reminderRepository.CreateReminder(ctx, reminder)
	if err != nil {
		log.Err(err).Str("savedItemID", req.SavedItemID).Msg("reminder creation failed")
		return models.Reminder{}, fmt.Errorf("reminder creation failed: %w", err)
	}

	return created, nil
}

// CompleteReminder marks a reminder done. The transition is one-way and
// idempotent; completing an already completed reminder succeeds.
func (s *reminderService) CompleteReminder(ctx context.Context, userID, reminderID string) error {
	if reminderID == "" {
		return ErrInvalidDataProvided
	}

	return s.reminderRepository.CompleteReminder(ctx, userID, reminderID)
}

// ListLiveReminderItems returns the reminders view: items joined with
// their pending or active reminder, soonest first. Archived and deleted
// items are filtered out by the storage query.
func (s *reminderService) ListLiveReminderItems(ctx context.Context, userID string) ([]models.SavedItem, error) {
	return s.reminderRepository.ListLiveReminderItems(ctx, userID)
}
