package store

import (
	"context"
	"time"

	"github.com/savedit/savedit/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type SavedItemRepository interface {
	CreateItem(ctx context.Context, item models.SavedItem) (models.SavedItem, error)
	GetItem(ctx context.Context, userID, itemID string) (models.SavedItem, error)
	ListUncategorizedItems(ctx context.Context, userID string) ([]models.SavedItem, error)
	ListItemsByCollection(ctx context.Context, collectionID string) ([]models.SavedItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, patch models.ItemPatch) (models.SavedItem, error)
	SetItemStatus(ctx context.Context, userID, itemID string, status models.ItemStatus) error
	SoftDeleteItem(ctx context.Context, userID, itemID string) error
	HardDeleteItem(ctx context.Context, userID, itemID string) error
}

type CollectionRepository interface {
	CreateCollection(ctx context.Context, collection models.Collection) (models.Collection, error)
	GetCollection(ctx context.Context, userID, collectionID string) (models.Collection, error)
	ListAccessibleCollections(ctx context.Context, userID string) ([]models.Collection, error)
	DeleteCollection(ctx context.Context, userID, collectionID string) error
	AddMember(ctx context.Context, collectionID, userID, role string) error
}

type MembershipRepository interface {
	AttachItem(ctx context.Context, collectionID, itemID string) error
	DetachItem(ctx context.Context, collectionID, itemID string) error
	ListItemCollectionIDs(ctx context.Context, itemID string) ([]string, error)
}

type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	CompleteReminder(ctx context.Context, userID, reminderID string) error
	ListLiveReminderItems(ctx context.Context, userID string) ([]models.SavedItem, error)
	PromotePendingReminders(ctx context.Context, now time.Time) (int64, error)
}
