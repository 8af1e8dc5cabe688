package service

import (
	"context"

	"github.com/savedit/savedit/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ItemService interface {
	SaveItem(ctx context.Context, userID string, req models.SaveItemRequest) (models.SavedItem, error)
	QuickSave(ctx context.Context, userID string, req models.QuickSaveRequest) (models.SavedItem, error)
	GetItem(ctx context.Context, userID, itemID string) (models.SavedItem, error)
	ListUncategorized(ctx context.Context, userID string) ([]models.SavedItem, error)
	ListByCollection(ctx context.Context, userID, collectionID string) ([]models.SavedItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, patch models.ItemPatch) (models.SavedItem, error)
	ArchiveItem(ctx context.Context, userID, itemID string) error
	RestoreItem(ctx context.Context, userID, itemID string) error
	DeleteItem(ctx context.Context, userID, itemID string) error
	PurgeItem(ctx context.Context, userID, itemID string) error
}

type CollectionService interface {
	CreateCollection(ctx context.Context, userID, name string) (models.Collection, error)
	GetCollection(ctx context.Context, userID, collectionID string) (models.Collection, error)
	ListAccessible(ctx context.Context, userID string) ([]models.Collection, error)
	ListContainingItem(ctx context.Context, userID, itemID string) ([]string, error)
	DeleteCollection(ctx context.Context, userID, collectionID string) error
	AttachItem(ctx context.Context, userID, collectionID, itemID string) error
	DetachItem(ctx context.Context, userID, collectionID, itemID string) error
	ShareCollection(ctx context.Context, userID, collectionID, memberID, role string) error
}

type ReminderService interface {
	CreateReminder(ctx context.Context, userID string, req models.CreateReminderRequest) (models.Reminder, error)
	CompleteReminder(ctx context.Context, userID, reminderID string) error
	ListLiveReminderItems(ctx context.Context, userID string) ([]models.SavedItem, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	CompleteProfile(ctx context.Context, userID string, patch models.ProfilePatch) (models.Profile, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
	CreateInterestCollections(ctx context.Context, userID string, interests []string) (int, error)
}

type MetadataService interface {
	FetchMetadata(ctx context.Context, pageURL string) (models.PageMetadata, error)
}
