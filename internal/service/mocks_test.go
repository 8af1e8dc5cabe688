package service

import (
	"context"
	"time"

	"github.com/savedit/savedit/models"
)

// Hand-rolled function-field mocks for the store interfaces. Each test
// assigns only the functions it needs; unassigned calls return zero
// values.

type mockUserRepo struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockUserRepo) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFunc != nil {
		return m.findUserByEmailFunc(ctx, email)
	}
	return models.User{}, nil
}

type mockItemRepo struct {
	createItemFunc    func(ctx context.Context, item models.SavedItem) (models.SavedItem, error)
	getItemFunc       func(ctx context.Context, userID, itemID string) (models.SavedItem, error)
	listUncatFunc     func(ctx context.Context, userID string) ([]models.SavedItem, error)
	listByCollFunc    func(ctx context.Context, collectionID string) ([]models.SavedItem, error)
	updateItemFunc    func(ctx context.Context, userID, itemID string, patch models.ItemPatch) (models.SavedItem, error)
	setItemStatusFunc func(ctx context.Context, userID, itemID string, status models.ItemStatus) error
	softDeleteFunc    func(ctx context.Context, userID, itemID string) error
	hardDeleteFunc    func(ctx context.Context, userID, itemID string) error
}

func (m *mockItemRepo) CreateItem(ctx context.Context, item models.SavedItem) (models.SavedItem, error) {
	if m.createItemFunc != nil {
		return m.createItemFunc(ctx, item)
	}
	return item, nil
}

func (m *mockItemRepo) GetItem(ctx context.Context, userID, itemID string) (models.SavedItem, error) {
	if m.getItemFunc != nil {
		return m.getItemFunc(ctx, userID, itemID)
	}
	return models.SavedItem{}, nil
}

func (m *mockItemRepo) ListUncategorizedItems(ctx context.Context, userID string) ([]models.SavedItem, error) {
	if m.listUncatFunc != nil {
		return m.listUncatFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockItemRepo) ListItemsByCollection(ctx context.Context, collectionID string) ([]models.SavedItem, error) {
	if m.listByCollFunc != nil {
		return m.listByCollFunc(ctx, collectionID)
	}
	return nil, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, userID, itemID string, patch models.ItemPatch) (models.SavedItem, error) {
	if m.updateItemFunc != nil {
		return m.updateItemFunc(ctx, userID, itemID, patch)
	}
	return models.SavedItem{}, nil
}

func (m *mockItemRepo) SetItemStatus(ctx context.Context, userID, itemID string, status models.ItemStatus) error {
	if m.setItemStatusFunc != nil {
		return m.setItemStatusFunc(ctx, userID, itemID, status)
	}
	return nil
}

func (m *mockItemRepo) SoftDeleteItem(ctx context.Context, userID, itemID string) error {
	if m.softDeleteFunc != nil {
		return m.softDeleteFunc(ctx, userID, itemID)
	}
	return nil
}

func (m *mockItemRepo) HardDeleteItem(ctx context.Context, userID, itemID string) error {
	if m.hardDeleteFunc != nil {
		return m.hardDeleteFunc(ctx, userID, itemID)
	}
	return nil
}

type mockCollectionRepo struct {
	createCollectionFunc func(ctx context.Context, collection models.Collection) (models.Collection, error)
	getCollectionFunc    func(ctx context.Context, userID, collectionID string) (models.Collection, error)
	listAccessibleFunc   func(ctx context.Context, userID string) ([]models.Collection, error)
	deleteCollectionFunc func(ctx context.Context, userID, collectionID string) error
	addMemberFunc        func(ctx context.Context, collectionID, userID, role string) error
}

func (m *mockCollectionRepo) CreateCollection(ctx context.Context, collection models.Collection) (models.Collection, error) {
	if m.createCollectionFunc != nil {
		return m.createCollectionFunc(ctx, collection)
	}
	return collection, nil
}

func (m *mockCollectionRepo) GetCollection(ctx context.Context, userID, collectionID string) (models.Collection, error) {
	if m.getCollectionFunc != nil {
		return m.getCollectionFunc(ctx, userID, collectionID)
	}
	return models.Collection{}, nil
}

func (m *mockCollectionRepo) ListAccessibleCollections(ctx context.Context, userID string) ([]models.Collection, error) {
	if m.listAccessibleFunc != nil {
		return m.listAccessibleFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCollectionRepo) DeleteCollection(ctx context.Context, userID, collectionID string) error {
	if m.deleteCollectionFunc != nil {
		return m.deleteCollectionFunc(ctx, userID, collectionID)
	}
	return nil
}

func (m *mockCollectionRepo) AddMember(ctx context.Context, collectionID, userID, role string) error {
	if m.addMemberFunc != nil {
		return m.addMemberFunc(ctx, collectionID, userID, role)
	}
	return nil
}

type mockMembershipRepo struct {
	attachItemFunc  func(ctx context.Context, collectionID, itemID string) error
	detachItemFunc  func(ctx context.Context, collectionID, itemID string) error
	listItemCollIDs func(ctx context.Context, itemID string) ([]string, error)
}

func (m *mockMembershipRepo) AttachItem(ctx context.Context, collectionID, itemID string) error {
	if m.attachItemFunc != nil {
		return m.attachItemFunc(ctx, collectionID, itemID)
	}
	return nil
}

func (m *mockMembershipRepo) DetachItem(ctx context.Context, collectionID, itemID string) error {
	if m.detachItemFunc != nil {
		return m.detachItemFunc(ctx, collectionID, itemID)
	}
	return nil
}

func (m *mockMembershipRepo) ListItemCollectionIDs(ctx context.Context, itemID string) ([]string, error) {
	if m.listItemCollIDs != nil {
		return m.listItemCollIDs(ctx, itemID)
	}
	return nil, nil
}

type mockReminderRepo struct {
	createReminderFunc func(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	completeFunc       func(ctx context.Context, userID, reminderID string) error
	listLiveFunc       func(ctx context.Context, userID string) ([]models.SavedItem, error)
	promoteFunc        func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockReminderRepo) CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	if m.createReminderFunc != nil {
		return m.createReminderFunc(ctx, reminder)
	}
	return reminder, nil
}

func (m *mockReminderRepo) CompleteReminder(ctx context.Context, userID, reminderID string) error {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, userID, reminderID)
	}
	return nil
}

func (m *mockReminderRepo) ListLiveReminderItems(ctx context.Context, userID string) ([]models.SavedItem, error) {
	if m.listLiveFunc != nil {
		return m.listLiveFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockReminderRepo) PromotePendingReminders(ctx context.Context, now time.Time) (int64, error) {
	if m.promoteFunc != nil {
		return m.promoteFunc(ctx, now)
	}
	return 0, nil
}

type mockProfileRepo struct {
	getProfileFunc     func(ctx context.Context, userID string) (models.Profile, error)
	upsertProfileFunc  func(ctx context.Context, profile models.Profile) (models.Profile, error)
	usernameExistsFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockProfileRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.usernameExistsFunc != nil {
		return m.usernameExistsFunc(ctx, username)
	}
	return false, nil
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	if m.getProfileFunc != nil {
		return m.getProfileFunc(ctx, userID)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepo) UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if m.upsertProfileFunc != nil {
		return m.upsertProfileFunc(ctx, profile)
	}
	return profile, nil
}

type mockMetadataService struct {
	fetchMetadataFunc func(ctx context.Context, pageURL string) (models.PageMetadata, error)
}

func (m *mockMetadataService) FetchMetadata(ctx context.Context, pageURL string) (models.PageMetadata, error) {
	if m.fetchMetadataFunc != nil {
		return m.fetchMetadataFunc(ctx, pageURL)
	}
	return models.PageMetadata{}, nil
}
