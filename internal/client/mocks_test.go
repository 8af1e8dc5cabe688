package client

import (
	"context"

	"github.com/savedit/savedit/models"
)

const testUserID = "018f0b2a-0000-7000-8000-000000000001"

// mockBackend is a hand-rolled function-field mock of adapter.Backend.
// Unset fields panic, which surfaces unexpected calls immediately.
type mockBackend struct {
	setTokenFn func(token string)
	tokenFn    func() string

	registerFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn    func(ctx context.Context, user models.User) (models.Token, error)

	saveItemFn              func(ctx context.Context, req models.SaveItemRequest) (models.SavedItem, error)
	getItemFn               func(ctx context.Context, itemID string) (models.SavedItem, error)
	listUncategorizedFn     func(ctx context.Context) ([]models.SavedItem, error)
	listCollectionItemsFn   func(ctx context.Context, collectionID string) ([]models.SavedItem, error)
	updateItemFn            func(ctx context.Context, itemID string, patch models.ItemPatch) (models.SavedItem, error)
	archiveItemFn           func(ctx context.Context, itemID string) error
	restoreItemFn           func(ctx context.Context, itemID string) error
	deleteItemFn            func(ctx context.Context, itemID string) error
	purgeItemFn             func(ctx context.Context, itemID string) error
	createCollectionFn      func(ctx context.Context, name string) (models.Collection, error)
	getCollectionFn         func(ctx context.Context, collectionID string) (models.Collection, error)
	deleteCollectionFn      func(ctx context.Context, collectionID string) error
	listCollectionsFn       func(ctx context.Context) ([]models.Collection, error)
	listAccessibleFn        func(ctx context.Context) ([]models.Collection, error)
	listItemCollectionsFn   func(ctx context.Context, itemID string) ([]string, error)
	attachItemFn            func(ctx context.Context, collectionID, itemID string) error
	detachItemFn            func(ctx context.Context, collectionID, itemID string) error
	createReminderFn        func(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error)
	fnCreateReminderFn      func(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error)
	completeReminderFn      func(ctx context.Context, reminderID string) error
	listReminderItemsFn     func(ctx context.Context) ([]models.SavedItem, error)
	fnQuickSaveFn           func(ctx context.Context, req models.QuickSaveRequest) (models.SavedItem, error)
	fnFetchMetadataFn       func(ctx context.Context, pageURL string) (models.PageMetadata, error)
	getProfileFn            func(ctx context.Context) (models.Profile, error)
	completeProfileFn       func(ctx context.Context, patch models.ProfilePatch) (models.Profile, error)
	isUsernameAvailableFn   func(ctx context.Context, username string) (bool, error)
	createInterestCollsFn   func(ctx context.Context, interests []string) (int, error)
}

func (m *mockBackend) SetToken(token string) { m.setTokenFn(token) }
func (m *mockBackend) Token() string         { return m.tokenFn() }

func (m *mockBackend) Register(ctx context.Context, user models.User) (models.User, error) {
	return m.registerFn(ctx, user)
}

func (m *mockBackend) Login(ctx context.Context, user models.User) (models.Token, error) {
	return m.loginFn(ctx, user)
}

func (m *mockBackend) SaveItem(ctx context.Context, req models.SaveItemRequest) (models.SavedItem, error) {
	return m.saveItemFn(ctx, req)
}

func (m *mockBackend) GetItem(ctx context.Context, itemID string) (models.SavedItem, error) {
	return m.getItemFn(ctx, itemID)
}

func (m *mockBackend) ListUncategorizedItems(ctx context.Context) ([]models.SavedItem, error) {
	return m.listUncategorizedFn(ctx)
}

func (m *mockBackend) ListCollectionItems(ctx context.Context, collectionID string) ([]models.SavedItem, error) {
	return m.listCollectionItemsFn(ctx, collectionID)
}

func (m *mockBackend) UpdateItem(ctx context.Context, itemID string, patch models.ItemPatch) (models.SavedItem, error) {
	return m.updateItemFn(ctx, itemID, patch)
}

func (m *mockBackend) ArchiveItem(ctx context.Context, itemID string) error {
	return m.archiveItemFn(ctx, itemID)
}

func (m *mockBackend) RestoreItem(ctx context.Context, itemID string) error {
	return m.restoreItemFn(ctx, itemID)
}

func (m *mockBackend) DeleteItem(ctx context.Context, itemID string) error {
	return m.deleteItemFn(ctx, itemID)
}

func (m *mockBackend) PurgeItem(ctx context.Context, itemID string) error {
	return m.purgeItemFn(ctx, itemID)
}

func (m *mockBackend) CreateCollection(ctx context.Context, name string) (models.Collection, error) {
	return m.createCollectionFn(ctx, name)
}

func (m *mockBackend) GetCollection(ctx context.Context, collectionID string) (models.Collection, error) {
	return m.getCollectionFn(ctx, collectionID)
}

func (m *mockBackend) DeleteCollection(ctx context.Context, collectionID string) error {
	return m.deleteCollectionFn(ctx, collectionID)
}

func (m *mockBackend) ListCollections(ctx context.Context) ([]models.Collection, error) {
	return m.listCollectionsFn(ctx)
}

func (m *mockBackend) ListAccessibleCollections(ctx context.Context) ([]models.Collection, error) {
	return m.listAccessibleFn(ctx)
}

func (m *mockBackend) ListItemCollections(ctx context.Context, itemID string) ([]string, error) {
	return m.listItemCollectionsFn(ctx, itemID)
}

func (m *mockBackend) AttachItem(ctx context.Context, collectionID, itemID string) error {
	return m.attachItemFn(ctx, collectionID, itemID)
}

func (m *mockBackend) DetachItem(ctx context.Context, collectionID, itemID string) error {
	return m.detachItemFn(ctx, collectionID, itemID)
}

func (m *mockBackend) CreateReminder(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error) {
	return m.createReminderFn(ctx, req)
}

func (m *mockBackend) FnCreateReminder(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error) {
	return m.fnCreateReminderFn(ctx, req)
}

func (m *mockBackend) CompleteReminder(ctx context.Context, reminderID string) error {
	return m.completeReminderFn(ctx, reminderID)
}

func (m *mockBackend) ListReminderItems(ctx context.Context) ([]models.SavedItem, error) {
	return m.listReminderItemsFn(ctx)
}

func (m *mockBackend) FnQuickSave(ctx context.Context, req models.QuickSaveRequest) (models.SavedItem, error) {
	return m.fnQuickSaveFn(ctx, req)
}

func (m *mockBackend) FnFetchMetadata(ctx context.Context, pageURL string) (models.PageMetadata, error) {
	return m.fnFetchMetadataFn(ctx, pageURL)
}

func (m *mockBackend) GetProfile(ctx context.Context) (models.Profile, error) {
	return m.getProfileFn(ctx)
}

func (m *mockBackend) CompleteProfile(ctx context.Context, patch models.ProfilePatch) (models.Profile, error) {
	return m.completeProfileFn(ctx, patch)
}

func (m *mockBackend) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return m.isUsernameAvailableFn(ctx, username)
}

func (m *mockBackend) CreateInterestCollections(ctx context.Context, interests []string) (int, error) {
	return m.createInterestCollsFn(ctx, interests)
}
