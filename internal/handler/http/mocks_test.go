package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/savedit/savedit/internal/config"
	"github.com/savedit/savedit/internal/logger"
	"github.com/savedit/savedit/internal/service"
	"github.com/savedit/savedit/internal/utils"
	"github.com/savedit/savedit/models"
)

// Hand-rolled service mocks. Each method field can be overridden per test
// case; unset fields panic, which surfaces unexpected calls immediately.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockItemService struct {
	saveItemFn          func(ctx context.Context, userID string, req models.SaveItemRequest) (models.SavedItem, error)
	quickSaveFn         func(ctx context.Context, userID string, req models.QuickSaveRequest) (models.SavedItem, error)
	getItemFn           func(ctx context.Context, userID, itemID string) (models.SavedItem, error)
	listUncategorizedFn func(ctx context.Context, userID string) ([]models.SavedItem, error)
	listByCollectionFn  func(ctx context.Context, userID, collectionID string) ([]models.SavedItem, error)
	updateItemFn        func(ctx context.Context, userID, itemID string, patch models.ItemPatch) (models.SavedItem, error)
	archiveItemFn       func(ctx context.Context, userID, itemID string) error
	restoreItemFn       func(ctx context.Context, userID, itemID string) error
	deleteItemFn        func(ctx context.Context, userID, itemID string) error
	purgeItemFn         func(ctx context.Context, userID, itemID string) error
}

func (m *mockItemService) SaveItem(ctx context.Context, userID string, req models.SaveItemRequest) (models.SavedItem, error) {
	return m.saveItemFn(ctx, userID, req)
}

func (m *mockItemService) QuickSave(ctx context.Context, userID string, req models.QuickSaveRequest) (models.SavedItem, error) {
	return m.quickSaveFn(ctx, userID, req)
}

func (m *mockItemService) GetItem(ctx context.Context, userID, itemID string) (models.SavedItem, error) {
	return m.getItemFn(ctx, userID, itemID)
}

func (m *mockItemService) ListUncategorized(ctx context.Context, userID string) ([]models.SavedItem, error) {
	return m.listUncategorizedFn(ctx, userID)
}

func (m *mockItemService) ListByCollection(ctx context.Context, userID, collectionID string) ([]models.SavedItem, error) {
	return m.listByCollectionFn(ctx, userID, collectionID)
}

func (m *mockItemService) UpdateItem(ctx context.Context, userID, itemID string, patch models.ItemPatch) (models.SavedItem, error) {
	return m.updateItemFn(ctx, userID, itemID, patch)
}

func (m *mockItemService) ArchiveItem(ctx context.Context, userID, itemID string) error {
	return m.archiveItemFn(ctx, userID, itemID)
}

func (m *mockItemService) RestoreItem(ctx context.Context, userID, itemID string) error {
	return m.restoreItemFn(ctx, userID, itemID)
}

func (m *mockItemService) DeleteItem(ctx context.Context, userID, itemID string) error {
	return m.deleteItemFn(ctx, userID, itemID)
}

func (m *mockItemService) PurgeItem(ctx context.Context, userID, itemID string) error {
	return m.purgeItemFn(ctx, userID, itemID)
}

type mockCollectionService struct {
	createCollectionFn func(ctx context.Context, userID, name string) (models.Collection, error)
	getCollectionFn    func(ctx context.Context, userID, collectionID string) (models.Collection, error)
	listAccessibleFn   func(ctx context.Context, userID string) ([]models.Collection, error)
	listContainingFn   func(ctx context.Context, userID, itemID string) ([]string, error)
	deleteCollectionFn func(ctx context.Context, userID, collectionID string) error
	attachItemFn       func(ctx context.Context, userID, collectionID, itemID string) error
	detachItemFn       func(ctx context.Context, userID, collectionID, itemID string) error
	shareCollectionFn  func(ctx context.Context, userID, collectionID, memberID, role string) error
}

func (m *mockCollectionService) CreateCollection(ctx context.Context, userID, name string) (models.Collection, error) {
	return m.createCollectionFn(ctx, userID, name)
}

func (m *mockCollectionService) GetCollection(ctx context.Context, userID, collectionID string) (models.Collection, error) {
	return m.getCollectionFn(ctx, userID, collectionID)
}

func (m *mockCollectionService) ListAccessible(ctx context.Context, userID string) ([]models.Collection, error) {
	return m.listAccessibleFn(ctx, userID)
}

func (m *mockCollectionService) ListContainingItem(ctx context.Context, userID, itemID string) ([]string, error) {
	return m.listContainingFn(ctx, userID, itemID)
}

func (m *mockCollectionService) DeleteCollection(ctx context.Context, userID, collectionID string) error {
	return m.deleteCollectionFn(ctx, userID, collectionID)
}

func (m *mockCollectionService) AttachItem(ctx context.Context, userID, collectionID, itemID string) error {
	return m.attachItemFn(ctx, userID, collectionID, itemID)
}

func (m *mockCollectionService) DetachItem(ctx context.Context, userID, collectionID, itemID string) error {
	return m.detachItemFn(ctx, userID, collectionID, itemID)
}

func (m *mockCollectionService) ShareCollection(ctx context.Context, userID, collectionID, memberID, role string) error {
	return m.shareCollectionFn(ctx, userID, collectionID, memberID, role)
}

type mockReminderService struct {
	createReminderFn        func(ctx context.Context, userID string, req models.CreateReminderRequest) (models.Reminder, error)
	completeReminderFn      func(ctx context.Context, userID, reminderID string) error
	listLiveReminderItemsFn func(ctx context.Context, userID string) ([]models.SavedItem, error)
}

func (m *mockReminderService) CreateReminder(ctx context.Context, userID string, req models.CreateReminderRequest) (models.Reminder, error) {
	return m.createReminderFn(ctx, userID, req)
}

func (m *mockReminderService) CompleteReminder(ctx context.Context, userID, reminderID string) error {
	return m.completeReminderFn(ctx, userID, reminderID)
}

func (m *mockReminderService) ListLiveReminderItems(ctx context.Context, userID string) ([]models.SavedItem, error) {
	return m.listLiveReminderItemsFn(ctx, userID)
}

type mockProfileService struct {
	getProfileFn                func(ctx context.Context, userID string) (models.Profile, error)
	completeProfileFn           func(ctx context.Context, userID string, patch models.ProfilePatch) (models.Profile, error)
	isUsernameAvailableFn       func(ctx context.Context, username string) (bool, error)
	createInterestCollectionsFn func(ctx context.Context, userID string, interests []string) (int, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockProfileService) CompleteProfile(ctx context.Context, userID string, patch models.ProfilePatch) (models.Profile, error) {
	return m.completeProfileFn(ctx, userID, patch)
}

func (m *mockProfileService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return m.isUsernameAvailableFn(ctx, username)
}

func (m *mockProfileService) CreateInterestCollections(ctx context.Context, userID string, interests []string) (int, error) {
	return m.createInterestCollectionsFn(ctx, userID, interests)
}

type mockMetadataService struct {
	fetchMetadataFn func(ctx context.Context, pageURL string) (models.PageMetadata, error)
}

func (m *mockMetadataService) FetchMetadata(ctx context.Context, pageURL string) (models.PageMetadata, error) {
	return m.fetchMetadataFn(ctx, pageURL)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID = "018f0b2a-0000-7000-8000-000000000001"

// newTestHandler builds a Handler with the given services filled in.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())
}

// authedRequest builds a request whose context carries testUserID, as if
// the auth middleware had already run.
func authedRequest(t *testing.T, method, target string, body *string) *http.Request {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(*body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, testUserID)
	return req.WithContext(ctx)
}

// withURLParams attaches chi route parameters to the request context, so
// handlers that read chi.URLParam can be called without a router.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
