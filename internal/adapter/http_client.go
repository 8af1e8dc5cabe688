package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/savedit/savedit/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpBackend struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPBackend(cfg HTTPClientConfig) Backend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpBackend{client: cli}
}

func (h *httpBackend) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBackend) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBackend) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Email: user.Email}, nil
}

func (h *httpBackend) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpBackend) SaveItem(ctx context.Context, req models.SaveItemRequest) (models.SavedItem, error) {
	var item models.SavedItem
	if err := h.postJSON(ctx, "/api/items/", req, &item); err != nil {
		// a save conflict always means the URL is already saved
		if errors.Is(err, ErrConflict) {
			return models.SavedItem{}, fmt.Errorf("save item: %w", ErrAlreadySaved)
		}
		return models.SavedItem{}, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

func (h *httpBackend) GetItem(ctx context.Context, itemID string) (models.SavedItem, error) {
	var item models.SavedItem
	if err := h.getJSON(ctx, "/api/items/"+itemID+"/", &item); err != nil {
		return models.SavedItem{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (h *httpBackend) ListUncategorizedItems(ctx context.Context) ([]models.SavedItem, error) {
	var items []models.SavedItem
	if err := h.getJSON(ctx, "/api/items/uncategorized", &items); err != nil {
		return nil, fmt.Errorf("list uncategorized items: %w", err)
	}
	return items, nil
}

func (h *httpBackend) ListCollectionItems(ctx context.Context, collectionID string) ([]models.SavedItem, error) {
	var items []models.SavedItem
	if err := h.getJSON(ctx, "/api/collections/"+collectionID+"/items", &items); err != nil {
		return nil, fmt.Errorf("list collection items: %w", err)
	}
	return items, nil
}

func (h *httpBackend) UpdateItem(ctx context.Context, itemID string, patch models.ItemPatch) (models.SavedItem, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/api/items/" + itemID + "/")
	if err != nil {
		return models.SavedItem{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SavedItem{}, err
	}

	var item models.SavedItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.SavedItem{}, fmt.Errorf("decode update item response: %w", err)
	}
	return item, nil
}

func (h *httpBackend) ArchiveItem(ctx context.Context, itemID string) error {
	return h.postNoBody(ctx, "/api/items/"+itemID+"/archive")
}

func (h *httpBackend) RestoreItem(ctx context.Context, itemID string) error {
	return h.postNoBody(ctx, "/api/items/"+itemID+"/restore")
}

func (h *httpBackend) DeleteItem(ctx context.Context, itemID string) error {
	return h.delete(ctx, "/api/items/"+itemID+"/")
}

func (h *httpBackend) PurgeItem(ctx context.Context, itemID string) error {
	return h.delete(ctx, "/api/items/"+itemID+"/purge")
}

func (h *httpBackend) CreateCollection(ctx context.Context, name string) (models.Collection, error) {
	var collection models.Collection
	body := map[string]string{"name": name}
	if err := h.postJSON(ctx, "/api/collections/", body, &collection); err != nil {
		return models.Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return collection, nil
}

func (h *httpBackend) GetCollection(ctx context.Context, collectionID string) (models.Collection, error) {
	var collection models.Collection
	if err := h.getJSON(ctx, "/api/collections/"+collectionID+"/", &collection); err != nil {
		return models.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return collection, nil
}

func (h *httpBackend) DeleteCollection(ctx context.Context, collectionID string) error {
	return h.delete(ctx, "/api/collections/"+collectionID+"/")
}

func (h *httpBackend) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	if err := h.getJSON(ctx, "/api/collections/", &collections); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

func (h *httpBackend) ListAccessibleCollections(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	if err := h.postJSON(ctx, "/api/rpc/list_accessible_collections_for_user", nil, &collections); err != nil {
		return nil, fmt.Errorf("list accessible collections rpc: %w", err)
	}
	return collections, nil
}

func (h *httpBackend) ListItemCollections(ctx context.Context, itemID string) ([]string, error) {
	var ids []string
	if err := h.getJSON(ctx, "/api/items/"+itemID+"/collections", &ids); err != nil {
		return nil, fmt.Errorf("list item collections: %w", err)
	}
	return ids, nil
}

func (h *httpBackend) AttachItem(ctx context.Context, collectionID, itemID string) error {
	resp, err := h.authedRequest(ctx).Put("/api/collections/" + collectionID + "/items/" + itemID)
	if err != nil {
		return fmt.Errorf("attach item request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) DetachItem(ctx context.Context, collectionID, itemID string) error {
	return h.delete(ctx, "/api/collections/"+collectionID+"/items/"+itemID)
}

func (h *httpBackend) CreateReminder(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error) {
	var reminder models.Reminder
	if err := h.postJSON(ctx, "/api/reminders/", req, &reminder); err != nil {
		// a reminder conflict always means a live reminder already exists
		if errors.Is(err, ErrConflict) {
			return models.Reminder{}, fmt.Errorf("create reminder: %w", ErrReminderExists)
		}
		return models.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}
	return reminder, nil
}

func (h *httpBackend) FnCreateReminder(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error) {
	var reminder models.Reminder
	if err := h.postJSON(ctx, "/api/functions/create-reminder", req, &reminder); err != nil {
		if errors.Is(err, ErrConflict) {
			return models.Reminder{}, fmt.Errorf("create-reminder function: %w", ErrReminderExists)
		}
		return models.Reminder{}, fmt.Errorf("create-reminder function: %w", err)
	}
	return reminder, nil
}

func (h *httpBackend) CompleteReminder(ctx context.Context, reminderID string) error {
	return h.postNoBody(ctx, "/api/reminders/"+reminderID+"/complete")
}

func (h *httpBackend) ListReminderItems(ctx context.Context) ([]models.SavedItem, error) {
	var items []models.SavedItem
	if err := h.getJSON(ctx, "/api/reminders/items", &items); err != nil {
		return nil, fmt.Errorf("list reminder items: %w", err)
	}
	return items, nil
}

func (h *httpBackend) FnQuickSave(ctx context.Context, req models.QuickSaveRequest) (models.SavedItem, error) {
	var item models.SavedItem
	if err := h.postJSON(ctx, "/api/functions/quick-save", req, &item); err != nil {
		if errors.Is(err, ErrConflict) {
			return models.SavedItem{}, fmt.Errorf("quick-save function: %w", ErrAlreadySaved)
		}
		return models.SavedItem{}, fmt.Errorf("quick-save function: %w", err)
	}
	return item, nil
}

func (h *httpBackend) FnFetchMetadata(ctx context.Context, pageURL string) (models.PageMetadata, error) {
	var metadata models.PageMetadata
	body := models.FetchMetadataRequest{URL: pageURL}
	if err := h.postJSON(ctx, "/api/functions/fetch-metadata", body, &metadata); err != nil {
		return models.PageMetadata{}, fmt.Errorf("fetch-metadata function: %w", err)
	}
	return metadata, nil
}

func (h *httpBackend) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := h.getJSON(ctx, "/api/profile/", &profile); err != nil {
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (h *httpBackend) CompleteProfile(ctx context.Context, patch models.ProfilePatch) (models.Profile, error) {
	var profile models.Profile
	if err := h.postJSON(ctx, "/api/profile/complete", patch, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("complete profile: %w", err)
	}
	return profile, nil
}

func (h *httpBackend) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	var result struct {
		Available bool `json:"available"`
	}
	body := map[string]string{"username": username}
	if err := h.postJSON(ctx, "/api/rpc/is_username_available", body, &result); err != nil {
		return false, fmt.Errorf("is_username_available rpc: %w", err)
	}
	return result.Available, nil
}

func (h *httpBackend) CreateInterestCollections(ctx context.Context, interests []string) (int, error) {
	var result struct {
		Created int `json:"created"`
	}
	body := map[string][]string{"interests": interests}
	if err := h.postJSON(ctx, "/api/rpc/create_interest_collections", body, &result); err != nil {
		return 0, fmt.Errorf("create_interest_collections rpc: %w", err)
	}
	return result.Created, nil
}

func (h *httpBackend) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpBackend) postJSON(ctx context.Context, path string, body, out any) error {
	req := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpBackend) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpBackend) postNoBody(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Post(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) delete(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		// what the conflict means depends on the endpoint; call sites
		// translate where 409 has a specific meaning
		return ErrConflict
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject claim")
	}
	return sub, nil
}
