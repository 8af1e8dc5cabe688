package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/savedit/savedit/internal/service"
	"github.com/savedit/savedit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCListAccessibleCollections_Success(t *testing.T) {
	collections := &mockCollectionService{
		listAccessibleFn: func(_ context.Context, userID string) ([]models.Collection, error) {
			require.Equal(t, testUserID, userID)
			return []models.Collection{
				{ID: "col-1", Role: models.RoleOwner, ItemCount: 3},
				{ID: "col-2", Role: models.RoleEditor, Shared: true},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{CollectionService: collections})

	req := authedRequest(t, http.MethodPost, "/api/rpc/list_accessible_collections_for_user", nil)
	rec := httptest.NewRecorder()

	h.rpcListAccessibleCollections(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Collection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ItemCount)
	assert.Equal(t, models.RoleEditor, got[1].Role)
}

func TestRPCIsUsernameAvailable(t *testing.T) {
	tests := []struct {
		name      string
		available bool
	}{
		{name: "available", available: true},
		{name: "taken", available: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			profiles := &mockProfileService{
				isUsernameAvailableFn: func(_ context.Context, username string) (bool, error) {
					require.Equal(t, "bookworm_42", username)
					return tc.available, nil
				},
			}
			h := newTestHandler(t, &service.Services{ProfileService: profiles})

			body := `{"username":"bookworm_42"}`
			req := authedRequest(t, http.MethodPost, "/api/rpc/is_username_available", &body)
			rec := httptest.NewRecorder()

			h.rpcIsUsernameAvailable(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var got usernameAvailableResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tc.available, got.Available)
		})
	}
}

func TestRPCIsUsernameAvailable_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{ProfileService: &mockProfileService{}})

	body := `{"username":`
	req := authedRequest(t, http.MethodPost, "/api/rpc/is_username_available", &body)
	rec := httptest.NewRecorder()

	h.rpcIsUsernameAvailable(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRPCCreateInterestCollections_Success(t *testing.T) {
	profiles := &mockProfileService{
		createInterestCollectionsFn: func(_ context.Context, userID string, interests []string) (int, error) {
			require.Equal(t, testUserID, userID)
			require.Equal(t, []string{"cooking", "travel"}, interests)
			return 2, nil
		},
	}
	h := newTestHandler(t, &service.Services{ProfileService: profiles})

	body := `{"interests":["cooking","travel"]}`
	req := authedRequest(t, http.MethodPost, "/api/rpc/create_interest_collections", &body)
	rec := httptest.NewRecorder()

	h.rpcCreateInterestCollections(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got interestCollectionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Created)
}
