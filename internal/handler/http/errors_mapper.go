package http

import (
	"errors"
	"net/http"

	"github.com/savedit/savedit/internal/service"
	"github.com/savedit/savedit/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidUsername:         http.StatusBadRequest,
	service.ErrInvalidTimezone:         http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrMetadataFetch:           http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrDuplicateSavedURL:  http.StatusConflict,
	store.ErrUsernameTaken:      http.StatusConflict,
	store.ErrReminderExists:     http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrNotFound:           http.StatusNotFound,
	store.ErrPermissionDenied:   http.StatusForbidden,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap overrides the body text for errors whose default text
// is either too technical or product-relevant enough to word precisely.
var errorMessageMap = map[error]string{
	store.ErrDuplicateSavedURL: "already saved",
	store.ErrPermissionDenied:  "you do not have permission to edit this item",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError maps a service or store error to its HTTP status and body.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, messageFromError(err), statusFromError(err))
}
